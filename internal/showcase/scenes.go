package showcase

import (
	"fmt"
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

func init() {
	register(&Scene{Name: "popover", Title: "Popover", Subtitle: "Displays rich content in a portal, triggered by a button.", Activation: ActivateClick, setup: popoverScene})
	register(&Scene{Name: "dropdown-menu", Title: "Dropdown Menu", Subtitle: "Displays a menu of actions triggered by a button.", Activation: ActivateClick, setup: dropdownScene})
	register(&Scene{Name: "context-menu", Title: "Context Menu", Subtitle: "Displays a menu at the pointer on right click.", Activation: ActivateSecondaryClick, setup: contextMenuScene})
	register(&Scene{Name: "hover-card", Title: "Hover Card", Subtitle: "Preview content available behind a link.", Activation: ActivateHover, setup: hoverCardScene})
	register(&Scene{Name: "tooltip", Title: "Tooltip", Subtitle: "A popup that shows information on hover or focus.", Activation: ActivateHover, setup: tooltipScene})
	register(&Scene{Name: "navigation-menu", Title: "Navigation Menu", Subtitle: "A collection of links for navigating websites.", Activation: ActivateHover, setup: navigationScene})
	register(&Scene{Name: "date-picker", Title: "Date Picker", Subtitle: "A date picker with a month calendar.", Activation: ActivateClick, setup: datePickerScene})
	register(&Scene{Name: "combobox", Title: "Combobox", Subtitle: "Autocomplete input and command palette with a list of suggestions.", Activation: ActivateClick, setup: comboboxScene})
	register(&Scene{Name: "collapsible", Title: "Collapsible", Subtitle: "An interactive component which expands and collapses a panel.", Activation: ActivateClick, setup: collapsibleScene})
	register(&Scene{Name: "accordion", Title: "Accordion", Subtitle: "A vertically stacked set of interactive headings.", Activation: ActivateClick, setup: accordionScene})
	register(&Scene{Name: "dialog", Title: "Dialog", Subtitle: "A window overlaid on the primary window.", Activation: ActivateClick, setup: dialogScene})
}

func muted(u *ui.Ui, text string) {
	u.ColoredLabel(text, theme.Of(u.Ctx()).Palette.MutedForeground)
}

// cursorAnchor targets the first control laid out at the cursor, whose
// top-left padding is pad.
func cursorAnchor(u *ui.Ui, pad graphics.EdgeInsets) graphics.Rect {
	c := u.Cursor()
	return graphics.RectFromLTWH(c.X, c.Y, 2*max(pad.Left, 1), 2*max(pad.Top, 1))
}

func popoverScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "popover")
	return func(p *Page, u *ui.Ui) {
		res := widgets.Popover{ID: id, Label: "Open popover"}.Show(u, func(c *ui.Ui) {
			c.Label("Dimensions")
			muted(c, "Set the dimensions for the layer.")
			for _, row := range [][2]string{{"Width", "100%"}, {"Max. width", "300px"}, {"Height", "25px"}, {"Max. height", "none"}} {
				c.Horizontal(func(h *ui.Ui) {
					h.Label(row[0])
					h.Space(theme.Of(h.Ctx()).Metrics.X(16))
					muted(h, row[1])
				})
			}
		})
		p.setAnchor(res.Trigger.Rect)
	}
}

var accountItems = []widgets.MenuItem{
	{Label: "My Account", Heading: true},
	widgets.Separator(),
	{Label: "Profile", Shortcut: "⇧⌘P"},
	{Label: "Billing", Shortcut: "⌘B"},
	{Label: "Settings", Shortcut: "⌘S"},
	{Label: "Keyboard shortcuts", Shortcut: "⌘K"},
	widgets.Separator(),
	{Label: "Team"},
	{Label: "New Team", Shortcut: "⌘+T"},
	widgets.Separator(),
	{Label: "GitHub"},
	{Label: "Support"},
	{Label: "API", Disabled: true},
	widgets.Separator(),
	{Label: "Log out", Shortcut: "⇧⌘Q", Destructive: true},
}

func dropdownScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "dropdown")
	return func(p *Page, u *ui.Ui) {
		res, picked := widgets.DropdownMenu{ID: id, Label: "Open", Items: accountItems, Width: theme.Of(u.Ctx()).Metrics.X(224)}.Show(u)
		p.setAnchor(res.Trigger.Rect)
		if picked >= 0 {
			p.Status = "Selected: " + accountItems[picked].Label
		}
	}
}

func contextMenuScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "context")
	items := []widgets.MenuItem{
		{Label: "Back", Shortcut: "⌘["},
		{Label: "Forward", Shortcut: "⌘]", Disabled: true},
		{Label: "Reload", Shortcut: "⌘R"},
		widgets.Separator(),
		{Label: "Show Bookmarks Bar", Checked: true},
		{Label: "Show Full URLs"},
	}
	return func(p *Page, u *ui.Ui) {
		th := theme.Of(u.Ctx())
		_, picked := widgets.ContextMenu{ID: id, Items: items}.Show(u, func(t *ui.Ui) ui.Response {
			size := graphics.Size{Width: th.Metrics.X(300), Height: th.Metrics.Y(150)}
			resp := t.Allocate(id.With("region"), size, ui.SenseClick)
			t.Painter().StrokeRect(resp.Rect, th.Metrics.Radius, th.Metrics.StrokeWidth, th.Palette.Border)
			hint := "Right click here"
			hs := t.Ctx().Measurer().MeasureText(hint, th.Metrics.FontSize)
			c := resp.Rect.Center()
			t.Painter().Text(graphics.RectFromLTWH(c.X-hs.Width/2, c.Y-hs.Height/2, hs.Width, hs.Height), hint, th.Metrics.FontSize, th.Palette.MutedForeground)
			p.setAnchor(resp.Rect)
			return resp
		})
		if picked >= 0 {
			p.Status = "Selected: " + items[picked].Label
		}
	}
}

func hoverCardScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "hover-card")
	return func(p *Page, u *ui.Ui) {
		res := widgets.HoverCard{ID: id, Label: "@nextjs"}.Show(u, func(c *ui.Ui) {
			c.Label("@nextjs")
			c.Label("The React Framework, created and maintained by @vercel.")
			muted(c, "Joined December 2021")
		})
		p.setAnchor(res.Trigger.Rect)
	}
}

func tooltipScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "tooltip")
	return func(p *Page, u *ui.Ui) {
		resp := widgets.Tooltip{ID: id, Text: "Add to library"}.Show(u, func(t *ui.Ui) ui.Response {
			return widgets.Button{ID: id.With("trigger"), Label: "Hover"}.Show(t)
		})
		p.setAnchor(resp.Rect)
	}
}

func navigationScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "navigation")
	links := func(entries ...[2]string) func(*ui.Ui) {
		return func(c *ui.Ui) {
			for _, e := range entries {
				widgets.NavigationLink(c, e[0], e[1])
			}
		}
	}
	return func(p *Page, u *ui.Ui) {
		th := theme.Of(u.Ctx())
		p.setAnchor(cursorAnchor(u, th.ButtonThemeOf().Padding))
		clicked := widgets.NavigationMenu{
			ID: id,
			Items: []widgets.NavigationItem{
				{Label: "Getting started", Width: th.Metrics.X(400), Content: links(
					[2]string{"Introduction", "Re-usable components built using Radix UI and Tailwind CSS."},
					[2]string{"Installation", "How to install dependencies and structure your app."},
					[2]string{"Typography", "Styles for headings, paragraphs, lists...etc"},
				)},
				{Label: "Components", Width: th.Metrics.X(500), Content: links(
					[2]string{"Alert Dialog", "A modal dialog that interrupts the user."},
					[2]string{"Hover Card", "For sighted users to preview content behind a link."},
					[2]string{"Progress", "Displays an indicator showing completion progress."},
				)},
				{Label: "Documentation"},
			},
		}.Show(u)
		if clicked >= 0 {
			p.Status = "Navigated to Documentation"
		}
	}
}

func datePickerScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "date-picker")
	var date time.Time
	return func(p *Page, u *ui.Ui) {
		res, picked := widgets.DatePicker{ID: id, Value: &date}.Show(u)
		p.setAnchor(res.Trigger.Rect)
		if picked {
			p.Status = "Picked " + date.Format(widgets.DefaultDateFormat)
		}
	}
}

var frameworks = []string{"Next.js", "SvelteKit", "Nuxt.js", "Remix", "Astro"}

func comboboxScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "combobox")
	var value string
	return func(p *Page, u *ui.Ui) {
		res, changed := widgets.Combobox{
			ID:                id,
			Options:           frameworks,
			Value:             &value,
			Placeholder:       "Select framework...",
			SearchPlaceholder: "Search framework...",
		}.Show(u)
		p.setAnchor(res.Trigger.Rect)
		if changed {
			p.Status = fmt.Sprintf("Framework: %q", value)
		}
	}
}

func collapsibleScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "collapsible")
	repo := func(c *ui.Ui, name string) {
		th := theme.Of(c.Ctx())
		pad := th.Metrics.ControlPadding
		ts := c.Ctx().Measurer().MeasureText(name, th.Metrics.FontSize)
		w := c.Available().Width
		if w <= 0 || w > th.Metrics.X(350) {
			w = th.Metrics.X(350)
		}
		r := c.Allocate(id.With(name), graphics.Size{Width: w, Height: ts.Height + pad.Vertical()}, ui.SenseNone)
		c.Painter().StrokeRect(r.Rect, th.Metrics.Radius, th.Metrics.StrokeWidth, th.Palette.Border)
		c.Painter().Text(r.Rect.Deflate(pad), name, th.Metrics.FontSize, th.Palette.Foreground)
	}
	return func(p *Page, u *ui.Ui) {
		repo(u, "@radix-ui/primitives")
		res := widgets.Collapsible{ID: id, Label: "@peduarte starred 3 repositories"}.Show(u, func(c *ui.Ui) {
			repo(c, "@radix-ui/colors")
			repo(c, "@stitches/react")
		})
		p.setAnchor(res.Trigger.Rect)
	}
}

func accordionScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "accordion")
	answer := func(text string) func(*ui.Ui) {
		return func(c *ui.Ui) { c.Label(text) }
	}
	return func(p *Page, u *ui.Ui) {
		th := theme.Of(u.Ctx())
		p.setAnchor(cursorAnchor(u, th.CollapsibleThemeOf().TriggerPadding))
		toggled := widgets.Accordion{
			ID: id,
			Items: []widgets.AccordionItem{
				{Title: "Is it accessible?", Content: answer("Yes. It adheres to the WAI-ARIA design pattern.")},
				{Title: "Is it styled?", Content: answer("Yes. It comes with default styles that match the other components.")},
				{Title: "Is it animated?", Content: answer("Yes. It's animated by default, but you can disable it if you prefer.")},
			},
		}.Show(u)
		if toggled >= 0 {
			p.Status = fmt.Sprintf("Toggled section %d", toggled+1)
		}
	}
}

func dialogScene() func(*Page, *ui.Ui) {
	id := ui.NewID("showcase", "dialog")
	open := false
	return func(p *Page, u *ui.Ui) {
		resp := widgets.Button{ID: id.With("open"), Label: "Edit Profile"}.Show(u)
		p.setAnchor(resp.Rect)
		if resp.Clicked {
			open = true
		}
		widgets.Dialog{
			ID:          id,
			Open:        &open,
			Title:       "Edit profile",
			Description: "Make changes to your profile here. Click close when you're done.",
		}.Show(u, func(c *ui.Ui) {
			for _, row := range [][2]string{{"Name", "Pedro Duarte"}, {"Username", "@peduarte"}} {
				c.Horizontal(func(h *ui.Ui) {
					h.Label(row[0])
					h.Space(theme.Of(h.Ctx()).Metrics.X(16))
					muted(h, row[1])
				})
			}
		})
	}
}
