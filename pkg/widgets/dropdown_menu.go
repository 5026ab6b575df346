package widgets

import (
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// DropdownMenu displays a button that opens a menu of items.
//
// Clicking an enabled item selects it and closes the menu. Up and Down
// move a keyboard highlight while the menu is open; Enter selects it.
// Like [Popover], the menu is translated back inside the viewport but
// never flips.
//
// Example:
//
//	if _, i := (widgets.DropdownMenu{
//	    Label: "Options",
//	    Items: []widgets.MenuItem{
//	        {Label: "Profile", Shortcut: "⇧⌘P"},
//	        {Label: "Settings"},
//	        widgets.Separator(),
//	        {Label: "Log out", Destructive: true},
//	    },
//	}).Show(u); i >= 0 {
//	    handle(i)
//	}
type DropdownMenu struct {
	// ID identifies the menu. Zero derives one from the region and Label.
	ID ui.ID
	// Label is the trigger button text.
	Label string
	// Trigger replaces the default button trigger.
	Trigger func(*ui.Ui) ui.Response
	// Items are the menu entries.
	Items []MenuItem
	// Open optionally binds the open state to a caller-owned flag.
	Open *bool
	// KeepOpen keeps the menu open after a selection, e.g. for checkbox
	// items.
	KeepOpen bool

	Side  placement.Side
	Align placement.Align
	// Width sets a fixed width (0 sizes to the widest item).
	Width float64
}

// Show draws the trigger and, while open, the menu. It returns the index
// of the item selected this frame, or -1.
func (d DropdownMenu) Show(u *ui.Ui) (overlay.Result, int) {
	ctx := u.Ctx()
	mt := theme.Of(ctx).MenuThemeOf()
	id := idFor(u, d.ID, d.Label)
	wasOpen := overlay.IsOpen(ctx, id)

	opts := overlay.Options{
		Behavior:      overlay.Click{},
		Open:          d.Open,
		Side:          d.Side,
		Align:         d.Align,
		SideOffset:    mt.SideOffset,
		Width:         d.Width,
		Duration:      mt.Duration,
		SlideDistance: slide(mt.SlideDistance),
		Surface:       mt.Surface,
	}
	trigger := buttonTrigger(u, id, d.Label, d.Trigger)
	res, chosen := overlay.Render(u, id, opts, trigger, func(c *ui.Ui) int {
		return showMenuItems(c, id, d.Items, mt, mt.MinWidth, wasOpen)
	})
	if res.Placeholder || !res.Mounted {
		chosen = -1
	}
	finishMenu(ctx, id, d.Open, wasOpen, chosen >= 0 && !d.KeepOpen)
	return res, chosen
}

// finishMenu closes a menu after a selection and resets keyboard
// navigation when it just opened.
func finishMenu(ctx *ui.Context, id ui.ID, flag *bool, wasOpen, closeNow bool) {
	if closeNow {
		overlay.SetOpen(ctx, id, false)
		if flag != nil {
			*flag = false
		}
	}
	if !wasOpen && overlay.IsOpen(ctx, id) {
		resetMenu(ctx, id)
	}
}
