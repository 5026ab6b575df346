package widgets

import (
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// NavigationItem is one top-level entry of a [NavigationMenu].
type NavigationItem struct {
	// Label is the trigger text.
	Label string
	// Content draws the item's panel. Items without content are plain
	// links.
	Content func(*ui.Ui)
	// Width sets the panel width (0 sizes to the content).
	Width float64
}

// NavigationMenu draws a row of triggers, each opening a panel beneath it
// on hover or click. The panels form one hover group: once one is open,
// moving to a sibling trigger switches panels without waiting for the open
// delay. Panels flip above the row when they do not fit below it.
type NavigationMenu struct {
	// ID identifies the menu. It must be set.
	ID    ui.ID
	Items []NavigationItem
	// Sticky selects the cross-axis overflow policy of the panels.
	Sticky placement.Sticky
}

// Show draws the menu and returns the index of the link item clicked
// this frame, or -1.
func (n NavigationMenu) Show(u *ui.Ui) int {
	ctx := u.Ctx()
	nt := theme.Of(ctx).NavigationMenuThemeOf()
	clicked := -1

	u.Horizontal(func(row *ui.Ui) {
		for i, item := range n.Items {
			id := n.ID.With(i)
			if item.Content == nil {
				if (Button{ID: id, Label: item.Label, Variant: ButtonGhost}).Show(row).Clicked {
					clicked = i
				}
				continue
			}
			open := overlay.IsOpen(ctx, id)
			chevron := "▾"
			if open {
				chevron = "▴"
			}
			opts := overlay.Options{
				Behavior: overlay.Hover{
					OpenDelay:     nt.OpenDelay,
					CloseDelay:    nt.CloseDelay,
					SkipDelay:     nt.SkipDelay,
					OpenOnClick:   true,
					Group:         n.ID,
					ContentMargin: nt.SideOffset + 1,
				},
				Side:            placement.Bottom,
				Align:           placement.Start,
				SideOffset:      nt.SideOffset,
				Width:           item.Width,
				AvoidCollisions: true,
				Sticky:          n.Sticky,
				Duration:        nt.Duration,
				SlideDistance:   slide(nt.SlideDistance),
				Surface:         nt.Surface,
			}
			trigger := func(t *ui.Ui) ui.Response {
				return Button{
					ID:       id.With("trigger"),
					Label:    item.Label,
					Variant:  ButtonGhost,
					Active:   open,
					Trailing: chevron,
				}.Show(t)
			}
			overlay.Render(row, id, opts, trigger, unit(item.Content))
		}
	})
	return clicked
}

// NavigationLink draws a title and a muted description as one clickable
// block, the usual entry of a navigation panel.
func NavigationLink(u *ui.Ui, title, description string) ui.Response {
	nt := theme.Of(u.Ctx()).NavigationMenuThemeOf()
	style := u.Style()
	id := u.ID().With(title)
	ts := measure(u, title, style.FontSize)
	ds := measure(u, description, style.FontSize)
	pad := theme.Of(u.Ctx()).Metrics.ItemPadding
	w := fillWidth(u, max(ts.Width, ds.Width)+pad.Horizontal())
	h := ts.Height + pad.Vertical()
	if description != "" {
		h += ds.Height + style.Spacing
	}
	resp := u.Allocate(id, sizeOf(w, h), ui.SenseClick)
	if resp.Hovered || resp.HasFocus {
		u.Painter().FillRect(resp.Rect, style.Radius, nt.ActiveColor)
	}
	inner := resp.Rect.Deflate(pad)
	u.Painter().Text(inner, title, style.FontSize, nt.TextColor)
	if description != "" {
		inner.Top += ts.Height + style.Spacing
		u.Painter().Text(inner, description, style.FontSize, nt.LinkDescriptionColor)
	}
	return resp
}
