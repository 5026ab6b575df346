package widgets

import (
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

type contextAnchor struct {
	at graphics.Offset
}

// ContextMenu opens a menu at the pointer when its region is
// secondary-clicked. The menu is anchored to a zero-size rect at the press
// position. Escape, a press outside the menu or choosing an item closes it;
// another secondary click inside the region moves it.
type ContextMenu struct {
	// ID identifies the menu. It must be set.
	ID ui.ID
	// Items are the menu entries.
	Items []MenuItem
	// Open optionally binds the open state to a caller-owned flag.
	Open *bool
}

// Show draws the region with region, which must report secondary clicks
// (e.g. through ui.SenseClick), and the menu while open. It returns the
// index of the item selected this frame, or -1.
func (m ContextMenu) Show(u *ui.Ui, region func(*ui.Ui) ui.Response) (overlay.Result, int) {
	ctx := u.Ctx()
	mt := theme.Of(ctx).MenuThemeOf()
	id := m.ID
	anchor := ui.Data[contextAnchor](ctx.Memory(), id)
	wasOpen := overlay.IsOpen(ctx, id)

	trigger := func(t *ui.Ui) ui.Response {
		resp := region(t)
		in := ctx.Input()
		if resp.SecondaryClicked && in.PointerValid && !t.Measuring() {
			anchor.at = in.Pointer
			st := overlay.StateOf(ctx, id)
			if st.Open {
				st.OpenedFrame = ctx.Frame()
			} else {
				st.SetOpen(ctx, true)
			}
			if m.Open != nil {
				*m.Open = true
			}
		}
		return ui.Response{ID: resp.ID, Rect: graphics.RectFromOffsetSize(anchor.at, graphics.Size{})}
	}

	opts := overlay.Options{
		Behavior:      overlay.Click{},
		Open:          m.Open,
		Side:          placement.Right,
		Align:         placement.Start,
		Duration:      mt.Duration,
		SlideDistance: slide(mt.SlideDistance),
		Surface:       mt.Surface,
	}
	res, chosen := overlay.Render(u, id, opts, trigger, func(c *ui.Ui) int {
		return showMenuItems(c, id, m.Items, mt, mt.MinWidth, wasOpen)
	})
	if res.Placeholder || !res.Mounted {
		chosen = -1
	}
	finishMenu(ctx, id, m.Open, wasOpen, chosen >= 0)
	return res, chosen
}
