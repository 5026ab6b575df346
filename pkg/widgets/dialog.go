package widgets

import (
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Dialog is a modal window centered over a dimming barrier. It is shown
// while *Open is set; escape, a press on the barrier or the close button
// clear it unless Persistent.
//
// Example:
//
//	if (widgets.Button{Label: "Edit profile"}).Show(u).Clicked {
//	    editing = true
//	}
//	widgets.Dialog{ID: ui.NewID("profile"), Open: &editing, Title: "Edit profile"}.Show(u, func(c *ui.Ui) {
//	    c.Label("Make changes to your profile here.")
//	})
type Dialog struct {
	// ID identifies the dialog. It must be set.
	ID ui.ID
	// Open is the controlling flag.
	Open *bool
	// Title is drawn at the top of the dialog.
	Title string
	// Description is drawn under the title in the muted color.
	Description string
	// Persistent keeps the dialog open on escape and barrier presses and
	// hides the close button.
	Persistent bool
	// Width overrides the theme width.
	Width float64
}

// Show draws the dialog while open.
func (d Dialog) Show(u *ui.Ui, content func(*ui.Ui)) overlay.Result {
	dt := theme.Of(u.Ctx()).DialogThemeOf()
	opts := overlay.ModalOptions{
		Persistent:   d.Persistent,
		BarrierColor: dt.BarrierColor,
		Width:        or(d.Width, dt.Width),
		Padding:      theme.Of(u.Ctx()).Metrics.SurfacePadding,
		Duration:     dt.Duration,
		Surface:      dt.Surface,
	}
	res, _ := overlay.Modal(u, d.ID, d.Open, opts, func(c *ui.Ui) struct{} {
		style := c.Style()
		if d.Title != "" {
			c.Horizontal(func(h *ui.Ui) {
				ts := measure(h, d.Title, dt.TitleSize)
				r := h.Allocate(d.ID.With("title"), ts, ui.SenseNone)
				h.Painter().Text(r.Rect, d.Title, dt.TitleSize, style.Text)
			})
		}
		if d.Description != "" {
			c.ColoredLabel(d.Description, dt.DescriptionColor)
		}
		if content != nil {
			content(c)
		}
		if !d.Persistent {
			if (Button{ID: d.ID.With("close"), Label: "Close", Variant: ButtonSecondary}).Show(c).Clicked {
				*d.Open = false
			}
		}
		return struct{}{}
	})
	return res
}
