package widgets

import (
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Popover shows rich content in a floating panel when its trigger is
// clicked. It closes on escape, on a second trigger click and on a press
// outside both the trigger and the panel.
//
// Popover only translates the panel back inside the viewport; it never
// flips to the other side of the trigger.
//
// Example:
//
//	widgets.Popover{Label: "Open popover"}.Show(u, func(c *ui.Ui) {
//	    c.Label("Dimensions")
//	    c.ColoredLabel("Set the dimensions for the layer.", c.Style().MutedText)
//	})
type Popover struct {
	// ID identifies the popover. Zero derives one from the region and Label.
	ID ui.ID
	// Label is the trigger button text.
	Label string
	// Trigger replaces the default button trigger.
	Trigger func(*ui.Ui) ui.Response
	// Open optionally binds the open state to a caller-owned flag.
	Open *bool
	// ForceMount keeps content laid out while closed.
	ForceMount bool

	Side        placement.Side
	Align       placement.Align
	AlignOffset float64
	// Width overrides the theme width. Negative sizes the panel to its content.
	Width float64
	// MaxHeight overrides the theme maximum height.
	MaxHeight float64
}

// Show draws the trigger and, while open, content.
func (p Popover) Show(u *ui.Ui, content func(*ui.Ui)) overlay.Result {
	th := theme.Of(u.Ctx()).PopoverThemeOf()
	id := idFor(u, p.ID, p.Label)

	width := or(p.Width, th.Width)
	if width < 0 {
		width = 0
	}
	opts := overlay.Options{
		Behavior:      overlay.Click{},
		Open:          p.Open,
		ForceMount:    p.ForceMount,
		Side:          p.Side,
		Align:         p.Align,
		SideOffset:    th.SideOffset,
		AlignOffset:   p.AlignOffset,
		Width:         width,
		MaxHeight:     or(p.MaxHeight, th.MaxHeight),
		Duration:      th.Duration,
		SlideDistance: slide(th.SlideDistance),
		Surface:       th.Surface,
	}
	res, _ := overlay.Render(u, id, opts, buttonTrigger(u, id, p.Label, p.Trigger), unit(content))
	return res
}

// buttonTrigger returns custom, or an outline button labelled label that
// stays highlighted while the overlay id is open.
func buttonTrigger(u *ui.Ui, id ui.ID, label string, custom func(*ui.Ui) ui.Response) func(*ui.Ui) ui.Response {
	if custom != nil {
		return custom
	}
	open := overlay.IsOpen(u.Ctx(), id)
	return func(t *ui.Ui) ui.Response {
		return Button{ID: id.With("trigger"), Label: label, Active: open}.Show(t)
	}
}
