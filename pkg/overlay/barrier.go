package overlay

import (
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Barrier covers the viewport with a scrim that absorbs pointer input for
// everything painted beneath it. Content drawn later on the same layer, or
// on a higher layer, stays interactive.
type Barrier struct {
	// Color is the scrim color, typically semi-transparent black. The zero
	// value is fully transparent but still absorbs input.
	Color graphics.Color
	// Dismissible reports presses on the barrier from Show.
	Dismissible bool
	// Layer defaults to ui.LayerMiddle.
	Layer ui.Layer
}

// Show draws the barrier with alpha applied and reports whether it was
// pressed this frame (only when Dismissible).
func (b Barrier) Show(u *ui.Ui, id ui.ID, alpha float64) bool {
	layer := b.Layer
	if layer == ui.LayerBackground {
		layer = ui.LayerMiddle
	}
	viewport := u.Ctx().Input().Viewport
	pressed := false
	u.Area(id, viewport, layer, func(a *ui.Ui) {
		a.Painter().WithAlpha(alpha).FillRect(viewport, 0, b.Color)
		resp := a.Interact(id, viewport, ui.SenseHover.WithClick())
		pressed = b.Dismissible && resp.Clicked
		a.Advance(viewport)
	})
	return pressed
}
