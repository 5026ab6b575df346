package widgets

import (
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// TooltipGroup is the hover group tooltips share unless Tooltip.Group is
// set. Moving from one open tooltip to another trigger opens the next one
// at once.
var TooltipGroup = ui.NewID("shadcn.tooltip.group")

// Tooltip shows a short text label near a trigger while it is hovered or
// focused. It opens after the theme's open delay, unless another tooltip
// closed within the skip delay, and closes as soon as the pointer leaves.
type Tooltip struct {
	// ID identifies the tooltip. Zero derives one from the region and Text.
	ID ui.ID
	// Text is the tooltip content.
	Text string
	// Side defaults to Top when nil.
	Side  *placement.Side
	Align placement.Align
	// Group overrides TooltipGroup. Tooltips in different groups open
	// independently.
	Group ui.ID
}

// Show draws trigger and, while open, the tooltip. trigger must sense
// hover; it is returned unchanged.
func (t Tooltip) Show(u *ui.Ui, trigger func(*ui.Ui) ui.Response) ui.Response {
	th := theme.Of(u.Ctx()).TooltipThemeOf()
	id := idFor(u, t.ID, t.Text)
	side := placement.Top
	if t.Side != nil {
		side = *t.Side
	}

	opts := overlay.Options{
		Behavior: overlay.Hover{
			OpenDelay:  th.OpenDelay,
			CloseDelay: th.CloseDelay,
			SkipDelay:  th.SkipDelay,
			Group:      or(t.Group, TooltipGroup),
		},
		Side:            side,
		Align:           t.Align,
		SideOffset:      th.SideOffset,
		AvoidCollisions: true,
		Layer:           ui.LayerTooltip,
		Duration:        th.Duration,
		SlideDistance:   slide(th.SlideDistance),
		Surface:         th.Surface,
	}
	res, _ := overlay.Render(u, id, opts, trigger, func(c *ui.Ui) struct{} {
		size := measure(c, t.Text, th.FontSize)
		r := c.Allocate(id.With("text"), size, ui.SenseNone)
		c.Painter().Text(r.Rect, t.Text, th.FontSize, th.TextColor)
		return struct{}{}
	})
	return res.Trigger
}
