package widgets

import (
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// HoverCard previews content when the pointer rests on a trigger.
//
// The card opens after the theme's open delay and stays open while the
// pointer is over the trigger or the card, closing after the close delay
// once it is over neither. It flips to the other side of the trigger when
// the requested side does not fit.
type HoverCard struct {
	// ID identifies the card. Zero derives one from the region and Label.
	ID ui.ID
	// Label is drawn as an underlined link when Trigger is nil.
	Label string
	// Trigger replaces the default link trigger. It must sense hover.
	Trigger func(*ui.Ui) ui.Response
	// Open optionally binds the open state to a caller-owned flag.
	Open *bool

	Side        placement.Side
	Align       placement.Align
	AlignOffset float64
	// Width overrides the theme width.
	Width float64
	// Sticky selects the cross-axis overflow policy.
	Sticky placement.Sticky
	// CollisionPadding is kept between the card and the viewport edges.
	CollisionPadding graphics.EdgeInsets
}

// Show draws the trigger and, while open, content.
func (h HoverCard) Show(u *ui.Ui, content func(*ui.Ui)) overlay.Result {
	th := theme.Of(u.Ctx()).HoverCardThemeOf()
	id := idFor(u, h.ID, h.Label)

	opts := overlay.Options{
		Behavior: overlay.Hover{
			OpenDelay:     th.OpenDelay,
			CloseDelay:    th.CloseDelay,
			ContentMargin: th.ContentMargin,
		},
		Open:             h.Open,
		Side:             h.Side,
		Align:            h.Align,
		SideOffset:       th.SideOffset,
		AlignOffset:      h.AlignOffset,
		Width:            or(h.Width, th.Width),
		AvoidCollisions:  true,
		CollisionPadding: h.CollisionPadding,
		Sticky:           h.Sticky,
		Duration:         th.Duration,
		SlideDistance:    slide(th.SlideDistance),
		Surface:          th.Surface,
	}
	trigger := h.Trigger
	if trigger == nil {
		trigger = func(t *ui.Ui) ui.Response { return link(t, id.With("trigger"), h.Label) }
	}
	res, _ := overlay.Render(u, id, opts, trigger, unit(content))
	return res
}

// link draws text with an underline and senses hover and focus.
func link(u *ui.Ui, id ui.ID, text string) ui.Response {
	style := u.Style()
	size := measure(u, text, style.FontSize)
	resp := u.Allocate(id, size, ui.SenseClick)
	color := style.Text
	u.Painter().Text(resp.Rect, text, style.FontSize, color)
	if resp.Hovered || resp.HasFocus {
		underline := graphics.RectFromLTWH(resp.Rect.Left, resp.Rect.Bottom-1, resp.Rect.Width(), 1)
		u.Painter().FillRect(underline, 0, color)
	}
	return resp
}
