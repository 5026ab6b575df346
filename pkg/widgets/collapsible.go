package widgets

import (
	"math"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Collapsible shows or hides content below its trigger, animating the
// content height between zero and its measured height.
//
// Content is measured once on the first frame it is shown; that frame
// reserves no height. Afterwards the height is refreshed from every drawn
// frame. Content is not run at all while fully collapsed.
type Collapsible struct {
	// ID identifies the collapsible. Zero derives one from the region and Label.
	ID ui.ID
	// Label is the trigger text.
	Label string
	// Trigger replaces the default trigger. Clicks on it toggle.
	Trigger func(*ui.Ui) ui.Response
	// Open optionally binds the open state to a caller-owned flag.
	Open *bool
}

// CollapsibleResult describes what a collapsible did this frame.
type CollapsibleResult struct {
	Trigger ui.Response
	// Open is the target state after this frame's input.
	Open bool
	// Progress is the height animation.
	Progress animation.Progress
	// Placeholder is set on the frame content was measured.
	Placeholder bool
	// Height is the height reserved for content this frame.
	Height float64
}

type collapsibleState struct {
	open     bool
	height   float64
	measured bool
}

// Show draws the trigger and the animated content region.
func (cl Collapsible) Show(u *ui.Ui, content func(*ui.Ui)) CollapsibleResult {
	id := idFor(u, cl.ID, cl.Label)
	trigger := cl.Trigger
	if trigger == nil {
		trigger = func(t *ui.Ui) ui.Response {
			return Button{ID: id.With("trigger"), Label: cl.Label, Variant: ButtonGhost, Trailing: "⇕"}.Show(t)
		}
	}
	resp := trigger(u)
	return showCollapsing(u, id, cl.Open, resp, content)
}

func showCollapsing(u *ui.Ui, id ui.ID, flag *bool, resp ui.Response, content func(*ui.Ui)) CollapsibleResult {
	ctx := u.Ctx()
	ct := theme.Of(ctx).CollapsibleThemeOf()
	st := ui.Data[collapsibleState](ctx.Memory(), id.With("collapsible"))
	if flag != nil {
		st.open = *flag
	}
	if resp.Clicked {
		st.open = !st.open
	}
	if flag != nil {
		*flag = st.open
	}

	res := CollapsibleResult{Trigger: resp, Open: st.open}
	origin := u.Cursor()
	width := u.Available().Width
	if u.Measuring() {
		// Measure passes see the fully expanded size without stepping the
		// animation.
		if st.open && st.measured {
			inner := u.Child(id.With("content"), graphics.Rect{Left: origin.X, Top: origin.Y, Right: origin.X + width, Bottom: math.Inf(1)}, ui.Vertical)
			content(inner)
			u.Advance(inner.UsedRect())
			res.Height = inner.UsedRect().Height()
		}
		return res
	}

	res.Progress = ui.AnimateBool(ctx, id.With("height"), st.open, ct.Duration, animation.EaseOut)
	if !overlay.ShouldMount(res.Progress, false) {
		return res
	}
	if !st.measured {
		size := u.Measure(graphics.Size{Width: width, Height: math.Inf(1)}, content)
		st.height = size.Height
		st.measured = true
		res.Placeholder = true
		res.Height = overlay.PlaceholderExtent
		u.Advance(graphics.RectFromLTWH(origin.X, origin.Y, width, res.Height))
		ctx.RequestRepaint()
		return res
	}

	height := animation.TweenFloat64(0, st.height).Transform(res.Progress)
	clip := graphics.RectFromLTWH(origin.X, origin.Y, width, height)
	inner := u.Child(id.With("content"), graphics.Rect{Left: origin.X, Top: origin.Y, Right: origin.X + width, Bottom: math.Inf(1)}, ui.Vertical)
	inner.SetPainter(inner.Painter().WithClip(clip))
	content(inner)
	st.height = inner.UsedRect().Height()
	u.Advance(graphics.RectFromLTWH(origin.X, origin.Y, math.Min(width, inner.UsedRect().Width()), height))
	res.Height = height
	return res
}

// AccordionItem is one section of an [Accordion].
type AccordionItem struct {
	Title   string
	Content func(*ui.Ui)
}

// Accordion is a vertical stack of collapsible sections separated by
// rules. With Multiple unset, opening a section closes the others.
type Accordion struct {
	// ID identifies the accordion. It must be set.
	ID    ui.ID
	Items []AccordionItem
	// Multiple lets several sections be open at once.
	Multiple bool
}

type accordionState struct {
	open map[int]bool
}

// Show draws the accordion and returns the index of the section toggled
// this frame, or -1.
func (a Accordion) Show(u *ui.Ui) int {
	ctx := u.Ctx()
	ct := theme.Of(ctx).CollapsibleThemeOf()
	style := u.Style()
	st := ui.Data[accordionState](ctx.Memory(), a.ID)
	if st.open == nil {
		st.open = map[int]bool{}
	}

	toggled := -1
	for i, item := range a.Items {
		id := a.ID.With(i)
		resp := accordionTrigger(u, id.With("trigger"), item.Title, st.open[i], ct)
		if resp.Clicked {
			toggled = i
			if !a.Multiple && !st.open[i] {
				clear(st.open)
			}
			st.open[i] = !st.open[i]
		}
		open := st.open[i]
		showCollapsing(u, id, &open, ui.Response{}, item.Content)
		w := fillWidth(u, resp.Rect.Width())
		r := u.Allocate(id.With("rule"), sizeOf(w, math.Max(style.StrokeWidth, 1)), ui.SenseNone)
		u.Painter().FillRect(r.Rect, 0, ct.DividerColor)
	}
	return toggled
}

func accordionTrigger(u *ui.Ui, id ui.ID, title string, open bool, ct theme.CollapsibleThemeData) ui.Response {
	style := u.Style()
	ts := measure(u, title, style.FontSize)
	chevron := "▾"
	if open {
		chevron = "▴"
	}
	cs := measure(u, chevron, style.FontSize)
	w := fillWidth(u, ts.Width+cs.Width+ct.TriggerPadding.Horizontal()+style.Spacing)
	resp := u.Allocate(id, sizeOf(w, ts.Height+ct.TriggerPadding.Vertical()), ui.SenseClick)
	inner := resp.Rect.Deflate(ct.TriggerPadding)
	u.Painter().Text(inner, title, style.FontSize, style.Text)
	if resp.Hovered {
		u.Painter().FillRect(graphics.RectFromLTWH(inner.Left, inner.Top+ts.Height, ts.Width, 1), 0, style.Text)
	}
	u.Painter().Text(graphics.RectFromLTWH(inner.Right-cs.Width, inner.Top, cs.Width, cs.Height), chevron, style.FontSize, style.MutedText)
	return resp
}
