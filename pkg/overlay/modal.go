package overlay

import (
	"time"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/ui"
)

// ModalOptions configures [Modal].
type ModalOptions struct {
	// Persistent prevents barrier presses and escape from closing the
	// modal. The caller must close it from content.
	Persistent bool
	// BarrierColor is drawn behind the modal. Zero value is transparent.
	BarrierColor graphics.Color
	// Width is the surface width; zero uses the measured content width.
	Width float64
	// Padding is kept between the surface and the viewport edges.
	Padding graphics.EdgeInsets
	// Duration defaults to DefaultDuration; negative disables animation.
	Duration time.Duration
	Curve    animation.Curve
	Surface  Surface
}

// Modal shows content centered in the viewport above a [Barrier] while
// *open is set. It shares the overlay lifecycle: the flag is authoritative,
// content fades out before unmounting and is measured on its first frame.
// Escape and barrier presses clear *open unless Persistent.
//
// Example:
//
//	if ui.Button("Delete").Clicked {
//	    confirm = true
//	}
//	overlay.Modal(u, ui.NewID("confirm"), &confirm, overlay.ModalOptions{
//	    BarrierColor: graphics.RGBA(0, 0, 0, 0.5),
//	}, func(c *ui.Ui) struct{} {
//	    c.Label("Delete this file?")
//	    if c.Button("Cancel").Clicked {
//	        confirm = false
//	    }
//	    return struct{}{}
//	})
func Modal[R any](u *ui.Ui, id ui.ID, open *bool, opts ModalOptions, content func(*ui.Ui) R) (Result, R) {
	var zero R
	var res Result
	if u.Measuring() {
		return res, zero
	}
	ctx := u.Ctx()
	st := StateOf(ctx, id)
	if *open != st.Open {
		st.SetOpen(ctx, *open)
	}
	if st.Open && !opts.Persistent && ctx.Input().Escape {
		st.SetOpen(ctx, false)
	}

	st.Progress = (Options{Duration: opts.Duration, Curve: opts.Curve}).driver().Step(st.Progress, st.Open, ctx.Delta())
	if st.Progress.Status().IsAnimating() {
		ctx.RequestRepaint()
	}
	res.Progress = st.Progress

	if !ShouldMount(st.Progress, false) {
		st.HasContent = false
		*open = st.Open
		res.Phase = st.Phase()
		return res, zero
	}
	res.Mounted = true

	if (Barrier{Color: opts.BarrierColor, Dismissible: !opts.Persistent}).Show(u, id.With("barrier"), st.Progress.Value) &&
		ctx.Frame() != st.OpenedFrame {
		st.SetOpen(ctx, false)
	}

	pad := opts.Surface.Padding
	measureOnce(u, st, opts.Width, pad, "overlay.modal.measure", func(m *ui.Ui) { content(m) }, &res)
	size := surfaceSize(st, opts.Width, pad, res.Placeholder)

	boundary := ctx.Input().Viewport.Deflate(opts.Padding)
	c := boundary.Center()
	rect := placement.Clamp(graphics.RectFromLTWH(c.X-size.Width/2, c.Y-size.Height/2, size.Width, size.Height), boundary, true)
	// Modals grow in place instead of sliding.
	shown := animation.TweenRect(scaleRect(rect, 0.95), rect).Transform(st.Progress)

	*open = st.Open
	before := *open
	out := drawSurface(u, id, st, surfaceFrame{Area: shown, Layer: ui.LayerMiddle, Rect: shown},
		opts.Surface, opts.Width, "overlay.modal.content", content, &res)

	syncFlag(ctx, st, open, before)
	res.Phase = st.Phase()
	if res.Placeholder {
		return res, zero
	}
	return res, out
}

// scaleRect scales r by f around its center.
func scaleRect(r graphics.Rect, f float64) graphics.Rect {
	c := r.Center()
	w, h := r.Width()*f, r.Height()*f
	return graphics.RectFromLTWH(c.X-w/2, c.Y-h/2, w, h)
}
