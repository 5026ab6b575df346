package overlay

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

// measureOnce measures content off-screen the first time the overlay
// mounts and marks res as the placeholder frame. width is the fixed
// surface width, zero when the surface follows its content.
func measureOnce(u *ui.Ui, st *State, width float64, pad graphics.EdgeInsets, op string, content func(*ui.Ui), res *Result) {
	if st.HasMeasured {
		return
	}
	avail := graphics.Size{Width: math.Inf(1), Height: math.Inf(1)}
	if width > 0 {
		avail.Width = math.Max(0, width-pad.Horizontal())
	}
	if !protect(op, func() { st.Measured = u.Measure(avail, content) }) {
		res.Failed = true
	}
	st.HasMeasured = true
	res.Placeholder = true
}

// surfaceSize is the padded size of the measured content, or the
// placeholder size while content is being measured.
func surfaceSize(st *State, width float64, pad graphics.EdgeInsets, placeholder bool) graphics.Size {
	if placeholder {
		return placeholderSize()
	}
	if width <= 0 {
		width = st.Measured.Width + pad.Horizontal()
	}
	return graphics.Size{Width: width, Height: st.Measured.Height + pad.Vertical()}
}

// surfaceFrame is where drawSurface lays content out.
type surfaceFrame struct {
	// Area bounds the layer area, the clip and the content child.
	Area  graphics.Rect
	Layer ui.Layer
	// Rect is the painted surface on the placeholder frame, and on every
	// frame when Fit is nil.
	Rect graphics.Rect
	// Fit returns the painted surface for the padded height content used.
	Fit func(height float64) graphics.Rect
}

// drawSurface runs content inside f, paints the surface behind it and
// feeds the used size back into st for the next frame's placement. Content
// is skipped on the placeholder frame. The returned value is what content
// returned, or the zero value.
func drawSurface[R any](u *ui.Ui, id ui.ID, st *State, f surfaceFrame, style Surface, width float64, op string, content func(*ui.Ui) R, res *Result) R {
	var out R
	pad := style.Padding
	drawn := u.Area(id.With("content"), f.Area, f.Layer, func(a *ui.Ui) {
		a.SetPainter(a.Painter().WithAlpha(st.Progress.Value).WithClip(f.Area))
		bg := a.Painter().Reserve()

		rect := f.Rect
		if !res.Placeholder {
			inner := a.Child(id.With("inner"), f.Area.Deflate(pad), ui.Vertical)
			if !protect(op, func() { out = content(inner) }) {
				res.Failed = true
			}
			used := inner.UsedRect()
			st.Measured.Height = used.Height()
			if width <= 0 {
				st.Measured.Width = math.Max(st.Measured.Width, used.Width())
			}
			if f.Fit != nil {
				rect = f.Fit(used.Height() + pad.Vertical())
			}
		}
		paintSurface(bg, rect, style)
		a.Advance(rect)
	})

	st.ContentRect = drawn
	st.HasContent = true
	res.Rect = drawn
	return out
}

func paintSurface(g *ui.Group, r graphics.Rect, s Surface) {
	if s.Shadow.Alpha() > 0 {
		g.FillRect(r.Translate(0, 2).Expand(1), s.Radius, s.Shadow)
	}
	g.FillRect(r, s.Radius, s.Fill)
	g.StrokeRect(r, s.Radius, s.StrokeWidth, s.Border)
}
