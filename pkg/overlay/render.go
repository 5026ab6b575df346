package overlay

import (
	"math"
	"time"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/ui"
)

const (
	// DefaultDuration is the open/close animation length.
	DefaultDuration = 150 * time.Millisecond
	// DefaultSlideDistance is how far content travels while animating in.
	DefaultSlideDistance = 8
)

// Surface styles the floating panel behind content.
type Surface struct {
	Fill        graphics.Color
	Border      graphics.Color
	Shadow      graphics.Color
	Radius      float64
	StrokeWidth float64
	Padding     graphics.EdgeInsets
}

// Options configures one overlay. The zero value is a click-toggled,
// translate-only popover below the trigger, sized to its content.
type Options struct {
	// Behavior drives the open target; nil means Click{}.
	Behavior Behavior
	// Open, when set, binds the target to a caller-owned flag. The flag is
	// read at the start of every frame and written back after the behavior
	// and the content ran.
	Open *bool
	// ForceMount keeps content mounted while closed.
	ForceMount bool

	Side        placement.Side
	Align       placement.Align
	SideOffset  float64
	AlignOffset float64
	// Width is the surface width; zero uses the measured content width.
	Width float64
	// MaxHeight caps the surface height; zero caps at the boundary.
	MaxHeight float64

	// AvoidCollisions selects the flip-and-stick pass. Without it content
	// is only translated back inside the boundary.
	AvoidCollisions  bool
	CollisionPadding graphics.EdgeInsets
	Sticky           placement.Sticky
	// Unconstrained lets content leave the boundary.
	Unconstrained bool
	// Boundary defaults to the viewport when empty.
	Boundary graphics.Rect

	// Layer defaults to ui.LayerForeground.
	Layer ui.Layer
	// Duration defaults to DefaultDuration; negative disables animation.
	Duration time.Duration
	// Curve defaults to ease-out-cubic.
	Curve animation.Curve
	// SlideDistance defaults to DefaultSlideDistance; negative disables
	// sliding.
	SlideDistance float64

	Surface Surface
}

// Result describes what Render did this frame.
type Result struct {
	Trigger ui.Response
	// Mounted reports whether content was laid out this frame.
	Mounted bool
	// Placeholder is set on the frame content was measured for the first
	// time; the content result is zero on that frame.
	Placeholder bool
	Phase       Phase
	Progress    animation.Progress
	// Side is the side content was placed on.
	Side placement.Side
	// Rect is the surface drawn this frame.
	Rect graphics.Rect
	// Failed is set when the trigger or content panicked. The panic was
	// reported through the errors package.
	Failed bool
}

// Render draws trigger, updates the overlay id and, while mounted, draws
// content in a floating surface anchored to the trigger. It returns the
// content's result, or the zero value when content did not run or ran
// only to be measured.
func Render[R any](u *ui.Ui, id ui.ID, opts Options, trigger func(*ui.Ui) ui.Response, content func(*ui.Ui) R) (Result, R) {
	var zero R
	ctx := u.Ctx()

	var res Result
	if !protect("overlay.trigger", func() { res.Trigger = trigger(u) }) {
		res.Failed = true
	}
	if u.Measuring() {
		return res, zero
	}

	st := StateOf(ctx, id)
	if opts.Open != nil && *opts.Open != st.Open {
		st.SetOpen(ctx, *opts.Open)
	}
	behavior := opts.Behavior
	if behavior == nil {
		behavior = Click{}
	}
	behavior.Update(ctx, st, res.Trigger)
	if opts.Open != nil {
		*opts.Open = st.Open
	}

	st.Progress = opts.driver().Step(st.Progress, st.Open, ctx.Delta())
	if st.Progress.Status().IsAnimating() {
		ctx.RequestRepaint()
	}
	res.Progress = st.Progress

	if !ShouldMount(st.Progress, opts.ForceMount) {
		st.HasContent = false
		res.Phase = st.Phase()
		return res, zero
	}
	res.Mounted = true

	boundary := opts.Boundary
	if boundary.IsEmpty() {
		boundary = ctx.Input().Viewport
	}
	pad := opts.Surface.Padding

	measureOnce(u, st, opts.Width, pad, "overlay.measure", func(m *ui.Ui) { content(m) }, &res)
	size := surfaceSize(st, opts.Width, pad, res.Placeholder)
	if opts.MaxHeight > 0 && !res.Placeholder {
		size.Height = math.Min(size.Height, opts.MaxHeight)
	}

	placed := opts.place(res.Trigger.Rect, boundary, size.Width, size.Height)
	st.Side = placed.Side
	res.Side = placed.Side

	var offset graphics.Offset
	if dist := opts.slideDistance(); dist > 0 {
		offset = animation.TweenOffset(placed.Side.Direction().Scale(dist), graphics.Offset{}).Transform(st.Progress)
	}
	surface := placed.Rect.Shift(offset)

	layer := opts.Layer
	if layer == ui.LayerBackground {
		layer = ui.LayerForeground
	}
	capHeight := boundary.Height()
	if opts.MaxHeight > 0 {
		capHeight = math.Min(capHeight, opts.MaxHeight)
	}

	var flag bool
	if opts.Open != nil {
		flag = *opts.Open
	}
	out := drawSurface(u, id, st, surfaceFrame{
		Area:  graphics.RectFromLTWH(surface.Left, surface.Top, surface.Width(), math.Max(surface.Height(), capHeight)),
		Layer: layer,
		Rect:  surface,
		Fit: func(h float64) graphics.Rect {
			return graphics.RectFromLTWH(surface.Left, surface.Top, surface.Width(), math.Min(h, capHeight))
		},
	}, opts.Surface, opts.Width, "overlay.content", content, &res)

	if opts.Open != nil {
		syncFlag(ctx, st, opts.Open, flag)
	}
	res.Phase = st.Phase()
	if res.Placeholder {
		return res, zero
	}
	return res, out
}

// place runs the collision pass the options select.
func (o Options) place(trigger, boundary graphics.Rect, width, height float64) placement.Result {
	if !o.AvoidCollisions {
		r := placement.ComputeRect(trigger, boundary, o.Side, o.Align, o.SideOffset, o.AlignOffset, width, height)
		return placement.Result{Rect: placement.Clamp(r, boundary, !o.Unconstrained), Side: o.Side}
	}
	return placement.Resolve(placement.Request{
		Trigger:         trigger,
		Boundary:        boundary,
		Side:            o.Side,
		Align:           o.Align,
		SideOffset:      o.SideOffset,
		AlignOffset:     o.AlignOffset,
		Width:           width,
		MaxHeight:       height,
		Constrain:       !o.Unconstrained,
		AvoidCollisions: true,
		Padding:         o.CollisionPadding,
		Sticky:          o.Sticky,
	})
}

func (o Options) duration() time.Duration {
	switch {
	case o.Duration < 0:
		return 0
	case o.Duration == 0:
		return DefaultDuration
	default:
		return o.Duration
	}
}

func (o Options) driver() animation.Driver {
	return animation.Driver{Duration: o.duration(), Curve: o.Curve}
}

func (o Options) slideDistance() float64 {
	switch {
	case o.SlideDistance < 0:
		return 0
	case o.SlideDistance == 0:
		return DefaultSlideDistance
	default:
		return o.SlideDistance
	}
}

// syncFlag reconciles a controlled flag after content ran: a change made
// by content wins, otherwise the flag mirrors the state.
func syncFlag(ctx *ui.Context, st *State, flag *bool, before bool) {
	if *flag != before {
		st.SetOpen(ctx, *flag)
		return
	}
	*flag = st.Open
}

// protect runs fn and reports false if it panicked. The panic is reported
// through the errors handler.
func protect(op string, fn func()) (ok bool) {
	defer errors.Recover(op)
	fn()
	return true
}
