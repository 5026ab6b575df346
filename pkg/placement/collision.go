package placement

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// Request bundles every input of a placement.
type Request struct {
	// Trigger is the screen rect of the widget the content is anchored to.
	Trigger graphics.Rect
	// Boundary is the area content must stay within, usually the viewport.
	Boundary graphics.Rect
	// Side and Align select the requested placement.
	Side  Side
	Align Align
	// SideOffset is the gap between trigger and content.
	SideOffset float64
	// AlignOffset nudges content along the cross axis.
	AlignOffset float64
	// Width is the desired content width.
	Width float64
	// MaxHeight caps the content height.
	MaxHeight float64
	// Constrain translates content back inside the boundary.
	Constrain bool
	// AvoidCollisions allows flipping to the opposite side when the
	// requested side overflows and the opposite side has more room.
	AvoidCollisions bool
	// Padding is the minimum gap kept from each boundary edge.
	Padding graphics.EdgeInsets
	// Sticky controls cross-axis overflow.
	Sticky Sticky
}

// Result is the outcome of [Resolve].
type Result struct {
	// Rect is where content should be drawn.
	Rect graphics.Rect
	// Side is the side actually used. It differs from the requested side
	// when a flip happened; slide animations should follow it.
	Side Side
	// Flipped reports whether Side differs from the request.
	Flipped bool
}

// Clamp is the translate-only collision pass. When constrain is set it
// shrinks rect to fit the boundary and shifts it inside, independently on
// each axis. When constrain is false rect is returned untouched so callers
// can still inspect the raw overflow.
//
// Clamp is idempotent: Clamp(Clamp(r, b, true), b, true) == Clamp(r, b, true).
func Clamp(rect, boundary graphics.Rect, constrain bool) graphics.Rect {
	if !constrain {
		return rect
	}
	boundary = boundary.Normalized()
	w := math.Min(nonNegative(rect.Width()), boundary.Width())
	h := math.Min(nonNegative(rect.Height()), boundary.Height())
	left := clampSpan(rect.Left, w, boundary.Left, boundary.Right)
	top := clampSpan(rect.Top, h, boundary.Top, boundary.Bottom)
	return graphics.RectFromLTWH(left, top, w, h)
}

// clampSpan shifts an extent starting at pos so it lies within [lo, hi].
// extent must already fit.
func clampSpan(pos, extent, lo, hi float64) float64 {
	if pos < lo || math.IsNaN(pos) {
		return lo
	}
	if pos+extent > hi {
		return hi - extent
	}
	return pos
}

// Resolve computes the placement for req: candidate geometry, an optional
// flip to the opposite side, then the constrain pass inside the padded
// boundary with the sticky policy on the cross axis.
//
// Resolve has no side effects; calling it twice with the same request
// yields the same result.
func Resolve(req Request) Result {
	bounds := req.Boundary.Normalized().Deflate(req.Padding)
	side := req.Side
	rect := req.candidate(side, bounds)

	if req.AvoidCollisions {
		if over := mainOverflow(side, rect, bounds); over > 0 {
			alt := req.candidate(side.Opposite(), bounds)
			if mainOverflow(side.Opposite(), alt, bounds) < over {
				side = side.Opposite()
				rect = alt
			}
		}
	}

	if req.Constrain {
		rect = req.shift(side, rect, bounds)
	}
	return Result{Rect: rect, Side: side, Flipped: side != req.Side}
}

func (req Request) candidate(side Side, bounds graphics.Rect) graphics.Rect {
	return ComputeRect(req.Trigger, bounds, side, req.Align, req.SideOffset, req.AlignOffset, req.Width, req.MaxHeight)
}

// shift moves rect inside bounds. The main axis is always clamped; the
// cross axis is clamped too, but with StickyPartial it may not detach from
// the trigger.
func (req Request) shift(side Side, rect, bounds graphics.Rect) graphics.Rect {
	clamped := Clamp(rect, bounds, true)
	if req.Sticky == StickyAlways {
		return clamped
	}

	w, h := clamped.Width(), clamped.Height()
	left, top := clamped.Left, clamped.Top
	if side.IsVertical() {
		left = attach(left, w, req.Trigger.Left, req.Trigger.Right)
	} else {
		top = attach(top, h, req.Trigger.Top, req.Trigger.Bottom)
	}
	return graphics.RectFromLTWH(left, top, w, h)
}

// attach limits pos so an extent starting there still touches the trigger
// span [lo, hi].
func attach(pos, extent, lo, hi float64) float64 {
	if pos+extent < lo {
		return lo - extent
	}
	if pos > hi {
		return hi
	}
	return pos
}

// mainOverflow returns how far rect extends past bounds on the edge facing
// away from the trigger. Zero or negative means it fits.
func mainOverflow(side Side, rect, bounds graphics.Rect) float64 {
	switch side {
	case Top:
		return bounds.Top - rect.Top
	case Right:
		return rect.Right - bounds.Right
	case Left:
		return bounds.Left - rect.Left
	default:
		return rect.Bottom - bounds.Bottom
	}
}
