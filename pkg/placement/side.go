// Package placement positions floating content relative to a trigger
// rectangle and keeps it inside a boundary.
//
// The package is pure: every function is a deterministic transform of its
// inputs and holds no state, so results can be recomputed every frame.
//
// [ComputeRect] produces the candidate rectangle for a requested side and
// alignment. [Clamp] is the translate-only collision pass used by popovers
// and dropdown menus. [Resolve] is the richer variant used by hover cards
// and navigation menus: it may flip to the opposite side, honors per-edge
// collision padding and a [Sticky] policy, and reports the side it used.
package placement

import (
	"fmt"
	"strings"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// Side is the edge of the trigger that floating content is anchored to.
// The zero value is Bottom, matching the default of every click-triggered
// overlay.
type Side int

const (
	// Bottom places content below the trigger.
	Bottom Side = iota
	// Top places content above the trigger.
	Top
	// Right places content to the right of the trigger.
	Right
	// Left places content to the left of the trigger.
	Left
)

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Right:
		return "right"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opposite returns the side on the other edge of the trigger.
func (s Side) Opposite() Side {
	switch s {
	case Top:
		return Bottom
	case Right:
		return Left
	case Left:
		return Right
	default:
		return Top
	}
}

// IsVertical reports whether the side places content above or below the
// trigger, making the horizontal axis the cross axis.
func (s Side) IsVertical() bool {
	return s == Top || s == Bottom
}

// Direction returns the unit vector pointing away from the trigger.
func (s Side) Direction() graphics.Offset {
	switch s {
	case Top:
		return graphics.Offset{Y: -1}
	case Right:
		return graphics.Offset{X: 1}
	case Left:
		return graphics.Offset{X: -1}
	default:
		return graphics.Offset{Y: 1}
	}
}

// ParseSide parses a side name as produced by String.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bottom", "":
		return Bottom, nil
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	default:
		return Bottom, fmt.Errorf("unknown side %q (use top, bottom, left or right)", s)
	}
}

// Align positions content along the cross axis of its side.
// The zero value is Center.
type Align int

const (
	// Center centers content on the trigger's center.
	Center Align = iota
	// Start aligns content to the trigger's leading edge.
	Start
	// End aligns content to the trigger's trailing edge.
	End
)

// String returns the lowercase alignment name.
func (a Align) String() string {
	switch a {
	case Center:
		return "center"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Factor maps the alignment to -1 (start), 0 (center) or +1 (end).
func (a Align) Factor() float64 {
	switch a {
	case Start:
		return -1
	case End:
		return 1
	default:
		return 0
	}
}

// ParseAlign parses an alignment name as produced by String.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "center", "":
		return Center, nil
	case "start":
		return Start, nil
	case "end":
		return End, nil
	default:
		return Center, fmt.Errorf("unknown align %q (use start, center or end)", s)
	}
}

// Sticky decides how far content may leave the boundary on the cross axis.
type Sticky int

const (
	// StickyPartial keeps content inside the boundary only while it can stay
	// attached to the trigger. When the trigger itself leaves the boundary,
	// the content follows it out.
	StickyPartial Sticky = iota
	// StickyAlways keeps content fully inside the boundary regardless of
	// where the trigger is.
	StickyAlways
)

// String returns the lowercase policy name.
func (s Sticky) String() string {
	if s == StickyAlways {
		return "always"
	}
	return "partial"
}

// ParseSticky parses a sticky policy name.
func ParseSticky(s string) (Sticky, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "partial", "":
		return StickyPartial, nil
	case "always":
		return StickyAlways, nil
	default:
		return StickyPartial, fmt.Errorf("unknown sticky policy %q (use partial or always)", s)
	}
}
