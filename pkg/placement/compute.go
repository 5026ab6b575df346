package placement

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// ComputeRect returns the candidate content rectangle for side and align,
// before any collision handling.
//
// Content is width wide and min(maxHeight, boundary height) tall. For Top and
// Bottom the side offset separates it vertically from the trigger; for Left
// and Right the same offset applies horizontally and the width takes the
// height's role on the main axis. The cross-axis position follows align and
// alignOffset is added afterwards.
//
// Degenerate input (zero-size trigger, empty boundary) yields a valid rect
// with non-negative dimensions.
func ComputeRect(trigger, boundary graphics.Rect, side Side, align Align, sideOffset, alignOffset, width, maxHeight float64) graphics.Rect {
	width = nonNegative(width)
	height := nonNegative(math.Min(maxHeight, boundary.Height()))

	var left, top float64
	switch side {
	case Top:
		top = trigger.Top - sideOffset - height
	case Right:
		left = trigger.Right + sideOffset
	case Left:
		left = trigger.Left - sideOffset - width
	default:
		top = trigger.Bottom + sideOffset
	}

	if side.IsVertical() {
		left = crossStart(trigger.Left, trigger.Right, width, align) + alignOffset
	} else {
		top = crossStart(trigger.Top, trigger.Bottom, height, align) + alignOffset
	}
	return graphics.RectFromLTWH(left, top, width, height)
}

// crossStart returns the leading coordinate of an extent aligned against
// the trigger span [lo, hi].
func crossStart(lo, hi, extent float64, align Align) float64 {
	switch align {
	case Start:
		return lo
	case End:
		return hi - extent
	default:
		return (lo+hi)*0.5 - extent*0.5
	}
}

// nonNegative clamps v to zero, folding NaN to zero as well.
func nonNegative(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return v
}
