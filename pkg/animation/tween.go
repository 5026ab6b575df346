package animation

import "github.com/go-drift/shadcn/pkg/graphics"

// Tween interpolates between Begin and End values based on animation progress.
//
// Use the helper constructors ([TweenFloat64], [TweenOffset], [TweenRect])
// for common types, or create custom tweens with a Lerp function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the progress's eased value.
func (tw *Tween[T]) Transform(p Progress) T {
	return tw.Evaluate(p.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpRect linearly interpolates each edge of two rects.
func LerpRect(a, b graphics.Rect, t float64) graphics.Rect {
	return graphics.Rect{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenRect creates a tween for Rect values.
func TweenRect(begin, end graphics.Rect) *Tween[graphics.Rect] {
	return &Tween[graphics.Rect]{Begin: begin, End: end, Lerp: LerpRect}
}
