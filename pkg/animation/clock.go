// Package animation provides the time and interpolation primitives used by
// overlays and collapsibles.
//
// Animations here are frame-synchronous: nothing ticks in the background.
// Each frame the caller feeds the elapsed time into a [Driver] (or the pure
// [Animate] function), which moves a stored [Progress] toward a boolean
// target. Reversing the target mid-flight simply reverses the trajectory.
//
//   - [Curve] and the standard easings ([EaseOutCubic], [EaseOut])
//     shape linear progress into motion.
//   - [Tween] maps a 0-1 value onto offsets, rects or floats.
//   - [Clock] is the monotonic time source; tests swap in a fake.
package animation

import "time"

// Clock provides frame timestamps. Hosts read it once per frame; tests
// inject a fake clock to control timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }
