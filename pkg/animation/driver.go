package animation

import "time"

// Progress is the persisted state of a boolean animation.
type Progress struct {
	// T is linear progress in [0, 1]. It is what gets stored between frames
	// so that retargeting mid-flight continues from the same point.
	T float64
	// Value is T shaped by the curve. Visuals read Value.
	Value float64
	// Target is the boolean the animation is moving toward.
	Target bool
}

// Status reports where the animation is relative to its target.
func (p Progress) Status() Status {
	switch {
	case p.T <= 0 && !p.Target:
		return Dismissed
	case p.T >= 1 && p.Target:
		return Completed
	case p.Target:
		return Forward
	default:
		return Reverse
	}
}

// Animate moves previous toward 1 when target is set and toward 0
// otherwise. A full traversal takes exactly duration of accumulated
// elapsed time; a non-positive duration jumps straight to the target.
// The same curve shapes both directions, so Value stays continuous when the
// target flips mid-flight.
func Animate(target bool, previous Progress, duration, elapsed time.Duration, curve Curve) Progress {
	t := clampUnit(previous.T)
	switch {
	case duration <= 0:
		t = boolUnit(target)
	case elapsed > 0:
		step := float64(elapsed) / float64(duration)
		if target {
			t = min(1, t+step)
		} else {
			t = max(0, t-step)
		}
		t = snapUnit(t)
	}
	if curve == nil {
		curve = EaseOutCubic
	}
	return Progress{T: t, Value: clampUnit(curve(t)), Target: target}
}

// Driver bundles a duration and curve so call sites don't repeat them.
type Driver struct {
	Duration time.Duration
	// Curve defaults to EaseOutCubic.
	Curve Curve
}

// Step advances previous by elapsed toward target.
func (d Driver) Step(previous Progress, target bool, elapsed time.Duration) Progress {
	return Animate(target, previous, d.Duration, elapsed, d.Curve)
}

// snapUnit absorbs accumulated rounding so a traversal built from many
// frame steps lands exactly on 0 or 1.
func snapUnit(t float64) float64 {
	const tolerance = 1e-9
	if t < tolerance {
		return 0
	}
	if t > 1-tolerance {
		return 1
	}
	return t
}

func boolUnit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
