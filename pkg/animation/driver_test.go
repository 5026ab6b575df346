package animation

import (
	"math"
	"testing"
	"time"
)

func TestAnimate_FullTraversalTakesDuration(t *testing.T) {
	p := Progress{}
	for range 10 {
		p = Animate(true, p, 200*time.Millisecond, 20*time.Millisecond, LinearCurve)
	}
	if math.Abs(p.T-1) > 1e-9 {
		t.Fatalf("expected T=1 after full duration, got %v", p.T)
	}
	if p.Status() != Completed {
		t.Errorf("expected completed, got %v", p.Status())
	}
	for range 10 {
		p = Animate(false, p, 200*time.Millisecond, 20*time.Millisecond, LinearCurve)
	}
	if p.T != 0 || p.Status() != Dismissed {
		t.Errorf("expected dismissed at 0, got %v (%v)", p.T, p.Status())
	}
}

func TestAnimate_MonotonicWhileTargetHeld(t *testing.T) {
	starts := []float64{0, 0.1, 0.5, 0.93, 1}
	steps := []time.Duration{0, time.Millisecond, 16 * time.Millisecond, 90 * time.Millisecond, time.Second}
	for _, start := range starts {
		up := Progress{T: start, Value: EaseOutCubic(start)}
		down := up
		for i := range 40 {
			dt := steps[i%len(steps)]
			nextUp := Animate(true, up, 150*time.Millisecond, dt, EaseOutCubic)
			if nextUp.Value < up.Value || nextUp.T < up.T {
				t.Fatalf("progress decreased while opening: %v -> %v", up, nextUp)
			}
			up = nextUp
			nextDown := Animate(false, down, 150*time.Millisecond, dt, EaseOutCubic)
			if nextDown.Value > down.Value || nextDown.T > down.T {
				t.Fatalf("progress increased while closing: %v -> %v", down, nextDown)
			}
			down = nextDown
		}
	}
}

func TestAnimate_RetargetMidFlightIsContinuous(t *testing.T) {
	p := Progress{}
	for range 5 {
		p = Animate(true, p, 100*time.Millisecond, 10*time.Millisecond, EaseOutCubic)
	}
	before := p.Value
	p = Animate(false, p, 100*time.Millisecond, time.Millisecond, EaseOutCubic)
	if p.Value > before || before-p.Value > 0.05 {
		t.Errorf("reversing should continue smoothly from %v, got %v", before, p.Value)
	}
	if p.Status() != Reverse {
		t.Errorf("expected reverse, got %v", p.Status())
	}
}

func TestAnimate_ZeroDurationJumps(t *testing.T) {
	p := Animate(true, Progress{}, 0, 0, nil)
	if p.T != 1 || p.Value != 1 {
		t.Errorf("expected jump to 1, got %+v", p)
	}
}

func TestAnimate_NegativeElapsedIgnored(t *testing.T) {
	p := Animate(true, Progress{T: 0.4}, time.Second, -time.Second, LinearCurve)
	if p.T != 0.4 {
		t.Errorf("negative elapsed must not move progress, got %v", p.T)
	}
}

func TestDriver_DefaultsToEaseOutCubic(t *testing.T) {
	d := Driver{Duration: 200 * time.Millisecond}
	p := d.Step(Progress{}, true, 50*time.Millisecond)
	if p.T != 0.25 {
		t.Fatalf("expected T=0.25, got %v", p.T)
	}
	if math.Abs(p.Value-EaseOutCubic(0.25)) > 1e-12 {
		t.Errorf("expected ease-out-cubic value, got %v", p.Value)
	}
}

func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":       LinearCurve,
		"easeOutCubic": EaseOutCubic,
		"easeOut":      EaseOut,
	}
	for name, c := range curves {
		if c(0) != 0 {
			t.Errorf("%s(0) = %v", name, c(0))
		}
		if math.Abs(c(1)-1) > 1e-9 {
			t.Errorf("%s(1) = %v", name, c(1))
		}
		prev := 0.0
		for i := 1; i <= 100; i++ {
			v := c(float64(i) / 100)
			if v+1e-9 < prev {
				t.Errorf("%s not monotonic at %d", name, i)
				break
			}
			prev = v
		}
	}
}
