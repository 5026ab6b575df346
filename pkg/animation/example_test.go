package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/graphics"
)

// Drive an overlay's open animation frame by frame.
func ExampleDriver() {
	d := animation.Driver{Duration: 150 * time.Millisecond, Curve: animation.LinearCurve}
	var p animation.Progress
	for range 3 {
		p = d.Step(p, true, 50*time.Millisecond)
	}
	fmt.Println(p.Status(), p.T)
	// Output: completed 1
}

// Map progress onto a slide offset.
func ExampleTween() {
	slide := animation.TweenOffset(graphics.Offset{Y: 8}, graphics.Offset{})
	fmt.Println(slide.Evaluate(0.5))
	// Output: {0 4}
}
