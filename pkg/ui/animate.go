package ui

import (
	"time"

	"github.com/go-drift/shadcn/pkg/animation"
)

type boolAnimation struct {
	progress animation.Progress
	seen     bool
}

// AnimateBool moves a value stored under id toward target over duration and
// returns it. The first call for an id starts at target without animating.
// While the value is moving a repaint is requested.
func AnimateBool(ctx *Context, id ID, target bool, duration time.Duration, curve animation.Curve) animation.Progress {
	st := Data[boolAnimation](ctx.memory, id)
	if !st.seen {
		st.seen = true
		st.progress = animation.Driver{Curve: curve}.Step(animation.Progress{Target: target}, target, 0)
		return st.progress
	}
	st.progress = animation.Driver{Duration: duration, Curve: curve}.Step(st.progress, target, ctx.Delta())
	if st.progress.Status().IsAnimating() {
		ctx.RequestRepaint()
	}
	return st.progress
}
