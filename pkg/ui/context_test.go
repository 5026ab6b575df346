package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/graphics"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func frameInput(at time.Duration) Input {
	return Input{
		Time:     epoch.Add(at),
		Viewport: graphics.RectFromLTWH(0, 0, 800, 600),
	}
}

func TestRepaintAfterKeepsMinimum(t *testing.T) {
	ctx := NewContext(nil)
	out := ctx.Run(frameInput(0), func(u *Ui) {
		ctx.RequestRepaintAfter(300 * time.Millisecond)
		ctx.RequestRepaintAfter(120 * time.Millisecond)
		ctx.RequestRepaintAfter(500 * time.Millisecond)
	})
	assert.True(t, out.Repaint)
	assert.Equal(t, 120*time.Millisecond, out.RepaintAfter)
}

func TestRepaintImmediateWins(t *testing.T) {
	ctx := NewContext(nil)
	out := ctx.Run(frameInput(0), func(u *Ui) {
		ctx.RequestRepaintAfter(300 * time.Millisecond)
		ctx.RequestRepaint()
	})
	assert.True(t, out.Repaint)
	assert.Zero(t, out.RepaintAfter)
}

func TestIdleFrameRequestsNothing(t *testing.T) {
	ctx := NewContext(nil)
	out := ctx.Run(frameInput(0), func(u *Ui) { u.Label("hi") })
	assert.False(t, out.Repaint)
	assert.Equal(t, uint64(1), out.Frame)
}

func TestDisplayListSortedByLayer(t *testing.T) {
	ctx := NewContext(nil)
	out := ctx.Run(frameInput(0), func(u *Ui) {
		u.Painter().WithLayer(LayerTooltip).FillRect(graphics.RectFromLTWH(0, 0, 1, 1), 0, graphics.ColorBlack)
		u.Painter().FillRect(graphics.RectFromLTWH(1, 0, 1, 1), 0, graphics.ColorBlack)
		u.Painter().WithLayer(LayerForeground).FillRect(graphics.RectFromLTWH(2, 0, 1, 1), 0, graphics.ColorBlack)
		u.Painter().FillRect(graphics.RectFromLTWH(3, 0, 1, 1), 0, graphics.ColorBlack)
	})
	cmds := out.DisplayList.Sorted()
	require.Len(t, cmds, 4)
	var lefts []float64
	for _, c := range cmds {
		lefts = append(lefts, c.Rect.Left)
	}
	assert.Equal(t, []float64{1, 3, 2, 0}, lefts)
}

func TestReservedGroupPaintsUnderLaterCommands(t *testing.T) {
	ctx := NewContext(nil)
	out := ctx.Run(frameInput(0), func(u *Ui) {
		g := u.Painter().Reserve()
		u.Painter().Text(graphics.RectFromLTWH(0, 0, 10, 10), "x", 14, graphics.ColorBlack)
		g.FillRect(graphics.RectFromLTWH(0, 0, 20, 20), 4, graphics.ColorWhite)
	})
	cmds := out.DisplayList.Sorted()
	require.Len(t, cmds, 2)
	assert.Equal(t, CommandFill, cmds[0].Kind)
	assert.Equal(t, CommandText, cmds[1].Kind)
}

func TestAllocateStacksVertically(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Run(frameInput(0), func(u *Ui) {
		a := u.Allocate(NewID("a"), graphics.Size{Width: 10, Height: 20}, SenseNone)
		b := u.Allocate(NewID("b"), graphics.Size{Width: 30, Height: 5}, SenseNone)
		gap := ctx.Style().Spacing
		assert.Equal(t, graphics.RectFromLTWH(0, 0, 10, 20), a.Rect)
		assert.Equal(t, graphics.RectFromLTWH(0, 20+gap, 30, 5), b.Rect)
		assert.Equal(t, graphics.Rect{Right: 30, Bottom: 25 + gap}, u.UsedRect())
	})
}

func TestHorizontalAdvancesRight(t *testing.T) {
	ctx := NewContext(nil)
	ctx.Run(frameInput(0), func(u *Ui) {
		var second Response
		row := u.Horizontal(func(h *Ui) {
			h.Allocate(NewID("a"), graphics.Size{Width: 10, Height: 10}, SenseNone)
			second = h.Allocate(NewID("b"), graphics.Size{Width: 10, Height: 12}, SenseNone)
		})
		gap := ctx.Style().Spacing
		assert.InDelta(t, 10+gap, second.Rect.Left, 1e-9)
		assert.InDelta(t, 12, row.Height(), 1e-9)
	})
}

func TestClickAndHover(t *testing.T) {
	ctx := NewContext(nil)
	in := frameInput(0)
	in.Pointer = graphics.Offset{X: 5, Y: 5}
	in.PointerValid = true
	in.PrimaryClicked = true
	ctx.Run(in, func(u *Ui) {
		r := u.Allocate(NewID("btn"), graphics.Size{Width: 10, Height: 10}, SenseClick)
		assert.True(t, r.Hovered)
		assert.True(t, r.Clicked)
		assert.True(t, r.HasFocus, "click focuses")
		miss := u.Allocate(NewID("other"), graphics.Size{Width: 10, Height: 10}, SenseClick)
		assert.False(t, miss.Hovered)
	})
}

func TestFloatingAreaOccludesNextFrame(t *testing.T) {
	ctx := NewContext(nil)
	area := NewID("area")
	draw := func(u *Ui) (base, inside Response) {
		base = u.Allocate(NewID("base"), graphics.Size{Width: 100, Height: 100}, SenseClick)
		u.Area(area, graphics.RectFromLTWH(0, 0, 50, 50), LayerForeground, func(a *Ui) {
			inside = a.Allocate(NewID("inner"), graphics.Size{Width: 50, Height: 50}, SenseClick)
		})
		return base, inside
	}
	in := frameInput(0)
	in.Pointer = graphics.Offset{X: 10, Y: 10}
	in.PointerValid = true

	ctx.Run(in, func(u *Ui) {
		base, inside := draw(u)
		assert.True(t, base.Hovered, "no areas known on the first frame")
		assert.True(t, inside.Hovered)
	})
	in.Time = in.Time.Add(NominalFrame)
	ctx.Run(in, func(u *Ui) {
		base, inside := draw(u)
		assert.False(t, base.Hovered, "covered by last frame's area")
		assert.True(t, inside.Hovered)
	})
	rect, ok := ctx.AreaRect(area)
	require.True(t, ok)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 50, 50), rect)
}

func TestTabCyclesFocus(t *testing.T) {
	ctx := NewContext(nil)
	draw := func(u *Ui) (a, b Response) {
		a = u.Button("one")
		b = u.Button("two")
		return
	}
	ctx.Run(frameInput(0), func(u *Ui) { draw(u) })

	in := frameInput(time.Second)
	in.Tab = true
	ctx.Run(in, func(u *Ui) {
		a, b := draw(u)
		assert.True(t, a.HasFocus)
		assert.False(t, b.HasFocus)
	})
	in.Time = in.Time.Add(time.Second)
	ctx.Run(in, func(u *Ui) {
		a, b := draw(u)
		assert.False(t, a.HasFocus)
		assert.True(t, b.HasFocus)
	})
	in.Time = in.Time.Add(time.Second)
	ctx.Run(in, func(u *Ui) {
		a, _ := draw(u)
		assert.True(t, a.HasFocus, "wraps around")
	})
}

func TestMeasureDoesNotPaintOrInteract(t *testing.T) {
	ctx := NewContext(nil)
	in := frameInput(0)
	in.Pointer = graphics.Offset{X: 1, Y: 1}
	in.PointerValid = true
	in.PrimaryClicked = true
	out := ctx.Run(in, func(u *Ui) {
		size := u.Measure(graphics.Size{Width: 200, Height: 1e9}, func(m *Ui) {
			r := m.Button("measured")
			assert.False(t, r.Clicked)
			m.Label("second line")
		})
		assert.Greater(t, size.Width, 0.0)
		assert.Greater(t, size.Height, 0.0)
	})
	assert.Zero(t, out.DisplayList.Len())
}

func TestAnimateBoolRetargets(t *testing.T) {
	ctx := NewContext(nil)
	id := NewID("anim")
	step := 10 * time.Millisecond
	at := time.Duration(0)
	run := func(target bool) animation.Progress {
		var p animation.Progress
		ctx.Run(frameInput(at), func(u *Ui) {
			p = AnimateBool(ctx, id, target, 100*time.Millisecond, animation.LinearCurve)
		})
		at += step
		return p
	}

	p := run(false)
	assert.Zero(t, p.T, "first sighting starts at the target")

	var last float64
	for range 5 {
		p = run(true)
		assert.GreaterOrEqual(t, p.T, last)
		last = p.T
	}
	require.Greater(t, last, 0.0)
	require.Less(t, last, 1.0)

	p = run(false)
	assert.Less(t, p.T, last, "reverses from where it was")
}
