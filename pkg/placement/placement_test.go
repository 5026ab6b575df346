package placement

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shadcn/pkg/graphics"
)

var (
	viewport = graphics.RectFromLTWH(0, 0, 800, 600)
	trigger  = graphics.RectFromLTWH(100, 50, 80, 30)
)

func TestComputeRect_BottomStart(t *testing.T) {
	got := ComputeRect(trigger, viewport, Bottom, Start, 4, 0, 200, 300)
	assert.Equal(t, graphics.RectFromLTWH(100, 84, 200, 300), got)
}

func TestComputeRect_CenterAlignsCrossAxisCenter(t *testing.T) {
	trig := graphics.RectFromLTWH(300, 250, 80, 30)
	for _, side := range []Side{Top, Bottom, Left, Right} {
		t.Run(side.String(), func(t *testing.T) {
			got := ComputeRect(trig, viewport, side, Center, 6, 0, 120, 90)
			if side.IsVertical() {
				assert.InDelta(t, trig.Center().X, got.Center().X, 1e-9)
			} else {
				assert.InDelta(t, trig.Center().Y, got.Center().Y, 1e-9)
			}
		})
	}
}

func TestComputeRect_Sides(t *testing.T) {
	trig := graphics.RectFromLTWH(300, 250, 80, 30)

	top := ComputeRect(trig, viewport, Top, Start, 4, 0, 100, 50)
	assert.Equal(t, graphics.RectFromLTWH(300, 196, 100, 50), top)

	right := ComputeRect(trig, viewport, Right, Start, 4, 0, 100, 50)
	assert.Equal(t, graphics.RectFromLTWH(384, 250, 100, 50), right)

	left := ComputeRect(trig, viewport, Left, End, 4, 0, 100, 50)
	assert.Equal(t, graphics.RectFromLTWH(196, 230, 100, 50), left)
}

func TestComputeRect_AlignOffsetAppliedAfterAlignment(t *testing.T) {
	got := ComputeRect(trigger, viewport, Bottom, End, 0, 10, 40, 20)
	assert.InDelta(t, 180-40+10, got.Left, 1e-9)
}

func TestComputeRect_HeightCappedByBoundary(t *testing.T) {
	small := graphics.RectFromLTWH(0, 0, 800, 120)
	got := ComputeRect(trigger, small, Bottom, Start, 4, 0, 200, 300)
	assert.Equal(t, 120.0, got.Height())
}

func TestComputeRect_DegenerateInputs(t *testing.T) {
	got := ComputeRect(graphics.Rect{}, graphics.Rect{}, Top, Center, 4, 0, -10, math.NaN())
	assert.GreaterOrEqual(t, got.Width(), 0.0)
	assert.GreaterOrEqual(t, got.Height(), 0.0)
	assert.False(t, math.IsNaN(got.Left))
	assert.False(t, math.IsNaN(got.Top))
}

func TestClamp_ShiftsLeftAtRightEdge(t *testing.T) {
	trig := graphics.RectFromLTWH(750, 50, 80, 30)
	raw := ComputeRect(trig, viewport, Bottom, Start, 4, 0, 200, 300)
	require.Equal(t, 950.0, raw.Right)

	got := Clamp(raw, viewport, true)
	assert.Equal(t, 800.0, got.Right)
	assert.Equal(t, 200.0, got.Width())
}

func TestClamp_NoopWhenDisabled(t *testing.T) {
	raw := graphics.RectFromLTWH(700, 500, 300, 300)
	assert.Equal(t, raw, Clamp(raw, viewport, false))
}

func TestClamp_NoopWhenInside(t *testing.T) {
	inside := []graphics.Rect{
		graphics.RectFromLTWH(0, 0, 800, 600),
		graphics.RectFromLTWH(100, 84, 200, 300),
		graphics.RectFromLTWH(799, 599, 1, 1),
	}
	for _, r := range inside {
		assert.Equal(t, r, Clamp(r, viewport, true))
	}
}

func TestClamp_TooSmallBoundaryNeverOverflows(t *testing.T) {
	tiny := graphics.RectFromLTWH(10, 10, 50, 40)
	rects := []graphics.Rect{
		graphics.RectFromLTWH(0, 0, 200, 300),
		graphics.RectFromLTWH(30, 30, 500, 10),
		graphics.RectFromLTWH(-100, 200, 80, 80),
	}
	for _, r := range rects {
		got := Clamp(r, tiny, true)
		assert.LessOrEqual(t, got.Right, tiny.Right)
		assert.LessOrEqual(t, got.Bottom, tiny.Bottom)
		assert.GreaterOrEqual(t, got.Left, tiny.Left)
		assert.GreaterOrEqual(t, got.Top, tiny.Top)
	}
}

func TestClamp_Idempotent(t *testing.T) {
	rects := []graphics.Rect{
		graphics.RectFromLTWH(750, 84, 200, 300),
		graphics.RectFromLTWH(-40, 590, 120, 60),
		graphics.RectFromLTWH(0, 0, 2000, 2000),
	}
	for _, r := range rects {
		once := Clamp(r, viewport, true)
		assert.Equal(t, once, Clamp(once, viewport, true))
	}
}

func TestClamp_ZeroAreaBoundary(t *testing.T) {
	got := Clamp(graphics.RectFromLTWH(5, 5, 100, 100), graphics.RectFromLTWH(20, 20, 0, 0), true)
	assert.Equal(t, 0.0, got.Width())
	assert.Equal(t, 0.0, got.Height())
	assert.Equal(t, 20.0, got.Left)
}

func TestResolve_FlipsWhenBottomOverflows(t *testing.T) {
	trig := graphics.RectFromLTWH(300, 540, 80, 30)
	res := Resolve(Request{
		Trigger:         trig,
		Boundary:        viewport,
		Side:            Bottom,
		Align:           Center,
		SideOffset:      4,
		Width:           200,
		MaxHeight:       150,
		Constrain:       true,
		AvoidCollisions: true,
	})
	assert.Equal(t, Top, res.Side)
	assert.True(t, res.Flipped)
	assert.InDelta(t, 540-4, res.Rect.Bottom, 1e-9)
}

func TestResolve_KeepsSideWhenOppositeIsWorse(t *testing.T) {
	tall := graphics.RectFromLTWH(0, 0, 800, 200)
	trig := graphics.RectFromLTWH(300, 40, 80, 30)
	res := Resolve(Request{
		Trigger:         trig,
		Boundary:        tall,
		Side:            Bottom,
		SideOffset:      4,
		Width:           100,
		MaxHeight:       150,
		AvoidCollisions: true,
	})
	assert.Equal(t, Bottom, res.Side)
	assert.False(t, res.Flipped)
}

func TestResolve_NoFlipWithoutAvoidCollisions(t *testing.T) {
	trig := graphics.RectFromLTWH(300, 540, 80, 30)
	res := Resolve(Request{Trigger: trig, Boundary: viewport, Side: Bottom, Width: 200, MaxHeight: 150, Constrain: true})
	assert.Equal(t, Bottom, res.Side)
	assert.LessOrEqual(t, res.Rect.Bottom, viewport.Bottom)
}

func TestResolve_CollisionPadding(t *testing.T) {
	trig := graphics.RectFromLTWH(750, 50, 40, 30)
	res := Resolve(Request{
		Trigger:   trig,
		Boundary:  viewport,
		Side:      Bottom,
		Align:     Start,
		Width:     200,
		MaxHeight: 100,
		Constrain: true,
		Padding:   graphics.EdgeInsetsAll(8),
		Sticky:    StickyAlways,
	})
	assert.Equal(t, 792.0, res.Rect.Right)
}

func TestResolve_StickyPartialFollowsTriggerOut(t *testing.T) {
	offscreen := graphics.RectFromLTWH(-300, 100, 80, 30)
	req := Request{
		Trigger:   offscreen,
		Boundary:  viewport,
		Side:      Bottom,
		Align:     Start,
		Width:     200,
		MaxHeight: 100,
		Constrain: true,
	}

	req.Sticky = StickyAlways
	always := Resolve(req)
	assert.Equal(t, 0.0, always.Rect.Left)

	req.Sticky = StickyPartial
	partial := Resolve(req)
	assert.Equal(t, offscreen.Right, partial.Rect.Left)
}

func TestResolve_StickyPartialClampsWhileAttached(t *testing.T) {
	trig := graphics.RectFromLTWH(-60, 100, 80, 30)
	res := Resolve(Request{
		Trigger:   trig,
		Boundary:  viewport,
		Side:      Bottom,
		Align:     Start,
		Width:     200,
		MaxHeight: 100,
		Constrain: true,
		Sticky:    StickyPartial,
	})
	assert.Equal(t, 0.0, res.Rect.Left)
}

func TestResolve_Idempotent(t *testing.T) {
	req := Request{
		Trigger:         graphics.RectFromLTWH(700, 560, 90, 30),
		Boundary:        viewport,
		Side:            Right,
		Align:           End,
		SideOffset:      4,
		AlignOffset:     -3,
		Width:           240,
		MaxHeight:       400,
		Constrain:       true,
		AvoidCollisions: true,
		Padding:         graphics.EdgeInsetsAll(4),
	}
	first := Resolve(req)
	assert.Equal(t, first, Resolve(req))

	req.Sticky = StickyAlways
	always := Resolve(req)
	assert.Equal(t, always.Rect, Clamp(always.Rect, viewport.Deflate(req.Padding), true))
}

func TestSide_OppositeAndDirection(t *testing.T) {
	for _, side := range []Side{Top, Bottom, Left, Right} {
		assert.Equal(t, side, side.Opposite().Opposite())
		d, o := side.Direction(), side.Opposite().Direction()
		assert.Equal(t, -d.X, o.X)
		assert.Equal(t, -d.Y, o.Y)
	}
	assert.Equal(t, -1.0, Start.Factor())
	assert.Equal(t, 0.0, Center.Factor())
	assert.Equal(t, 1.0, End.Factor())
}

func TestParse(t *testing.T) {
	side, err := ParseSide("Left")
	require.NoError(t, err)
	assert.Equal(t, Left, side)

	_, err = ParseSide("diagonal")
	assert.Error(t, err)

	align, err := ParseAlign("end")
	require.NoError(t, err)
	assert.Equal(t, End, align)

	sticky, err := ParseSticky("always")
	require.NoError(t, err)
	assert.Equal(t, StickyAlways, sticky)
}
