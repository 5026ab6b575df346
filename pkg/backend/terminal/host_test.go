package terminal_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/backend/terminal"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// fakeTime makes host frames advance by one FrameInterval each.
func fakeTime(h *terminal.Host) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h.Clock = animation.ClockFunc(func() time.Time {
		now = now.Add(terminal.FrameInterval)
		return now
	})
}

func row(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.SimulationScreen) string {
	_, h := s.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = row(s, y)
	}
	return strings.Join(lines, "\n")
}

func settle(t *testing.T, h *terminal.Host, draw func(*ui.Ui)) {
	t.Helper()
	for range 200 {
		out := h.Frame(draw)
		if !out.Repaint || out.RepaintAfter > 0 {
			return
		}
	}
	t.Fatal("frames did not settle")
}

func TestHost_PopoverBorderVisible(t *testing.T) {
	s := newScreen(t, 80, 24)
	h := terminal.New(s)
	fakeTime(h)
	theme.Use(h.Context(), theme.TerminalTheme())

	draw := func(u *ui.Ui) {
		widgets.Popover{ID: ui.NewID("dims"), Label: "Open"}.Show(u, func(c *ui.Ui) {
			c.Label("Dimensions")
		})
	}
	h.Frame(draw)
	assert.Contains(t, row(s, 1), "Open")
	assert.NotContains(t, screenText(s), "Dimensions")

	h.Handle(tcell.NewEventMouse(2, 1, tcell.ButtonPrimary, tcell.ModNone))
	settle(t, h, draw)

	text := screenText(s)
	assert.Contains(t, text, "Dimensions")
	assert.Contains(t, text, "┌")
	assert.Contains(t, text, "┘")
}

func TestHost_HandleConvertsEvents(t *testing.T) {
	s := newScreen(t, 40, 10)
	h := terminal.New(s)

	assert.False(t, h.Handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	h.Handle(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone))
	h.Handle(tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone))
	h.Handle(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	h.Handle(tcell.NewEventMouse(5, 3, tcell.ButtonSecondary, tcell.ModNone))

	in := h.Input()
	assert.True(t, in.Escape)
	assert.True(t, in.Backspace)
	assert.Equal(t, "ab", in.Text)
	assert.True(t, in.SecondaryClicked)
	assert.False(t, in.PrimaryClicked)
	assert.True(t, in.PointerValid)
	assert.Equal(t, graphics.Offset{X: 5.5, Y: 3.5}, in.Pointer)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 40, 10), in.Viewport)

	h.Frame(func(*ui.Ui) {})
	// A held button is not a new press.
	h.Handle(tcell.NewEventMouse(6, 3, tcell.ButtonSecondary, tcell.ModNone))
	in = h.Input()
	assert.False(t, in.SecondaryClicked)
	assert.Empty(t, in.Text)

	assert.True(t, h.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestHost_PaintsPrimitives(t *testing.T) {
	s := newScreen(t, 20, 6)
	h := terminal.New(s)
	white := graphics.RGB(255, 255, 255)
	h.Frame(func(u *ui.Ui) {
		u.Painter().StrokeRect(graphics.RectFromLTWH(1, 1, 6, 4), 0, 1, white)
		u.Painter().Text(graphics.RectFromLTWH(2, 2, 4, 1), "日本", 1, white)
		u.Painter().StrokeRect(graphics.RectFromLTWH(10, 1, 5, 3), 2, 1, white)
	})

	assert.Equal(t, " ┌────┐ ", string([]rune(row(s, 1))[:8]))
	r, _, _, _ := s.GetContent(2, 2)
	assert.Equal(t, '日', r)
	r, _, _, _ = s.GetContent(4, 2)
	assert.Equal(t, '本', r)
	r, _, _, _ = s.GetContent(10, 1)
	assert.Equal(t, '╭', r)
	r, _, _, _ = s.GetContent(14, 3)
	assert.Equal(t, '╯', r)
}

func TestHost_RunWakesOnRepaintAfter(t *testing.T) {
	s := newScreen(t, 20, 5)
	h := terminal.New(s)

	frames := 0
	draw := func(u *ui.Ui) {
		frames++
		if frames < 3 {
			u.Ctx().RequestRepaintAfter(20 * time.Millisecond)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	require.NoError(t, h.Run(ctx, draw))
	assert.GreaterOrEqual(t, frames, 3, "delayed repaints should wake the loop without input")
	assert.Less(t, frames, 10, "the loop should idle once nothing is scheduled")
}

func TestHost_RunQuitsOnCtrlC(t *testing.T) {
	s := newScreen(t, 20, 5)
	h := terminal.New(s)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background(), func(*ui.Ui) {}) }()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on Ctrl-C")
	}
}
