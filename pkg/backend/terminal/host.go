// Package terminal hosts ui frames on a character terminal through tcell.
//
// One ui unit is one cell. Fills become cell backgrounds, strokes become
// box-drawing borders and text is laid out by East Asian display width.
// The event loop sleeps until input arrives or the frame's RepaintAfter
// elapses, so hover delays fire without the pointer moving.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/logging"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Measurer sizes text in cells. Use it with a font size of 1.
var Measurer = ui.MonospaceMeasurer{Advance: 1, LineHeight: 1}

// FrameInterval paces frames while something animates.
const FrameInterval = 16 * time.Millisecond

// Host owns a tcell screen and a ui.Context.
type Host struct {
	screen tcell.Screen
	ctx    *ui.Context
	cells  *cellBuffer

	// Background is painted under every frame.
	Background graphics.Color
	// Clock stamps frames. Defaults to the system clock.
	Clock animation.Clock

	pending ui.Input
	pointer graphics.Offset
	hasPtr  bool
	buttons tcell.ButtonMask
}

// New returns a host drawing on screen. The screen must be initialized.
func New(screen tcell.Screen) *Host {
	return &Host{
		screen:     screen,
		ctx:        ui.NewContext(Measurer),
		cells:      &cellBuffer{},
		Background: graphics.RGB(0, 0, 0),
		Clock:      animation.SystemClock{},
	}
}

// Context returns the ui context frames run in.
func (h *Host) Context() *ui.Context { return h.ctx }

// Screen returns the underlying screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Input returns the input the next frame will see.
func (h *Host) Input() ui.Input {
	w, hgt := h.screen.Size()
	in := h.pending
	in.Time = h.Clock.Now()
	in.Viewport = graphics.RectFromLTWH(0, 0, float64(w), float64(hgt))
	in.Pointer = h.pointer
	in.PointerValid = h.hasPtr
	return in
}

// Frame runs draw for one frame, paints the result and shows it.
func (h *Host) Frame(draw func(*ui.Ui)) ui.FrameOutput {
	in := h.Input()
	h.pending = ui.Input{}
	out := h.ctx.Run(in, draw)
	h.Paint(out)
	h.screen.Show()
	return out
}

// Paint draws out's display list into the screen's back buffer.
func (h *Host) Paint(out ui.FrameOutput) {
	w, hgt := h.screen.Size()
	h.cells.reset(w, hgt, h.Background)
	for _, cmd := range out.DisplayList.Sorted() {
		h.cells.paint(cmd)
	}
	h.cells.flush(h.screen)
}

// Handle folds a tcell event into the pending input. It reports whether
// the event asks to quit.
func (h *Host) Handle(ev tcell.Event) (quit bool) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyCtrlC:
			return true
		case tcell.KeyEscape:
			h.pending.Escape = true
		case tcell.KeyEnter:
			h.pending.Enter = true
		case tcell.KeyTab:
			h.pending.Tab = true
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			h.pending.Backspace = true
		case tcell.KeyUp:
			h.pending.Up = true
		case tcell.KeyDown:
			h.pending.Down = true
		case tcell.KeyRune:
			h.pending.Text += string(e.Rune())
		}
	case *tcell.EventMouse:
		x, y := e.Position()
		// Cell centers, so zero-size anchors land inside the cell.
		h.pointer = graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}
		h.hasPtr = true
		btn := e.Buttons()
		pressed := btn &^ h.buttons
		if pressed&tcell.ButtonPrimary != 0 {
			h.pending.PrimaryClicked = true
		}
		if pressed&tcell.ButtonSecondary != 0 {
			h.pending.SecondaryClicked = true
		}
		h.buttons = btn
	case *tcell.EventFocus:
		if !e.Focused {
			h.hasPtr = false
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// Run drives frames until ctx is done or the user presses Ctrl-C. Events
// are batched: everything queued when a frame starts lands in that frame.
func (h *Host) Run(ctx context.Context, draw func(*ui.Ui)) (err error) {
	defer errors.RecoverWithCallback("terminal.Run", func(r any) {
		err = &errors.PanicError{Op: "terminal.Run", Value: r, StackTrace: errors.CaptureStack(), Timestamp: h.Clock.Now()}
	})

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		out := h.Frame(draw)
		wait, scheduled := nextWake(out)
		resetTimer(timer, wait, scheduled)
		logging.L().Trace().Uint64("frame", out.Frame).Dur("wait", wait).Bool("scheduled", scheduled).Msg("terminal frame")

		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.Handle(ev) {
				return nil
			}
			for drained := false; !drained; {
				select {
				case ev := <-events:
					if h.Handle(ev) {
						return nil
					}
				default:
					drained = true
				}
			}
		case <-timer.C:
		}
	}
}

// nextWake returns how long the loop may sleep before the next frame.
func nextWake(out ui.FrameOutput) (time.Duration, bool) {
	switch {
	case !out.Repaint:
		return 0, false
	case out.RepaintAfter > 0:
		return out.RepaintAfter, true
	default:
		return FrameInterval, true
	}
}

func resetTimer(t *time.Timer, d time.Duration, active bool) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
	if active {
		t.Reset(d)
	}
}
