package testing

import (
	"errors"
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

const (
	// DefaultWidth is the default logical width of the test viewport.
	DefaultWidth = 800
	// DefaultHeight is the default logical height of the test viewport.
	DefaultHeight = 600
	// DefaultStep is the time between two harness frames.
	DefaultStep = 16 * time.Millisecond
	// settleLimit bounds Settle so a widget that animates forever fails
	// instead of hanging.
	settleLimit = 1000
)

// ErrSettleTimeout is returned when Settle exceeds its frame limit.
var ErrSettleTimeout = errors.New("Settle timed out: frames kept requesting an immediate repaint")

// Key names a one-shot keyboard event.
type Key int

const (
	KeyEscape Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
)

// Harness owns a ui.Context and feeds it scripted input under a fake clock.
type Harness struct {
	ctx      *ui.Context
	clock    *FakeClock
	viewport graphics.Rect

	// Step is how far the clock moves after each frame.
	Step time.Duration

	pointer      graphics.Offset
	pointerValid bool
	pending      ui.Input

	out    ui.FrameOutput
	frames int
}

// NewHarness returns a harness with an 800x600 viewport and the default
// text measurer.
func NewHarness() *Harness {
	return NewHarnessWith(nil, graphics.RectFromLTWH(0, 0, DefaultWidth, DefaultHeight))
}

// NewHarnessWith returns a harness with a custom measurer and viewport.
func NewHarnessWith(m ui.TextMeasurer, viewport graphics.Rect) *Harness {
	return &Harness{
		ctx:      ui.NewContext(m),
		clock:    NewFakeClock(),
		viewport: viewport,
		Step:     DefaultStep,
	}
}

// Context returns the underlying context.
func (h *Harness) Context() *ui.Context { return h.ctx }

// Clock returns the fake clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Output returns the most recent frame output.
func (h *Harness) Output() ui.FrameOutput { return h.out }

// Frames returns how many frames have run.
func (h *Harness) Frames() int { return h.frames }

// SetViewport changes the viewport for subsequent frames.
func (h *Harness) SetViewport(r graphics.Rect) { h.viewport = r }

// MoveTo places the pointer at p.
func (h *Harness) MoveTo(p graphics.Offset) {
	h.pointer = p
	h.pointerValid = true
}

// Leave removes the pointer from the window.
func (h *Harness) Leave() {
	h.pointerValid = false
}

// Click moves the pointer to p and presses the primary button during the
// next frame.
func (h *Harness) Click(p graphics.Offset) {
	h.MoveTo(p)
	h.pending.PrimaryClicked = true
}

// SecondaryClick is Click with the secondary button.
func (h *Harness) SecondaryClick(p graphics.Offset) {
	h.MoveTo(p)
	h.pending.SecondaryClicked = true
}

// Press queues a key for the next frame.
func (h *Harness) Press(k Key) {
	switch k {
	case KeyEscape:
		h.pending.Escape = true
	case KeyEnter:
		h.pending.Enter = true
	case KeyTab:
		h.pending.Tab = true
	case KeyBackspace:
		h.pending.Backspace = true
	case KeyUp:
		h.pending.Up = true
	case KeyDown:
		h.pending.Down = true
	}
}

// Type queues text for the next frame.
func (h *Harness) Type(text string) {
	h.pending.Text += text
}

// Input returns the input the next frame will see.
func (h *Harness) Input() ui.Input {
	in := h.pending
	in.Time = h.clock.Now()
	in.Viewport = h.viewport
	in.Pointer = h.pointer
	in.PointerValid = h.pointerValid
	return in
}

// Frame runs one frame, clears one-shot input and advances the clock.
func (h *Harness) Frame(draw func(*ui.Ui)) ui.FrameOutput {
	h.out = h.ctx.Run(h.Input(), draw)
	h.pending = ui.Input{}
	h.frames++
	h.clock.Advance(h.Step)
	return h.out
}

// Pump runs n frames.
func (h *Harness) Pump(draw func(*ui.Ui), n int) ui.FrameOutput {
	for range n {
		h.Frame(draw)
	}
	return h.out
}

// Wait runs frames until the clock has advanced by at least d.
func (h *Harness) Wait(draw func(*ui.Ui), d time.Duration) ui.FrameOutput {
	end := h.clock.Now().Add(d)
	for h.clock.Now().Before(end) {
		h.Frame(draw)
	}
	return h.out
}

// Settle runs a frame and keeps running frames while they ask for an
// immediate repaint, i.e. until animations finish. Delayed repaints are
// not waited for.
func (h *Harness) Settle(draw func(*ui.Ui)) error {
	h.Frame(draw)
	for range settleLimit {
		if !h.out.Repaint || h.out.RepaintAfter > 0 {
			return nil
		}
		h.Frame(draw)
	}
	return ErrSettleTimeout
}
