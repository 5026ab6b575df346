package overlay

import (
	"time"

	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/logging"
	"github.com/go-drift/shadcn/pkg/placement"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Phase is the visible lifecycle of an overlay.
type Phase int

const (
	// Closed means not open and fully hidden.
	Closed Phase = iota
	// Opening means open with the animation still running.
	Opening
	// Open means open and fully shown.
	Open
	// Closing means closed with the content still fading out.
	Closing
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	default:
		return "closed"
	}
}

// State is the per-overlay data kept in memory between frames.
type State struct {
	// Open is the logical target.
	Open bool
	// Progress is the animation state, 0 hidden and 1 shown.
	Progress animation.Progress

	// HoverSince is when the current open intent started; zero when none.
	HoverSince time.Time
	// LeaveSince is when the current close intent started; zero when none.
	LeaveSince time.Time
	// LastClose is when the overlay last closed.
	LastClose time.Time
	// OpenedFrame is the frame the overlay last opened on.
	OpenedFrame uint64
	// Dismissed is set when escape closed a hover overlay. Hover intent is
	// ignored until the trigger and content have lost both hover and focus.
	Dismissed bool

	// ContentRect is the surface drawn last frame.
	ContentRect graphics.Rect
	HasContent  bool
	// Measured is the natural content size, known after the first
	// mounted frame.
	Measured    graphics.Size
	HasMeasured bool
	// Side is the side used last frame.
	Side placement.Side

	id ui.ID
}

// StateOf returns the state for id, creating it closed on first use.
func StateOf(ctx *ui.Context, id ui.ID) *State {
	st := ui.Data[State](ctx.Memory(), id)
	st.id = id
	return st
}

// ID returns the overlay ID.
func (s *State) ID() ui.ID { return s.id }

// Phase reports where the overlay is in its lifecycle.
func (s *State) Phase() Phase {
	switch {
	case s.Open && s.Progress.T >= 1:
		return Open
	case s.Open:
		return Opening
	case s.Progress.T > 0:
		return Closing
	default:
		return Closed
	}
}

// Mounted reports whether content is drawn this frame.
func (s *State) Mounted(forceMount bool) bool {
	return ShouldMount(s.Progress, forceMount)
}

// SetOpen changes the target. Opening records the frame so the click that
// opened the overlay is not also treated as an outside click; closing
// records the time for skip-delay windows. Pending hover timers are
// dropped either way.
func (s *State) SetOpen(ctx *ui.Context, open bool) {
	if s.Open == open {
		return
	}
	from := s.Phase()
	s.Open = open
	s.HoverSince = time.Time{}
	s.LeaveSince = time.Time{}
	if open {
		s.OpenedFrame = ctx.Frame()
		s.Dismissed = false
	} else {
		s.LastClose = ctx.Now()
	}
	logging.L().Debug().
		Str("id", s.id.String()).
		Str("from", from.String()).
		Str("to", s.Phase().String()).
		Uint64("frame", ctx.Frame()).
		Msg("overlay transition")
}

// SetOpen opens or closes the overlay id.
func SetOpen(ctx *ui.Context, id ui.ID, open bool) {
	StateOf(ctx, id).SetOpen(ctx, open)
}

// IsOpen reports the logical target of overlay id.
func IsOpen(ctx *ui.Context, id ui.ID) bool {
	st, ok := ui.Load[State](ctx.Memory(), id)
	return ok && st.Open
}
