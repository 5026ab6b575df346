package ui

import (
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// Input is everything a backend observed since the previous frame.
type Input struct {
	// Time is the frame timestamp.
	Time time.Time
	// Viewport is the drawable area; overlays use it as their boundary.
	Viewport graphics.Rect

	// Pointer is the last known pointer position; only meaningful when
	// PointerValid is set.
	Pointer      graphics.Offset
	PointerValid bool

	// PrimaryClicked and SecondaryClicked report a press this frame.
	PrimaryClicked   bool
	SecondaryClicked bool

	Escape    bool
	Enter     bool
	Tab       bool
	Backspace bool
	Up        bool
	Down      bool

	// Text holds characters typed this frame.
	Text string
}

// PointerIn reports whether the pointer is valid and inside r.
func (in Input) PointerIn(r graphics.Rect) bool {
	return in.PointerValid && r.Contains(in.Pointer)
}
