package animation

import "fmt"

// Status describes where a boolean animation is.
//
//	                target=true
//	Dismissed ──────────────────► Completed
//	    ▲        (Forward)             │
//	    │                              │
//	    └──────────────────────────────┘
//	                (Reverse)
//	                target=false
//
// While moving, status is Forward or Reverse. At rest it is Dismissed (at 0)
// or Completed (at 1).
type Status int

const (
	// Dismissed means progress rests at 0.
	Dismissed Status = iota
	// Forward means progress is moving toward 1.
	Forward
	// Reverse means progress is moving toward 0.
	Reverse
	// Completed means progress rests at 1.
	Completed
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// IsAnimating reports whether progress is in motion.
func (s Status) IsAnimating() bool {
	return s == Forward || s == Reverse
}
