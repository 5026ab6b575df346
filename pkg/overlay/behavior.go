package overlay

import (
	"time"

	"github.com/go-drift/shadcn/pkg/ui"
)

// Behavior decides the open target from the trigger and the input.
// Update runs once per frame, after the trigger is drawn and before the
// animation step.
type Behavior interface {
	Update(ctx *ui.Context, st *State, trigger ui.Response)
}

// Click toggles on trigger clicks and closes on escape or on a press
// outside both the trigger and last frame's content rect. The zero value
// is the usual popover behavior.
type Click struct {
	// KeepOpenOnOutsideClick disables closing on outside presses.
	KeepOpenOnOutsideClick bool
	// IgnoreEscape disables closing on escape.
	IgnoreEscape bool
}

// Update implements Behavior.
func (b Click) Update(ctx *ui.Context, st *State, trigger ui.Response) {
	if trigger.Clicked {
		st.SetOpen(ctx, !st.Open)
		return
	}
	if !st.Open {
		return
	}
	in := ctx.Input()
	if in.Escape && !b.IgnoreEscape {
		st.SetOpen(ctx, false)
		return
	}
	if b.KeepOpenOnOutsideClick || !(in.PrimaryClicked || in.SecondaryClicked) {
		return
	}
	// The press that opened the overlay is not an outside press.
	if ctx.Frame() == st.OpenedFrame || !in.PointerValid {
		return
	}
	if trigger.Rect.Contains(in.Pointer) {
		return
	}
	if st.HasContent && st.ContentRect.Contains(in.Pointer) {
		return
	}
	st.SetOpen(ctx, false)
}

// Hover opens after the pointer rests on the trigger (or the trigger holds
// focus) for OpenDelay, and closes once neither the trigger nor the content
// has been hovered for CloseDelay. Leaving before OpenDelay elapses resets
// the open timer. Every pending timer schedules a repaint for when it
// fires.
//
// Escape dismisses the overlay until the pointer leaves and focus moves
// away. A dismissal does not start a skip-delay window.
type Hover struct {
	OpenDelay  time.Duration
	CloseDelay time.Duration
	// SkipDelay is a window after a close during which the next open is
	// immediate.
	SkipDelay time.Duration
	// ContentMargin expands last frame's content rect for hover tests so
	// the pointer can cross the gap between trigger and content.
	ContentMargin float64
	// OpenOnClick also toggles on trigger clicks.
	OpenOnClick bool
	// Group makes overlays sharing it exclusive: opening one closes the
	// others, and while one is open the next opens without delay. Zero
	// means no group.
	Group ui.ID
}

type groupState struct {
	active    ui.ID
	hasActive bool
	lastClose time.Time
}

// Update implements Behavior.
func (h Hover) Update(ctx *ui.Context, st *State, trigger ui.Response) {
	in := ctx.Input()
	now := ctx.Now()

	var grp *groupState
	if h.Group != 0 {
		grp = ui.Data[groupState](ctx.Memory(), h.Group)
		if st.Open && grp.hasActive && grp.active != st.ID() {
			h.close(ctx, st, grp)
			return
		}
	}

	if st.Open && in.Escape {
		h.dismiss(ctx, st, grp)
		return
	}
	if h.OpenOnClick && trigger.Clicked {
		if st.Open {
			h.close(ctx, st, grp)
		} else {
			h.open(ctx, st, grp)
		}
		return
	}

	contentHovered := st.HasContent && st.Progress.T > 0 &&
		in.PointerIn(st.ContentRect.Expand(h.ContentMargin))
	want := trigger.Hovered || trigger.HasFocus || contentHovered
	if st.Dismissed {
		if want {
			return
		}
		st.Dismissed = false
	}

	switch {
	case want && !st.Open:
		st.LeaveSince = time.Time{}
		delay := h.OpenDelay
		if h.skip(st, grp, now) {
			delay = 0
		}
		if st.HoverSince.IsZero() {
			st.HoverSince = now
		}
		if elapsed := now.Sub(st.HoverSince); elapsed >= delay {
			h.open(ctx, st, grp)
		} else {
			ctx.RequestRepaintAfter(delay - elapsed)
		}
	case !want && !st.Open:
		st.HoverSince = time.Time{}
	case want && st.Open:
		st.LeaveSince = time.Time{}
	default:
		if st.LeaveSince.IsZero() {
			st.LeaveSince = now
		}
		if elapsed := now.Sub(st.LeaveSince); elapsed >= h.CloseDelay {
			h.close(ctx, st, grp)
		} else {
			ctx.RequestRepaintAfter(h.CloseDelay - elapsed)
		}
	}
}

func (h Hover) skip(st *State, grp *groupState, now time.Time) bool {
	last := st.LastClose
	if grp != nil {
		if grp.hasActive && grp.active != st.ID() {
			return true
		}
		last = grp.lastClose
	}
	return h.SkipDelay > 0 && !last.IsZero() && now.Sub(last) < h.SkipDelay
}

func (h Hover) open(ctx *ui.Context, st *State, grp *groupState) {
	st.SetOpen(ctx, true)
	if grp != nil {
		grp.active = st.ID()
		grp.hasActive = true
	}
}

func (h Hover) close(ctx *ui.Context, st *State, grp *groupState) {
	st.SetOpen(ctx, false)
	if grp != nil {
		if grp.active == st.ID() {
			grp.hasActive = false
		}
		grp.lastClose = ctx.Now()
	}
}

// dismiss closes without stamping the skip-delay clocks.
func (h Hover) dismiss(ctx *ui.Context, st *State, grp *groupState) {
	last := st.LastClose
	st.SetOpen(ctx, false)
	st.LastClose = last
	st.Dismissed = true
	if grp != nil && grp.active == st.ID() {
		grp.hasActive = false
	}
}

// Manual never changes the target on its own; callers drive it through
// the controlled flag or SetOpen.
type Manual struct{}

// Update implements Behavior.
func (Manual) Update(*ui.Context, *State, ui.Response) {}
