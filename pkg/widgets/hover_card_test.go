package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/placement"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

// --- HoverCard tests ---

func TestHoverCard_OpenAndCloseDelays(t *testing.T) {
	h := newHarness()
	id := ui.NewID("card")
	draw := func(u *ui.Ui) {
		widgets.HoverCard{ID: id, Label: "@nextjs"}.Show(u, func(c *ui.Ui) {
			c.Label("The React Framework")
		})
	}
	h.Frame(draw)
	h.MoveTo(textRect(t, h, "@nextjs").Center())

	h.Wait(draw, 600*time.Millisecond)
	if overlay.IsOpen(h.Context(), id) {
		t.Fatal("opened before the 700ms delay")
	}
	if h.Output().RepaintAfter <= 0 {
		t.Error("pending open should schedule a delayed repaint")
	}
	h.Wait(draw, 150*time.Millisecond)
	if !overlay.IsOpen(h.Context(), id) {
		t.Fatal("did not open after the delay")
	}

	h.Leave()
	h.Wait(draw, 200*time.Millisecond)
	if !overlay.IsOpen(h.Context(), id) {
		t.Fatal("closed before the 300ms close delay")
	}
	h.Wait(draw, 200*time.Millisecond)
	if overlay.IsOpen(h.Context(), id) {
		t.Fatal("still open after the close delay")
	}
}

func TestHoverCard_FlipsAboveWhenBottomDoesNotFit(t *testing.T) {
	h := newHarness()
	trigger := graphics.RectFromLTWH(100, 560, 80, 20)
	var res overlay.Result
	draw := func(u *ui.Ui) {
		res = widgets.HoverCard{
			ID: ui.NewID("low"),
			Trigger: func(t *ui.Ui) ui.Response {
				return t.Interact(ui.NewID("low-trigger"), trigger, ui.SenseHover)
			},
		}.Show(u, func(c *ui.Ui) {
			c.Allocate(ui.NewID("body"), graphics.Size{Width: 100, Height: 100}, ui.SenseNone)
		})
	}
	h.MoveTo(trigger.Center())
	h.Wait(draw, 800*time.Millisecond)
	settle(t, h, draw)

	if res.Side != placement.Top {
		t.Fatalf("expected flip to top, got %v", res.Side)
	}
	if res.Rect.Bottom > trigger.Top {
		t.Errorf("flipped card %+v overlaps the trigger", res.Rect)
	}
}

func TestHoverCard_ContentHoverKeepsOpen(t *testing.T) {
	h := newHarness()
	id := ui.NewID("card")
	var res overlay.Result
	draw := func(u *ui.Ui) {
		res = widgets.HoverCard{ID: id, Label: "@nextjs"}.Show(u, func(c *ui.Ui) {
			c.Label("The React Framework")
		})
	}
	h.Frame(draw)
	h.MoveTo(textRect(t, h, "@nextjs").Center())
	h.Wait(draw, 800*time.Millisecond)
	settle(t, h, draw)

	h.MoveTo(res.Rect.Center())
	h.Wait(draw, time.Second)
	if !overlay.IsOpen(h.Context(), id) {
		t.Error("hovering the card should keep it open")
	}
}

func TestHoverCard_EscapeStaysClosedUntilLeave(t *testing.T) {
	h := newHarness()
	id := ui.NewID("card")
	draw := func(u *ui.Ui) {
		widgets.HoverCard{ID: id, Label: "@nextjs"}.Show(u, func(c *ui.Ui) {
			c.Label("The React Framework")
		})
	}
	h.Frame(draw)
	trigger := textRect(t, h, "@nextjs").Center()
	h.MoveTo(trigger)
	h.Wait(draw, 800*time.Millisecond)
	if !overlay.IsOpen(h.Context(), id) {
		t.Fatal("did not open after the delay")
	}

	h.Press(uitest.KeyEscape)
	h.Frame(draw)
	h.Wait(draw, time.Second)
	if overlay.IsOpen(h.Context(), id) {
		t.Fatal("reopened while the pointer rested on the trigger")
	}

	h.Leave()
	h.Frame(draw)
	h.MoveTo(trigger)
	h.Wait(draw, 800*time.Millisecond)
	if !overlay.IsOpen(h.Context(), id) {
		t.Error("did not open again after the pointer returned")
	}
}
