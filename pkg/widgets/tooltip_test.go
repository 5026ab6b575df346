package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

// --- Tooltip tests ---

type tooltipFixture struct {
	h      *uitest.Harness
	a, b   ui.ID
	ra, rb graphics.Rect
}

func newTooltipFixture() *tooltipFixture {
	return &tooltipFixture{
		h:  newHarness(),
		a:  ui.NewID("tip-a"),
		b:  ui.NewID("tip-b"),
		ra: graphics.RectFromLTWH(100, 200, 60, 24),
		rb: graphics.RectFromLTWH(200, 200, 60, 24),
	}
}

func (f *tooltipFixture) draw(u *ui.Ui) {
	widgets.Tooltip{ID: f.a, Text: "Bold"}.Show(u, func(t *ui.Ui) ui.Response {
		return t.Interact(f.a.With("trigger"), f.ra, ui.SenseHover)
	})
	widgets.Tooltip{ID: f.b, Text: "Italic"}.Show(u, func(t *ui.Ui) ui.Response {
		return t.Interact(f.b.With("trigger"), f.rb, ui.SenseHover)
	})
}

func (f *tooltipFixture) open(id ui.ID) bool {
	return overlay.IsOpen(f.h.Context(), id)
}

func TestTooltip_OpensAboveAfterDelay(t *testing.T) {
	f := newTooltipFixture()
	f.h.MoveTo(f.ra.Center())
	f.h.Wait(f.draw, 450*time.Millisecond)
	if f.open(f.a) {
		t.Fatal("opened before 500ms")
	}
	f.h.Wait(f.draw, 100*time.Millisecond)
	settle(t, f.h, f.draw)

	tip := uitest.FindText(f.h.Output().DisplayList, "Bold")
	if !tip.Exists() {
		t.Fatal("tooltip text not painted")
	}
	if tip.First().Layer != ui.LayerTooltip {
		t.Errorf("expected tooltip layer, got %v", tip.First().Layer)
	}
	if tip.Rect().Bottom > f.ra.Top {
		t.Errorf("tooltip %+v should sit above the trigger", tip.Rect())
	}
}

func TestTooltip_ClosesImmediatelyOnLeave(t *testing.T) {
	f := newTooltipFixture()
	f.h.MoveTo(f.ra.Center())
	f.h.Wait(f.draw, 600*time.Millisecond)
	if !f.open(f.a) {
		t.Fatal("tooltip did not open")
	}
	f.h.MoveTo(graphics.Offset{X: 500, Y: 500})
	f.h.Frame(f.draw)
	if f.open(f.a) {
		t.Error("tooltip has no close delay")
	}
}

func TestTooltip_SkipDelayBetweenSiblings(t *testing.T) {
	f := newTooltipFixture()
	f.h.MoveTo(f.ra.Center())
	f.h.Wait(f.draw, 600*time.Millisecond)

	f.h.MoveTo(f.rb.Center())
	f.h.Frame(f.draw)
	if !f.open(f.b) || f.open(f.a) {
		t.Fatalf("expected instant switch, a=%v b=%v", f.open(f.a), f.open(f.b))
	}

	// After the skip window the delay applies again.
	f.h.MoveTo(graphics.Offset{X: 500, Y: 500})
	f.h.Wait(f.draw, 400*time.Millisecond)
	f.h.MoveTo(f.ra.Center())
	f.h.Frame(f.draw)
	if f.open(f.a) {
		t.Error("skip delay window should have expired")
	}
}

func TestTooltip_EscapeDismissesWhilePointerRests(t *testing.T) {
	f := newTooltipFixture()
	f.h.MoveTo(f.ra.Center())
	f.h.Wait(f.draw, 600*time.Millisecond)
	if !f.open(f.a) {
		t.Fatal("tooltip did not open")
	}

	f.h.Press(uitest.KeyEscape)
	f.h.Frame(f.draw)
	if f.open(f.a) {
		t.Fatal("escape did not close the tooltip")
	}
	f.h.Frame(f.draw)
	if f.open(f.a) {
		t.Fatal("tooltip reopened on the next frame with the pointer unchanged")
	}
	f.h.Wait(f.draw, time.Second)
	if f.open(f.a) {
		t.Fatal("tooltip reopened while the pointer rested on the trigger")
	}

	// Leaving re-arms hover intent, with the full delay.
	f.h.MoveTo(graphics.Offset{X: 500, Y: 500})
	f.h.Frame(f.draw)
	f.h.MoveTo(f.ra.Center())
	f.h.Frame(f.draw)
	if f.open(f.a) {
		t.Fatal("a dismissal must not start a skip-delay window")
	}
	f.h.Wait(f.draw, 550*time.Millisecond)
	if !f.open(f.a) {
		t.Error("tooltip did not open after returning to the trigger")
	}
}
