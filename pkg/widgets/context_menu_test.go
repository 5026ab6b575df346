package widgets_test

import (
	"testing"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

// --- ContextMenu tests ---

func TestContextMenu_OpensAtPointer(t *testing.T) {
	h := newHarness()
	id := ui.NewID("ctx")
	chosen := -1
	draw := func(u *ui.Ui) {
		_, i := widgets.ContextMenu{ID: id, Items: []widgets.MenuItem{{Label: "Copy"}, {Label: "Paste"}}}.Show(u, func(r *ui.Ui) ui.Response {
			return r.Allocate(id.With("region"), graphics.Size{Width: 400, Height: 300}, ui.SenseClick)
		})
		if i >= 0 {
			chosen = i
		}
	}
	h.Frame(draw)

	h.Click(graphics.Offset{X: 100, Y: 100})
	h.Frame(draw)
	if overlay.IsOpen(h.Context(), id) {
		t.Fatal("primary click must not open a context menu")
	}

	h.SecondaryClick(graphics.Offset{X: 100, Y: 100})
	h.Frame(draw)
	settle(t, h, draw)
	// Anchored right/start of the press point, inside 4px menu padding and
	// 8x6 item padding.
	if got := textRect(t, h, "Copy"); !near(got.Left, 112) || !near(got.Top, 110) {
		t.Errorf("unexpected item position %+v", got)
	}

	h.SecondaryClick(graphics.Offset{X: 300, Y: 200})
	h.Frame(draw)
	if !overlay.IsOpen(h.Context(), id) {
		t.Fatal("secondary click inside the region should move the menu, not close it")
	}
	settle(t, h, draw)
	if got := textRect(t, h, "Copy"); !near(got.Left, 312) {
		t.Errorf("menu did not follow the second press: %+v", got)
	}

	clickText(t, h, "Paste", draw)
	if chosen != 1 {
		t.Errorf("expected Paste, got %d", chosen)
	}
	if overlay.IsOpen(h.Context(), id) {
		t.Error("choosing closes the menu")
	}
}

func TestContextMenu_EscapeCloses(t *testing.T) {
	h := newHarness()
	id := ui.NewID("ctx")
	draw := func(u *ui.Ui) {
		widgets.ContextMenu{ID: id, Items: []widgets.MenuItem{{Label: "Copy"}}}.Show(u, func(r *ui.Ui) ui.Response {
			return r.Allocate(id.With("region"), graphics.Size{Width: 400, Height: 300}, ui.SenseClick)
		})
	}
	h.SecondaryClick(graphics.Offset{X: 50, Y: 50})
	h.Frame(draw)
	settle(t, h, draw)
	h.Press(uitest.KeyEscape)
	settle(t, h, draw)
	if hasText(h, "Copy") {
		t.Error("escape should close the menu")
	}
}
