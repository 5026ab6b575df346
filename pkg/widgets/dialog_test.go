package widgets_test

import (
	"testing"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

// --- Dialog tests ---

func dialogDraw(open *bool, persistent bool) func(*ui.Ui) {
	return func(u *ui.Ui) {
		widgets.Dialog{
			ID:          ui.NewID("profile"),
			Open:        open,
			Title:       "Edit profile",
			Description: "Make changes to your profile here.",
			Persistent:  persistent,
		}.Show(u, func(c *ui.Ui) {
			c.Label("Name")
		})
	}
}

func TestDialog_EscapeCloses(t *testing.T) {
	h := newHarness()
	open := true
	draw := dialogDraw(&open, false)
	settle(t, h, draw)
	if !hasText(h, "Edit profile") {
		t.Fatal("dialog title not painted")
	}
	if uitest.FindText(h.Output().DisplayList, "Edit profile").First().Layer != ui.LayerMiddle {
		t.Error("dialog should paint on the modal layer")
	}

	h.Press(uitest.KeyEscape)
	h.Frame(draw)
	if open {
		t.Fatal("escape should clear the flag")
	}
	settle(t, h, draw)
	if hasText(h, "Edit profile") {
		t.Error("dialog still painted after closing")
	}
}

func TestDialog_CloseButton(t *testing.T) {
	h := newHarness()
	open := true
	draw := dialogDraw(&open, false)
	settle(t, h, draw)
	clickText(t, h, "Close", draw)
	if open {
		t.Fatal("close button should clear the flag")
	}
}

func TestDialog_Persistent(t *testing.T) {
	h := newHarness()
	open := true
	draw := dialogDraw(&open, true)
	settle(t, h, draw)
	if hasText(h, "Close") {
		t.Error("persistent dialog has no close button")
	}

	h.Press(uitest.KeyEscape)
	h.Frame(draw)
	h.Click(graphics.Offset{X: 5, Y: 5})
	h.Frame(draw)
	if !open || !overlay.IsOpen(h.Context(), ui.NewID("profile")) {
		t.Error("persistent dialog should ignore escape and barrier presses")
	}
}
