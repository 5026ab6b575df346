package widgets_test

import (
	"testing"

	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

// --- Button tests ---

func TestButton_Click(t *testing.T) {
	h := newHarness()
	clicks := 0
	draw := func(u *ui.Ui) {
		if (widgets.Button{Label: "Save", Variant: widgets.ButtonDefault}).Show(u).Clicked {
			clicks++
		}
	}
	h.Frame(draw)
	clickText(t, h, "Save", draw)
	h.Frame(draw)

	if clicks != 1 {
		t.Errorf("expected one click, got %d", clicks)
	}
}

func TestButton_DisabledIgnoresClicks(t *testing.T) {
	h := newHarness()
	clicked := false
	draw := func(u *ui.Ui) {
		if (widgets.Button{Label: "Save", Disabled: true}).Show(u).Clicked {
			clicked = true
		}
	}
	h.Frame(draw)
	clickText(t, h, "Save", draw)

	if clicked {
		t.Error("disabled button reported a click")
	}
}

func TestButton_VariantFill(t *testing.T) {
	h := newHarness()
	h.Frame(func(u *ui.Ui) {
		widgets.Button{Label: "Delete", Variant: widgets.ButtonDestructive}.Show(u)
	})

	want := theme.DefaultLightTheme().Palette.Destructive
	cmd := h.Output().DisplayList.Sorted()[0]
	if cmd.Color != want {
		t.Errorf("expected destructive fill %#x, got %#x", want, cmd.Color)
	}
	if got := textRect(t, h, "Delete"); !near(got.Left, 16) || !near(got.Top, 8) {
		t.Errorf("label should sit inside the padding, got %+v", got)
	}
}
