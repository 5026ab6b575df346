package widgets_test

import (
	"math"
	"testing"

	"github.com/go-drift/shadcn/pkg/graphics"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

func newHarness() *uitest.Harness {
	h := uitest.NewHarness()
	theme.Use(h.Context(), theme.DefaultLightTheme())
	return h
}

func settle(t *testing.T, h *uitest.Harness, draw func(*ui.Ui)) {
	t.Helper()
	if err := h.Settle(draw); err != nil {
		t.Fatal(err)
	}
}

func hasText(h *uitest.Harness, text string) bool {
	return uitest.FindText(h.Output().DisplayList, text).Exists()
}

func textRect(t *testing.T, h *uitest.Harness, text string) graphics.Rect {
	t.Helper()
	res := uitest.FindText(h.Output().DisplayList, text)
	if !res.Exists() {
		t.Fatalf("text %q not painted", text)
	}
	return res.Rect()
}

// clickText clicks the center of the first text command equal to text and
// runs one frame.
func clickText(t *testing.T, h *uitest.Harness, text string, draw func(*ui.Ui)) {
	t.Helper()
	h.Click(textRect(t, h, text).Center())
	h.Frame(draw)
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 0.01
}
