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

// --- NavigationMenu tests ---

type navFixture struct {
	h       *uitest.Harness
	id      ui.ID
	clicked int
}

func newNavFixture() *navFixture {
	return &navFixture{h: newHarness(), id: ui.NewID("nav"), clicked: -1}
}

func (f *navFixture) draw(u *ui.Ui) {
	f.clicked = widgets.NavigationMenu{
		ID: f.id,
		Items: []widgets.NavigationItem{
			{Label: "Getting started", Width: 300, Content: func(c *ui.Ui) {
				widgets.NavigationLink(c, "Introduction", "Re-usable components.")
			}},
			{Label: "Components", Width: 300, Content: func(c *ui.Ui) {
				widgets.NavigationLink(c, "Alert Dialog", "A modal dialog.")
			}},
			{Label: "Docs"},
		},
	}.Show(u)
}

func (f *navFixture) trigger(t *testing.T, label string) graphics.Offset {
	t.Helper()
	res := uitest.Find(f.h.Output().DisplayList, uitest.ByTextContaining(label))
	if !res.Exists() {
		t.Fatalf("trigger %q not painted", label)
	}
	return res.Rect().Center()
}

func (f *navFixture) open(i int) bool {
	return overlay.IsOpen(f.h.Context(), f.id.With(i))
}

func TestNavigationMenu_OpensAfterDelay(t *testing.T) {
	f := newNavFixture()
	f.h.Frame(f.draw)
	f.h.MoveTo(f.trigger(t, "Getting started"))

	f.h.Wait(f.draw, 150*time.Millisecond)
	if f.open(0) {
		t.Fatal("opened before 200ms")
	}
	f.h.Wait(f.draw, 100*time.Millisecond)
	settle(t, f.h, f.draw)
	if !f.open(0) || !hasText(f.h, "Introduction") {
		t.Fatal("panel did not open")
	}
	if !hasText(f.h, "Getting started ▴") {
		t.Error("open trigger should show the up chevron")
	}
}

func TestNavigationMenu_SwitchesBetweenSiblings(t *testing.T) {
	f := newNavFixture()
	f.h.Frame(f.draw)
	f.h.MoveTo(f.trigger(t, "Getting started"))
	f.h.Wait(f.draw, 300*time.Millisecond)
	settle(t, f.h, f.draw)

	f.h.MoveTo(f.trigger(t, "Components"))
	f.h.Frame(f.draw)
	if !f.open(1) {
		t.Fatal("sibling should open without delay")
	}
	f.h.Frame(f.draw)
	if f.open(0) {
		t.Error("previous panel should close once the sibling is active")
	}
	settle(t, f.h, f.draw)
	if hasText(f.h, "Introduction") || !hasText(f.h, "Alert Dialog") {
		t.Error("panels did not switch")
	}
}

func TestNavigationMenu_ClickTogglesAndLinksReport(t *testing.T) {
	f := newNavFixture()
	f.h.Frame(f.draw)

	f.h.Click(f.trigger(t, "Components"))
	f.h.Frame(f.draw)
	if !f.open(1) {
		t.Fatal("click should open immediately")
	}

	f.h.Click(f.trigger(t, "Docs"))
	f.h.Frame(f.draw)
	if f.clicked != 2 {
		t.Errorf("expected link 2, got %d", f.clicked)
	}
}
