package widgets_test

import (
	"testing"

	"github.com/go-drift/shadcn/pkg/overlay"
	uitest "github.com/go-drift/shadcn/pkg/testing"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

var menuItems = []widgets.MenuItem{
	{Label: "Profile", Shortcut: "⇧⌘P"},
	{Label: "Settings"},
	{Label: "Billing", Disabled: true},
	widgets.Separator(),
	{Label: "Log out", Destructive: true},
}

type menuFixture struct {
	h      *uitest.Harness
	id     ui.ID
	chosen []int
}

func newMenuFixture() *menuFixture {
	return &menuFixture{h: newHarness(), id: ui.NewID("menu")}
}

func (f *menuFixture) draw(u *ui.Ui) {
	_, i := widgets.DropdownMenu{ID: f.id, Label: "Options", Items: menuItems}.Show(u)
	if i >= 0 {
		f.chosen = append(f.chosen, i)
	}
}

func (f *menuFixture) open(t *testing.T) {
	t.Helper()
	f.h.Frame(f.draw)
	clickText(t, f.h, "Options", f.draw)
	settle(t, f.h, f.draw)
	if !overlay.IsOpen(f.h.Context(), f.id) {
		t.Fatal("menu did not open")
	}
}

// --- DropdownMenu tests ---

func TestDropdownMenu_ClickSelectsAndCloses(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	clickText(t, f.h, "Settings", f.draw)
	if len(f.chosen) != 1 || f.chosen[0] != 1 {
		t.Fatalf("expected item 1 selected once, got %v", f.chosen)
	}
	if overlay.IsOpen(f.h.Context(), f.id) {
		t.Error("selecting an item should close the menu")
	}
	settle(t, f.h, f.draw)
	if hasText(f.h, "Settings") {
		t.Error("menu still painted after closing")
	}
}

func TestDropdownMenu_DisabledItemIgnored(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	clickText(t, f.h, "Billing", f.draw)
	if len(f.chosen) != 0 {
		t.Fatalf("disabled item selected: %v", f.chosen)
	}
	if !overlay.IsOpen(f.h.Context(), f.id) {
		t.Error("press on a disabled item is inside the menu and must not close it")
	}
}

func TestDropdownMenu_KeyboardNavigationSkipsDisabled(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	for range 3 {
		f.h.Press(uitest.KeyDown)
		f.h.Frame(f.draw)
	}
	f.h.Press(uitest.KeyEnter)
	f.h.Frame(f.draw)

	// Profile, Settings, then Log out: Billing and the separator are skipped.
	if len(f.chosen) != 1 || f.chosen[0] != 4 {
		t.Fatalf("expected item 4, got %v", f.chosen)
	}
}

func TestDropdownMenu_KeyboardWrapsUpward(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	f.h.Press(uitest.KeyUp)
	f.h.Frame(f.draw)
	f.h.Press(uitest.KeyEnter)
	f.h.Frame(f.draw)

	if len(f.chosen) != 1 || f.chosen[0] != 4 {
		t.Fatalf("Up from nothing should land on the last item, got %v", f.chosen)
	}
}

func TestDropdownMenu_ShortcutTrailing(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	label := textRect(t, f.h, "Profile")
	shortcut := textRect(t, f.h, "⇧⌘P")
	if shortcut.Left <= label.Right {
		t.Errorf("shortcut %+v should sit right of the label %+v", shortcut, label)
	}
}

func TestDropdownMenu_ClosingMenuIgnoresInput(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	clickText(t, f.h, "Settings", f.draw)
	if len(f.chosen) != 1 {
		t.Fatalf("expected one selection, got %v", f.chosen)
	}

	// The menu is still fading out and painted; clicks land on it.
	if !hasText(f.h, "Log out") {
		t.Fatal("expected the closing menu to still be painted")
	}
	clickText(t, f.h, "Log out", f.draw)
	if len(f.chosen) != 1 {
		t.Errorf("click on a closing menu selected %v", f.chosen)
	}
}

func TestDropdownMenu_EnterAfterPickDoesNotRepeat(t *testing.T) {
	f := newMenuFixture()
	f.open(t)

	f.h.Press(uitest.KeyDown)
	f.h.Frame(f.draw)
	f.h.Press(uitest.KeyEnter)
	f.h.Frame(f.draw)
	if len(f.chosen) != 1 || f.chosen[0] != 0 {
		t.Fatalf("expected item 0, got %v", f.chosen)
	}

	f.h.Press(uitest.KeyEnter)
	f.h.Frame(f.draw)
	if len(f.chosen) != 1 {
		t.Errorf("second Enter fired the item again: %v", f.chosen)
	}
}
