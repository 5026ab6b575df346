package widgets_test

import (
	"testing"
	"time"

	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/ui"
	"github.com/go-drift/shadcn/pkg/widgets"
)

// --- DatePicker tests ---

func TestDatePicker_NavigateAndPick(t *testing.T) {
	h := newHarness()
	id := ui.NewID("due")
	today := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	var value time.Time
	picked := false
	draw := func(u *ui.Ui) {
		_, picked = widgets.DatePicker{ID: id, Value: &value, Today: today}.Show(u)
	}
	h.Frame(draw)
	clickText(t, h, "Pick a date", draw)
	settle(t, h, draw)
	if !hasText(h, "January 2024") {
		t.Fatal("calendar should start on today's month")
	}

	clickText(t, h, "›", draw)
	if !hasText(h, "February 2024") {
		t.Fatal("next did not advance the month")
	}

	clickText(t, h, "14", draw)
	if !picked {
		t.Fatal("expected a pick")
	}
	want := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	if !value.Equal(want) {
		t.Errorf("value = %v, want %v", value, want)
	}
	if overlay.IsOpen(h.Context(), id) {
		t.Error("picking a day should close the calendar")
	}
	settle(t, h, draw)
	if !hasText(h, "February 14, 2024") {
		t.Error("trigger should show the picked date")
	}
}

func TestDatePicker_OpensOnSelectedMonth(t *testing.T) {
	h := newHarness()
	value := time.Date(2023, time.July, 4, 0, 0, 0, 0, time.UTC)
	draw := func(u *ui.Ui) {
		widgets.DatePicker{ID: ui.NewID("d"), Value: &value, Today: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}.Show(u)
	}
	h.Frame(draw)
	clickText(t, h, "July 4, 2023", draw)
	settle(t, h, draw)
	if !hasText(h, "July 2023") {
		t.Error("calendar should open on the selected month")
	}
}

func TestDatePicker_MinDateDisablesEarlierDays(t *testing.T) {
	h := newHarness()
	var value time.Time
	minDate := time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
	draw := func(u *ui.Ui) {
		widgets.DatePicker{ID: ui.NewID("d"), Value: &value, MinDate: &minDate, Today: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}.Show(u)
	}
	h.Frame(draw)
	clickText(t, h, "Pick a date", draw)
	settle(t, h, draw)

	clickText(t, h, "18", draw)
	if !value.IsZero() {
		t.Errorf("disabled day was picked: %v", value)
	}
}

func TestMonthGrid(t *testing.T) {
	grid := widgets.MonthGrid(time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC))
	cases := []struct {
		i    int
		want time.Time
	}{
		{0, time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)},
		{4, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)},
		{32, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{41, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if !grid[tc.i].Equal(tc.want) {
			t.Errorf("grid[%d] = %v, want %v", tc.i, grid[tc.i], tc.want)
		}
	}
	if grid[0].Weekday() != time.Sunday {
		t.Errorf("grid should start on Sunday, got %v", grid[0].Weekday())
	}
}
