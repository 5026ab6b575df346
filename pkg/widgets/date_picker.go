package widgets

import (
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// DefaultDateFormat is the trigger label layout of a picked date.
const DefaultDateFormat = "January 2, 2006"

// DatePicker displays a button that opens a month calendar in a popover.
//
// The calendar starts on the month of Value (or today) each time it opens.
// Picking a day sets Value and closes the popover.
//
// Example:
//
//	var due time.Time
//	if _, picked := (widgets.DatePicker{ID: ui.NewID("due"), Value: &due}).Show(u); picked {
//	    save(due)
//	}
type DatePicker struct {
	// ID identifies the picker. It must be set.
	ID ui.ID
	// Value is the bound date. The zero time means no selection.
	Value *time.Time
	// Placeholder is the trigger label without a selection.
	Placeholder string
	// Format is the layout used for the trigger label.
	Format string
	// MinDate and MaxDate bound selectable days, inclusive.
	MinDate *time.Time
	MaxDate *time.Time
	// Today overrides the frame time, e.g. in tests.
	Today time.Time
}

type calendarState struct {
	month time.Time
}

// Show draws the trigger and, while open, the calendar. It reports whether
// a day was picked this frame.
func (d DatePicker) Show(u *ui.Ui) (overlay.Result, bool) {
	ctx := u.Ctx()
	th := theme.Of(ctx)
	pt := th.PopoverThemeOf()
	id := d.ID
	cal := ui.Data[calendarState](ctx.Memory(), id.With("calendar"))
	today := d.Today
	if today.IsZero() {
		today = ctx.Now()
	}
	wasOpen := overlay.IsOpen(ctx, id)

	label := or(d.Placeholder, "Pick a date")
	if d.Value != nil && !d.Value.IsZero() {
		label = d.Value.Format(or(d.Format, DefaultDateFormat))
	}

	opts := overlay.Options{
		Behavior:      overlay.Click{},
		SideOffset:    pt.SideOffset,
		Duration:      pt.Duration,
		SlideDistance: slide(pt.SlideDistance),
		Surface:       pt.Surface,
	}
	trigger := func(t *ui.Ui) ui.Response {
		resp := Button{ID: id.With("trigger"), Label: label, Active: wasOpen}.Show(t)
		if resp.Clicked && !wasOpen {
			cal.month = firstOfMonth(today)
			if d.Value != nil && !d.Value.IsZero() {
				cal.month = firstOfMonth(*d.Value)
			}
		}
		return resp
	}
	if cal.month.IsZero() {
		cal.month = firstOfMonth(today)
	}

	res, picked := overlay.Render(u, id, opts, trigger, func(c *ui.Ui) *time.Time {
		return d.calendar(c, th.CalendarThemeOf(), cal, today)
	})
	if picked == nil {
		return res, false
	}
	if d.Value != nil {
		*d.Value = *picked
	}
	overlay.SetOpen(ctx, id, false)
	return res, true
}

func (d DatePicker) calendar(c *ui.Ui, ct theme.CalendarThemeData, cal *calendarState, today time.Time) *time.Time {
	style := c.Style()
	cell := sizeOf(ct.CellSize, ct.CellSize)
	var picked *time.Time

	c.Horizontal(func(h *ui.Ui) {
		if (Button{ID: d.ID.With("prev"), Label: "‹", Variant: ButtonGhost, Width: ct.CellSize}).Show(h).Clicked {
			cal.month = cal.month.AddDate(0, -1, 0)
		}
		title := cal.month.Format("January 2006")
		ts := measure(h, title, style.FontSize)
		r := h.Allocate(d.ID.With("title"), sizeOf(ct.CellSize*5-2*style.Spacing, ct.CellSize), ui.SenseNone)
		h.Painter().Text(centered(r.Rect, ts), title, style.FontSize, ct.TextColor)
		if (Button{ID: d.ID.With("next"), Label: "›", Variant: ButtonGhost, Width: ct.CellSize}).Show(h).Clicked {
			cal.month = cal.month.AddDate(0, 1, 0)
		}
	})

	grid := MonthGrid(cal.month)
	weekdays := [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	origin := c.Cursor()
	rows := c.Child(d.ID.With("grid"), graphics.RectFromLTWH(origin.X, origin.Y, 7*cell.Width, 7*cell.Height), ui.Vertical)
	for row := -1; row < 6; row++ {
		for col := 0; col < 7; col++ {
			r := graphics.RectFromLTWH(rows.MaxRect().Left+float64(col)*cell.Width,
				rows.MaxRect().Top+float64(row+1)*cell.Height, cell.Width, cell.Height)
			if row < 0 {
				ws := measure(c, weekdays[col], style.FontSize)
				c.Painter().Text(centered(r, ws), weekdays[col], style.FontSize, ct.HeaderColor)
				rows.Advance(r)
				continue
			}
			day := grid[row*7+col]
			if d.dayCell(c, rows, r, day, ct, cal.month, today) {
				picked = &day
			}
		}
	}
	c.Advance(rows.UsedRect())
	return picked
}

func (d DatePicker) dayCell(c, rows *ui.Ui, r graphics.Rect, day time.Time, ct theme.CalendarThemeData, month, today time.Time) bool {
	style := c.Style()
	enabled := d.selectable(day)
	sense := ui.SenseClick
	if !enabled {
		sense = ui.SenseNone
	}
	rows.Advance(r)
	resp := rows.Interact(d.ID.With(day.Format(time.DateOnly)), r, sense)

	p := c.Painter()
	if !enabled {
		p = p.WithAlpha(0.5)
	}
	color := ct.TextColor
	if day.Month() != month.Month() {
		color = ct.OutsideTextColor
	}
	switch {
	case d.Value != nil && sameDay(day, *d.Value):
		p.FillRect(r, style.Radius, ct.SelectedColor)
		color = ct.SelectedTextColor
	case resp.Hovered || sameDay(day, today):
		p.FillRect(r, style.Radius, ct.TodayColor)
	}
	label := day.Format("2")
	p.Text(centered(r, measure(c, label, style.FontSize)), label, style.FontSize, color)
	return resp.Clicked && enabled
}

func (d DatePicker) selectable(day time.Time) bool {
	if d.MinDate != nil && day.Before(startOfDay(*d.MinDate)) {
		return false
	}
	if d.MaxDate != nil && day.After(startOfDay(*d.MaxDate)) {
		return false
	}
	return true
}

// MonthGrid returns the 42 days of a six-week calendar page for month's
// month, starting on the Sunday on or before the first.
func MonthGrid(month time.Time) [42]time.Time {
	first := firstOfMonth(month)
	start := first.AddDate(0, 0, -int(first.Weekday()))
	var grid [42]time.Time
	for i := range grid {
		grid[i] = start.AddDate(0, 0, i)
	}
	return grid
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// centered returns a rect of size s centered in r.
func centered(r graphics.Rect, s graphics.Size) graphics.Rect {
	c := r.Center()
	return graphics.RectFromLTWH(c.X-s.Width/2, c.Y-s.Height/2, s.Width, s.Height)
}
