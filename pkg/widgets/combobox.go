package widgets

import (
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Combobox is a button that opens a searchable list of options.
//
// While open, typed text filters the options with fuzzy matching, best
// match first; Backspace edits the query. Up and Down move the highlight;
// Enter or a click selects an option and closes the list.
type Combobox struct {
	// ID identifies the combobox. It must be set.
	ID ui.ID
	// Options are the selectable values.
	Options []string
	// Value is the bound selection. Empty means none.
	Value *string
	// Placeholder is the trigger label without a selection.
	Placeholder string
	// SearchPlaceholder is shown in the empty search field.
	SearchPlaceholder string
	// Width overrides the list width.
	Width float64
}

type comboState struct {
	query     string
	highlight int
}

// ComboMatch is one visible option after filtering.
type ComboMatch struct {
	// Index is the option's position in Options.
	Index int
	// Matched holds the byte offsets of matched characters.
	Matched []int
}

// FilterOptions ranks options against query. An empty query keeps every
// option in order.
func FilterOptions(query string, options []string) []ComboMatch {
	if query == "" {
		out := make([]ComboMatch, len(options))
		for i := range options {
			out[i] = ComboMatch{Index: i}
		}
		return out
	}
	matches := fuzzy.Find(query, options)
	out := make([]ComboMatch, len(matches))
	for i, m := range matches {
		out[i] = ComboMatch{Index: m.Index, Matched: m.MatchedIndexes}
	}
	return out
}

// Show draws the trigger and, while open, the search list. It reports
// whether the selection changed this frame.
func (cb Combobox) Show(u *ui.Ui) (overlay.Result, bool) {
	ctx := u.Ctx()
	th := theme.Of(ctx)
	ct := th.CommandThemeOf()
	mt := th.MenuThemeOf()
	id := cb.ID
	st := ui.Data[comboState](ctx.Memory(), id.With("combo"))
	wasOpen := overlay.IsOpen(ctx, id)

	label := or(cb.Placeholder, "Select...")
	if cb.Value != nil && *cb.Value != "" {
		label = *cb.Value
	}
	width := or(cb.Width, th.Metrics.X(200))

	if wasOpen {
		in := ctx.Input()
		if in.Text != "" || in.Backspace {
			st.query += in.Text
			if in.Backspace && st.query != "" {
				_, size := utf8.DecodeLastRuneInString(st.query)
				st.query = st.query[:len(st.query)-size]
			}
			st.highlight = 0
		}
	}
	matches := FilterOptions(st.query, cb.Options)
	if len(matches) > ct.MaxVisible && ct.MaxVisible > 0 {
		matches = matches[:ct.MaxVisible]
	}
	if wasOpen {
		in := ctx.Input()
		switch {
		case in.Down && len(matches) > 0:
			st.highlight = (st.highlight + 1) % len(matches)
		case in.Up && len(matches) > 0:
			st.highlight = (st.highlight - 1 + len(matches)) % len(matches)
		}
	}

	opts := overlay.Options{
		Behavior:      overlay.Click{},
		SideOffset:    mt.SideOffset,
		Width:         width,
		Duration:      mt.Duration,
		SlideDistance: slide(mt.SlideDistance),
		Surface:       ct.Surface,
	}
	trigger := func(t *ui.Ui) ui.Response {
		return Button{ID: id.With("trigger"), Label: label, Active: wasOpen, Width: width, Trailing: "⇅"}.Show(t)
	}
	res, chosen := overlay.Render(u, id, opts, trigger, func(c *ui.Ui) int {
		return cb.list(c, st, matches, ct, mt)
	})
	if !wasOpen && overlay.IsOpen(ctx, id) {
		st.query = ""
		st.highlight = 0
	}
	// A list that is fading out ignores input.
	if !wasOpen || res.Placeholder || !res.Mounted || chosen < 0 {
		return res, false
	}

	changed := false
	if cb.Value != nil {
		next := cb.Options[chosen]
		if *cb.Value == next {
			next = ""
		}
		changed = *cb.Value != next
		*cb.Value = next
	}
	overlay.SetOpen(ctx, id, false)
	return res, changed
}

func (cb Combobox) list(c *ui.Ui, st *comboState, matches []ComboMatch, ct theme.CommandThemeData, mt theme.MenuThemeData) int {
	style := c.Style()
	width := fillWidth(c, 0)

	// Search field.
	field := c.Allocate(cb.ID.With("search"), sizeOf(width, ct.InputHeight), ui.SenseNone)
	inner := field.Rect.Deflate(mt.ItemPadding)
	if st.query == "" {
		c.Painter().Text(inner, or(cb.SearchPlaceholder, "Search..."), style.FontSize, ct.PlaceholderColor)
	} else {
		c.Painter().Text(inner, st.query, style.FontSize, style.Text)
	}
	c.Painter().FillRect(graphics.RectFromLTWH(field.Rect.Left, field.Rect.Bottom-1, field.Rect.Width(), 1), 0, mt.SeparatorColor)

	if len(matches) == 0 {
		es := measure(c, ct.EmptyText, style.FontSize)
		r := c.Allocate(cb.ID.With("empty"), sizeOf(width, es.Height+mt.ItemPadding.Vertical()*2), ui.SenseNone)
		c.Painter().Text(centered(r.Rect, es), ct.EmptyText, style.FontSize, ct.PlaceholderColor)
		return -1
	}

	chosen := -1
	for i, m := range matches {
		text := cb.Options[m.Index]
		ts := measure(c, mt.CheckMark+" "+text, style.FontSize)
		resp := c.Allocate(cb.ID.With("option").With(m.Index), sizeOf(fillWidth(c, ts.Width+mt.ItemPadding.Horizontal()), ts.Height+mt.ItemPadding.Vertical()), ui.SenseHover.WithClick())
		if resp.Hovered {
			st.highlight = i
		}
		color := mt.TextColor
		if i == st.highlight {
			c.Painter().FillRect(resp.Rect, mt.Surface.Radius/2, mt.HighlightColor)
			color = mt.HighlightTextColor
		}
		r := resp.Rect.Deflate(mt.ItemPadding)
		if cb.Value != nil && *cb.Value == text {
			c.Painter().Text(r, mt.CheckMark, style.FontSize, color)
		}
		r.Left += measure(c, mt.CheckMark+" ", style.FontSize).Width
		c.Painter().Text(r, text, style.FontSize, color)
		for _, b := range m.Matched {
			x := measure(c, text[:b], style.FontSize).Width
			_, n := utf8.DecodeRuneInString(text[b:])
			w := measure(c, text[b:b+n], style.FontSize).Width
			c.Painter().FillRect(graphics.RectFromLTWH(r.Left+x, r.Bottom-1, w, 1), 0, ct.MatchColor)
		}
		if resp.Clicked {
			chosen = m.Index
		}
	}
	if chosen < 0 && c.Ctx().Input().Enter && !c.Measuring() && st.highlight < len(matches) {
		chosen = matches[st.highlight].Index
	}
	return chosen
}
