package widgets

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// MenuItem is one entry of a [DropdownMenu] or [ContextMenu].
type MenuItem struct {
	// Label is the text shown for the item.
	Label string
	// Shortcut is a hint drawn at the trailing edge, e.g. "⌘S".
	Shortcut string
	// Disabled items are drawn faded and cannot be selected.
	Disabled bool
	// Checked draws the theme's check mark before the label.
	Checked bool
	// Destructive draws the label in the destructive color.
	Destructive bool
	// Separator draws a rule instead of an item.
	Separator bool
	// Heading draws a non-selectable group label.
	Heading bool
}

func (m MenuItem) selectable() bool {
	return !m.Disabled && !m.Separator && !m.Heading
}

// Separator is a convenience MenuItem drawing a rule.
func Separator() MenuItem { return MenuItem{Separator: true} }

// menuState tracks keyboard navigation inside an open menu.
type menuState struct {
	highlight int
	keyboard  bool
}

// showMenuItems draws items into c and returns the index chosen this
// frame, or -1. Up and Down move a keyboard highlight; Enter chooses it.
// Nothing is chosen unless active, which callers pass as whether the menu
// was open when the frame began, so a fading menu ignores input.
func showMenuItems(c *ui.Ui, id ui.ID, items []MenuItem, mt theme.MenuThemeData, minWidth float64, active bool) int {
	ctx := c.Ctx()
	style := c.Style()
	st := ui.Data[menuState](ctx.Memory(), id.With("menu"))
	if active && !c.Measuring() {
		navigateMenu(ctx.Input(), st, items)
	}

	checkCol := 0.0
	for _, it := range items {
		if it.Checked {
			checkCol = measure(c, mt.CheckMark+" ", style.FontSize).Width
			break
		}
	}

	natural := minWidth - mt.Surface.Padding.Horizontal()
	for _, it := range items {
		w := checkCol + measure(c, it.Label, style.FontSize).Width + mt.ItemPadding.Horizontal()
		if it.Shortcut != "" {
			w += measure(c, "  "+it.Shortcut, style.FontSize).Width
		}
		natural = math.Max(natural, w)
	}
	width := fillWidth(c, natural)

	chosen := -1
	for i, it := range items {
		itemID := id.With(i)
		switch {
		case it.Separator:
			r := c.Allocate(itemID, graphics.Size{Width: width, Height: math.Max(style.StrokeWidth, 1)}, ui.SenseNone)
			c.Painter().FillRect(r.Rect, 0, mt.SeparatorColor)
		case it.Heading:
			text := measure(c, it.Label, style.FontSize)
			r := c.Allocate(itemID, graphics.Size{Width: width, Height: text.Height + mt.ItemPadding.Vertical()}, ui.SenseNone)
			inner := r.Rect.Deflate(mt.ItemPadding)
			c.Painter().Text(inner, it.Label, style.FontSize, mt.LabelColor)
		default:
			if menuItem(c, itemID, it, i, st, mt, width, checkCol) && active {
				chosen = i
			}
		}
	}
	if chosen < 0 && active && st.keyboard && ctx.Input().Enter && !c.Measuring() &&
		st.highlight >= 0 && st.highlight < len(items) && items[st.highlight].selectable() {
		chosen = st.highlight
	}
	return chosen
}

func menuItem(c *ui.Ui, id ui.ID, it MenuItem, index int, st *menuState, mt theme.MenuThemeData, width, checkCol float64) bool {
	style := c.Style()
	text := measure(c, it.Label, style.FontSize)
	sense := ui.SenseHover.WithClick()
	if it.Disabled {
		sense = ui.SenseHover
	}
	r := c.Allocate(id, graphics.Size{Width: width, Height: text.Height + mt.ItemPadding.Vertical()}, sense)
	if r.Hovered && it.selectable() {
		st.highlight = index
		st.keyboard = false
	}

	p := c.Painter()
	color := mt.TextColor
	switch {
	case it.Disabled:
		color = mt.DisabledTextColor
	case it.Destructive:
		color = mt.DestructiveColor
	}
	if it.selectable() && st.highlight == index && (r.Hovered || st.keyboard) {
		p.FillRect(r.Rect, mt.Surface.Radius/2, mt.HighlightColor)
		if !it.Destructive {
			color = mt.HighlightTextColor
		}
	}

	inner := r.Rect.Deflate(mt.ItemPadding)
	if it.Checked {
		p.Text(inner, mt.CheckMark, style.FontSize, color)
	}
	p.Text(graphics.RectFromLTWH(inner.Left+checkCol, inner.Top, text.Width, text.Height), it.Label, style.FontSize, color)
	if it.Shortcut != "" {
		sw := measure(c, it.Shortcut, style.FontSize).Width
		p.Text(graphics.Rect{Left: inner.Right - sw, Top: inner.Top, Right: inner.Right, Bottom: inner.Bottom},
			it.Shortcut, style.FontSize, mt.ShortcutColor)
	}
	return r.Clicked && it.selectable()
}

func navigateMenu(in ui.Input, st *menuState, items []MenuItem) {
	step := 0
	switch {
	case in.Down:
		step = 1
	case in.Up:
		step = -1
	default:
		return
	}
	if !st.keyboard {
		st.keyboard = true
		if step < 0 {
			st.highlight = len(items)
		} else {
			st.highlight = -1
		}
	}
	for i, n := st.highlight+step, 0; n < len(items); i, n = i+step, n+1 {
		i = (i%len(items) + len(items)) % len(items)
		if items[i].selectable() {
			st.highlight = i
			return
		}
	}
}

// resetMenu clears keyboard navigation so the next open starts fresh.
func resetMenu(ctx *ui.Context, id ui.ID) {
	st := ui.Data[menuState](ctx.Memory(), id.With("menu"))
	st.highlight = -1
	st.keyboard = false
}
