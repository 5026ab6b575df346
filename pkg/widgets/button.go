package widgets

import (
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// ButtonVariant selects a button's color scheme.
type ButtonVariant int

const (
	// ButtonOutline is a bordered button on the background color. It is the
	// default trigger style.
	ButtonOutline ButtonVariant = iota
	// ButtonDefault is filled with the primary color.
	ButtonDefault
	// ButtonSecondary is filled with the secondary color.
	ButtonSecondary
	// ButtonGhost has no fill until hovered.
	ButtonGhost
	// ButtonDestructive is filled with the destructive color.
	ButtonDestructive
)

// Button is a clickable label with theme-aware styling.
//
// Button uses colors from the current theme's palette and the padding
// and radius of its [theme.ButtonThemeData].
//
// Example:
//
//	if (widgets.Button{Label: "Save", Variant: widgets.ButtonDefault}).Show(u).Clicked {
//	    save()
//	}
type Button struct {
	// ID identifies the button. Zero derives one from the region and Label.
	ID ui.ID
	// Label is the text displayed on the button.
	Label string
	// Variant selects the color scheme.
	Variant ButtonVariant
	// Disabled draws the button faded and ignores the pointer.
	Disabled bool
	// Active paints the hover fill, e.g. while the button's menu is open.
	Active bool
	// Width sets a fixed width (0 sizes to the label).
	Width float64
	// Trailing is drawn after the label, e.g. a chevron.
	Trailing string
}

type buttonColors struct {
	fill, hover, text, border graphics.Color
}

func (b Button) colors(p theme.Palette, bt theme.ButtonThemeData) buttonColors {
	switch b.Variant {
	case ButtonDefault:
		return buttonColors{p.Primary, p.Primary.MultiplyAlpha(0.9), p.PrimaryForeground, graphics.ColorTransparent}
	case ButtonSecondary:
		return buttonColors{p.Secondary, p.Secondary.MultiplyAlpha(0.8), p.SecondaryForeground, graphics.ColorTransparent}
	case ButtonGhost:
		return buttonColors{graphics.ColorTransparent, p.Accent, p.Foreground, graphics.ColorTransparent}
	case ButtonDestructive:
		return buttonColors{p.Destructive, p.Destructive.MultiplyAlpha(0.9), p.DestructiveForeground, graphics.ColorTransparent}
	default:
		return buttonColors{bt.BackgroundColor, bt.HoverColor, bt.ForegroundColor, bt.BorderColor}
	}
}

// Show draws the button and reports interaction with it.
func (b Button) Show(u *ui.Ui) ui.Response {
	th := theme.Of(u.Ctx())
	bt := th.ButtonThemeOf()
	col := b.colors(th.Palette, bt)
	style := u.Style()

	label := b.Label
	if b.Trailing != "" {
		label += " " + b.Trailing
	}
	text := measure(u, label, style.FontSize)
	size := graphics.Size{
		Width:  text.Width + bt.Padding.Horizontal(),
		Height: text.Height + bt.Padding.Vertical(),
	}
	if b.Width > 0 {
		size.Width = b.Width
	}
	sense := ui.SenseClick
	if b.Disabled {
		sense = ui.SenseNone
	}
	resp := u.Allocate(idFor(u, b.ID, b.Label), size, sense)

	p := u.Painter()
	if b.Disabled {
		p = p.WithAlpha(0.5)
	}
	fill := col.fill
	if resp.Hovered || b.Active {
		fill = col.hover
	}
	p.FillRect(resp.Rect, bt.BorderRadius, fill)
	border := col.border
	if resp.HasFocus {
		border = th.Palette.Ring
	}
	p.StrokeRect(resp.Rect, bt.BorderRadius, style.StrokeWidth, border)
	p.Text(resp.Rect.Deflate(bt.Padding), label, style.FontSize, col.text)
	return resp
}
