package ui

import "github.com/go-drift/shadcn/pkg/graphics"

// Style holds the handful of values the built-in widgets need. Themes
// produce one with theme.ThemeData.Style.
type Style struct {
	FontSize      float64
	Spacing       float64
	ButtonPadding graphics.EdgeInsets
	Radius        float64
	StrokeWidth   float64

	Text       graphics.Color
	MutedText  graphics.Color
	Background graphics.Color
	Surface    graphics.Color
	Hover      graphics.Color
	Border     graphics.Color
	Ring       graphics.Color
}

// DefaultStyle is a neutral light style in logical pixels.
func DefaultStyle() Style {
	return Style{
		FontSize:      14,
		Spacing:       4,
		ButtonPadding: graphics.EdgeInsetsSymmetric(12, 6),
		Radius:        6,
		StrokeWidth:   1,
		Text:          graphics.RGB(9, 9, 11),
		MutedText:     graphics.RGB(113, 113, 122),
		Background:    graphics.ColorWhite,
		Surface:       graphics.ColorWhite,
		Hover:         graphics.RGB(244, 244, 245),
		Border:        graphics.RGB(228, 228, 231),
		Ring:          graphics.RGB(161, 161, 170),
	}
}
