package theme

import "github.com/go-drift/shadcn/pkg/graphics"

// Metrics are the sizes shared by every component. Component widths are
// written in CSS pixels and converted with X and Y, so the same tables
// serve pixel backends and character-cell terminals.
type Metrics struct {
	// ScaleX and ScaleY convert CSS pixels to backend units.
	ScaleX float64
	ScaleY float64

	FontSize    float64
	Spacing     float64
	Radius      float64
	StrokeWidth float64

	// ControlPadding surrounds button and trigger labels.
	ControlPadding graphics.EdgeInsets
	// ItemPadding surrounds menu items.
	ItemPadding graphics.EdgeInsets
	// SurfacePadding is the inner padding of popovers and cards.
	SurfacePadding graphics.EdgeInsets
	// MenuPadding is the inner padding of menus.
	MenuPadding graphics.EdgeInsets
	// SideOffset is the gap between a trigger and its floating content.
	SideOffset float64
	// SlideDistance is how far floating content slides while opening.
	SlideDistance float64
}

// PixelMetrics are the shadcn defaults in logical pixels.
func PixelMetrics() Metrics {
	return Metrics{
		ScaleX:         1,
		ScaleY:         1,
		FontSize:       14,
		Spacing:        4,
		Radius:         8,
		StrokeWidth:    1,
		ControlPadding: graphics.EdgeInsetsSymmetric(16, 8),
		ItemPadding:    graphics.EdgeInsetsSymmetric(8, 6),
		SurfacePadding: graphics.EdgeInsetsAll(16),
		MenuPadding:    graphics.EdgeInsetsAll(4),
		SideOffset:     4,
		SlideDistance:  8,
	}
}

// TerminalMetrics map one unit to one character cell. A cell is treated
// as 8x16 CSS pixels.
func TerminalMetrics() Metrics {
	return Metrics{
		ScaleX:         1.0 / 8,
		ScaleY:         1.0 / 16,
		FontSize:       1,
		Spacing:        0,
		Radius:         0,
		StrokeWidth:    1,
		ControlPadding: graphics.EdgeInsets{Left: 2, Right: 2, Top: 1, Bottom: 1},
		ItemPadding:    graphics.EdgeInsetsSymmetric(1, 0),
		SurfacePadding: graphics.EdgeInsetsSymmetric(2, 1),
		MenuPadding:    graphics.EdgeInsetsAll(1),
		SideOffset:     0,
		SlideDistance:  1,
	}
}

// X converts a horizontal CSS pixel length.
func (m Metrics) X(px float64) float64 { return px * m.ScaleX }

// Y converts a vertical CSS pixel length.
func (m Metrics) Y(px float64) float64 { return px * m.ScaleY }
