package widgets

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

// fillWidth returns the width left in u, or natural when u is unbounded
// (as during a measure pass) or narrower than natural.
func fillWidth(u *ui.Ui, natural float64) float64 {
	avail := u.Available().Width
	if math.IsInf(avail, 0) || math.IsNaN(avail) {
		return natural
	}
	return math.Max(natural, avail)
}

// measure returns the size of text at the context font size.
func measure(u *ui.Ui, text string, size float64) graphics.Size {
	if size <= 0 {
		size = u.Style().FontSize
	}
	return u.Ctx().Measurer().MeasureText(text, size)
}

// idFor returns id, or an ID derived from u and label when id is zero.
func idFor(u *ui.Ui, id ui.ID, label string) ui.ID {
	if id != 0 {
		return id
	}
	return u.ID().With(label)
}

// slide maps a theme slide distance onto overlay.Options, where zero means
// the overlay default.
func slide(d float64) float64 {
	if d <= 0 {
		return -1
	}
	return d
}

// or returns v, or def when v is zero.
func or[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// unit adapts a content closure to overlay.Render's result type.
func unit(fn func(*ui.Ui)) func(*ui.Ui) struct{} {
	return func(c *ui.Ui) struct{} {
		if fn != nil {
			fn(c)
		}
		return struct{}{}
	}
}

func sizeOf(w, h float64) graphics.Size {
	return graphics.Size{Width: w, Height: h}
}
