package raster

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// LineHeight is the line box height as a multiple of the font size.
const LineHeight = 1.25

var face = basicfont.Face7x13

// Measurer sizes text the way Canvas draws it: basicfont cells scaled so
// one cell is LineHeight*size tall.
type Measurer struct{}

// MeasureText implements ui.TextMeasurer.
func (Measurer) MeasureText(text string, size float64) graphics.Size {
	scale := scaleFor(size)
	adv := font.MeasureString(face, text)
	return graphics.Size{
		Width:  fixedToFloat(adv) * scale,
		Height: float64(face.Height) * scale,
	}
}

func scaleFor(size float64) float64 {
	return size * LineHeight / float64(face.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

type textKey struct {
	text string
	size float64
}

const textCacheLimit = 512

// textCache keeps scaled glyph masks between paints; scenes repaint the
// same labels every frame.
type textCache struct {
	masks map[textKey]*image.Alpha
}

func newTextCache() *textCache {
	return &textCache{masks: make(map[textKey]*image.Alpha)}
}

// mask returns an alpha mask of text at font size, or nil when it would
// be smaller than a pixel.
func (t *textCache) mask(text string, size float64) *image.Alpha {
	key := textKey{text: text, size: size}
	if m, ok := t.masks[key]; ok {
		return m
	}

	nw := font.MeasureString(face, text).Ceil()
	scale := scaleFor(size)
	w := int(math.Round(float64(nw) * scale))
	h := int(math.Round(float64(face.Height) * scale))
	if w <= 0 || h <= 0 {
		return nil
	}
	native := image.NewAlpha(image.Rect(0, 0, nw, face.Height))
	d := font.Drawer{
		Dst:  native,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	scaled := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), native, native.Bounds(), draw.Src, nil)

	if len(t.masks) >= textCacheLimit {
		clear(t.masks)
	}
	t.masks[key] = scaled
	return scaled
}
