// Package raster paints ui display lists into in-memory RGBA images.
//
// It is the software host used by the CLI render command and by golden
// tests: fills and strokes go through golang.org/x/image/vector, text uses
// the basicfont bitmap face scaled to the requested size.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Canvas is a fixed-size RGBA target.
type Canvas struct {
	img  *image.RGBA
	rast *vector.Rasterizer
	text *textCache
}

// NewCanvas returns a transparent canvas of width x height pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
		rast: vector.NewRasterizer(0, 0),
		text: newTextCache(),
	}
}

// Image returns the backing image. It is reused by later paints.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Bounds returns the canvas rect in ui coordinates.
func (c *Canvas) Bounds() graphics.Rect {
	b := c.img.Bounds()
	return graphics.RectFromLTWH(0, 0, float64(b.Dx()), float64(b.Dy()))
}

// Clear fills the whole canvas with col.
func (c *Canvas) Clear(col graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(toRGBA(col)), image.Point{}, draw.Src)
}

// Paint replays list in paint order.
func (c *Canvas) Paint(list *ui.DisplayList) {
	for _, cmd := range list.Sorted() {
		c.paintCommand(cmd)
	}
}

func (c *Canvas) paintCommand(cmd ui.Command) {
	region := pixelRect(cmd.Rect)
	var mask *image.Alpha
	if cmd.Kind == ui.CommandText {
		if mask = c.text.mask(cmd.Text, cmd.FontSize); mask == nil {
			return
		}
		origin := image.Pt(int(math.Round(cmd.Rect.Left)), int(math.Round(cmd.Rect.Top)))
		region = mask.Bounds().Add(origin)
	}
	region = region.Intersect(c.img.Bounds())
	if cmd.HasClip {
		region = region.Intersect(pixelRect(cmd.Clip))
	}
	if region.Empty() {
		return
	}

	src := image.NewUniform(toRGBA(cmd.Color))
	switch cmd.Kind {
	case ui.CommandFill:
		c.rast.Reset(region.Dx(), region.Dy())
		roundedRect(c.rast, cmd.Rect, cmd.Radius, region.Min, false)
		c.rast.Draw(c.img, region, src, image.Point{})
	case ui.CommandStroke:
		c.rast.Reset(region.Dx(), region.Dy())
		roundedRect(c.rast, cmd.Rect, cmd.Radius, region.Min, false)
		w := cmd.StrokeWidth
		inner := cmd.Rect.Deflate(graphics.EdgeInsetsAll(w))
		if !inner.IsEmpty() {
			roundedRect(c.rast, inner, math.Max(cmd.Radius-w, 0), region.Min, true)
		}
		c.rast.Draw(c.img, region, src, image.Point{})
	case ui.CommandText:
		origin := image.Pt(int(math.Round(cmd.Rect.Left)), int(math.Round(cmd.Rect.Top)))
		draw.DrawMask(c.img, region, src, image.Point{}, mask, region.Min.Sub(origin), draw.Over)
	}
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return errors.Wrap("raster.EncodePNG", errors.KindRender, err)
	}
	return nil
}

// WritePNG writes the canvas to a PNG file at path.
func (c *Canvas) WritePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return &errors.Error{Op: "raster.WritePNG", Kind: errors.KindRender, Err: err, Path: path}
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = &errors.Error{Op: "raster.WritePNG", Kind: errors.KindRender, Err: cerr, Path: path}
		}
	}()
	return c.EncodePNG(f)
}

// pixelRect rounds r outwards to whole pixels.
func pixelRect(r graphics.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Left)), int(math.Floor(r.Top)),
		int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom)),
	)
}

func toRGBA(c graphics.Color) color.RGBA {
	n := c.NRGBA()
	return color.RGBAModel.Convert(n).(color.RGBA)
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// roundedRect adds r as a closed path relative to origin. reverse winds the
// path counter-clockwise so it cuts a hole into an earlier clockwise path.
func roundedRect(z *vector.Rasterizer, r graphics.Rect, radius float64, origin image.Point, reverse bool) {
	radius = math.Min(math.Max(radius, 0), math.Min(r.Width(), r.Height())/2)
	ox, oy := float64(origin.X), float64(origin.Y)
	l, t := float32(r.Left-ox), float32(r.Top-oy)
	rr, b := float32(r.Right-ox), float32(r.Bottom-oy)
	rad := float32(radius)
	k := rad * (1 - kappa)

	if rad == 0 {
		if reverse {
			z.MoveTo(l, t)
			z.LineTo(l, b)
			z.LineTo(rr, b)
			z.LineTo(rr, t)
		} else {
			z.MoveTo(l, t)
			z.LineTo(rr, t)
			z.LineTo(rr, b)
			z.LineTo(l, b)
		}
		z.ClosePath()
		return
	}

	if reverse {
		z.MoveTo(l+rad, t)
		z.CubeTo(l+k, t, l, t+k, l, t+rad)
		z.LineTo(l, b-rad)
		z.CubeTo(l, b-k, l+k, b, l+rad, b)
		z.LineTo(rr-rad, b)
		z.CubeTo(rr-k, b, rr, b-k, rr, b-rad)
		z.LineTo(rr, t+rad)
		z.CubeTo(rr, t+k, rr-k, t, rr-rad, t)
		z.ClosePath()
		return
	}
	z.MoveTo(l+rad, t)
	z.LineTo(rr-rad, t)
	z.CubeTo(rr-k, t, rr, t+k, rr, t+rad)
	z.LineTo(rr, b-rad)
	z.CubeTo(rr, b-k, rr-k, b, rr-rad, b)
	z.LineTo(l+rad, b)
	z.CubeTo(l+k, b, l, b-k, l, b-rad)
	z.LineTo(l, t+rad)
	z.CubeTo(l, t+k, l+k, t, l+rad, t)
	z.ClosePath()
}
