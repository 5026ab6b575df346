package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/ui"
)

type cell struct {
	r    rune
	fg   colorful.Color
	bg   colorful.Color
	wide bool // right half of a double-width rune
}

type cellBuffer struct {
	w, h  int
	cells []cell
}

func (b *cellBuffer) reset(w, h int, bg graphics.Color) {
	b.w, b.h = w, h
	if cap(b.cells) < w*h {
		b.cells = make([]cell, w*h)
	}
	b.cells = b.cells[:w*h]
	base := toColorful(bg)
	for i := range b.cells {
		b.cells[i] = cell{r: ' ', fg: base, bg: base}
	}
}

func (b *cellBuffer) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return nil
	}
	return &b.cells[y*b.w+x]
}

// span converts a rect to the half-open cell range whose centers it covers.
func span(r graphics.Rect) (x0, y0, x1, y1 int) {
	return int(math.Round(r.Left)), int(math.Round(r.Top)), int(math.Round(r.Right)), int(math.Round(r.Bottom))
}

func (b *cellBuffer) clipFor(cmd ui.Command) (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = 0, 0, b.w, b.h
	if cmd.HasClip {
		cx0, cy0, cx1, cy1 := span(cmd.Clip)
		x0, y0 = max(x0, cx0), max(y0, cy0)
		x1, y1 = min(x1, cx1), min(y1, cy1)
	}
	return
}

func (b *cellBuffer) paint(cmd ui.Command) {
	switch cmd.Kind {
	case ui.CommandFill:
		b.fill(cmd)
	case ui.CommandStroke:
		b.stroke(cmd)
	case ui.CommandText:
		b.text(cmd)
	}
}

func (b *cellBuffer) fill(cmd ui.Command) {
	cx0, cy0, cx1, cy1 := b.clipFor(cmd)
	x0, y0, x1, y1 := span(cmd.Rect)
	// Thin fills (underlines, separators) still cover one row or column.
	if y1 == y0 && cmd.Rect.Height() > 0 {
		y1 = y0 + 1
	}
	if x1 == x0 && cmd.Rect.Width() > 0 {
		x1 = x0 + 1
	}
	a := cmd.Color.Alpha()
	col := toColorful(cmd.Color)
	for y := max(y0, cy0); y < min(y1, cy1); y++ {
		for x := max(x0, cx0); x < min(x1, cx1); x++ {
			c := b.at(x, y)
			c.bg = c.bg.BlendRgb(col, a).Clamped()
			if a >= 0.5 && cmd.Rect.Height() > 1 {
				// Mostly opaque surfaces hide what is below.
				c.r = ' '
				c.wide = false
			}
			if cmd.Rect.Height() < 1 && c.r == ' ' {
				c.r = '─'
				c.fg = c.bg.BlendRgb(col, a).Clamped()
			}
		}
	}
}

var (
	squareCorners  = [4]rune{'┌', '┐', '└', '┘'}
	roundedCorners = [4]rune{'╭', '╮', '╰', '╯'}
)

func (b *cellBuffer) stroke(cmd ui.Command) {
	cx0, cy0, cx1, cy1 := b.clipFor(cmd)
	x0, y0, x1, y1 := span(cmd.Rect)
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	corners := squareCorners
	if cmd.Radius > 0 {
		corners = roundedCorners
	}
	a := cmd.Color.Alpha()
	col := toColorful(cmd.Color)
	set := func(x, y int, r rune) {
		if x < cx0 || x >= cx1 || y < cy0 || y >= cy1 {
			return
		}
		if c := b.at(x, y); c != nil {
			c.r = r
			c.wide = false
			c.fg = c.bg.BlendRgb(col, a).Clamped()
		}
	}
	for x := x0 + 1; x < x1-1; x++ {
		set(x, y0, '─')
		set(x, y1-1, '─')
	}
	for y := y0 + 1; y < y1-1; y++ {
		set(x0, y, '│')
		set(x1-1, y, '│')
	}
	set(x0, y0, corners[0])
	set(x1-1, y0, corners[1])
	set(x0, y1-1, corners[2])
	set(x1-1, y1-1, corners[3])
}

func (b *cellBuffer) text(cmd ui.Command) {
	cx0, cy0, cx1, cy1 := b.clipFor(cmd)
	x := int(math.Round(cmd.Rect.Left))
	y := int(math.Round(cmd.Rect.Top))
	if y < cy0 || y >= cy1 {
		return
	}
	a := cmd.Color.Alpha()
	col := toColorful(cmd.Color)
	for _, r := range cmd.Text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= cx1 {
			return
		}
		if x >= cx0 && x+w <= cx1 {
			if c := b.at(x, y); c != nil {
				c.r = r
				c.wide = false
				c.fg = c.bg.BlendRgb(col, a).Clamped()
				if w == 2 {
					if next := b.at(x+1, y); next != nil {
						next.wide = true
						next.bg = c.bg
					}
				}
			}
		}
		x += w
	}
}

func (b *cellBuffer) flush(s tcell.Screen) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			c := b.cells[y*b.w+x]
			if c.wide {
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(c.fg)).Background(toTcell(c.bg))
			s.SetContent(x, y, c.r, nil, style)
		}
	}
}

func toColorful(c graphics.Color) colorful.Color {
	r, g, b := c.RGB8()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
