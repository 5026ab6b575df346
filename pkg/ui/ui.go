package ui

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// Direction is the axis a region's cursor advances along.
type Direction int

const (
	Vertical Direction = iota
	Horizontal
)

// Sense selects which interactions Interact reports.
type Sense struct {
	Hover bool
	Click bool
	Focus bool
}

var (
	// SenseNone reports nothing.
	SenseNone = Sense{}
	// SenseHover reports hovering only.
	SenseHover = Sense{Hover: true}
	// SenseClick reports hover, clicks and takes part in keyboard focus.
	SenseClick = Sense{Hover: true, Click: true, Focus: true}
)

// WithClick returns s with click sensing added.
func (s Sense) WithClick() Sense {
	s.Click = true
	return s
}

// Response is what a widget learns about its rect this frame.
type Response struct {
	ID               ID
	Rect             graphics.Rect
	Hovered          bool
	Clicked          bool
	SecondaryClicked bool
	HasFocus         bool
}

// Ui is a layout region. Widgets allocate space from its cursor, which moves
// down (Vertical) or right (Horizontal) after each allocation.
type Ui struct {
	ctx     *Context
	id      ID
	max     graphics.Rect
	cursor  graphics.Offset
	used    graphics.Rect
	hasUsed bool
	dir     Direction
	painter Painter

	area   ID
	inArea bool

	measuring bool
}

func (c *Context) newUi(id ID, max graphics.Rect, dir Direction, p Painter) *Ui {
	return &Ui{
		ctx:     c,
		id:      id,
		max:     max,
		cursor:  max.Origin(),
		dir:     dir,
		painter: p,
	}
}

func (u *Ui) child(id ID, max graphics.Rect, dir Direction) *Ui {
	c := u.ctx.newUi(id, max, dir, u.painter)
	c.area = u.area
	c.inArea = u.inArea
	c.measuring = u.measuring
	return c
}

// Ctx returns the owning context.
func (u *Ui) Ctx() *Context { return u.ctx }

// ID returns the region's ID. Child IDs are usually derived from it.
func (u *Ui) ID() ID { return u.id }

// Style returns the context style.
func (u *Ui) Style() Style { return u.ctx.style }

// Painter returns the region's painter.
func (u *Ui) Painter() Painter { return u.painter }

// SetPainter replaces the region's painter, e.g. to apply alpha or a clip.
func (u *Ui) SetPainter(p Painter) { u.painter = p }

// Layer returns the layer the region paints on.
func (u *Ui) Layer() Layer { return u.painter.layer }

// Measuring reports whether the region is part of a Measure pass.
func (u *Ui) Measuring() bool { return u.measuring }

// MaxRect returns the region's bounds.
func (u *Ui) MaxRect() graphics.Rect { return u.max }

// Cursor returns where the next allocation starts.
func (u *Ui) Cursor() graphics.Offset { return u.next() }

// Available returns the space left from the cursor to the region's edges.
func (u *Ui) Available() graphics.Size {
	p := u.next()
	return graphics.Size{
		Width:  math.Max(0, u.max.Right-p.X),
		Height: math.Max(0, u.max.Bottom-p.Y),
	}
}

// UsedRect returns the bounding box of everything allocated so far, or a
// zero-size rect at the region's origin.
func (u *Ui) UsedRect() graphics.Rect {
	if !u.hasUsed {
		return graphics.RectFromOffsetSize(u.max.Origin(), graphics.Size{})
	}
	return u.used
}

func (u *Ui) next() graphics.Offset {
	if !u.hasUsed {
		return u.cursor
	}
	gap := u.ctx.style.Spacing
	if u.dir == Horizontal {
		return graphics.Offset{X: u.cursor.X + gap, Y: u.cursor.Y}
	}
	return graphics.Offset{X: u.cursor.X, Y: u.cursor.Y + gap}
}

// Advance marks r as used and moves the cursor past it.
func (u *Ui) Advance(r graphics.Rect) {
	if u.hasUsed {
		u.used = u.used.Union(r)
	} else {
		u.used = r
		u.hasUsed = true
	}
	if u.dir == Horizontal {
		u.cursor = graphics.Offset{X: r.Right, Y: u.max.Top}
	} else {
		u.cursor = graphics.Offset{X: u.max.Left, Y: r.Bottom}
	}
}

// Allocate reserves size at the cursor and reports interaction on it.
func (u *Ui) Allocate(id ID, size graphics.Size, sense Sense) Response {
	r := graphics.RectFromOffsetSize(u.next(), graphics.Size{
		Width:  math.Max(0, size.Width),
		Height: math.Max(0, size.Height),
	})
	u.Advance(r)
	return u.Interact(id, r, sense)
}

// Interact reports interaction on an arbitrary rect without allocating it.
func (u *Ui) Interact(id ID, r graphics.Rect, sense Sense) Response {
	resp := Response{ID: id, Rect: r}
	if u.measuring {
		return resp
	}
	in := u.ctx.input
	if (sense.Hover || sense.Click) && u.pointerOver(r) {
		resp.Hovered = true
		if sense.Click {
			resp.Clicked = in.PrimaryClicked
			resp.SecondaryClicked = in.SecondaryClicked
		}
	}
	if sense.Focus {
		u.ctx.registerFocusable(id)
		if resp.Clicked {
			u.ctx.Focus(id)
		}
		resp.HasFocus = u.ctx.HasFocus(id)
		if resp.HasFocus && sense.Click && in.Enter {
			resp.Clicked = true
		}
	}
	return resp
}

// PointerOver reports whether the pointer is over r and not covered by a
// floating area painted above this region.
func (u *Ui) PointerOver(r graphics.Rect) bool {
	if u.measuring {
		return false
	}
	return u.pointerOver(r)
}

func (u *Ui) pointerOver(r graphics.Rect) bool {
	in := u.ctx.input
	if !in.PointerIn(r) {
		return false
	}
	if u.painter.hasClip && !u.painter.clip.Contains(in.Pointer) {
		return false
	}
	return !u.ctx.occluded(in.Pointer, u.painter.layer, u.area, u.inArea)
}

// Space advances the cursor by amount.
func (u *Ui) Space(amount float64) {
	p := u.cursor
	if u.hasUsed {
		p = u.next()
	}
	var r graphics.Rect
	if u.dir == Horizontal {
		r = graphics.RectFromLTWH(p.X, u.max.Top, math.Max(0, amount), 0)
	} else {
		r = graphics.RectFromLTWH(u.max.Left, p.Y, 0, math.Max(0, amount))
	}
	u.Advance(r)
}

// Label draws text in the style's text color.
func (u *Ui) Label(text string) Response {
	return u.ColoredLabel(text, u.ctx.style.Text)
}

// ColoredLabel draws text in color.
func (u *Ui) ColoredLabel(text string, color graphics.Color) Response {
	s := u.ctx.style
	size := u.ctx.measurer.MeasureText(text, s.FontSize)
	resp := u.Allocate(u.id.With(text), size, SenseHover)
	u.painter.Text(resp.Rect, text, s.FontSize, color)
	return resp
}

// Button draws a bordered button labelled text.
func (u *Ui) Button(text string) Response {
	return u.ButtonID(u.id.With(text), text)
}

// ButtonID is Button with an explicit ID, for repeated labels.
func (u *Ui) ButtonID(id ID, text string) Response {
	s := u.ctx.style
	textSize := u.ctx.measurer.MeasureText(text, s.FontSize)
	size := graphics.Size{
		Width:  textSize.Width + s.ButtonPadding.Horizontal(),
		Height: textSize.Height + s.ButtonPadding.Vertical(),
	}
	resp := u.Allocate(id, size, SenseClick)
	fill := s.Surface
	if resp.Hovered {
		fill = s.Hover
	}
	u.painter.FillRect(resp.Rect, s.Radius, fill)
	border := s.Border
	if resp.HasFocus {
		border = s.Ring
	}
	u.painter.StrokeRect(resp.Rect, s.Radius, s.StrokeWidth, border)
	u.painter.Text(resp.Rect.Deflate(s.ButtonPadding), text, s.FontSize, s.Text)
	return resp
}

// Separator draws a rule across the region.
func (u *Ui) Separator() {
	s := u.ctx.style
	thickness := math.Max(s.StrokeWidth, 1)
	p := u.next()
	var r graphics.Rect
	if u.dir == Horizontal {
		r = graphics.RectFromLTWH(p.X, u.max.Top, thickness, u.usedExtent())
	} else {
		r = graphics.RectFromLTWH(u.max.Left, p.Y, u.usedWidth(), thickness)
	}
	u.Advance(r)
	u.painter.FillRect(r, 0, s.Border)
}

func (u *Ui) usedWidth() float64 {
	w := u.max.Width()
	if math.IsInf(w, 0) || math.IsNaN(w) {
		return u.UsedRect().Width()
	}
	return w
}

func (u *Ui) usedExtent() float64 {
	h := u.max.Height()
	if math.IsInf(h, 0) || math.IsNaN(h) {
		return u.UsedRect().Height()
	}
	return h
}

// Horizontal lays out fn left to right at the cursor.
func (u *Ui) Horizontal(fn func(*Ui)) graphics.Rect {
	return u.nested(Horizontal, fn)
}

// Vertical lays out fn top to bottom at the cursor.
func (u *Ui) Vertical(fn func(*Ui)) graphics.Rect {
	return u.nested(Vertical, fn)
}

func (u *Ui) nested(dir Direction, fn func(*Ui)) graphics.Rect {
	p := u.next()
	max := graphics.Rect{Left: p.X, Top: p.Y, Right: u.max.Right, Bottom: u.max.Bottom}
	c := u.child(u.id.With(p), max, dir)
	fn(c)
	used := c.UsedRect()
	u.Advance(used)
	return used
}

// Child returns a region inside r that does not advance u. Callers that
// want the space accounted for call Advance with the child's UsedRect.
func (u *Ui) Child(id ID, r graphics.Rect, dir Direction) *Ui {
	return u.child(id, r, dir)
}

// Area lays out fn as floating content at rect, outside normal flow, on
// layer. It returns the rect the content used. The area takes part in the
// next frame's occlusion so widgets underneath stop reacting to the pointer.
func (u *Ui) Area(id ID, rect graphics.Rect, layer Layer, fn func(*Ui)) graphics.Rect {
	c := u.child(id, rect, Vertical)
	c.painter = c.painter.WithLayer(layer)
	c.painter.hasClip = false
	c.area = id
	c.inArea = true
	fn(c)
	used := c.UsedRect()
	if !u.measuring {
		u.ctx.recordArea(id, used, layer)
	}
	return used
}

// Measure lays fn out in a detached region bounded by max, without painting
// or interaction, and returns the size it used. Infinite bounds measure the
// natural size.
func (u *Ui) Measure(max graphics.Size, fn func(*Ui)) graphics.Size {
	c := u.ctx.newUi(u.id.With("measure"), graphics.Rect{Right: max.Width, Bottom: max.Height}, Vertical, Painter{})
	c.area = u.area
	c.inArea = u.inArea
	c.measuring = true
	fn(c)
	return c.UsedRect().Size()
}
