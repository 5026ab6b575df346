package ui

import (
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/go-drift/shadcn/pkg/graphics"
)

const (
	// NominalFrame is the delta reported for the first frame after the host
	// was idle, so animations started by an input event do not jump.
	NominalFrame = time.Second / 60
	// MaxFrameDelta caps the delta between two consecutive animation frames.
	MaxFrameDelta = 100 * time.Millisecond
)

// TextMeasurer sizes a single line of text at a font size.
type TextMeasurer interface {
	MeasureText(text string, size float64) graphics.Size
}

// MonospaceMeasurer measures text as a grid of cells using East Asian
// display widths. Advance and LineHeight are multiples of the font size.
type MonospaceMeasurer struct {
	Advance    float64
	LineHeight float64
}

// DefaultMeasurer approximates a proportional UI font.
var DefaultMeasurer = MonospaceMeasurer{Advance: 0.6, LineHeight: 1.25}

// MeasureText implements TextMeasurer.
func (m MonospaceMeasurer) MeasureText(text string, size float64) graphics.Size {
	cells := runewidth.StringWidth(text)
	return graphics.Size{
		Width:  float64(cells) * m.Advance * size,
		Height: m.LineHeight * size,
	}
}

// FrameOutput is what a frame hands back to the backend.
type FrameOutput struct {
	DisplayList *DisplayList
	// Repaint is set when any repaint was requested. RepaintAfter is the
	// delay before the next frame is needed; zero means immediately.
	Repaint      bool
	RepaintAfter time.Duration
	Frame        uint64
}

type areaRecord struct {
	id    ID
	rect  graphics.Rect
	layer Layer
}

// Context owns the state shared by every frame: memory, focus, the previous
// frame's floating areas and the repaint schedule. It is not safe for
// concurrent use; frames are evaluated on one goroutine.
type Context struct {
	memory   *Memory
	measurer TextMeasurer
	style    Style

	input        Input
	frame        uint64
	prevTime     time.Time
	delta        time.Duration
	wasAnimating bool
	inFrame      bool

	list            *DisplayList
	repaint         bool
	repaintAfter    time.Duration
	hasRepaintDelay bool

	areas     []areaRecord
	prevAreas []areaRecord

	focused        ID
	hasFocus       bool
	focusables     []ID
	prevFocusables []ID
}

// NewContext returns a context measuring text with m, or DefaultMeasurer
// when m is nil.
func NewContext(m TextMeasurer) *Context {
	if m == nil {
		m = DefaultMeasurer
	}
	return &Context{
		memory:   NewMemory(),
		measurer: m,
		style:    DefaultStyle(),
	}
}

// BeginFrame starts a frame and returns the root region covering the
// viewport.
func (c *Context) BeginFrame(in Input) *Ui {
	switch {
	case c.frame == 0 || c.prevTime.IsZero():
		c.delta = 0
	case !c.wasAnimating:
		c.delta = NominalFrame
	default:
		c.delta = min(max(in.Time.Sub(c.prevTime), 0), MaxFrameDelta)
	}
	c.prevTime = in.Time
	c.input = in
	c.frame++
	c.inFrame = true

	c.list = &DisplayList{}
	c.repaint = false
	c.repaintAfter = 0
	c.hasRepaintDelay = false
	c.areas = c.areas[:0]
	c.focusables = c.focusables[:0]

	if in.Tab {
		c.advanceFocus()
	}

	return c.newUi(NewID("root"), in.Viewport.Normalized(), Vertical, Painter{list: c.list, layer: LayerBackground, alpha: 1})
}

// EndFrame finishes the frame.
func (c *Context) EndFrame() FrameOutput {
	c.inFrame = false
	c.prevAreas = append(c.prevAreas[:0], c.areas...)
	c.prevFocusables = append(c.prevFocusables[:0], c.focusables...)
	if c.hasFocus && !containsID(c.focusables, c.focused) {
		c.hasFocus = false
	}

	out := FrameOutput{DisplayList: c.list, Frame: c.frame}
	switch {
	case c.repaint:
		out.Repaint = true
	case c.hasRepaintDelay:
		out.Repaint = true
		out.RepaintAfter = c.repaintAfter
	}
	c.wasAnimating = c.repaint
	return out
}

// Run evaluates one frame.
func (c *Context) Run(in Input, fn func(*Ui)) FrameOutput {
	root := c.BeginFrame(in)
	fn(root)
	return c.EndFrame()
}

// Memory returns the persistent store.
func (c *Context) Memory() *Memory { return c.memory }

// Input returns this frame's input.
func (c *Context) Input() Input { return c.input }

// Now returns the frame timestamp.
func (c *Context) Now() time.Time { return c.input.Time }

// Delta returns the animation time step for this frame.
func (c *Context) Delta() time.Duration { return c.delta }

// Frame returns the frame counter; the first frame is 1.
func (c *Context) Frame() uint64 { return c.frame }

// Measurer returns the text measurer.
func (c *Context) Measurer() TextMeasurer { return c.measurer }

// Style returns the current style.
func (c *Context) Style() Style { return c.style }

// SetStyle replaces the style used by built-in widgets.
func (c *Context) SetStyle(s Style) { c.style = s }

// RequestRepaint asks for another frame as soon as possible.
func (c *Context) RequestRepaint() { c.repaint = true }

// RequestRepaintAfter asks for a frame after d. Multiple requests keep the
// earliest; d <= 0 is the same as RequestRepaint.
func (c *Context) RequestRepaintAfter(d time.Duration) {
	if d <= 0 {
		c.repaint = true
		return
	}
	if !c.hasRepaintDelay || d < c.repaintAfter {
		c.repaintAfter = d
		c.hasRepaintDelay = true
	}
}

// Focus moves keyboard focus to id.
func (c *Context) Focus(id ID) {
	c.focused = id
	c.hasFocus = true
}

// HasFocus reports whether id holds keyboard focus.
func (c *Context) HasFocus(id ID) bool {
	return c.hasFocus && c.focused == id
}

// SurrenderFocus drops focus if id holds it.
func (c *Context) SurrenderFocus(id ID) {
	if c.HasFocus(id) {
		c.hasFocus = false
	}
}

func (c *Context) registerFocusable(id ID) {
	c.focusables = append(c.focusables, id)
}

// advanceFocus moves focus to the widget after the focused one in last
// frame's registration order, wrapping around.
func (c *Context) advanceFocus() {
	if len(c.prevFocusables) == 0 {
		return
	}
	next := 0
	if c.hasFocus {
		for i, id := range c.prevFocusables {
			if id == c.focused {
				next = (i + 1) % len(c.prevFocusables)
				break
			}
		}
	}
	c.Focus(c.prevFocusables[next])
}

func (c *Context) recordArea(id ID, rect graphics.Rect, layer Layer) {
	c.areas = append(c.areas, areaRecord{id: id, rect: rect, layer: layer})
}

// AreaRect returns the rect a floating area occupied last frame.
func (c *Context) AreaRect(id ID) (graphics.Rect, bool) {
	for _, a := range c.prevAreas {
		if a.id == id {
			return a.rect, true
		}
	}
	return graphics.Rect{}, false
}

// occluded reports whether p falls inside a floating area from the previous
// frame that paints above a widget on layer inside area self.
func (c *Context) occluded(p graphics.Offset, layer Layer, self ID, inArea bool) bool {
	selfIndex := -1
	if inArea {
		for i, a := range c.prevAreas {
			if a.id == self {
				selfIndex = i
			}
		}
	}
	for i, a := range c.prevAreas {
		if inArea && a.id == self {
			continue
		}
		if !a.rect.Contains(p) {
			continue
		}
		if a.layer > layer || (a.layer == layer && i > selfIndex) {
			return true
		}
	}
	return false
}

func containsID(ids []ID, id ID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
