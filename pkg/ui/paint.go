package ui

import (
	"sort"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// Layer orders painting. Everything on a higher layer is drawn above every
// lower layer regardless of submission order.
type Layer int

const (
	// LayerBackground holds normal layout flow.
	LayerBackground Layer = iota
	// LayerMiddle holds panels above the page, such as sheets.
	LayerMiddle
	// LayerForeground holds floating content: popovers, menus, cards.
	LayerForeground
	// LayerTooltip sits above everything else.
	LayerTooltip
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerMiddle:
		return "middle"
	case LayerForeground:
		return "foreground"
	case LayerTooltip:
		return "tooltip"
	default:
		return "background"
	}
}

// CommandKind identifies a drawing command.
type CommandKind int

const (
	// CommandFill fills a (rounded) rect.
	CommandFill CommandKind = iota
	// CommandStroke outlines a (rounded) rect.
	CommandStroke
	// CommandText draws a single line of text with its top-left at Rect's origin.
	CommandText
	// commandGroup is a reserved slot filled after later commands were recorded.
	commandGroup
)

// Command is one recorded drawing operation.
type Command struct {
	Kind        CommandKind
	Layer       Layer
	Rect        graphics.Rect
	Radius      float64
	StrokeWidth float64
	Color       graphics.Color
	Text        string
	FontSize    float64
	// Clip restricts the command when HasClip is set.
	Clip    graphics.Rect
	HasClip bool

	seq   int
	group *Group
}

// DisplayList records a frame's drawing commands.
type DisplayList struct {
	cmds []Command
}

func (d *DisplayList) add(c Command) {
	c.seq = len(d.cmds)
	d.cmds = append(d.cmds, c)
}

// Len returns the number of recorded commands.
func (d *DisplayList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Sorted())
}

// Sorted returns the commands in paint order: by layer, then by
// submission order within a layer.
func (d *DisplayList) Sorted() []Command {
	if d == nil {
		return nil
	}
	out := make([]Command, 0, len(d.cmds))
	for _, c := range d.cmds {
		if c.Kind != commandGroup {
			out = append(out, c)
			continue
		}
		for _, gc := range c.group.cmds {
			gc.seq = c.seq
			out = append(out, gc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Layer != out[j].Layer {
			return out[i].Layer < out[j].Layer
		}
		return out[i].seq < out[j].seq
	})
	return out
}

// Painter records commands onto a layer with an optional clip and alpha.
// A zero Painter discards everything, which is how measuring passes stay
// invisible.
type Painter struct {
	list    *DisplayList
	layer   Layer
	clip    graphics.Rect
	hasClip bool
	alpha   float64
}

// Layer returns the layer commands are recorded on.
func (p Painter) Layer() Layer { return p.layer }

// WithLayer returns a painter targeting layer.
func (p Painter) WithLayer(l Layer) Painter {
	p.layer = l
	return p
}

// WithClip returns a painter clipped to r (intersected with any existing clip).
func (p Painter) WithClip(r graphics.Rect) Painter {
	if p.hasClip {
		r = p.clip.Intersect(r)
	}
	p.clip = r
	p.hasClip = true
	return p
}

// WithAlpha returns a painter whose colors are multiplied by a.
func (p Painter) WithAlpha(a float64) Painter {
	p.alpha = p.effectiveAlpha() * a
	return p
}

func (p Painter) effectiveAlpha() float64 {
	if p.list == nil {
		return 0
	}
	return p.alpha
}

func (p Painter) record(c Command) {
	if p.list == nil {
		return
	}
	if c, ok := p.prepare(c); ok {
		p.list.add(c)
	}
}

func (p Painter) prepare(c Command) (Command, bool) {
	if p.hasClip {
		if p.clip.IsEmpty() {
			return c, false
		}
		c.Clip = p.clip
		c.HasClip = true
	}
	c.Layer = p.layer
	c.Color = c.Color.MultiplyAlpha(p.alpha)
	if c.Color.Alpha() == 0 {
		return c, false
	}
	return c, true
}

// FillRect fills r with color, rounding corners by radius.
func (p Painter) FillRect(r graphics.Rect, radius float64, color graphics.Color) {
	if color.Alpha() == 0 {
		return
	}
	p.record(Command{Kind: CommandFill, Rect: r.Normalized(), Radius: radius, Color: color})
}

// StrokeRect outlines r with a stroke of width inside its edges.
func (p Painter) StrokeRect(r graphics.Rect, radius, width float64, color graphics.Color) {
	if color.Alpha() == 0 || width <= 0 {
		return
	}
	p.record(Command{Kind: CommandStroke, Rect: r.Normalized(), Radius: radius, StrokeWidth: width, Color: color})
}

// Text draws a line of text whose box is r.
func (p Painter) Text(r graphics.Rect, text string, size float64, color graphics.Color) {
	if text == "" || color.Alpha() == 0 {
		return
	}
	p.record(Command{Kind: CommandText, Rect: r, Text: text, FontSize: size, Color: color})
}

// Group is a slot in the display list reserved before its contents are
// known. Frames draw content first and its background afterwards, then the
// background lands underneath because the slot was reserved earlier.
type Group struct {
	painter Painter
	cmds    []Command
}

// Reserve records an empty slot at the current position.
func (p Painter) Reserve() *Group {
	g := &Group{painter: p}
	if p.list != nil {
		p.list.add(Command{Kind: commandGroup, Layer: p.layer, group: g})
	}
	return g
}

func (g *Group) record(c Command) {
	if g == nil || g.painter.list == nil {
		return
	}
	if c, ok := g.painter.prepare(c); ok {
		g.cmds = append(g.cmds, c)
	}
}

// FillRect fills r into the slot.
func (g *Group) FillRect(r graphics.Rect, radius float64, color graphics.Color) {
	if color.Alpha() == 0 {
		return
	}
	g.record(Command{Kind: CommandFill, Rect: r.Normalized(), Radius: radius, Color: color})
}

// StrokeRect outlines r into the slot.
func (g *Group) StrokeRect(r graphics.Rect, radius, width float64, color graphics.Color) {
	if color.Alpha() == 0 || width <= 0 {
		return
	}
	g.record(Command{Kind: CommandStroke, Rect: r.Normalized(), Radius: radius, StrokeWidth: width, Color: color})
}
