// Package showcase holds demo scenes for every overlay widget. The CLI
// renders them to PNG and runs them interactively in the terminal.
package showcase

import (
	"sort"
	"time"

	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Activation is how a scripted run opens a scene's overlay.
type Activation int

const (
	// ActivateNone leaves the scene untouched.
	ActivateNone Activation = iota
	// ActivateClick clicks the scene's anchor.
	ActivateClick
	// ActivateSecondaryClick right-clicks the scene's anchor.
	ActivateSecondaryClick
	// ActivateHover rests the pointer on the anchor for HoverWait.
	ActivateHover
)

// HoverWait covers the longest hover open delay of the default themes.
const HoverWait = time.Second

// Scene is one showcase page.
type Scene struct {
	Name       string
	Title      string
	Subtitle   string
	Activation Activation
	// setup returns the page's draw function with fresh state.
	setup func() func(p *Page, u *ui.Ui)
}

// Open returns a fresh page for the scene.
func (s *Scene) Open() *Page {
	return &Page{Scene: s, draw: s.setup()}
}

// Page is a running scene with its own widget state.
type Page struct {
	Scene *Scene
	// Status describes the last thing the page reported, e.g. a pick.
	Status string

	draw      func(p *Page, u *ui.Ui)
	anchor    graphics.Rect
	hasAnchor bool
}

// Draw renders the page into u.
func (p *Page) Draw(u *ui.Ui) {
	th := theme.Of(u.Ctx())
	p.hasAnchor = false
	u.Label(p.Scene.Title)
	u.ColoredLabel(p.Scene.Subtitle, th.Palette.MutedForeground)
	u.Space(th.Metrics.Y(16))
	p.draw(p, u)
	if p.Status != "" {
		u.Space(th.Metrics.Y(16))
		u.ColoredLabel(p.Status, th.Palette.MutedForeground)
	}
}

// Anchor returns the rect a scripted run targets.
func (p *Page) Anchor() (graphics.Rect, bool) {
	return p.anchor, p.hasAnchor
}

func (p *Page) setAnchor(r graphics.Rect) {
	if !p.hasAnchor {
		p.anchor, p.hasAnchor = r, true
	}
}

// Driver runs frames with scripted input. *testing.Harness implements it.
type Driver interface {
	Frame(draw func(*ui.Ui)) ui.FrameOutput
	Wait(draw func(*ui.Ui), d time.Duration) ui.FrameOutput
	Settle(draw func(*ui.Ui)) error
	Click(p graphics.Offset)
	SecondaryClick(p graphics.Offset)
	MoveTo(p graphics.Offset)
}

// Play draws the page, opens its overlay the way a user would and runs
// frames until every animation finished.
func (p *Page) Play(d Driver) error {
	d.Frame(p.Draw)
	if r, ok := p.Anchor(); ok {
		at := r.Center()
		switch p.Scene.Activation {
		case ActivateClick:
			d.Click(at)
			d.Frame(p.Draw)
		case ActivateSecondaryClick:
			d.SecondaryClick(at)
			d.Frame(p.Draw)
		case ActivateHover:
			d.MoveTo(at)
			d.Wait(p.Draw, HoverWait)
		}
	}
	if err := d.Settle(p.Draw); err != nil {
		return errors.Wrap("showcase.Play", errors.KindRender, err)
	}
	return nil
}

var registry = map[string]*Scene{}

func register(s *Scene) {
	registry[s.Name] = s
}

// Lookup returns the scene called name.
func Lookup(name string) (*Scene, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns every scene name, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every scene in name order.
func All() []*Scene {
	names := Names()
	out := make([]*Scene, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}
	return out
}
