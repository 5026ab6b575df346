package showcase

import (
	"math"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// Gallery lists every scene in a sidebar and shows the selected one.
type Gallery struct {
	pages    []*Page
	selected int
}

// NewGallery opens every registered scene.
func NewGallery() *Gallery {
	scenes := All()
	g := &Gallery{pages: make([]*Page, len(scenes))}
	for i, s := range scenes {
		g.pages[i] = s.Open()
	}
	return g
}

// Select shows the scene called name. It reports whether it exists.
func (g *Gallery) Select(name string) bool {
	for i, p := range g.pages {
		if p.Scene.Name == name {
			g.selected = i
			return true
		}
	}
	return false
}

// Selected returns the visible page.
func (g *Gallery) Selected() *Page { return g.pages[g.selected] }

// Draw renders the sidebar and the selected page.
func (g *Gallery) Draw(u *ui.Ui) {
	th := theme.Of(u.Ctx())
	m := th.Metrics
	pad := m.ItemPadding
	measure := u.Ctx().Measurer()

	width := 0.0
	for _, p := range g.pages {
		width = math.Max(width, measure.MeasureText(p.Scene.Title, m.FontSize).Width)
	}
	width += pad.Horizontal()

	view := u.MaxRect()
	side := u.Child(ui.NewID("gallery", "sidebar"), graphics.Rect{Left: view.Left, Top: view.Top, Right: view.Left + width, Bottom: view.Bottom}, ui.Vertical)
	for i, p := range g.pages {
		ts := measure.MeasureText(p.Scene.Title, m.FontSize)
		resp := side.Allocate(ui.NewID("gallery", p.Scene.Name), graphics.Size{Width: width, Height: ts.Height + pad.Vertical()}, ui.SenseClick)
		if resp.Clicked {
			g.selected = i
		}
		color := th.Palette.MutedForeground
		if i == g.selected || resp.Hovered {
			side.Painter().FillRect(resp.Rect, m.Radius, th.Palette.Accent)
			color = th.Palette.AccentForeground
		}
		side.Painter().Text(resp.Rect.Deflate(pad), p.Scene.Title, m.FontSize, color)
	}

	gap := m.X(24)
	rule := graphics.RectFromLTWH(view.Left+width+gap/2, view.Top, math.Max(m.StrokeWidth, 1), view.Height())
	u.Painter().FillRect(rule, 0, th.Palette.Border)

	content := u.Child(ui.NewID("gallery", "content"), graphics.Rect{Left: view.Left + width + gap, Top: view.Top, Right: view.Right, Bottom: view.Bottom}, ui.Vertical)
	g.Selected().Draw(content)
}
