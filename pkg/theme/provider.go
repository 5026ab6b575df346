package theme

import "github.com/go-drift/shadcn/pkg/ui"

type provider struct {
	data *ThemeData
}

var providerID = ui.NewID("theme")

// Use installs t for the context and applies its Style. Widgets read it
// back with Of. It may be called between frames or at the start of one.
func Use(ctx *ui.Context, t *ThemeData) {
	ui.Data[provider](ctx.Memory(), providerID).data = t
	ctx.SetStyle(t.Style())
}

// Of returns the theme installed with Use, or the light theme.
func Of(ctx *ui.Context) *ThemeData {
	p := ui.Data[provider](ctx.Memory(), providerID)
	if p.data == nil {
		p.data = DefaultLightTheme()
	}
	return p.data
}
