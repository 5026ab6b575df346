package theme

import (
	"sort"

	"github.com/go-drift/shadcn/pkg/graphics"
)

// Palette holds the shadcn color tokens.
type Palette struct {
	Background            graphics.Color
	Foreground            graphics.Color
	Card                  graphics.Color
	CardForeground        graphics.Color
	Popover               graphics.Color
	PopoverForeground     graphics.Color
	Primary               graphics.Color
	PrimaryForeground     graphics.Color
	Secondary             graphics.Color
	SecondaryForeground   graphics.Color
	Muted                 graphics.Color
	MutedForeground       graphics.Color
	Accent                graphics.Color
	AccentForeground      graphics.Color
	Destructive           graphics.Color
	DestructiveForeground graphics.Color
	Border                graphics.Color
	Input                 graphics.Color
	Ring                  graphics.Color
}

// tokens maps stylesheet names to palette fields.
var tokens = map[string]func(*Palette) *graphics.Color{
	"background":             func(p *Palette) *graphics.Color { return &p.Background },
	"foreground":             func(p *Palette) *graphics.Color { return &p.Foreground },
	"card":                   func(p *Palette) *graphics.Color { return &p.Card },
	"card-foreground":        func(p *Palette) *graphics.Color { return &p.CardForeground },
	"popover":                func(p *Palette) *graphics.Color { return &p.Popover },
	"popover-foreground":     func(p *Palette) *graphics.Color { return &p.PopoverForeground },
	"primary":                func(p *Palette) *graphics.Color { return &p.Primary },
	"primary-foreground":     func(p *Palette) *graphics.Color { return &p.PrimaryForeground },
	"secondary":              func(p *Palette) *graphics.Color { return &p.Secondary },
	"secondary-foreground":   func(p *Palette) *graphics.Color { return &p.SecondaryForeground },
	"muted":                  func(p *Palette) *graphics.Color { return &p.Muted },
	"muted-foreground":       func(p *Palette) *graphics.Color { return &p.MutedForeground },
	"accent":                 func(p *Palette) *graphics.Color { return &p.Accent },
	"accent-foreground":      func(p *Palette) *graphics.Color { return &p.AccentForeground },
	"destructive":            func(p *Palette) *graphics.Color { return &p.Destructive },
	"destructive-foreground": func(p *Palette) *graphics.Color { return &p.DestructiveForeground },
	"border":                 func(p *Palette) *graphics.Color { return &p.Border },
	"input":                  func(p *Palette) *graphics.Color { return &p.Input },
	"ring":                   func(p *Palette) *graphics.Color { return &p.Ring },
}

// Tokens returns the token names in sorted order.
func Tokens() []string {
	names := make([]string, 0, len(tokens))
	for name := range tokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Token returns the color for a stylesheet token name.
func (p Palette) Token(name string) (graphics.Color, bool) {
	field, ok := tokens[name]
	if !ok {
		return 0, false
	}
	return *field(&p), true
}

// SetToken assigns a token by name. It reports false for unknown names.
func (p *Palette) SetToken(name string, c graphics.Color) bool {
	field, ok := tokens[name]
	if !ok {
		return false
	}
	*field(p) = c
	return true
}

// LightPalette is the zinc light palette.
func LightPalette() Palette {
	return Palette{
		Background:            MustColor("0 0% 100%"),
		Foreground:            MustColor("240 10% 3.9%"),
		Card:                  MustColor("0 0% 100%"),
		CardForeground:        MustColor("240 10% 3.9%"),
		Popover:               MustColor("0 0% 100%"),
		PopoverForeground:     MustColor("240 10% 3.9%"),
		Primary:               MustColor("240 5.9% 10%"),
		PrimaryForeground:     MustColor("0 0% 98%"),
		Secondary:             MustColor("240 4.8% 95.9%"),
		SecondaryForeground:   MustColor("240 5.9% 10%"),
		Muted:                 MustColor("240 4.8% 95.9%"),
		MutedForeground:       MustColor("240 3.8% 46.1%"),
		Accent:                MustColor("240 4.8% 95.9%"),
		AccentForeground:      MustColor("240 5.9% 10%"),
		Destructive:           MustColor("0 84.2% 60.2%"),
		DestructiveForeground: MustColor("0 0% 98%"),
		Border:                MustColor("240 5.9% 90%"),
		Input:                 MustColor("240 5.9% 90%"),
		Ring:                  MustColor("240 10% 3.9%"),
	}
}

// DarkPalette is the zinc dark palette.
func DarkPalette() Palette {
	return Palette{
		Background:            MustColor("240 10% 3.9%"),
		Foreground:            MustColor("0 0% 98%"),
		Card:                  MustColor("240 10% 3.9%"),
		CardForeground:        MustColor("0 0% 98%"),
		Popover:               MustColor("240 10% 3.9%"),
		PopoverForeground:     MustColor("0 0% 98%"),
		Primary:               MustColor("0 0% 98%"),
		PrimaryForeground:     MustColor("240 5.9% 10%"),
		Secondary:             MustColor("240 3.7% 15.9%"),
		SecondaryForeground:   MustColor("0 0% 98%"),
		Muted:                 MustColor("240 3.7% 15.9%"),
		MutedForeground:       MustColor("240 5% 64.9%"),
		Accent:                MustColor("240 3.7% 15.9%"),
		AccentForeground:      MustColor("0 0% 98%"),
		Destructive:           MustColor("0 62.8% 30.6%"),
		DestructiveForeground: MustColor("0 0% 98%"),
		Border:                MustColor("240 3.7% 15.9%"),
		Input:                 MustColor("240 3.7% 15.9%"),
		Ring:                  MustColor("240 4.9% 83.9%"),
	}
}
