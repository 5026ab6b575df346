package theme

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/logging"
)

// File is the on-disk theme format.
//
//	version: 1.0.0
//	name: ocean
//	extends: dark
//	colors:
//	  primary: "221.2 83.2% 53.3%"
//	  ring: "#3b82f6"
//	radius: 6
//	popover:
//	  width: 320
//	hover_card:
//	  open_delay: 500ms
type File struct {
	Version string `yaml:"version" validate:"required,semver"`
	Name    string `yaml:"name" validate:"required,max=64"`
	// Extends selects the base theme.
	Extends string `yaml:"extends" validate:"omitempty,oneof=light dark terminal"`
	// Metrics overrides the base theme's metrics.
	Metrics string            `yaml:"metrics" validate:"omitempty,oneof=pixel terminal"`
	Colors  map[string]string `yaml:"colors" validate:"dive,keys,color_token,endkeys,color"`
	Radius  *float64          `yaml:"radius" validate:"omitempty,gte=0,lte=32"`

	Popover   *PopoverFile   `yaml:"popover"`
	HoverCard *HoverCardFile `yaml:"hover_card"`
	Tooltip   *TooltipFile   `yaml:"tooltip"`
	Menu      *MenuFile      `yaml:"menu"`
}

// PopoverFile overrides popover defaults.
type PopoverFile struct {
	Width      *float64       `yaml:"width" validate:"omitempty,gt=0"`
	MaxHeight  *float64       `yaml:"max_height" validate:"omitempty,gt=0"`
	SideOffset *float64       `yaml:"side_offset" validate:"omitempty,gte=0"`
	Duration   *time.Duration `yaml:"duration" validate:"omitempty,gte=0,lte=2s"`
}

// HoverCardFile overrides hover card defaults.
type HoverCardFile struct {
	Width      *float64       `yaml:"width" validate:"omitempty,gt=0"`
	OpenDelay  *time.Duration `yaml:"open_delay" validate:"omitempty,gte=0,lte=10s"`
	CloseDelay *time.Duration `yaml:"close_delay" validate:"omitempty,gte=0,lte=10s"`
}

// TooltipFile overrides tooltip defaults.
type TooltipFile struct {
	OpenDelay *time.Duration `yaml:"open_delay" validate:"omitempty,gte=0,lte=10s"`
	SkipDelay *time.Duration `yaml:"skip_delay" validate:"omitempty,gte=0,lte=10s"`
}

// MenuFile overrides menu defaults.
type MenuFile struct {
	MinWidth  *float64 `yaml:"min_width" validate:"omitempty,gt=0"`
	CheckMark *string  `yaml:"check_mark" validate:"omitempty,max=4"`
}

// Load reads a theme file from disk.
func Load(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "theme.Load", Kind: errors.KindConfig, Err: err, Path: path}
	}
	t, err := Parse(bytes.NewReader(data))
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Path = path
		}
		return nil, err
	}
	logging.L().Debug().Str("path", path).Str("theme", t.Name).Msg("theme loaded")
	return t, nil
}

// Parse decodes, validates and applies a theme file. Unknown keys are
// rejected.
func Parse(r io.Reader) (*ThemeData, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			err = fmt.Errorf("empty theme file")
		}
		return nil, errors.Wrap("theme.Parse", errors.KindParsing, err)
	}
	if err := validatorInstance().Struct(&f); err != nil {
		return nil, errors.Wrap("theme.Parse", errors.KindConfig, convertValidationError(err))
	}
	if major := semver.Major(canonicalVersion(f.Version)); major != SupportedMajor {
		return nil, errors.Wrap("theme.Parse", errors.KindConfig,
			fmt.Errorf("unsupported theme version %s (want %s.x.x)", f.Version, SupportedMajor))
	}
	return f.Apply()
}

// Apply builds the theme described by a validated File.
func (f *File) Apply() (*ThemeData, error) {
	var t *ThemeData
	switch f.Extends {
	case "dark":
		t = DefaultDarkTheme()
	case "terminal":
		t = TerminalTheme()
	default:
		t = DefaultLightTheme()
	}
	t.Name = f.Name
	switch f.Metrics {
	case "pixel":
		t.Metrics = PixelMetrics()
	case "terminal":
		t.Metrics = TerminalMetrics()
	}
	for name, raw := range f.Colors {
		c, err := ParseColor(raw)
		if err != nil {
			if pe, ok := err.(*errors.ParseError); ok {
				pe.Field = "colors." + name
			}
			return nil, errors.Wrap("theme.Apply", errors.KindParsing, err)
		}
		t.Palette.SetToken(name, c)
	}
	if f.Radius != nil {
		t.Metrics.Radius = *f.Radius
	}

	if f.Popover != nil {
		pt := t.PopoverThemeOf()
		setIf(&pt.Width, f.Popover.Width)
		setIf(&pt.MaxHeight, f.Popover.MaxHeight)
		setIf(&pt.SideOffset, f.Popover.SideOffset)
		setIf(&pt.Duration, f.Popover.Duration)
		t.PopoverTheme = &pt
	}
	if f.HoverCard != nil {
		ht := t.HoverCardThemeOf()
		setIf(&ht.Width, f.HoverCard.Width)
		setIf(&ht.OpenDelay, f.HoverCard.OpenDelay)
		setIf(&ht.CloseDelay, f.HoverCard.CloseDelay)
		t.HoverCardTheme = &ht
	}
	if f.Tooltip != nil {
		tt := t.TooltipThemeOf()
		setIf(&tt.OpenDelay, f.Tooltip.OpenDelay)
		setIf(&tt.SkipDelay, f.Tooltip.SkipDelay)
		t.TooltipTheme = &tt
	}
	if f.Menu != nil {
		mt := t.MenuThemeOf()
		setIf(&mt.MinWidth, f.Menu.MinWidth)
		setIf(&mt.CheckMark, f.Menu.CheckMark)
		t.MenuTheme = &mt
	}
	return t, nil
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
