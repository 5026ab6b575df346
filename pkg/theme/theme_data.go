package theme

import "github.com/go-drift/shadcn/pkg/ui"

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

func (b Brightness) String() string {
	if b == BrightnessDark {
		return "dark"
	}
	return "light"
}

// ThemeData contains all theme configuration for an application.
type ThemeData struct {
	// Name identifies the theme in logs and the CLI.
	Name string

	// Palette defines the color tokens.
	Palette Palette

	// Metrics defines sizes and spacing.
	Metrics Metrics

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Component themes - optional, derived from Palette and Metrics if nil.
	ButtonTheme         *ButtonThemeData
	PopoverTheme        *PopoverThemeData
	MenuTheme           *MenuThemeData
	HoverCardTheme      *HoverCardThemeData
	TooltipTheme        *TooltipThemeData
	NavigationMenuTheme *NavigationMenuThemeData
	CalendarTheme       *CalendarThemeData
	DialogTheme         *DialogThemeData
	CollapsibleTheme    *CollapsibleThemeData
	CommandTheme        *CommandThemeData
}

// DefaultLightTheme returns the zinc light theme in pixel metrics.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		Name:       "light",
		Palette:    LightPalette(),
		Metrics:    PixelMetrics(),
		Brightness: BrightnessLight,
	}
}

// DefaultDarkTheme returns the zinc dark theme in pixel metrics.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		Name:       "dark",
		Palette:    DarkPalette(),
		Metrics:    PixelMetrics(),
		Brightness: BrightnessDark,
	}
}

// TerminalTheme returns the dark palette in character-cell metrics.
func TerminalTheme() *ThemeData {
	t := DefaultDarkTheme()
	t.Name = "terminal"
	t.Metrics = TerminalMetrics()
	return t
}

// CopyWith returns a new ThemeData with the specified fields overridden.
// Component overrides are kept.
func (t *ThemeData) CopyWith(palette *Palette, metrics *Metrics, brightness *Brightness) *ThemeData {
	result := *t
	if palette != nil {
		result.Palette = *palette
	}
	if metrics != nil {
		result.Metrics = *metrics
	}
	if brightness != nil {
		result.Brightness = *brightness
	}
	return &result
}

// Style converts the theme into the values the built-in widgets read.
func (t *ThemeData) Style() ui.Style {
	p, m := t.Palette, t.Metrics
	button := t.ButtonThemeOf()
	return ui.Style{
		FontSize:      m.FontSize,
		Spacing:       m.Spacing,
		ButtonPadding: button.Padding,
		Radius:        button.BorderRadius,
		StrokeWidth:   m.StrokeWidth,
		Text:          p.Foreground,
		MutedText:     p.MutedForeground,
		Background:    p.Background,
		Surface:       button.BackgroundColor,
		Hover:         button.HoverColor,
		Border:        button.BorderColor,
		Ring:          p.Ring,
	}
}

// ButtonThemeOf returns the button theme, deriving from Palette if not set.
func (t *ThemeData) ButtonThemeOf() ButtonThemeData {
	if t.ButtonTheme != nil {
		return *t.ButtonTheme
	}
	return DefaultButtonTheme(t.Palette, t.Metrics)
}

// PopoverThemeOf returns the popover theme, deriving from Palette if not set.
func (t *ThemeData) PopoverThemeOf() PopoverThemeData {
	if t.PopoverTheme != nil {
		return *t.PopoverTheme
	}
	return DefaultPopoverTheme(t.Palette, t.Metrics)
}

// MenuThemeOf returns the menu theme, deriving from Palette if not set.
func (t *ThemeData) MenuThemeOf() MenuThemeData {
	if t.MenuTheme != nil {
		return *t.MenuTheme
	}
	return DefaultMenuTheme(t.Palette, t.Metrics)
}

// HoverCardThemeOf returns the hover card theme, deriving from Palette if not set.
func (t *ThemeData) HoverCardThemeOf() HoverCardThemeData {
	if t.HoverCardTheme != nil {
		return *t.HoverCardTheme
	}
	return DefaultHoverCardTheme(t.Palette, t.Metrics)
}

// TooltipThemeOf returns the tooltip theme, deriving from Palette if not set.
func (t *ThemeData) TooltipThemeOf() TooltipThemeData {
	if t.TooltipTheme != nil {
		return *t.TooltipTheme
	}
	return DefaultTooltipTheme(t.Palette, t.Metrics)
}

// NavigationMenuThemeOf returns the navigation menu theme, deriving from Palette if not set.
func (t *ThemeData) NavigationMenuThemeOf() NavigationMenuThemeData {
	if t.NavigationMenuTheme != nil {
		return *t.NavigationMenuTheme
	}
	return DefaultNavigationMenuTheme(t.Palette, t.Metrics)
}

// CalendarThemeOf returns the calendar theme, deriving from Palette if not set.
func (t *ThemeData) CalendarThemeOf() CalendarThemeData {
	if t.CalendarTheme != nil {
		return *t.CalendarTheme
	}
	return DefaultCalendarTheme(t.Palette, t.Metrics)
}

// DialogThemeOf returns the dialog theme, deriving from Palette if not set.
func (t *ThemeData) DialogThemeOf() DialogThemeData {
	if t.DialogTheme != nil {
		return *t.DialogTheme
	}
	return DefaultDialogTheme(t.Palette, t.Metrics)
}

// CollapsibleThemeOf returns the collapsible theme, deriving from Palette if not set.
func (t *ThemeData) CollapsibleThemeOf() CollapsibleThemeData {
	if t.CollapsibleTheme != nil {
		return *t.CollapsibleTheme
	}
	return DefaultCollapsibleTheme(t.Palette, t.Metrics)
}

// CommandThemeOf returns the command theme, deriving from Palette if not set.
func (t *ThemeData) CommandThemeOf() CommandThemeData {
	if t.CommandTheme != nil {
		return *t.CommandTheme
	}
	return DefaultCommandTheme(t.Palette, t.Metrics)
}
