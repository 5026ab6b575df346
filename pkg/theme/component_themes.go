package theme

import (
	"time"

	"github.com/go-drift/shadcn/pkg/graphics"
	"github.com/go-drift/shadcn/pkg/overlay"
)

// ButtonThemeData defines default styling for trigger buttons.
type ButtonThemeData struct {
	// BackgroundColor is the resting fill.
	BackgroundColor graphics.Color
	// ForegroundColor is the label color.
	ForegroundColor graphics.Color
	// HoverColor is the fill while hovered or open.
	HoverColor graphics.Color
	// BorderColor outlines the button; transparent for none.
	BorderColor graphics.Color
	// Padding surrounds the label.
	Padding graphics.EdgeInsets
	// BorderRadius is the corner radius.
	BorderRadius float64
}

// PopoverThemeData defines default styling for Popover.
type PopoverThemeData struct {
	// Surface is the floating panel.
	Surface overlay.Surface
	// Width is the panel width (w-72).
	Width float64
	// MaxHeight caps the panel height.
	MaxHeight float64
	// SideOffset is the gap to the trigger.
	SideOffset float64
	// SlideDistance is how far the panel slides in.
	SlideDistance float64
	// Duration is the open/close animation length.
	Duration time.Duration
}

// MenuThemeData defines default styling for DropdownMenu and ContextMenu.
type MenuThemeData struct {
	Surface overlay.Surface
	// MinWidth is the narrowest menu (min-w-[8rem]).
	MinWidth float64
	// ItemPadding surrounds each item label.
	ItemPadding graphics.EdgeInsets
	// HighlightColor fills the hovered or keyboard-selected item.
	HighlightColor graphics.Color
	// TextColor is the item label color.
	TextColor graphics.Color
	// HighlightTextColor is the label color of the highlighted item.
	HighlightTextColor graphics.Color
	// DisabledTextColor is used for disabled items.
	DisabledTextColor graphics.Color
	// ShortcutColor is used for the trailing shortcut hint.
	ShortcutColor graphics.Color
	// LabelColor is used for group labels.
	LabelColor graphics.Color
	// DestructiveColor is used for destructive items.
	DestructiveColor graphics.Color
	// SeparatorColor is used for separators.
	SeparatorColor graphics.Color
	// CheckMark is drawn before checked items.
	CheckMark     string
	SideOffset    float64
	SlideDistance float64
	Duration      time.Duration
}

// HoverCardThemeData defines default styling for HoverCard.
type HoverCardThemeData struct {
	Surface    overlay.Surface
	Width      float64
	SideOffset float64
	// OpenDelay is how long the pointer must rest on the trigger.
	OpenDelay time.Duration
	// CloseDelay is how long the card survives after the pointer left.
	CloseDelay time.Duration
	// ContentMargin widens the hover zone around the card.
	ContentMargin float64
	SlideDistance float64
	Duration      time.Duration
}

// TooltipThemeData defines default styling for Tooltip.
type TooltipThemeData struct {
	Surface overlay.Surface
	// TextColor is the tooltip text color.
	TextColor  graphics.Color
	FontSize   float64
	SideOffset float64
	OpenDelay  time.Duration
	CloseDelay time.Duration
	// SkipDelay is the window after a close in which the next tooltip
	// opens immediately.
	SkipDelay     time.Duration
	SlideDistance float64
	Duration      time.Duration
}

// NavigationMenuThemeData defines default styling for NavigationMenu.
type NavigationMenuThemeData struct {
	Surface overlay.Surface
	// TriggerPadding surrounds each top-level trigger label.
	TriggerPadding graphics.EdgeInsets
	// ActiveColor fills the trigger whose panel is open.
	ActiveColor graphics.Color
	TextColor   graphics.Color
	// LinkDescriptionColor is used for the secondary line of links.
	LinkDescriptionColor graphics.Color
	OpenDelay            time.Duration
	CloseDelay           time.Duration
	SkipDelay            time.Duration
	SideOffset           float64
	SlideDistance        float64
	Duration             time.Duration
}

// CalendarThemeData defines default styling for the DatePicker calendar.
type CalendarThemeData struct {
	// CellSize is the side of one day cell.
	CellSize float64
	// SelectedColor fills the selected day.
	SelectedColor graphics.Color
	// SelectedTextColor is the selected day label.
	SelectedTextColor graphics.Color
	// TodayColor fills today when not selected.
	TodayColor graphics.Color
	// TextColor is the label of in-month days.
	TextColor graphics.Color
	// OutsideTextColor is the label of days from adjacent months.
	OutsideTextColor graphics.Color
	// HeaderColor is the weekday header color.
	HeaderColor graphics.Color
}

// DialogThemeData defines default styling for Dialog.
type DialogThemeData struct {
	Surface overlay.Surface
	// BarrierColor is the scrim behind the dialog.
	BarrierColor graphics.Color
	// Width is the dialog width (max-w-lg).
	Width float64
	// TitleSize is the title font size.
	TitleSize float64
	// DescriptionColor is used for the description line.
	DescriptionColor graphics.Color
	Duration         time.Duration
}

// CollapsibleThemeData defines default styling for Collapsible and Accordion.
type CollapsibleThemeData struct {
	// Duration is the expand/collapse length.
	Duration time.Duration
	// TriggerPadding surrounds accordion triggers.
	TriggerPadding graphics.EdgeInsets
	// DividerColor separates accordion items.
	DividerColor graphics.Color
}

// CommandThemeData defines default styling for Combobox.
type CommandThemeData struct {
	Surface overlay.Surface
	// InputHeight is the search field height.
	InputHeight float64
	// PlaceholderColor is the empty search field hint.
	PlaceholderColor graphics.Color
	// MatchColor highlights matched characters.
	MatchColor graphics.Color
	// EmptyText is shown when nothing matches.
	EmptyText string
	// MaxVisible caps the number of listed options.
	MaxVisible int
}

func surface(fill, border graphics.Color, m Metrics, padding graphics.EdgeInsets) overlay.Surface {
	return overlay.Surface{
		Fill:        fill,
		Border:      border,
		Shadow:      graphics.RGBA(0, 0, 0, 0.1),
		Radius:      m.Radius,
		StrokeWidth: m.StrokeWidth,
		Padding:     padding,
	}
}

// DefaultButtonTheme returns the outline button style.
func DefaultButtonTheme(p Palette, m Metrics) ButtonThemeData {
	return ButtonThemeData{
		BackgroundColor: p.Background,
		ForegroundColor: p.Foreground,
		HoverColor:      p.Accent,
		BorderColor:     p.Input,
		Padding:         m.ControlPadding,
		BorderRadius:    m.Radius - 2,
	}
}

// DefaultPopoverTheme returns PopoverThemeData derived from the palette.
func DefaultPopoverTheme(p Palette, m Metrics) PopoverThemeData {
	return PopoverThemeData{
		Surface:       surface(p.Popover, p.Border, m, m.SurfacePadding),
		Width:         m.X(288),
		MaxHeight:     m.Y(400),
		SideOffset:    m.SideOffset,
		SlideDistance: m.SlideDistance,
		Duration:      overlay.DefaultDuration,
	}
}

// DefaultMenuTheme returns MenuThemeData derived from the palette.
func DefaultMenuTheme(p Palette, m Metrics) MenuThemeData {
	return MenuThemeData{
		Surface:            surface(p.Popover, p.Border, m, m.MenuPadding),
		MinWidth:           m.X(128),
		ItemPadding:        m.ItemPadding,
		HighlightColor:     p.Accent,
		TextColor:          p.PopoverForeground,
		HighlightTextColor: p.AccentForeground,
		DisabledTextColor:  p.MutedForeground.MultiplyAlpha(0.5),
		ShortcutColor:      p.MutedForeground,
		LabelColor:         p.Foreground,
		DestructiveColor:   p.Destructive,
		SeparatorColor:     p.Muted,
		CheckMark:          "✓",
		SideOffset:         m.SideOffset,
		SlideDistance:      m.SlideDistance,
		Duration:           overlay.DefaultDuration,
	}
}

// DefaultHoverCardTheme returns HoverCardThemeData derived from the palette.
func DefaultHoverCardTheme(p Palette, m Metrics) HoverCardThemeData {
	return HoverCardThemeData{
		Surface:       surface(p.Popover, p.Border, m, m.SurfacePadding),
		Width:         m.X(256),
		SideOffset:    m.SideOffset,
		OpenDelay:     700 * time.Millisecond,
		CloseDelay:    300 * time.Millisecond,
		ContentMargin: m.X(8),
		SlideDistance: m.SlideDistance,
		Duration:      overlay.DefaultDuration,
	}
}

// DefaultTooltipTheme returns TooltipThemeData derived from the palette.
func DefaultTooltipTheme(p Palette, m Metrics) TooltipThemeData {
	s := surface(p.Primary, graphics.ColorTransparent, m, m.ItemPadding)
	s.Shadow = graphics.ColorTransparent
	s.Radius = m.Radius - 2
	return TooltipThemeData{
		Surface:       s,
		TextColor:     p.PrimaryForeground,
		FontSize:      m.FontSize - m.FontSize/7,
		SideOffset:    m.SideOffset,
		OpenDelay:     500 * time.Millisecond,
		SkipDelay:     300 * time.Millisecond,
		SlideDistance: m.SlideDistance / 4,
		Duration:      overlay.DefaultDuration,
	}
}

// DefaultNavigationMenuTheme returns NavigationMenuThemeData derived from the palette.
func DefaultNavigationMenuTheme(p Palette, m Metrics) NavigationMenuThemeData {
	return NavigationMenuThemeData{
		Surface:              surface(p.Popover, p.Border, m, m.SurfacePadding),
		TriggerPadding:       m.ControlPadding,
		ActiveColor:          p.Accent,
		TextColor:            p.Foreground,
		LinkDescriptionColor: p.MutedForeground,
		OpenDelay:            200 * time.Millisecond,
		CloseDelay:           150 * time.Millisecond,
		SkipDelay:            300 * time.Millisecond,
		SideOffset:           m.SideOffset + m.Spacing/2,
		SlideDistance:        m.SlideDistance,
		Duration:             overlay.DefaultDuration,
	}
}

// DefaultCalendarTheme returns CalendarThemeData derived from the palette.
func DefaultCalendarTheme(p Palette, m Metrics) CalendarThemeData {
	return CalendarThemeData{
		CellSize:          m.X(36),
		SelectedColor:     p.Primary,
		SelectedTextColor: p.PrimaryForeground,
		TodayColor:        p.Accent,
		TextColor:         p.Foreground,
		OutsideTextColor:  p.MutedForeground,
		HeaderColor:       p.MutedForeground,
	}
}

// DefaultDialogTheme returns DialogThemeData derived from the palette.
func DefaultDialogTheme(p Palette, m Metrics) DialogThemeData {
	pad := graphics.EdgeInsetsAll(m.X(24))
	if m.ScaleX < 1 {
		pad = m.SurfacePadding
	}
	return DialogThemeData{
		Surface:          surface(p.Background, p.Border, m, pad),
		BarrierColor:     graphics.RGBA(0, 0, 0, 0.8),
		Width:            m.X(512),
		TitleSize:        m.FontSize + m.FontSize/7*2,
		DescriptionColor: p.MutedForeground,
		Duration:         200 * time.Millisecond,
	}
}

// DefaultCollapsibleTheme returns CollapsibleThemeData derived from the palette.
func DefaultCollapsibleTheme(p Palette, m Metrics) CollapsibleThemeData {
	return CollapsibleThemeData{
		Duration:       200 * time.Millisecond,
		TriggerPadding: graphics.EdgeInsets{Top: m.Y(16), Bottom: m.Y(16)},
		DividerColor:   p.Border,
	}
}

// DefaultCommandTheme returns CommandThemeData derived from the palette.
func DefaultCommandTheme(p Palette, m Metrics) CommandThemeData {
	return CommandThemeData{
		Surface:          surface(p.Popover, p.Border, m, m.MenuPadding),
		InputHeight:      m.Y(44),
		PlaceholderColor: p.MutedForeground,
		MatchColor:       p.Foreground,
		EmptyText:        "No results found.",
		MaxVisible:       8,
	}
}
