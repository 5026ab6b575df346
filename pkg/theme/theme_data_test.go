package theme

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/shadcn/pkg/ui"
)

func TestComponentThemeOfFallsBackToDefaults(t *testing.T) {
	th := DefaultLightTheme()
	pop := th.PopoverThemeOf()
	assert.Equal(t, 288.0, pop.Width)
	assert.Equal(t, 400.0, pop.MaxHeight)
	assert.Equal(t, 4.0, pop.SideOffset)
	assert.Equal(t, th.Palette.Popover, pop.Surface.Fill)

	hc := th.HoverCardThemeOf()
	assert.Equal(t, 700*time.Millisecond, hc.OpenDelay)
	assert.Equal(t, 300*time.Millisecond, hc.CloseDelay)

	tip := th.TooltipThemeOf()
	assert.Equal(t, 500*time.Millisecond, tip.OpenDelay)
	assert.Equal(t, 300*time.Millisecond, tip.SkipDelay)
	assert.Equal(t, th.Palette.Primary, tip.Surface.Fill)
}

func TestComponentOverrideWins(t *testing.T) {
	th := DefaultDarkTheme()
	custom := DefaultPopoverTheme(th.Palette, th.Metrics)
	custom.Width = 320
	th.PopoverTheme = &custom
	assert.Equal(t, 320.0, th.PopoverThemeOf().Width)
}

func TestTerminalMetricsScaleWidths(t *testing.T) {
	th := TerminalTheme()
	assert.Equal(t, 36.0, th.PopoverThemeOf().Width)
	assert.Equal(t, 25.0, th.PopoverThemeOf().MaxHeight)
	assert.Equal(t, 0.0, th.PopoverThemeOf().SideOffset)
	assert.Equal(t, BrightnessDark, th.Brightness)
}

func TestCopyWithKeepsOverrides(t *testing.T) {
	base := DefaultLightTheme()
	menu := base.MenuThemeOf()
	menu.CheckMark = "*"
	base.MenuTheme = &menu

	dark := BrightnessDark
	palette := DarkPalette()
	copied := base.CopyWith(&palette, nil, &dark)

	assert.Equal(t, BrightnessLight, base.Brightness)
	assert.Equal(t, BrightnessDark, copied.Brightness)
	assert.Equal(t, palette.Background, copied.Palette.Background)
	assert.Equal(t, "*", copied.MenuThemeOf().CheckMark)
}

func TestUseInstallsStyle(t *testing.T) {
	ctx := ui.NewContext(nil)
	assert.Equal(t, "light", Of(ctx).Name)

	th := DefaultDarkTheme()
	Use(ctx, th)
	assert.Same(t, th, Of(ctx))
	assert.Equal(t, th.Palette.Foreground, ctx.Style().Text)
	assert.Equal(t, th.Palette.Ring, ctx.Style().Ring)
}
