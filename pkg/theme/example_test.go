package theme_test

import (
	"fmt"
	"strings"

	"github.com/go-drift/shadcn/pkg/theme"
	"github.com/go-drift/shadcn/pkg/ui"
)

// This example shows how to customize a theme using CopyWith.
func ExampleThemeData_CopyWith() {
	base := theme.DefaultLightTheme()

	palette := theme.LightPalette()
	palette.Primary = theme.MustColor("221.2 83.2% 53.3%")

	custom := base.CopyWith(&palette, nil, nil)
	fmt.Println(theme.FormatHSL(custom.Palette.Primary) != theme.FormatHSL(base.Palette.Primary))
	// Output: true
}

// This example installs a theme for a context so widgets pick it up.
func ExampleUse() {
	ctx := ui.NewContext(nil)
	theme.Use(ctx, theme.DefaultDarkTheme())
	fmt.Println(theme.Of(ctx).Brightness)
	// Output: dark
}

func ExampleParse() {
	th, err := theme.Parse(strings.NewReader("version: 1.0.0\nname: compact\npopover:\n  width: 240\n"))
	if err != nil {
		panic(err)
	}
	fmt.Println(th.Name, th.PopoverThemeOf().Width)
	// Output: compact 240
}
