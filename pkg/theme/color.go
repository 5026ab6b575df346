package theme

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/go-drift/shadcn/pkg/errors"
	"github.com/go-drift/shadcn/pkg/graphics"
)

// ParseColor parses a color token as written in shadcn stylesheets:
// a space-separated HSL triplet such as "240 5.9% 10%", optionally followed
// by "/ alpha" (a fraction or a percentage), or a hex color "#rrggbb".
func ParseColor(s string) (graphics.Color, error) {
	raw := s
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, &errors.ParseError{Field: "color", Value: raw, Reason: "invalid hex color"}
		}
		return fromColorful(c, 1), nil
	}

	body, alphaPart, hasAlpha := strings.Cut(s, "/")
	fields := strings.Fields(body)
	if len(fields) != 3 {
		return 0, &errors.ParseError{Field: "color", Value: raw, Reason: "expected \"H S% L%\" or #rrggbb"}
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "deg"), 64)
	if err != nil {
		return 0, &errors.ParseError{Field: "color.hue", Value: raw, Reason: err.Error()}
	}
	sat, err := parsePercent(fields[1])
	if err != nil {
		return 0, &errors.ParseError{Field: "color.saturation", Value: raw, Reason: err.Error()}
	}
	light, err := parsePercent(fields[2])
	if err != nil {
		return 0, &errors.ParseError{Field: "color.lightness", Value: raw, Reason: err.Error()}
	}
	alpha := 1.0
	if hasAlpha {
		alpha, err = parseAlpha(strings.TrimSpace(alphaPart))
		if err != nil {
			return 0, &errors.ParseError{Field: "color.alpha", Value: raw, Reason: err.Error()}
		}
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, sat, light), alpha), nil
}

// MustColor is ParseColor for compile-time constants. It panics on error.
func MustColor(s string) graphics.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FormatHSL renders c as an HSL triplet, with "/ alpha" when not opaque.
func FormatHSL(c graphics.Color) string {
	r, g, b, a := c.RGBAF()
	h, s, l := colorful.Color{R: r, G: g, B: b}.Hsl()
	out := fmt.Sprintf("%s %s%% %s%%", trimFloat(h), trimFloat(s*100), trimFloat(l*100))
	if a < 1 {
		out += " / " + trimFloat(a)
	}
	return out
}

func fromColorful(c colorful.Color, alpha float64) graphics.Color {
	r, g, b := c.Clamped().RGB255()
	return graphics.RGBA(r, g, b, alpha)
}

func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%v out of range 0-100", v)
	}
	return v / 100, nil
}

func parseAlpha(s string) (float64, error) {
	if strings.HasSuffix(s, "%") {
		return parsePercent(s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("%v out of range 0-1", v)
	}
	return v, nil
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64)
}
