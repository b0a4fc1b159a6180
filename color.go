package chart

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a fill color as written by callers: a hex string ("#3b82f6",
// "#fff", "#ff000080", with or without the '#') or an SVG color keyword
// ("steelblue").
// The zero value means "not set" and is replaced during normalization.
type Color string

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == ""
}

// Resolve converts the color to RGBA.
// Unknown keywords and malformed hex strings resolve to opaque black.
func (c Color) Resolve() RGBA {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return Black
	}
	if s[0] == '#' {
		return Hex(s)
	}
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(named)
	}
	return Hex(s)
}

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
// Any other length or a non-hex digit yields opaque black.
func Hex(hex string) RGBA {
	hex = strings.TrimPrefix(hex, "#")

	var digits [8]uint32
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return Black
	}
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Black
		}
		digits[i] = d
	}

	var c [4]uint32
	c[3] = 255
	switch len(hex) {
	case 3, 4: // RGB, RGBA: each digit is doubled
		for i := range len(hex) {
			c[i] = digits[i] * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := range len(hex) / 2 {
			c[i] = digits[2*i]<<4 | digits[2*i+1]
		}
	}

	return RGBA{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
		A: float64(c[3]) / 255,
	}
}

// hexDigit returns the value of a single hex digit.
func hexDigit(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'a' <= c && c <= 'f':
		return uint32(c - 'a' + 10), true
	case 'A' <= c && c <= 'F':
		return uint32(c - 'A' + 10), true
	}
	return 0, false
}

// clamp255 rounds x and restricts it to the [0, 255] range.
func clamp255(x float64) float64 {
	x = math.Round(x)
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)

// Palette is an ordered list of colors cycled by point index.
type Palette []Color

// At returns the palette entry for index i, cycling with i mod len(p).
// An empty palette cycles DefaultPalette instead.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		p = DefaultPalette
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// DefaultPalette is used when Options.Palette is empty.
// It is read-only; pass a different Palette through options to override it.
var DefaultPalette = Palette{
	"#3b82f6", // blue
	"#10b981", // emerald
	"#f59e0b", // amber
	"#ef4444", // red
	"#8b5cf6", // violet
	"#ec4899", // pink
	"#06b6d4", // cyan
	"#84cc16", // lime
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c RGBA) Hex() string {
	n := c.Color().(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	rgba := c.Resolve()
	rgba.A *= a
	return Color(rgba.Hex())
}
