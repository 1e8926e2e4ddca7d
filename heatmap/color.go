// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is an opaque sRGB color with components in [0, 1].
type Color struct {
	R, G, B float64
}

// RGB creates a color from components in [0, 1].
func RGB(r, g, b float64) Color { return Color{R: r, G: g, B: b} }

// FromColor converts a standard color.Color (alpha ignored).
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)

	return Color{
		R: float64(nc.R) / 255,
		G: float64(nc.G) / 255,
		B: float64(nc.B) / 255,
	}
}

// Common colors.
var (
	Black = RGB(0, 0, 0)
	White = RGB(1, 1, 1)
	// Neutral colors grids that do not belong to a slot (custom pasted data).
	Neutral = MustParseColor("#888888")
)

// ParseColor accepts "#RGB", "#RRGGBB" (the '#' is optional) or an SVG/CSS
// color name such as "slateblue" (case-insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(c), nil
	}
	hex := strings.TrimPrefix(s, "#")

	var r, g, b uint32
	switch len(hex) {
	case 3:
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Color{}, fmt.Errorf("ParseColor(%q): %w", s, ErrBadColor)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Color{}, fmt.Errorf("ParseColor(%q): %w", s, ErrBadColor)
		}
	default:
		return Color{}, fmt.Errorf("ParseColor(%q): %w", s, ErrBadColor)
	}

	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}

// MustParseColor is ParseColor for package-level literals; it panics on error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}

	return c
}

func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		*val *= 16
		switch {
		case '0' <= ch && ch <= '9':
			*val += uint32(ch - '0')
		case 'a' <= ch && ch <= 'f':
			*val += uint32(ch - 'a' + 10)
		case 'A' <= ch && ch <= 'F':
			*val += uint32(ch - 'A' + 10)
		default:
			return false
		}
	}

	return true
}

// HSL returns hue, saturation and lightness, each in [0, 1].
// Achromatic colors report hue 0 and saturation 0.
func (c Color) HSL() (h, s, l float64) {
	maxC := math.Max(math.Max(c.R, c.G), c.B)
	minC := math.Min(math.Min(c.R, c.G), c.B)
	l = (minC + maxC) / 2
	if minC == maxC {
		return 0, 0, l
	}

	delta := maxC - minC
	if l <= 0.5 {
		s = delta / (maxC + minC)
	} else {
		s = delta / (2 - maxC - minC)
	}
	switch maxC {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}

	return h / 6, s, l
}

// FromHSL builds a color from hue (wrapped into [0, 1)), saturation and
// lightness (both clamped to [0, 1]).
func FromHSL(h, s, l float64) Color {
	h = euclideanMod(h, 1)
	s = clamp01(s)
	l = clamp01(l)
	if s == 0 {
		return Color{R: l, G: l, B: l}
	}

	var p float64
	if l <= 0.5 {
		p = l * (1 + s)
	} else {
		p = l + s - l*s
	}
	q := 2*l - p

	return Color{
		R: hueToRGB(q, p, h+1.0/3),
		G: hueToRGB(q, p, h),
		B: hueToRGB(q, p, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}

	return p
}

// Inverse rotates the hue by 180° keeping saturation and lightness.
// The result goes through an HSL round trip even for gray input.
func (c Color) Inverse() Color {
	h, s, l := c.HSL()

	return FromHSL(math.Mod(h+0.5, 1), s, l)
}

// Lerp performs componentwise linear interpolation: t=0 → c, t=1 → other.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Luminance is the perceptual brightness 0.299R + 0.587G + 0.114B.
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// IsLight reports Luminance() > 0.5; light backgrounds need dark text.
func (c Color) IsLight() bool { return c.Luminance() > LightThreshold }

// NRGBA converts to 8-bit channels (round half up) with the given alpha.
func (c Color) NRGBA(alpha uint8) color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: alpha}
}

// Hex renders "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(x float64) uint8 {
	v := math.Floor(x*255 + 0.5)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}

func euclideanMod(n, m float64) float64 {
	return math.Mod(math.Mod(n, m)+m, m)
}
