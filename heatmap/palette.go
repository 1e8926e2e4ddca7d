// SPDX-License-Identifier: MIT

package heatmap

import "fmt"

// DefaultPalette lists the slot colors in slot order.
var DefaultPalette = Palette{
	MustParseColor("#6c63ff"),
	MustParseColor("#ff6384"),
	MustParseColor("#36d399"),
	MustParseColor("#f5a623"),
	MustParseColor("#00bcd4"),
	MustParseColor("#e040fb"),
	MustParseColor("#ff5252"),
	MustParseColor("#8bc34a"),
}

// Palette assigns colors to slots by index, wrapping when slots outnumber
// colors.
type Palette []Color

// ParsePalette parses every entry with ParseColor.
func ParsePalette(entries []string) (Palette, error) {
	p := make(Palette, 0, len(entries))
	for i, e := range entries {
		c, err := ParseColor(e)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		p = append(p, c)
	}

	return p, nil
}

// At returns the color for slot i. An empty palette yields Neutral.
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return Neutral
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}

	return p[i]
}
