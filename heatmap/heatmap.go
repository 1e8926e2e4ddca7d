// SPDX-License-Identifier: MIT

package heatmap

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/gridrev/grid"
)

const (
	// RangeEpsilon is the smallest max-min spread treated as a real range.
	// Narrower spreads map every cell to the midpoint color.
	RangeEpsilon = 1e-6

	// Midpoint is the interpolation parameter used for degenerate ranges.
	Midpoint = 0.5

	// LightThreshold splits light from dark backgrounds by luminance.
	LightThreshold = 0.5

	// BackgroundAlpha is the fixed cell background opacity (0.6 of 255).
	BackgroundAlpha uint8 = 153
)

// CellStyle is the display styling of one cell.
// A cell with Painted=false gets no background and no forced foreground; the
// caller clears any prior styling.
type CellStyle struct {
	Painted    bool
	Background Color
	Light      bool // background luminance > 0.5, so use a dark foreground
}

// Background8 returns the background as 8-bit channels with BackgroundAlpha.
// Unpainted cells return the transparent zero value.
func (s CellStyle) Background8() color.NRGBA {
	if !s.Painted {
		return color.NRGBA{}
	}

	return s.Background.NRGBA(BackgroundAlpha)
}

// Foreground returns black on light backgrounds and white on dark ones.
// ok is false for unpainted cells (use the default text color).
func (s CellStyle) Foreground() (c color.NRGBA, ok bool) {
	if !s.Painted {
		return color.NRGBA{}, false
	}
	if s.Light {
		return color.NRGBA{A: 255}, true
	}

	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}, true
}

// CSS renders the background as "rgba(r, g, b, 0.6)", or "" when unpainted.
func (s CellStyle) CSS() string {
	if !s.Painted {
		return ""
	}
	c := s.Background8()

	return fmt.Sprintf("rgba(%d, %d, %d, 0.6)", c.R, c.G, c.B)
}

// ForegroundCSS renders "#000", "#fff" or "" for unpainted cells.
func (s CellStyle) ForegroundCSS() string {
	switch {
	case !s.Painted:
		return ""
	case s.Light:
		return "#000"
	default:
		return "#fff"
	}
}

// Map holds one CellStyle per cell in row-major order.
type Map struct {
	n     int
	cells []CellStyle
}

// Size returns the edge length N.
func (m *Map) Size() int { return m.n }

// At returns the style of (r, c); out-of-range coordinates yield an
// unpainted style.
func (m *Map) At(r, c int) CellStyle {
	if !grid.InBounds(r, c, m.n) {
		return CellStyle{}
	}

	return m.cells[r*m.n+c]
}

// Cells returns a row-major copy of all styles.
func (m *Map) Cells() []CellStyle {
	out := make([]CellStyle, len(m.cells))
	copy(out, m.cells)

	return out
}

// Painted counts painted cells.
func (m *Map) Painted() int {
	n := 0
	for _, s := range m.cells {
		if s.Painted {
			n++
		}
	}

	return n
}

// ComputeColors maps every defined cell of g to a background between the
// inverse of base (minimum) and base itself (maximum).
//
// Implementation:
//   - Stage 1: (min, max) over defined cells; no data → every cell unpainted.
//   - Stage 2: inverse anchor = base with hue rotated 180°.
//   - Stage 3: per defined cell, t = (v-min)/(max-min) or Midpoint when the
//     spread is <= RangeEpsilon; background = lerp(inverse, base, t);
//     Light = luminance(background) > LightThreshold.
//
// A nil grid, including a typed-nil *grid.Dense or *grid.Sparse, yields an
// empty map.
// Complexity: O(N²).
func ComputeColors(g grid.Grid, base Color) *Map {
	if g == nil {
		return &Map{}
	}
	n := g.Size()
	m := &Map{n: n, cells: make([]CellStyle, n*n)}

	lo, hi, ok := grid.Extremes(g)
	if !ok {
		return m
	}
	spread := hi - lo
	inverse := base.Inverse()

	var (
		r, c int
		v, t float64
		set  bool
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if v, set = g.Lookup(r, c); !set {
				continue
			}
			t = Midpoint
			if spread > RangeEpsilon {
				t = (v - lo) / spread
			}
			bg := inverse.Lerp(base, t)
			m.cells[r*n+c] = CellStyle{Painted: true, Background: bg, Light: bg.IsLight()}
		}
	}

	return m
}
