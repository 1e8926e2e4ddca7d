// SPDX-License-Identifier: MIT

package heatmap_test

import (
	"image/color"
	"testing"

	"github.com/katalvlaran/gridrev/heatmap"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	c, err := heatmap.ParseColor("#6c63ff")
	require.NoError(t, err)
	require.Equal(t, "#6c63ff", c.Hex())

	c, err = heatmap.ParseColor("6C63FF")
	require.NoError(t, err)
	require.Equal(t, "#6c63ff", c.Hex())

	c, err = heatmap.ParseColor("#fa0")
	require.NoError(t, err)
	require.Equal(t, "#ffaa00", c.Hex())

	c, err = heatmap.ParseColor("SlateBlue")
	require.NoError(t, err)
	require.Equal(t, "#6a5acd", c.Hex())

	for _, bad := range []string{"", "#12", "#ggg", "nocolor", "#1234567"} {
		_, err = heatmap.ParseColor(bad)
		require.ErrorIs(t, err, heatmap.ErrBadColor, bad)
	}
	require.Panics(t, func() { heatmap.MustParseColor("zz") })
}

func TestHSLRoundTrip(t *testing.T) {
	for _, hex := range []string{"#6c63ff", "#ff6384", "#36d399", "#f5a623", "#00bcd4", "#e040fb", "#ff5252", "#8bc34a"} {
		c := heatmap.MustParseColor(hex)
		h, s, l := c.HSL()
		require.GreaterOrEqual(t, h, 0.0)
		require.Less(t, h, 1.0)
		require.Equal(t, hex, heatmap.FromHSL(h, s, l).Hex())
	}

	h, s, l := heatmap.MustParseColor("#888888").HSL()
	require.Equal(t, 0.0, h)
	require.Equal(t, 0.0, s)
	require.InDelta(t, 136.0/255, l, 1e-12)

	// hue wraps, saturation and lightness clamp
	require.Equal(t, heatmap.FromHSL(0.25, 1, 0.5).Hex(), heatmap.FromHSL(1.25, 2, 0.5).Hex())
	require.Equal(t, "#ff0000", heatmap.FromHSL(-1, 1, 0.5).Hex())
}

func TestInverse(t *testing.T) {
	cases := map[string]string{
		"#6c63ff": "#f6ff63",
		"#ff6384": "#63ffde",
		"#f5a623": "#2372f5",
		"#888888": "#888888", // achromatic input has nothing to rotate
	}
	for in, want := range cases {
		require.Equal(t, want, heatmap.MustParseColor(in).Inverse().Hex(), in)
	}
}

func TestLerpLuminance(t *testing.T) {
	require.Equal(t, heatmap.Black, heatmap.Black.Lerp(heatmap.White, 0))
	require.Equal(t, heatmap.White, heatmap.Black.Lerp(heatmap.White, 1))
	require.InDelta(t, 0.5, heatmap.Black.Lerp(heatmap.White, 0.5).R, 1e-15)

	require.InDelta(t, 1.0, heatmap.White.Luminance(), 1e-12)
	require.True(t, heatmap.White.IsLight())
	require.False(t, heatmap.Black.IsLight())
	// exactly 0.5 is not light
	require.False(t, heatmap.RGB(0.5, 0.5, 0.5).IsLight())
}

func TestNRGBA(t *testing.T) {
	require.Equal(t, color.NRGBA{R: 128, G: 0, B: 255, A: 153}, heatmap.RGB(0.5, 0, 1).NRGBA(153))
	require.Equal(t, color.NRGBA{R: 0, G: 255, A: 9}, heatmap.RGB(-1, 2, 0).NRGBA(9))
	require.Equal(t, heatmap.MustParseColor("#6a5acd"), heatmap.FromColor(color.RGBA{R: 0x6a, G: 0x5a, B: 0xcd, A: 0xff}))
}

func TestPalette(t *testing.T) {
	require.Len(t, heatmap.DefaultPalette, 8)
	require.Equal(t, "#6c63ff", heatmap.DefaultPalette.At(0).Hex())
	require.Equal(t, "#6c63ff", heatmap.DefaultPalette.At(8).Hex())
	require.Equal(t, "#8bc34a", heatmap.DefaultPalette.At(-1).Hex())
	require.Equal(t, heatmap.Neutral, heatmap.Palette(nil).At(3))

	p, err := heatmap.ParsePalette([]string{"red", "#00ff00"})
	require.NoError(t, err)
	require.Equal(t, "#ff0000", p.At(2).Hex())

	_, err = heatmap.ParsePalette([]string{"red", "bogus"})
	require.ErrorIs(t, err, heatmap.ErrBadColor)
}
