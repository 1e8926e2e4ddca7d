// SPDX-License-Identifier: MIT

package surface_test

import (
	"testing"

	"github.com/katalvlaran/gridrev/surface"
	"github.com/stretchr/testify/require"
)

func TestParseTicks(t *testing.T) {
	require.Nil(t, surface.ParseTicks("  "))
	require.Equal(t, []string{"500", "1000", "1500"}, surface.ParseTicks(" 500, 1000,,1500 ,"))
	require.Equal(t, "a, b", surface.FormatTicks([]string{"a", "b"}))
}

func TestCaption(t *testing.T) {
	require.Equal(t, "", surface.Axis{}.Caption())
	require.Equal(t, "RPM", surface.Axis{Label: "RPM"}.Caption())
	require.Equal(t, "(kPa)", surface.Axis{Units: "kPa"}.Caption())
	require.Equal(t, "Load (kPa)", surface.Axis{Label: "Load", Units: "kPa"}.Caption())
}

func TestTickLabels(t *testing.T) {
	a := surface.Axis{Ticks: []string{"a", "b", "c", "d"}}
	require.Equal(t, "b", a.TickLabel(1))
	require.Equal(t, "9", a.TickLabel(9))

	labels := a.Labels(16)
	require.Len(t, labels, 6) // 0,3,6,9,12,15
	require.Equal(t, surface.Tick{Index: 3, Label: "d"}, labels[1])
	require.Equal(t, surface.Tick{Index: 15, Label: "15"}, labels[5])

	require.Len(t, a.Labels(8), 8)
	require.True(t, surface.TickVisible(5, 8))
	require.False(t, surface.TickVisible(5, 16))
}
