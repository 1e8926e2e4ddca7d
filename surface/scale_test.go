// SPDX-License-Identifier: MIT

package surface_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/surface"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, n int, vals ...float64) *grid.Dense {
	t.Helper()
	full := make([]float64, n*n)
	copy(full, vals)
	d, err := grid.DenseFromValues(n, full)
	require.NoError(t, err)

	return d
}

func TestScaleFactorAllZero(t *testing.T) {
	d := dense(t, 16)
	require.Equal(t, 1.0, surface.ScaleFactor(d, surface.DefaultTargetHeight))
	for _, h := range surface.Heights(d, surface.DefaultTargetHeight) {
		require.Equal(t, 0.0, h)
	}
	require.Equal(t, 1.0, surface.ScaleFactor(nil, 6))
	require.Nil(t, surface.Heights(nil, 6))
}

func TestScaleFactorNegativeExtreme(t *testing.T) {
	d := dense(t, 2, 3, -12, 0, 6)
	require.Equal(t, 12.0, surface.AbsMax(d))
	require.Equal(t, 0.5, surface.ScaleFactor(d, 6))

	h := surface.Heights(d, 6)
	require.Equal(t, []float64{1.5, -6, 0, 3}, h)

	// data untouched
	v, _ := d.At(0, 1)
	require.Equal(t, -12.0, v)
}

func TestHeightsBounded(t *testing.T) {
	d := dense(t, 3, 0.001, -0.002, 0.0005, 0, 0, 0, 0, 0, 0.0015)
	var peak float64
	for _, h := range surface.Heights(d, 10) {
		require.LessOrEqual(t, math.Abs(h), 10.0+1e-12)
		peak = math.Max(peak, math.Abs(h))
	}
	require.InDelta(t, 10.0, peak, 1e-12)
}
