// SPDX-License-Identifier: MIT

package codec_test

import (
	"testing"

	"github.com/katalvlaran/gridrev/grid"
)

const N = 16

// mustAt READS d[r,c] or fails the test.
func mustAt(t *testing.T, d *grid.Dense, r, c int) float64 {
	t.Helper()
	v, err := d.At(r, c)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", r, c, err)
	}

	return v
}

// row RETURNS the first k cells of row r.
func row(t *testing.T, d *grid.Dense, r, k int) []float64 {
	t.Helper()
	out := make([]float64, k)
	for c := 0; c < k; c++ {
		out[c] = mustAt(t, d, r, c)
	}

	return out
}

// fillDense writes v(r,c) into every cell of a fresh n×n buffer.
func fillDense(t *testing.T, n int, v func(r, c int) float64) *grid.Dense {
	t.Helper()
	d, err := grid.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if err = d.Set(r, c, v(r, c)); err != nil {
				t.Fatalf("Set(%d,%d): %v", r, c, err)
			}
		}
	}

	return d
}
