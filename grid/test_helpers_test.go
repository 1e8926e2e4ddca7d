// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for Dense/Sparse tests.

package grid_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/gridrev/grid"
)

// MustDense ALLOCATES an n×n *Dense or fails the test.
func MustDense(t *testing.T, n int) *grid.Dense {
	t.Helper()
	d, err := grid.NewDense(n)
	if err != nil {
		t.Fatalf("NewDense(%d): %v", n, err)
	}

	return d
}

// MustSparse ALLOCATES an n×n *Sparse or fails the test.
func MustSparse(t *testing.T, n int) *grid.Sparse {
	t.Helper()
	s, err := grid.NewSparse(n)
	if err != nil {
		t.Fatalf("NewSparse(%d): %v", n, err)
	}

	return s
}

// NewFilledDense BUILDS an n×n *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, n int, vals []float64) *grid.Dense {
	t.Helper()
	d, err := grid.DenseFromValues(n, vals)
	if err != nil {
		t.Fatalf("DenseFromValues(%d): %v", n, err)
	}

	return d
}

// mockGrid exposes a plain slice through grid.Grid; NaN marks unset cells.
// It forces consumers through the interface rather than concrete fast paths.
type mockGrid struct {
	n    int
	vals []float64
}

func (m mockGrid) Size() int { return m.n }

func (m mockGrid) Lookup(r, c int) (float64, bool) {
	if !grid.InBounds(r, c, m.n) {
		return 0, false
	}
	v := m.vals[r*m.n+c]

	return v, !math.IsNaN(v)
}
