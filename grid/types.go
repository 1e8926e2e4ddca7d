// SPDX-License-Identifier: MIT

// Package grid: shared interfaces and the optional cell type.
package grid

import "math"

// Grid is the read-only surface shared by Dense and Sparse.
//
// Lookup returns (value, true) for a defined cell and (0, false) for an unset
// cell or for coordinates outside [0, Size()). It never panics.
type Grid interface {
	// Size returns the edge length N.
	Size() int

	// Lookup reads cell (r, c). Complexity: O(1).
	Lookup(r, c int) (float64, bool)
}

// Writable is a Grid whose cells can be assigned. Both *Dense and *Sparse
// implement it, which lets region paste target either flavor.
type Writable interface {
	Grid

	// Set assigns v at (r, c). Returns ErrOutOfRange on invalid coordinates.
	Set(r, c int, v float64) error
}

// Cell is an optional number: Valid=false means "unset", i.e. no change
// wherever the owning Sparse buffer is consumed.
type Cell struct {
	Value float64
	Valid bool
}

// Unset is the zero Cell.
var Unset = Cell{}

// Defined returns a set cell holding v.
func Defined(v float64) Cell { return Cell{Value: v, Valid: true} }

// Float returns the value and whether it is set; a mirror of Grid.Lookup.
func (c Cell) Float() (float64, bool) { return c.Value, c.Valid }

// Or returns the value when set and def otherwise.
func (c Cell) Or(def float64) float64 {
	if !c.Valid {
		return def
	}

	return c.Value
}

// Compile-time assertions.
var (
	_ Writable = (*Dense)(nil)
	_ Writable = (*Sparse)(nil)
)

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// ClampIndex clamps i into [0, n). Boundary layers use it for cursor-like
// coordinates; parsing layers drop out-of-range cells instead.
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}

	return i
}

// InBounds reports whether (r, c) lies inside an n×n grid.
// Complexity: O(1).
func InBounds(r, c, n int) bool {
	return r >= 0 && r < n && c >= 0 && c < n
}
