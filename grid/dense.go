// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat N×N buffer with the explicit index formula r*N + c.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loops deterministic (fixed r→c order, no map iteration).
//   - Reject NaN/Inf on Set so defined cells stay defined.
//
// Complexity quicksheet:
//   - NewDense: O(N²) zero-init; At/Set/Lookup: O(1); Clone/Values/Equal: O(N²).

package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt    = "At"    // method tag used in error wrappers
	ctxSet   = "Set"   // method tag used in error wrappers
	ctxUnset = "Unset" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a fixed N×N row-major buffer where every cell is defined.
//   - n holds the edge length.
//   - data is a flat buffer of length n*n (offset = r*n + c).
type Dense struct {
	n    int       // edge length (>0)
	data []float64 // contiguous row-major storage (len == n*n)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an n×n zero-filled buffer.
// MAIN DESCRIPTION:
//   - Public constructor with strict size validation.
//
// Implementation:
//   - Stage 1: validate n>0; else ErrInvalidSize.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Inputs:
//   - n: positive edge length.
//
// Returns:
//   - *Dense: newly allocated buffer.
//
// Errors:
//   - ErrInvalidSize.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// DenseFromValues builds an n×n buffer from a row-major slice (copied).
// Returns ErrValueCount when len(vals) != n*n and ErrNaNInf on non-finite input.
// Complexity: O(n²).
func DenseFromValues(n int, vals []float64) (*Dense, error) {
	d, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	if len(vals) != n*n {
		return nil, fmt.Errorf("DenseFromValues(%d): %w", n, ErrValueCount)
	}
	for i, v := range vals {
		if !isFinite(v) {
			return nil, denseErrorf(ctxSet, i/n, i%n, ErrNaNInf)
		}
	}
	copy(d.data, vals)

	return d, nil
}

// Size returns the edge length N (0 for a nil buffer). Complexity: O(1).
func (m *Dense) Size() int {
	if m == nil {
		return 0
	}

	return m.n
}

// indexOf computes the row-major offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute flat offset for row-major storage.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods wrap with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if !InBounds(row, col, m.n) {
		return 0, ErrOutOfRange
	}

	// Row-major offset: r*N + c.
	return row*m.n + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; memory is not touched on error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Lookup implements Grid. Every in-range Dense cell is defined; a nil
// buffer has no cells.
func (m *Dense) Lookup(row, col int) (float64, bool) {
	if m == nil {
		return 0, false
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, false
	}

	return m.data[off], true
}

// Set stores v at (row, col).
// MAIN DESCRIPTION:
//   - Safe single-cell write; edits mutate one cell in place.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: reject NaN/±Inf (a dense cell is always a defined number).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (both wrapped with coordinates).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Values returns a row-major copy of all cells. Complexity: O(n²).
func (m *Dense) Values() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)

	return out
}

// Row returns a copy of row r, or nil when r is out of range.
func (m *Dense) Row(r int) []float64 {
	if r < 0 || r >= m.n {
		return nil
	}
	out := make([]float64, m.n)
	copy(out, m.data[r*m.n:(r+1)*m.n])

	return out
}

// Clone returns a deep copy that does not share storage. Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	return &Dense{n: m.n, data: m.Values()}
}

// Reset zeroes every cell in place.
func (m *Dense) Reset() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// CopyFrom replaces every cell with src's values. Sizes must match.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return ErrNilBuffer
	}
	if src.n != m.n {
		return fmt.Errorf("Dense.CopyFrom: %w", ErrSizeMismatch)
	}
	copy(m.data, src.data)

	return nil
}

// Equal reports exact cell-wise equality (same size, same values).
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// IsZero reports whether every cell is 0.
func (m *Dense) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// String renders the buffer as bracketed rows, e.g. "[1, 2]\n[3, 4]\n".
// Intended for debugging and test failure messages.
func (m *Dense) String() string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < m.n; r++ {
		sb.WriteString(_fmtRowOpen)
		for c = 0; c < m.n; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[r*m.n+c])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
