// SPDX-License-Identifier: MIT

// Package grid - Sparse (modifier) storage.
//
// Purpose:
//   - Hold an N×N buffer whose cells may be unset.
//   - Make "unset" an explicit Cell state so arithmetic never sees a NaN.
//
// Behavior highlights:
//   - A fresh Sparse has every cell unset.
//   - Set(r, c, NaN) unsets the cell (a NaN coming from a legacy source means
//     "no value"); ±Inf is rejected.

package grid

import (
	"fmt"
	"math"
	"strings"
)

func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a fixed N×N row-major buffer of optional cells.
type Sparse struct {
	n     int
	cells []Cell
}

var _ fmt.Stringer = (*Sparse)(nil)

// NewSparse creates an n×n buffer with every cell unset.
// Errors: ErrInvalidSize when n <= 0. Complexity: O(n²).
func NewSparse(n int) (*Sparse, error) {
	if n <= 0 {
		return nil, ErrInvalidSize
	}

	return &Sparse{n: n, cells: make([]Cell, n*n)}, nil
}

// Size returns the edge length N (0 for a nil buffer).
func (s *Sparse) Size() int {
	if s == nil {
		return 0
	}

	return s.n
}

func (s *Sparse) indexOf(row, col int) (int, error) {
	if !InBounds(row, col, s.n) {
		return 0, ErrOutOfRange
	}

	return row*s.n + col, nil
}

// At returns the cell at (row, col) or ErrOutOfRange.
func (s *Sparse) At(row, col int) (Cell, error) {
	off, err := s.indexOf(row, col)
	if err != nil {
		return Unset, sparseErrorf(ctxAt, row, col, err)
	}

	return s.cells[off], nil
}

// Lookup implements Grid: (value, true) for a set cell, (0, false) otherwise.
func (s *Sparse) Lookup(row, col int) (float64, bool) {
	if s == nil {
		return 0, false
	}
	off, err := s.indexOf(row, col)
	if err != nil {
		return 0, false
	}

	return s.cells[off].Float()
}

// Set marks (row, col) as set to v. NaN unsets the cell; ±Inf is rejected.
func (s *Sparse) Set(row, col int, v float64) error {
	off, err := s.indexOf(row, col)
	if err != nil {
		return sparseErrorf(ctxSet, row, col, err)
	}
	if math.IsNaN(v) {
		s.cells[off] = Unset
		return nil
	}
	if math.IsInf(v, 0) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	s.cells[off] = Defined(v)

	return nil
}

// SetCell stores an optional cell as-is (after the same ±Inf check as Set).
func (s *Sparse) SetCell(row, col int, cell Cell) error {
	if !cell.Valid {
		return s.Unset(row, col)
	}

	return s.Set(row, col, cell.Value)
}

// Unset clears (row, col) back to "no change".
func (s *Sparse) Unset(row, col int) error {
	off, err := s.indexOf(row, col)
	if err != nil {
		return sparseErrorf(ctxUnset, row, col, err)
	}
	s.cells[off] = Unset

	return nil
}

// Cells returns a row-major copy of all cells.
func (s *Sparse) Cells() []Cell {
	out := make([]Cell, len(s.cells))
	copy(out, s.cells)

	return out
}

// Count returns the number of set cells.
func (s *Sparse) Count() int {
	n := 0
	for _, c := range s.cells {
		if c.Valid {
			n++
		}
	}

	return n
}

// IsEmpty reports whether no cell is set.
func (s *Sparse) IsEmpty() bool { return s.Count() == 0 }

// Reset unsets every cell in place.
func (s *Sparse) Reset() {
	for i := range s.cells {
		s.cells[i] = Unset
	}
}

// Clone returns a deep copy.
func (s *Sparse) Clone() *Sparse {
	return &Sparse{n: s.n, cells: s.Cells()}
}

// Equal reports whether both buffers have the same size and set/unset
// pattern with identical values in set cells.
func (s *Sparse) Equal(o *Sparse) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.n != o.n {
		return false
	}
	for i, c := range s.cells {
		if c != o.cells[i] {
			return false
		}
	}

	return true
}

// String renders rows like Dense.String, with "_" for unset cells.
func (s *Sparse) String() string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < s.n; r++ {
		sb.WriteString(_fmtRowOpen)
		for c = 0; c < s.n; c++ {
			if c > 0 {
				sb.WriteString(_fmtSep)
			}
			cell := s.cells[r*s.n+c]
			if !cell.Valid {
				sb.WriteString("_")
				continue
			}
			fmt.Fprintf(&sb, "%g", cell.Value)
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
