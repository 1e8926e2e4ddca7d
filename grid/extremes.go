// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Extremes returns the minimum and maximum over all defined cells of g.
//
// ok=false is the "no data" sentinel: g is nil (including a typed-nil
// *Dense or *Sparse) or has no defined cell. In that
// case min and max are 0 and must not be used. A legitimate pair (including
// min == max) always comes with ok=true.
//
// Complexity: O(N²), fixed r→c order.
func Extremes(g Grid) (min, max float64, ok bool) {
	if isNil(g) {
		return 0, 0, false
	}
	n := g.Size()
	var (
		r, c int
		v    float64
		set  bool
	)
	for r = 0; r < n; r++ {
		for c = 0; c < n; c++ {
			if v, set = g.Lookup(r, c); !set {
				continue
			}
			if !ok {
				min, max, ok = v, v, true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}

	return min, max, ok
}

// ValidateSameSize ensures a and b are non-nil and share an edge length.
// Returns ErrNilBuffer or a wrapped ErrSizeMismatch.
func ValidateSameSize(a, b Grid) error {
	if isNil(a) || isNil(b) {
		return ErrNilBuffer
	}
	if a.Size() != b.Size() {
		return fmt.Errorf("ValidateSameSize: %d vs %d: %w", a.Size(), b.Size(), ErrSizeMismatch)
	}

	return nil
}

// isNil reports a nil interface or a nil concrete buffer behind it.
func isNil(g Grid) bool {
	switch v := g.(type) {
	case nil:
		return true
	case *Dense:
		return v == nil
	case *Sparse:
		return v == nil
	}

	return false
}
