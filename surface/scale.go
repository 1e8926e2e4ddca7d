// SPDX-License-Identifier: MIT

package surface

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gridrev/grid"
)

// DefaultTargetHeight is the absolute height reached by the most extreme value.
const DefaultTargetHeight = 6.0

// AbsMax returns the largest |value| over all cells (0 for nil).
func AbsMax(d *grid.Dense) float64 {
	if d == nil {
		return 0
	}

	return floats.Norm(d.Values(), math.Inf(1))
}

// ScaleFactor maps d into ±targetMaxHeight: targetMaxHeight / AbsMax(d).
// An all-zero (or nil) buffer returns 1 so nothing is divided by zero and
// every height stays 0.
// Complexity: O(N²).
func ScaleFactor(d *grid.Dense, targetMaxHeight float64) float64 {
	absMax := AbsMax(d)
	if absMax == 0 {
		return 1
	}

	return targetMaxHeight / absMax
}

// Heights returns value × ScaleFactor(d, targetMaxHeight) in row-major order.
// The buffer itself is not modified. A nil buffer yields nil.
func Heights(d *grid.Dense, targetMaxHeight float64) []float64 {
	if d == nil {
		return nil
	}
	h := d.Values()
	floats.Scale(ScaleFactor(d, targetMaxHeight), h)

	return h
}
