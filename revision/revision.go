// SPDX-License-Identifier: MIT

package revision

import (
	"fmt"

	"github.com/katalvlaran/gridrev/grid"
)

const (
	opApply      = "Apply"
	opApplyToAll = "ApplyToAll"
)

func revisionErrorf(op string, err error) error {
	return fmt.Errorf("revision.%s: %w", op, err)
}

// Factor converts a percentage modifier to a multiplier: 5 → 1.05.
func Factor(pct float64) float64 { return 1 + pct/100 }

// Apply combines base with mods into a new buffer.
//
// Implementation:
//   - Stage 1: validate non-nil inputs of equal size.
//   - Stage 2: for each cell, keep base when the modifier is unset, else
//     multiply by Factor(modifier).
//   - Stage 3: materialize the result as a new Dense.
//
// Errors:
//   - grid.ErrNilBuffer, grid.ErrSizeMismatch.
//   - grid.ErrNaNInf when a product overflows float64 (|base| near
//     math.MaxFloat64). Results are otherwise unbounded, but an infinite
//     cell is reported instead of stored, so ApplyToAll fails as a whole.
//
// Complexity:
//   - Time O(N²), Space O(N²).
func Apply(base *grid.Dense, mods *grid.Sparse) (*grid.Dense, error) {
	if base == nil || mods == nil {
		return nil, revisionErrorf(opApply, grid.ErrNilBuffer)
	}
	if err := grid.ValidateSameSize(base, mods); err != nil {
		return nil, revisionErrorf(opApply, err)
	}

	n := base.Size()
	vals := base.Values()
	cells := mods.Cells()
	for i, m := range cells {
		if m.Valid {
			vals[i] *= Factor(m.Value)
		}
	}
	out, err := grid.DenseFromValues(n, vals)
	if err != nil {
		return nil, revisionErrorf(opApply, err)
	}

	return out, nil
}

// HasModifiers reports whether mods has at least one set cell.
func HasModifiers(mods *grid.Sparse) bool {
	return mods != nil && !mods.IsEmpty()
}

// ApplyToAll applies the same modifiers independently to every non-nil entry
// of tables (a nil entry is an empty slot and is skipped).
//
// Returns the results keyed by slot index and the number of slots affected.
//
// Errors:
//   - ErrNoModifiers when mods has no set cell (checked first).
//   - ErrNothingToApply when every slot is empty.
//   - Any Apply error (e.g. grid.ErrNaNInf on overflow), annotated with the
//     slot index; nothing is returned in that case so callers never see a
//     partial batch.
func ApplyToAll(tables []*grid.Dense, mods *grid.Sparse) (map[int]*grid.Dense, int, error) {
	if !HasModifiers(mods) {
		return nil, 0, revisionErrorf(opApplyToAll, ErrNoModifiers)
	}

	out := make(map[int]*grid.Dense, len(tables))
	for i, t := range tables {
		if t == nil {
			continue
		}
		res, err := Apply(t, mods)
		if err != nil {
			return nil, 0, fmt.Errorf("revision.%s: slot %d: %w", opApplyToAll, i, err)
		}
		out[i] = res
	}
	if len(out) == 0 {
		return nil, 0, revisionErrorf(opApplyToAll, ErrNothingToApply)
	}

	return out, len(out), nil
}
