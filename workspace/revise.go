// SPDX-License-Identifier: MIT

package workspace

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/heatmap"
	"github.com/katalvlaran/gridrev/revision"
)

// CustomSource selects a pasted base table instead of a slot.
const CustomSource = -1

// Revise is the revision scratch area: a base table (copied from a source
// slot or pasted), a sparse modifier table and the slot the output is applied
// to. The output is always derived, never stored.
type Revise struct {
	w      *Workspace
	source int
	target int
	base   *grid.Dense
	mods   *grid.Sparse
}

func newRevise(w *Workspace) (*Revise, error) {
	base, err := grid.NewDense(w.n)
	if err != nil {
		return nil, err
	}
	mods, err := grid.NewSparse(w.n)
	if err != nil {
		return nil, err
	}

	return &Revise{w: w, base: base, mods: mods}, nil
}

// Source returns the source slot index or CustomSource.
func (rv *Revise) Source() int { return rv.source }

// Target returns the apply target slot index.
func (rv *Revise) Target() int { return rv.target }

// Base returns a copy of the base table.
func (rv *Revise) Base() *grid.Dense { return rv.base.Clone() }

// Mods returns a copy of the modifier table.
func (rv *Revise) Mods() *grid.Sparse { return rv.mods.Clone() }

// Color is the heatmap color of all three revise grids: the source slot's
// color, or the neutral color for a custom base.
func (rv *Revise) Color() heatmap.Color {
	if rv.source == CustomSource {
		return rv.w.neutral
	}

	return rv.w.slots[rv.source].color
}

// SelectSource loads the base from slot i (zeros for an empty slot) and makes
// i the apply target too. CustomSource zeroes the base and keeps the target.
func (rv *Revise) SelectSource(i int) error {
	if i == CustomSource {
		rv.source = CustomSource
		rv.base.Reset()
		rv.w.emit(ReviseChanged, NoSlot)
		return nil
	}
	s, err := rv.w.Slot(i)
	if err != nil {
		return err
	}
	rv.source, rv.target = i, i
	rv.syncBase(s)
	rv.w.emit(ReviseChanged, i)

	return nil
}

func (rv *Revise) syncBase(s *Slot) {
	if s.data == nil {
		rv.base.Reset()
		return
	}
	_ = rv.base.CopyFrom(s.data) // same N
}

// SelectTarget chooses the slot ApplyToTarget writes to.
func (rv *Revise) SelectTarget(i int) error {
	if _, err := rv.w.Slot(i); err != nil {
		return err
	}
	rv.target = i
	rv.w.emit(ReviseChanged, i)

	return nil
}

// Output computes base with the modifiers applied.
func (rv *Revise) Output() (*grid.Dense, error) {
	return revision.Apply(rv.base, rv.mods)
}

// Result bundles the revise output and the heatmaps of all three grids.
type Result struct {
	Output    *grid.Dense
	Color     heatmap.Color
	BaseMap   *heatmap.Map
	ModsMap   *heatmap.Map
	OutputMap *heatmap.Map
}

// Compute derives the output and colors base, modifiers and output with
// Color(). The modifier heatmap paints only set cells.
func (rv *Revise) Compute() (Result, error) {
	out, err := rv.Output()
	if err != nil {
		return Result{}, err
	}
	col := rv.Color()

	return Result{
		Output:    out,
		Color:     col,
		BaseMap:   heatmap.ComputeColors(rv.base, col),
		ModsMap:   heatmap.ComputeColors(rv.mods, col),
		OutputMap: heatmap.ComputeColors(out, col),
	}, nil
}

// ApplyToTarget writes the output into the target slot and clears the
// modifiers.
func (rv *Revise) ApplyToTarget() error {
	s, err := rv.w.Slot(rv.target)
	if err != nil {
		return fmt.Errorf("workspace.ApplyToTarget: %w", ErrNoTarget)
	}
	out, err := rv.Output()
	if err != nil {
		return err
	}
	s.data = out
	rv.w.emit(SlotChanged, s.index)
	gridrev.Logger().Info("workspace: revision applied", "slot", s.index, "modifiers", rv.mods.Count())
	rv.ClearMods()

	return nil
}

// ApplyToAll applies the modifiers to every non-empty slot and clears them.
// The base table is not involved. Returns the number of slots updated.
// Errors: revision.ErrNoModifiers (nothing changes), revision.ErrNothingToApply.
func (rv *Revise) ApplyToAll() (int, error) {
	tables := make([]*grid.Dense, len(rv.w.slots))
	for i, s := range rv.w.slots {
		tables[i] = s.data
	}
	res, count, err := revision.ApplyToAll(tables, rv.mods)
	if err != nil {
		return 0, err
	}
	for i, s := range rv.w.slots {
		if d, ok := res[i]; ok {
			s.data = d
			rv.w.emit(SlotChanged, i)
		}
	}
	gridrev.Logger().Info("workspace: revision applied to all slots", "slots", count, "modifiers", rv.mods.Count())
	rv.ClearMods()

	return count, nil
}

// ClearMods unsets every modifier.
func (rv *Revise) ClearMods() {
	rv.mods.Reset()
	rv.w.emit(ReviseChanged, NoSlot)
}

// ClearBase zeroes the base table.
func (rv *Revise) ClearBase() {
	rv.base.Reset()
	rv.w.emit(ReviseChanged, NoSlot)
}

// CopyBase serializes the base table.
func (rv *Revise) CopyBase() string { return codec.SerializeDense(rv.base) }

// CopyMods serializes the modifiers with blanks for unset cells.
func (rv *Revise) CopyMods() string { return codec.SerializeSparse(rv.mods) }

// CopyOutput serializes the output.
func (rv *Revise) CopyOutput() (string, error) {
	out, err := rv.Output()
	if err != nil {
		return "", err
	}

	return codec.SerializeDense(out), nil
}

// PasteBase pastes into the base table at (r, c).
func (rv *Revise) PasteBase(r, c int, text string) codec.PasteStats {
	st := codec.PasteRegion(text, r, c, rv.base)
	rv.w.emit(ReviseChanged, NoSlot)

	return st
}

// PasteMods pastes into the modifier table at (r, c).
func (rv *Revise) PasteMods(r, c int, text string) codec.PasteStats {
	st := codec.PasteRegion(text, r, c, rv.mods)
	rv.w.emit(ReviseChanged, NoSlot)

	return st
}

// EditBase sets one base cell from typed text (unparsable stores 0).
func (rv *Revise) EditBase(r, c int, text string) error {
	v, ok := codec.ParseCell(text)
	if !ok {
		v = 0
	}
	if err := rv.base.Set(r, c, v); err != nil {
		return err
	}
	rv.w.emit(ReviseChanged, NoSlot)

	return nil
}

// EditMods sets one modifier from typed text; blank or unparsable text
// unsets the cell.
func (rv *Revise) EditMods(r, c int, text string) error {
	var err error
	if v, ok := codec.ParseCell(strings.TrimSpace(text)); ok {
		err = rv.mods.Set(r, c, v)
	} else {
		err = rv.mods.Unset(r, c)
	}
	if err != nil {
		return err
	}
	rv.w.emit(ReviseChanged, NoSlot)

	return nil
}

// LoadMods replaces the modifiers with text parsed as a sparse table. Blank
// text clears them.
func (rv *Revise) LoadMods(text string) {
	mods, err := codec.ParseSparse(text, rv.w.n)
	if err != nil {
		rv.mods.Reset()
	} else {
		rv.mods = mods
	}
	rv.w.emit(ReviseChanged, NoSlot)
}
