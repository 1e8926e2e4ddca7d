// SPDX-License-Identifier: MIT

package workspace

import (
	"strconv"

	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/heatmap"
)

// Slot is one table position. Its metadata is read through accessors; all
// mutation goes through Workspace so listeners see every change.
type Slot struct {
	index   int
	name    string
	visible bool
	color   heatmap.Color
	data    *grid.Dense // nil = empty
}

// DefaultName is the display name of slot i ("Table 1" for i=0).
func DefaultName(i int) string { return "Table " + strconv.Itoa(i+1) }

func newSlot(i int, c heatmap.Color) *Slot {
	return &Slot{index: i, name: DefaultName(i), visible: true, color: c}
}

// Index returns the slot position.
func (s *Slot) Index() int { return s.index }

// Name returns the display name (never empty).
func (s *Slot) Name() string { return s.name }

// Visible reports whether the slot is drawn.
func (s *Slot) Visible() bool { return s.visible }

// Color returns the palette color assigned to the slot.
func (s *Slot) Color() heatmap.Color { return s.color }

// Empty reports whether the slot holds no table.
func (s *Slot) Empty() bool { return s.data == nil }

// Data returns a copy of the slot's table, or nil when empty.
func (s *Slot) Data() *grid.Dense {
	if s.data == nil {
		return nil
	}

	return s.data.Clone()
}
