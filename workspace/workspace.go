// SPDX-License-Identifier: MIT

package workspace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/config"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/heatmap"
	"github.com/katalvlaran/gridrev/surface"
)

// Workspace holds the slots, revise context and axes of one session.
type Workspace struct {
	n       int
	slots   []*Slot
	palette heatmap.Palette
	neutral heatmap.Color
	height  float64
	axes    surface.Axes

	revise *Revise

	listener Listener
	dirty    bool
	store    Store
	saves    Debouncer
}

// New creates a workspace with cfg.SlotCount empty, visible slots of size
// cfg.GridSize. The config is validated first. A non-empty cfg.StatePath
// attaches a FileStore at that path for autosave; restoring from it is left
// to the caller (LoadFrom(ctx, w.Store())).
func New(cfg config.Config) (*Workspace, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("workspace.New: %w", err)
	}
	w := &Workspace{
		n:       cfg.GridSize,
		slots:   make([]*Slot, cfg.SlotCount),
		palette: cfg.ResolvedPalette(),
		neutral: cfg.Neutral(),
		height:  cfg.TargetHeight,
	}
	for i := range w.slots {
		w.slots[i] = newSlot(i, w.palette.At(i))
	}
	rv, err := newRevise(w)
	if err != nil {
		return nil, err
	}
	w.revise = rv
	if cfg.StatePath != "" {
		w.Attach(&FileStore{Path: cfg.StatePath})
	}

	return w, nil
}

// SetListener installs l (nil disables notifications).
func (w *Workspace) SetListener(l Listener) { w.listener = l }

// Size returns the grid edge length N shared by every table.
func (w *Workspace) Size() int { return w.n }

// SlotCount returns the number of slots.
func (w *Workspace) SlotCount() int { return len(w.slots) }

// Slot returns slot i.
func (w *Workspace) Slot(i int) (*Slot, error) {
	if i < 0 || i >= len(w.slots) {
		return nil, fmt.Errorf("workspace: slot %d: %w", i, ErrSlotOutOfRange)
	}

	return w.slots[i], nil
}

// Slots returns the slots in order. The slice is a copy.
func (w *Workspace) Slots() []*Slot {
	return append([]*Slot(nil), w.slots...)
}

// Revise returns the revise context.
func (w *Workspace) Revise() *Revise { return w.revise }

// Neutral is the heatmap color for grids not owned by a slot.
func (w *Workspace) Neutral() heatmap.Color { return w.neutral }

// Dirty reports whether anything changed since the last successful save.
func (w *Workspace) Dirty() bool { return w.dirty }

func (w *Workspace) emit(kind EventKind, slot int) {
	w.dirty = true
	if w.store != nil {
		w.saves.Schedule(w.Save)
	}
	if w.listener != nil {
		w.listener(Event{Kind: kind, Slot: slot})
	}
}

// Load replaces slot i with text parsed as a table. Blank text empties the
// slot.
func (w *Workspace) Load(i int, text string) error {
	s, err := w.Slot(i)
	if err != nil {
		return err
	}
	d, err := codec.ParseDense(text, w.n)
	switch {
	case errors.Is(err, codec.ErrNoContent):
		s.data = nil
	case err != nil:
		return fmt.Errorf("workspace.Load(%d): %w", i, err)
	default:
		s.data = d
	}
	w.emit(SlotChanged, i)

	return nil
}

// ensure returns the slot buffer, creating a zero table for an empty slot.
func (w *Workspace) ensure(s *Slot) *grid.Dense {
	if s.data == nil {
		s.data, _ = grid.NewDense(w.n) // n validated in New
	}

	return s.data
}

// EditCell sets one cell from typed text. Unparsable text stores 0; an empty
// slot becomes a zero table first.
func (w *Workspace) EditCell(i, r, c int, text string) error {
	s, err := w.Slot(i)
	if err != nil {
		return err
	}
	if !grid.InBounds(r, c, w.n) {
		return fmt.Errorf("workspace.EditCell(%d): %w", i, grid.ErrOutOfRange)
	}
	v, ok := codec.ParseCell(text)
	if !ok {
		v = 0
	}
	if err = w.ensure(s).Set(r, c, v); err != nil {
		return err
	}
	w.emit(SlotChanged, i)

	return nil
}

// Paste writes pasted text into slot i anchored at (r, c). An empty slot
// becomes a zero table first.
func (w *Workspace) Paste(i, r, c int, text string) (codec.PasteStats, error) {
	s, err := w.Slot(i)
	if err != nil {
		return codec.PasteStats{}, err
	}
	if text == "" {
		return codec.PasteStats{}, nil
	}
	st := codec.PasteRegion(text, r, c, w.ensure(s))
	w.emit(SlotChanged, i)

	return st, nil
}

// Clear empties slot i. Name, color and visibility are kept.
func (w *Workspace) Clear(i int) error {
	s, err := w.Slot(i)
	if err != nil {
		return err
	}
	s.data = nil
	w.emit(SlotChanged, i)

	return nil
}

// Assign stores a copy of d in slot i; nil empties the slot.
func (w *Workspace) Assign(i int, d *grid.Dense) error {
	s, err := w.Slot(i)
	if err != nil {
		return err
	}
	if d == nil {
		s.data = nil
	} else {
		if d.Size() != w.n {
			return fmt.Errorf("workspace.Assign(%d): %w", i, grid.ErrSizeMismatch)
		}
		s.data = d.Clone()
	}
	w.emit(SlotChanged, i)

	return nil
}

// Rename sets the display name. Surrounding whitespace is trimmed and an
// empty result restores DefaultName(i).
func (w *Workspace) Rename(i int, name string) error {
	s, err := w.Slot(i)
	if err != nil {
		return err
	}
	if name = strings.TrimSpace(name); name == "" {
		name = DefaultName(i)
	}
	if name == s.name {
		return nil
	}
	s.name = name
	w.emit(SlotChanged, i)

	return nil
}

// SetVisible shows or hides slot i.
func (w *Workspace) SetVisible(i int, visible bool) error {
	s, err := w.Slot(i)
	if err != nil {
		return err
	}
	if s.visible == visible {
		return nil
	}
	s.visible = visible
	w.emit(VisibilityChanged, i)

	return nil
}

// ToggleVisible flips visibility and returns the new state.
func (w *Workspace) ToggleVisible(i int) (bool, error) {
	s, err := w.Slot(i)
	if err != nil {
		return false, err
	}
	s.visible = !s.visible
	w.emit(VisibilityChanged, i)

	return s.visible, nil
}

// Copy serializes slot i for the clipboard.
func (w *Workspace) Copy(i int) (string, error) {
	s, err := w.Slot(i)
	if err != nil {
		return "", err
	}
	if s.data == nil {
		return "", fmt.Errorf("workspace.Copy(%d): %w", i, ErrEmptySlot)
	}

	return codec.SerializeDense(s.data), nil
}

// Tables returns the slot buffers by index (nil for empty slots). The
// buffers are copies.
func (w *Workspace) Tables() []*grid.Dense {
	out := make([]*grid.Dense, len(w.slots))
	for i, s := range w.slots {
		out[i] = s.Data()
	}

	return out
}

// Heatmap colors slot i with its palette color. An empty slot yields a map
// with no painted cell.
func (w *Workspace) Heatmap(i int) (*heatmap.Map, error) {
	s, err := w.Slot(i)
	if err != nil {
		return nil, err
	}
	if s.data == nil {
		empty, _ := grid.NewSparse(w.n)
		return heatmap.ComputeColors(empty, s.color), nil
	}

	return heatmap.ComputeColors(s.data, s.color), nil
}

// Axes returns the axis captions.
func (w *Workspace) Axes() surface.Axes { return w.axes }

// SetAxes replaces the axis captions.
func (w *Workspace) SetAxes(a surface.Axes) {
	w.axes = a
	w.emit(AxesChanged, NoSlot)
}

// RenderInput is what the rendering layer needs to draw one surface.
type RenderInput struct {
	Slot    int
	Name    string
	Color   heatmap.Color
	Data    *grid.Dense
	Scale   float64   // surface.ScaleFactor of Data
	Heights []float64 // row-major Data × Scale
}

// RenderInputs lists every visible, non-empty slot in slot order.
func (w *Workspace) RenderInputs() []RenderInput {
	var out []RenderInput
	for _, s := range w.slots {
		if !s.visible || s.data == nil {
			continue
		}
		out = append(out, RenderInput{
			Slot:    s.index,
			Name:    s.name,
			Color:   s.color,
			Data:    s.data.Clone(),
			Scale:   surface.ScaleFactor(s.data, w.height),
			Heights: surface.Heights(s.data, w.height),
		})
	}
	gridrev.Logger().Debug("workspace: render inputs", "surfaces", len(out))

	return out
}
