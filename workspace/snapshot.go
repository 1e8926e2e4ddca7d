// SPDX-License-Identifier: MIT

package workspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/surface"
)

// Axis field keys inside Snapshot.Axis.
const (
	AxisXLabel = "x-label"
	AxisXUnits = "x-units"
	AxisXTicks = "x-ticks"
	AxisYLabel = "y-label"
	AxisYUnits = "y-units"
	AxisYTicks = "y-ticks"
	AxisZLabel = "z-label"
	AxisZUnits = "z-units"
)

// CustomSourceValue is the persisted form of CustomSource.
const CustomSourceValue = "custom"

// Snapshot is the persisted workspace state. Tables are stored as serialized
// text, indices as decimal strings. Every field is optional on restore.
type Snapshot struct {
	Axis              map[string]string `json:"axis,omitempty"`
	TableData         []string          `json:"tableData,omitempty"`
	TableNames        []string          `json:"tableNames,omitempty"`
	TableVisible      []*bool           `json:"tableVisible,omitempty"`
	ReviseSource      string            `json:"reviseSource,omitempty"`
	ReviseApplyTarget string            `json:"reviseApplyTarget,omitempty"`
	ReviseMods        string            `json:"reviseMods,omitempty"`
}

// EncodeSnapshot renders snap as JSON.
func EncodeSnapshot(snap *Snapshot) ([]byte, error) {
	return json.Marshal(snap)
}

// DecodeSnapshot parses JSON produced by EncodeSnapshot. Malformed input is
// reported as ErrCorruptSnapshot.
func DecodeSnapshot(raw []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}

	return &snap, nil
}

// Snapshot captures the current state.
func (w *Workspace) Snapshot() *Snapshot {
	snap := &Snapshot{
		Axis:         axesToFields(w.axes),
		TableData:    make([]string, len(w.slots)),
		TableNames:   make([]string, len(w.slots)),
		TableVisible: make([]*bool, len(w.slots)),
	}
	for i, s := range w.slots {
		if s.data != nil {
			snap.TableData[i] = codec.SerializeDense(s.data)
		}
		snap.TableNames[i] = s.name
		visible := s.visible
		snap.TableVisible[i] = &visible
	}
	snap.ReviseSource = CustomSourceValue
	if w.revise.source != CustomSource {
		snap.ReviseSource = strconv.Itoa(w.revise.source)
	}
	snap.ReviseApplyTarget = strconv.Itoa(w.revise.target)
	if !w.revise.mods.IsEmpty() {
		snap.ReviseMods = codec.SerializeSparse(w.revise.mods)
	}

	return snap
}

// Restore replaces the current state with snap. Missing or empty fields take
// the values of a fresh workspace: empty slot, DefaultName, visible, blank
// axes, source and target 0, no modifiers. The revise base is re-read from
// the restored source slot. A nil snapshot is a no-op.
//
// Unusable entries (unknown slot index, data for slots beyond SlotCount) are
// skipped with a warning; Restore itself never fails.
func (w *Workspace) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}
	log := gridrev.Logger()
	w.resetState()

	if snap.Axis != nil {
		w.axes = fieldsToAxes(w.axes, snap.Axis)
	}
	if len(snap.TableData) > len(w.slots) {
		log.Warn("workspace: snapshot has more tables than slots",
			"tables", len(snap.TableData), "slots", len(w.slots))
	}
	for i, s := range w.slots {
		if i < len(snap.TableData) && snap.TableData[i] != "" {
			d, err := codec.ParseDense(snap.TableData[i], w.n)
			switch {
			case errors.Is(err, codec.ErrNoContent):
				// whitespace only: slot stays empty
			case err != nil:
				log.Warn("workspace: skipping unreadable slot data", "slot", i, "err", err)
			default:
				s.data = d
			}
		}
		if i < len(snap.TableNames) {
			if name := strings.TrimSpace(snap.TableNames[i]); name != "" {
				s.name = name
			}
		}
		if i < len(snap.TableVisible) && snap.TableVisible[i] != nil {
			s.visible = *snap.TableVisible[i]
		}
	}

	rv := w.revise
	if snap.ReviseSource != "" {
		if src, ok := w.parseSlotRef(snap.ReviseSource, true); ok {
			rv.source = src
		} else {
			log.Warn("workspace: ignoring revise source", "value", snap.ReviseSource)
		}
	}
	if snap.ReviseApplyTarget != "" {
		if tgt, ok := w.parseSlotRef(snap.ReviseApplyTarget, false); ok {
			rv.target = tgt
		} else {
			log.Warn("workspace: ignoring revise target", "value", snap.ReviseApplyTarget)
		}
	}
	if rv.source == CustomSource {
		rv.base.Reset()
	} else {
		rv.syncBase(w.slots[rv.source])
	}
	if snap.ReviseMods != "" {
		if mods, err := codec.ParseSparse(snap.ReviseMods, w.n); err == nil {
			rv.mods = mods
		}
	}

	for i := range w.slots {
		w.emit(SlotChanged, i)
	}
	w.emit(AxesChanged, NoSlot)
	w.emit(ReviseChanged, NoSlot)
	// Restored state equals the stored state.
	w.dirty = false
	w.saves.Cancel()
}

// resetState returns slots, axes and the revise selection to their defaults.
func (w *Workspace) resetState() {
	w.axes = surface.Axes{}
	for i, s := range w.slots {
		s.data = nil
		s.name = DefaultName(i)
		s.visible = true
	}
	w.revise.source, w.revise.target = 0, 0
	w.revise.mods.Reset()
}

// parseSlotRef reads a persisted slot index; custom allows CustomSourceValue.
func (w *Workspace) parseSlotRef(v string, custom bool) (int, bool) {
	if custom && v == CustomSourceValue {
		return CustomSource, true
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || i < 0 || i >= len(w.slots) {
		return 0, false
	}

	return i, true
}

func axesToFields(a surface.Axes) map[string]string {
	return map[string]string{
		AxisXLabel: a.X.Label,
		AxisXUnits: a.X.Units,
		AxisXTicks: surface.FormatTicks(a.X.Ticks),
		AxisYLabel: a.Y.Label,
		AxisYUnits: a.Y.Units,
		AxisYTicks: surface.FormatTicks(a.Y.Ticks),
		AxisZLabel: a.Z.Label,
		AxisZUnits: a.Z.Units,
	}
}

// fieldsToAxes overlays the present keys of f onto a.
func fieldsToAxes(a surface.Axes, f map[string]string) surface.Axes {
	set := func(key string, dst *string) {
		if v, ok := f[key]; ok {
			*dst = v
		}
	}
	set(AxisXLabel, &a.X.Label)
	set(AxisXUnits, &a.X.Units)
	set(AxisYLabel, &a.Y.Label)
	set(AxisYUnits, &a.Y.Units)
	set(AxisZLabel, &a.Z.Label)
	set(AxisZUnits, &a.Z.Units)
	if v, ok := f[AxisXTicks]; ok {
		a.X.Ticks = surface.ParseTicks(v)
	}
	if v, ok := f[AxisYTicks]; ok {
		a.Y.Ticks = surface.ParseTicks(v)
	}

	return a
}
