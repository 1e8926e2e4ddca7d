// SPDX-License-Identifier: MIT

package workspace

// EventKind classifies a change notification.
type EventKind int

const (
	// SlotChanged: a slot's data or name changed.
	SlotChanged EventKind = iota + 1
	// VisibilityChanged: a slot was shown or hidden.
	VisibilityChanged
	// AxesChanged: axis captions or ticks changed.
	AxesChanged
	// ReviseChanged: base, modifiers or source/target selection changed.
	ReviseChanged
)

// NoSlot is the Event.Slot value for events not tied to one slot.
const NoSlot = -1

// Event is delivered to the Listener after a change has been applied.
type Event struct {
	Kind EventKind
	Slot int
}

// Listener receives change notifications synchronously.
type Listener func(Event)

func (k EventKind) String() string {
	switch k {
	case SlotChanged:
		return "slot"
	case VisibilityChanged:
		return "visibility"
	case AxesChanged:
		return "axes"
	case ReviseChanged:
		return "revise"
	default:
		return "unknown"
	}
}
