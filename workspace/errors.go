// SPDX-License-Identifier: MIT

package workspace

import "errors"

var (
	// ErrSlotOutOfRange indicates a slot index outside [0, SlotCount).
	ErrSlotOutOfRange = errors.New("workspace: slot index out of range")

	// ErrEmptySlot indicates an operation that needs data on an empty slot.
	ErrEmptySlot = errors.New("workspace: slot is empty")

	// ErrNoTarget indicates an apply without a valid target slot.
	ErrNoTarget = errors.New("workspace: no target slot selected")

	// ErrNoSnapshot is returned by a Store that has nothing saved yet.
	ErrNoSnapshot = errors.New("workspace: no snapshot")

	// ErrCorruptSnapshot wraps a snapshot that exists but cannot be decoded.
	ErrCorruptSnapshot = errors.New("workspace: corrupt snapshot")
)

// ErrNoStore indicates Save without an attached Store.
var ErrNoStore = errors.New("workspace: no store attached")
