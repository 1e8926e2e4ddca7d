// SPDX-License-Identifier: MIT

package revision

import "errors"

var (
	// ErrNoModifiers reports a modifier buffer without any set cell where at
	// least one is needed ("nothing to do").
	ErrNoModifiers = errors.New("revision: no modifiers set")

	// ErrNothingToApply reports that every table slot is empty.
	ErrNothingToApply = errors.New("revision: no tables to apply to")
)
