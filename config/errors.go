// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrInvalidGridSize indicates a grid size outside [1, MaxGridSize].
	ErrInvalidGridSize = errors.New("config: grid size out of range")

	// ErrInvalidSlotCount indicates a slot count outside [1, MaxSlotCount].
	ErrInvalidSlotCount = errors.New("config: slot count out of range")

	// ErrInvalidColor indicates a palette or neutral color that does not parse.
	ErrInvalidColor = errors.New("config: invalid color")

	// ErrInvalidHeight indicates a non-positive or non-finite target height.
	ErrInvalidHeight = errors.New("config: target height must be finite and > 0")
)
