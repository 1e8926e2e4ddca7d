// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// Every message is prefixed with "grid: ..." for grep-ability. Accessors wrap
// these with method context ("Dense.Set(3,4): ...") so callers must use
// errors.Is to match.

package grid

import "errors"

var (
	// ErrInvalidSize is returned when a requested edge length is not positive.
	ErrInvalidSize = errors.New("grid: size must be > 0")

	// ErrOutOfRange indicates a row or column outside [0, N).
	// Public indexers (At/Set/Unset) MUST return this, not panic.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where a finite value is required.
	ErrNaNInf = errors.New("grid: NaN or Inf value")

	// ErrSizeMismatch indicates two buffers with different edge lengths.
	ErrSizeMismatch = errors.New("grid: size mismatch")

	// ErrNilBuffer indicates a nil buffer was passed where one is required.
	ErrNilBuffer = errors.New("grid: nil buffer")

	// ErrValueCount indicates a flat value slice whose length is not N*N.
	ErrValueCount = errors.New("grid: value count does not match size")
)
