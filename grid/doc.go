// SPDX-License-Identifier: MIT

// Package grid offers fixed-size square numeric buffers used by every other
// gridrev package.
//
// The grid package provides:
//
//   - Dense: an N×N row-major float64 buffer where every cell holds a defined
//     number (absence is 0).
//   - Sparse: an N×N buffer whose cells may be unset. Unset is an explicit
//     Cell{Valid: false}, never a NaN travelling through arithmetic.
//   - Grid: the read-only view both flavors share, so consumers (heatmaps,
//     statistics) do not care which flavor they got.
//   - Extremes: min/max over defined cells with an explicit "no data" result.
//
// Index arithmetic is always r*N + c. Public accessors bounds-check and return
// ErrOutOfRange instead of panicking; callers that accept oversized input
// (paste, parse) drop out-of-range coordinates before calling.
package grid
