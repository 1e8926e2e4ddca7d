// SPDX-License-Identifier: MIT

// Package codec converts grid buffers to and from human-editable delimited
// text (CSV or TSV), tolerating imperfect input.
//
// Parsing never fails on bad tokens; it degrades per buffer flavor:
//
//   - ParseDense:   unparsable or blank field → 0
//   - ParseSparse:  unparsable or blank field → unset ("no change")
//   - PasteRegion:  unparsable or blank field → destination cell untouched
//
// Rows and columns beyond the grid size are silently dropped. Serialization
// always writes N rows of N tab-separated fields with exactly 3 decimals
// (FormatFixed), so text copied out pastes back losslessly to 3 decimals.
package codec
