// SPDX-License-Identifier: MIT

package codec

import (
	"strings"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/grid"
)

// PasteStats summarizes a PasteRegion call.
type PasteStats struct {
	Written   int // cells overwritten
	Skipped   int // in-range fields that did not parse (cell left untouched)
	Truncated int // fields dropped because they fell outside the grid
}

// PasteRegion writes pasted text into dst anchored at (startR, startC),
// mutating dst in place.
//
// Implementation:
//   - Stage 1: drop a single trailing line terminator; keep leading blank lines
//     (they shift the paste down).
//   - Stage 2: delimiter is tab when the text contains one anywhere, else comma.
//   - Stage 3: every field is stripped to digits, '.' and '-' and parsed; a
//     failure leaves the destination cell as it was.
//
// Behavior highlights:
//   - Cells outside [0, N) are dropped (never wrapped or clamped). The drop
//     count is reported in PasteStats.Truncated but is not an error.
//   - Works on any grid.Writable (Dense table or Sparse modifiers).
func PasteRegion(text string, startR, startC int, dst grid.Writable) PasteStats {
	var st PasteStats
	if text == "" || dst == nil {
		return st
	}
	n := dst.Size()
	clean := text
	switch {
	case strings.HasSuffix(clean, "\r\n"):
		clean = clean[:len(clean)-2]
	case strings.HasSuffix(clean, "\n"):
		clean = clean[:len(clean)-1]
	}
	lines := splitLines(clean)
	delim := DetectDelimiter(text)

	var (
		i, j, r, c int
		fields     []string
	)
	for i = 0; i < len(lines); i++ {
		fields = delim.Split(lines[i])
		r = startR + i
		if r < 0 || r >= n {
			st.Truncated += len(fields)
			continue
		}
		for j = 0; j < len(fields); j++ {
			c = startC + j
			if c < 0 || c >= n {
				st.Truncated++
				continue
			}
			v, ok := ParseCell(keepNumeric(fields[j]))
			if !ok {
				st.Skipped++
				continue
			}
			if err := dst.Set(r, c, v); err != nil {
				st.Skipped++
				continue
			}
			st.Written++
		}
	}
	if st.Truncated > 0 {
		gridrev.Logger().Debug("codec: paste truncated at grid edge",
			"start_row", startR, "start_col", startC, "dropped", st.Truncated)
	}

	return st
}
