// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/grid"
)

// ParseDense reads delimited text into a fresh n×n Dense buffer.
//
// Implementation:
//   - Stage 1: whitespace-only input → ErrNoContent ("absent").
//   - Stage 2: split on \n or \r\n, drop blank lines, detect the delimiter on
//     the first remaining line (tab if present, else comma).
//   - Stage 3: for r < min(lines, n) and c < min(fields, n) parse each field
//     with ParseCell; a failure stores 0.
//
// Behavior highlights:
//   - The output is always n×n; short rows leave trailing cells at 0.
//   - Extra rows/columns are ignored.
//   - The text is not trimmed as a whole, so a leading empty field is kept:
//     "\t5\t6" fills row 0 with [0, 5, 6] rather than [5, 6]. A sheet copied
//     with an empty top-left cell therefore stays aligned with its columns.
//
// Errors:
//   - ErrNoContent, grid.ErrInvalidSize.
func ParseDense(text string, n int) (*grid.Dense, error) {
	d, err := grid.NewDense(n)
	if err != nil {
		return nil, err
	}
	err = parseInto(text, n, func(r, c int, field string) {
		v, ok := ParseCell(field)
		if !ok {
			v = 0
		}
		_ = d.Set(r, c, v) // in range and finite by construction
	})
	if err != nil {
		return nil, err
	}

	return d, nil
}

// ParseSparse reads delimited text into a fresh n×n Sparse buffer.
// Tokenization is identical to ParseDense; a blank or unparsable field leaves
// the cell unset, so a typo is treated exactly like a blank.
func ParseSparse(text string, n int) (*grid.Sparse, error) {
	s, err := grid.NewSparse(n)
	if err != nil {
		return nil, err
	}
	err = parseInto(text, n, func(r, c int, field string) {
		if v, ok := ParseCell(field); ok {
			_ = s.Set(r, c, v)
		}
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// parseInto walks the in-range fields of text and hands each one to put.
func parseInto(text string, n int, put func(r, c int, field string)) error {
	if strings.TrimSpace(text) == "" {
		return ErrNoContent
	}
	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return ErrNoContent
	}
	delim := DetectDelimiter(lines[0])

	var (
		r, c   int
		fields []string
	)
	rows := min(len(lines), n)
	for r = 0; r < rows; r++ {
		fields = delim.Split(lines[r])
		cols := min(len(fields), n)
		for c = 0; c < cols; c++ {
			put(r, c, fields[c])
		}
	}
	gridrev.Logger().Debug("codec: parsed table",
		"lines", len(lines), "rows", rows, "size", n, "delimiter", fmt.Sprintf("%q", string(delim)))

	return nil
}
