// SPDX-License-Identifier: MIT

package codec

import (
	"strings"

	"github.com/katalvlaran/gridrev/grid"
)

// SerializeDense writes d as N tab-separated rows of FormatFixed values,
// joined by "\n" with no trailing terminator. A nil buffer yields "".
func SerializeDense(d *grid.Dense) string {
	if d == nil {
		return ""
	}

	return serialize(d.Size(), func(r, c int) string {
		v, _ := d.At(r, c)
		return FormatFixed(v)
	})
}

// SerializeSparse writes s like SerializeDense, but an unset cell becomes an
// empty field (never "NaN" or "0") so the "no change" cells survive export.
func SerializeSparse(s *grid.Sparse) string {
	if s == nil {
		return ""
	}

	return serialize(s.Size(), func(r, c int) string {
		v, ok := s.Lookup(r, c)
		if !ok {
			return ""
		}
		return FormatFixed(v)
	})
}

func serialize(n int, field func(r, c int) string) string {
	var sb strings.Builder
	var r, c int
	for r = 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c = 0; c < n; c++ {
			if c > 0 {
				sb.WriteString(string(Tab))
			}
			sb.WriteString(field(r, c))
		}
	}

	return sb.String()
}
