// SPDX-License-Identifier: MIT

package codec_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/stretchr/testify/require"
)

func TestParseDenseShortRows(t *testing.T) {
	d, err := codec.ParseDense("1,2,3\n4,5", N)
	require.NoError(t, err)
	require.Equal(t, N, d.Size())

	want0 := make([]float64, N)
	want0[0], want0[1], want0[2] = 1, 2, 3
	want1 := make([]float64, N)
	want1[0], want1[1] = 4, 5
	require.Equal(t, want0, d.Row(0))
	require.Equal(t, want1, d.Row(1))
	for r := 2; r < N; r++ {
		require.Equal(t, make([]float64, N), d.Row(r))
	}
}

func TestParseDenseAbsent(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\r\n\t\n"} {
		d, err := codec.ParseDense(in, N)
		require.ErrorIs(t, err, codec.ErrNoContent)
		require.Nil(t, d)
	}
}

func TestParseDenseInvalidSize(t *testing.T) {
	_, err := codec.ParseDense("1", 0)
	require.ErrorIs(t, err, grid.ErrInvalidSize)
}

func TestParseDenseDelimiterAndBlankLines(t *testing.T) {
	// Tab detected on the first non-blank line; commas are then just junk.
	d, err := codec.ParseDense("\n\n1\t2\r\n\n3,4\t5\n", N)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2}, row(t, d, 0, 2))
	// "3,4" parses leniently to 3.
	require.Equal(t, []float64{3, 5}, row(t, d, 1, 2))
}

func TestParseDenseKeepsLeadingEmptyField(t *testing.T) {
	d, err := codec.ParseDense("\t5\t6\n1\t2", 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 5, 6, 0}, d.Row(0))
	require.Equal(t, []float64{1, 2, 0, 0}, d.Row(1))
}

func TestParseDenseUnparsableIsZero(t *testing.T) {
	d, err := codec.ParseDense("x,,7", 4)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7, 0}, d.Row(0))
}

func TestParseDenseDropsOversizedInput(t *testing.T) {
	var sb strings.Builder
	for r := 0; r < 5; r++ {
		if r > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("1,2,3,4,5")
	}
	d, err := codec.ParseDense(sb.String(), 3)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		require.Equal(t, []float64{1, 2, 3}, d.Row(r))
	}
}

func TestParseSparse(t *testing.T) {
	s, err := codec.ParseSparse("5,,oops\n , -10", 4)
	require.NoError(t, err)

	v, ok := s.Lookup(0, 0)
	require.True(t, ok)
	require.Equal(t, 5.0, v)

	_, ok = s.Lookup(0, 1)
	require.False(t, ok, "blank is unset")
	_, ok = s.Lookup(0, 2)
	require.False(t, ok, "typo is unset, same as blank")
	_, ok = s.Lookup(1, 0)
	require.False(t, ok)

	v, ok = s.Lookup(1, 1)
	require.True(t, ok)
	require.Equal(t, -10.0, v)
	require.Equal(t, 2, s.Count())

	_, err = codec.ParseSparse(" ", 4)
	require.ErrorIs(t, err, codec.ErrNoContent)
}

func TestDetectDelimiter(t *testing.T) {
	require.Equal(t, codec.Tab, codec.DetectDelimiter("1\t2"))
	require.Equal(t, codec.Comma, codec.DetectDelimiter("1,2"))
	require.Equal(t, codec.Comma, codec.DetectDelimiter("1 2"))
	require.Equal(t, []string{"1", " 2"}, codec.Comma.Split("1, 2"))
}
