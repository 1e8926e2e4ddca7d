// SPDX-License-Identifier: MIT

package codec_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/stretchr/testify/require"
)

func TestSerializeDenseLayout(t *testing.T) {
	d := fillDense(t, 2, func(r, c int) float64 { return float64(r*2+c) + 0.5 })
	require.Equal(t, "0.500\t1.500\n2.500\t3.500", codec.SerializeDense(d))
	require.Equal(t, "", codec.SerializeDense(nil))

	big := fillDense(t, N, func(r, c int) float64 { return 0 })
	out := codec.SerializeDense(big)
	require.False(t, strings.HasSuffix(out, "\n"))
	lines := strings.Split(out, "\n")
	require.Len(t, lines, N)
	for _, l := range lines {
		require.Len(t, strings.Split(l, "\t"), N)
	}
}

func TestSerializeSparseBlanks(t *testing.T) {
	s, err := grid.NewSparse(2)
	require.NoError(t, err)
	require.NoError(t, s.Set(0, 1, 5))
	require.NoError(t, s.Set(1, 0, -12.3456))
	require.Equal(t, "\t5.000\n-12.346\t", codec.SerializeSparse(s))
	require.Equal(t, "", codec.SerializeSparse(nil))
}

// TestDenseRoundTrip checks parseDense(serializeDense(B)) == B to 3 decimals.
func TestDenseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := fillDense(t, N, func(r, c int) float64 { return rng.Float64()*2000 - 1000 })

	back, err := codec.ParseDense(codec.SerializeDense(d), N)
	require.NoError(t, err)
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			require.InDelta(t, mustAt(t, d, r, c), mustAt(t, back, r, c), 5e-4+1e-9)
		}
	}
	// second pass is exact: values are already on the 3-decimal lattice
	require.Equal(t, codec.SerializeDense(back), codec.SerializeDense(d))
}

// TestSparseRoundTrip checks the set/unset pattern survives export.
func TestSparseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s, err := grid.NewSparse(N)
	require.NoError(t, err)
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			if rng.Intn(3) == 0 {
				require.NoError(t, s.Set(r, c, math.Round((rng.Float64()*200-100)*1000)/1000))
			}
		}
	}
	// keep at least one set cell so the text is not blank
	require.NoError(t, s.Set(0, 0, 1))

	back, err := codec.ParseSparse(codec.SerializeSparse(s), N)
	require.NoError(t, err)
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			want, wantOK := s.Lookup(r, c)
			got, gotOK := back.Lookup(r, c)
			require.Equal(t, wantOK, gotOK, "(%d,%d)", r, c)
			require.InDelta(t, want, got, 1e-9)
		}
	}
}
