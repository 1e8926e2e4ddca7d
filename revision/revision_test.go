// SPDX-License-Identifier: MIT

package revision_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/revision"
	"github.com/stretchr/testify/require"
)

const N = 16

func mustDense(t *testing.T, n int, vals ...float64) *grid.Dense {
	t.Helper()
	d, err := grid.NewDense(n)
	require.NoError(t, err)
	for i, v := range vals {
		require.NoError(t, d.Set(i/n, i%n, v))
	}

	return d
}

func mustSparse(t *testing.T, n int) *grid.Sparse {
	t.Helper()
	s, err := grid.NewSparse(n)
	require.NoError(t, err)

	return s
}

func randomDense(t *testing.T, n int, seed int64) *grid.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = rng.Float64()*200 - 100
	}
	d, err := grid.DenseFromValues(n, vals)
	require.NoError(t, err)

	return d
}

func TestApplyExamples(t *testing.T) {
	base := mustDense(t, 2, 100, 50, 10, 8)
	mods := mustSparse(t, 2)
	require.NoError(t, mods.Set(0, 0, -10))
	require.NoError(t, mods.Set(1, 0, -100))
	require.NoError(t, mods.Set(1, 1, -150))

	out, err := revision.Apply(base, mods)
	require.NoError(t, err)

	v, _ := out.At(0, 0)
	require.InDelta(t, 90.0, v, 1e-12)
	require.Equal(t, "90.000", codec.FormatFixed(v))

	v, _ = out.At(0, 1)
	require.Equal(t, 50.0, v, "unset modifier leaves the cell unchanged")

	v, _ = out.At(1, 0)
	require.Equal(t, 0.0, v, "-100 percent zeroes the cell")

	v, _ = out.At(1, 1)
	require.InDelta(t, -4.0, v, 1e-12, "below -100 percent is valid and negative")
}

// TestApplyAllUnsetIsIdentity checks apply(B, allUnset) == B.
func TestApplyAllUnsetIsIdentity(t *testing.T) {
	base := randomDense(t, N, 1)
	out, err := revision.Apply(base, mustSparse(t, N))
	require.NoError(t, err)
	require.True(t, out.Equal(base))
}

// TestApplyZeroModifier checks modifier 0 leaves result[i] == base[i] exactly.
func TestApplyZeroModifier(t *testing.T) {
	base := randomDense(t, N, 2)
	mods := mustSparse(t, N)
	for r := 0; r < N; r++ {
		for c := 0; c < N; c++ {
			require.NoError(t, mods.Set(r, c, 0))
		}
	}
	out, err := revision.Apply(base, mods)
	require.NoError(t, err)
	require.True(t, out.Equal(base))
}

// TestApplyPure verifies the inputs are untouched and the output is fresh.
func TestApplyPure(t *testing.T) {
	base := randomDense(t, N, 3)
	baseCopy := base.Clone()
	mods := mustSparse(t, N)
	require.NoError(t, mods.Set(4, 4, 25))
	modsCopy := mods.Clone()

	out, err := revision.Apply(base, mods)
	require.NoError(t, err)
	require.True(t, base.Equal(baseCopy))
	require.True(t, mods.Equal(modsCopy))

	require.NoError(t, out.Set(0, 0, 12345))
	v, _ := base.At(0, 0)
	require.NotEqual(t, 12345.0, v)
}

func TestApplyErrors(t *testing.T) {
	_, err := revision.Apply(nil, mustSparse(t, 2))
	require.ErrorIs(t, err, grid.ErrNilBuffer)

	_, err = revision.Apply(mustDense(t, 2), nil)
	require.ErrorIs(t, err, grid.ErrNilBuffer)

	_, err = revision.Apply(mustDense(t, 2), mustSparse(t, 3))
	require.ErrorIs(t, err, grid.ErrSizeMismatch)

	huge := mustDense(t, 1, math.MaxFloat64)
	mods := mustSparse(t, 1)
	require.NoError(t, mods.Set(0, 0, 500))
	_, err = revision.Apply(huge, mods)
	require.ErrorIs(t, err, grid.ErrNaNInf)

	res, n, err := revision.ApplyToAll([]*grid.Dense{mustDense(t, 1, 2), huge}, mods)
	require.ErrorIs(t, err, grid.ErrNaNInf, "overflow in one slot fails the batch")
	require.Nil(t, res)
	require.Zero(t, n)
}

func TestFactor(t *testing.T) {
	require.Equal(t, 1.0, revision.Factor(0))
	require.InDelta(t, 1.05, revision.Factor(5), 1e-15)
	require.Equal(t, 0.0, revision.Factor(-100))
}

func TestApplyToAll(t *testing.T) {
	tables := []*grid.Dense{
		mustDense(t, 2, 10, 20, 30, 40),
		nil,
		mustDense(t, 2, 1, 1, 1, 1),
		nil,
	}
	mods := mustSparse(t, 2)
	require.NoError(t, mods.Set(0, 0, 50))

	res, count, err := revision.ApplyToAll(tables, mods)
	require.NoError(t, err)
	require.Equal(t, 2, count)
	require.Len(t, res, 2)
	require.Contains(t, res, 0)
	require.Contains(t, res, 2)
	require.NotContains(t, res, 1)

	v, _ := res[0].At(0, 0)
	require.Equal(t, 15.0, v)
	v, _ = res[2].At(0, 0)
	require.Equal(t, 1.5, v)
	v, _ = res[2].At(1, 1)
	require.Equal(t, 1.0, v)

	// sources are not modified
	v, _ = tables[0].At(0, 0)
	require.Equal(t, 10.0, v)
}

func TestApplyToAllNothingToDo(t *testing.T) {
	tables := []*grid.Dense{mustDense(t, 2)}

	_, count, err := revision.ApplyToAll(tables, mustSparse(t, 2))
	require.ErrorIs(t, err, revision.ErrNoModifiers)
	require.Zero(t, count)
	require.False(t, revision.HasModifiers(nil))

	mods := mustSparse(t, 2)
	require.NoError(t, mods.Set(1, 1, 5))
	require.True(t, revision.HasModifiers(mods))
	_, count, err = revision.ApplyToAll([]*grid.Dense{nil, nil}, mods)
	require.ErrorIs(t, err, revision.ErrNothingToApply)
	require.Zero(t, count)

	_, _, err = revision.ApplyToAll([]*grid.Dense{mustDense(t, 3)}, mods)
	require.ErrorIs(t, err, grid.ErrSizeMismatch)
}
