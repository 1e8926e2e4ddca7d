// SPDX-License-Identifier: MIT

package workspace_test

import (
	"testing"

	"github.com/katalvlaran/gridrev/config"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/workspace"
	"github.com/stretchr/testify/require"
)

const (
	N     = 4
	Slots = 3
)

// newWS returns a small workspace and a pointer to the events it emits.
func newWS(t *testing.T) (*workspace.Workspace, *[]workspace.Event) {
	t.Helper()
	w, err := workspace.New(config.New(config.WithGridSize(N), config.WithSlotCount(Slots)))
	require.NoError(t, err)
	var events []workspace.Event
	w.SetListener(func(e workspace.Event) { events = append(events, e) })

	return w, &events
}

func mustSlot(t *testing.T, w *workspace.Workspace, i int) *workspace.Slot {
	t.Helper()
	s, err := w.Slot(i)
	require.NoError(t, err)

	return s
}

func mustAt(t *testing.T, d *grid.Dense, r, c int) float64 {
	t.Helper()
	require.NotNil(t, d)
	v, err := d.At(r, c)
	require.NoError(t, err)

	return v
}
