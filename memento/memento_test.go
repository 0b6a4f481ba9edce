package memento_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/memento"
)

// TestSnapshotRestore_RoundTrip verifies a snapshot rewinds every field.
func TestSnapshotRestore_RoundTrip(t *testing.T) {
	tun := memento.NewTuning(120, "street", 32.0)
	snap := tun.Snapshot()

	tun.SetSuspensionMM(90)
	tun.SetECUProfile("track")
	tun.SetTirePressurePSI(28.5)

	require.NoError(t, tun.Restore(snap))
	assert.Equal(t, 120, tun.SuspensionMM())
	assert.Equal(t, "street", tun.ECUProfile())
	assert.Equal(t, 32.0, tun.TirePressurePSI())
}

// TestRestore_ForeignMemento verifies a memento only fits the tuning that
// produced it.
func TestRestore_ForeignMemento(t *testing.T) {
	a := memento.NewTuning(120, "street", 32.0)
	b := memento.NewTuning(100, "rally", 30.0)

	err := b.Restore(a.Snapshot())
	assert.ErrorIs(t, err, memento.ErrForeignMemento)
	assert.Equal(t, "rally", b.ECUProfile(), "a refused restore must not change state")
}

// TestMemento_Opacity verifies snapshots are immutable value tokens: state
// captured before a mutation is unaffected by it.
func TestMemento_Opacity(t *testing.T) {
	tun := memento.NewTuning(120, "street", 32.0)
	snap := tun.Snapshot()

	tun.SetECUProfile("track")
	require.NoError(t, tun.Restore(snap))
	assert.Equal(t, "street", tun.ECUProfile())
	assert.NotEmpty(t, snap.ID())
}

// TestHistory_UndoStack verifies LIFO undo across several checkpoints.
func TestHistory_UndoStack(t *testing.T) {
	tun := memento.NewTuning(120, "street", 32.0)
	h, err := memento.NewHistory(tun)
	require.NoError(t, err)

	h.Save()
	tun.SetECUProfile("sport")
	h.Save()
	tun.SetECUProfile("track")

	require.NoError(t, h.Undo())
	assert.Equal(t, "sport", tun.ECUProfile())

	require.NoError(t, h.Undo())
	assert.Equal(t, "street", tun.ECUProfile())

	assert.ErrorIs(t, h.Undo(), memento.ErrNoSnapshots)
}

// TestHistory_Bounded verifies the MaxDepth bound drops the oldest snapshot.
func TestHistory_Bounded(t *testing.T) {
	tun := memento.NewTuning(0, "p0", 30.0)
	h, err := memento.NewHistory(tun)
	require.NoError(t, err)

	// MaxDepth+5 checkpoints; the five oldest must fall off.
	for i := 0; i < memento.MaxDepth+5; i++ {
		tun.SetECUProfile(fmt.Sprintf("p%d", i))
		h.Save()
	}
	assert.Equal(t, memento.MaxDepth, h.Depth())

	// Drain the stack; the earliest reachable profile is p5.
	for h.Depth() > 0 {
		require.NoError(t, h.Undo())
	}
	assert.Equal(t, "p5", tun.ECUProfile())
}

// TestNewHistory_NilTuning verifies the caretaker needs an originator.
func TestNewHistory_NilTuning(t *testing.T) {
	h, err := memento.NewHistory(nil)
	assert.ErrorIs(t, err, memento.ErrNilTuning)
	assert.Nil(t, h)
}
