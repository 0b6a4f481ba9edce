package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/command"
)

// TestQueue_RunFIFO verifies commands execute in submission order and the
// journal mirrors that order.
func TestQueue_RunFIFO(t *testing.T) {
	g := command.NewGarage()
	q := command.NewQueue()

	require.NoError(t, q.Submit(command.NewOpenDoor(g)))
	require.NoError(t, q.Submit(command.NewStartEngine(g, "VIN-1")))
	require.NoError(t, q.Submit(command.NewRefuel(g, "VIN-1", 40)))

	j, err := q.Run()
	require.NoError(t, err)

	assert.Equal(t, command.Journal{
		"open door: done",
		"start engine VIN-1: done",
		"refuel VIN-1 (40L): done",
	}, j)
	assert.True(t, g.DoorOpen())
	assert.True(t, g.EngineRunning("VIN-1"))
	assert.Equal(t, 40, g.FuelL("VIN-1"))
}

// TestQueue_FailureStopsRun verifies the first failing command aborts the
// run with its name in the error, keeping earlier effects.
func TestQueue_FailureStopsRun(t *testing.T) {
	g := command.NewGarage()
	q := command.NewQueue()

	require.NoError(t, q.Submit(command.NewRefuel(g, "VIN-2", 20)))
	require.NoError(t, q.Submit(command.NewStartEngine(g, "VIN-2"))) // door closed: fails
	require.NoError(t, q.Submit(command.NewOpenDoor(g)))             // must not run

	j, err := q.Run()
	require.ErrorIs(t, err, command.ErrDoorClosed)
	assert.Contains(t, err.Error(), "start engine VIN-2")

	assert.Equal(t, command.Journal{"refuel VIN-2 (20L): done"}, j)
	assert.False(t, g.DoorOpen(), "commands behind the failure must not run")
	assert.Equal(t, 20, g.FuelL("VIN-2"))
	assert.Equal(t, 1, q.History().Depth(), "only completed commands are undoable")
}

// TestHistory_UndoLast verifies LIFO undo restores the receiver step by
// step.
func TestHistory_UndoLast(t *testing.T) {
	g := command.NewGarage()
	q := command.NewQueue()

	require.NoError(t, q.Submit(command.NewOpenDoor(g)))
	require.NoError(t, q.Submit(command.NewStartEngine(g, "VIN-3")))
	require.NoError(t, q.Submit(command.NewRefuel(g, "VIN-3", 30)))
	_, err := q.Run()
	require.NoError(t, err)

	h := q.History()

	require.NoError(t, h.UndoLast()) // drain the fuel
	assert.Zero(t, g.FuelL("VIN-3"))

	require.NoError(t, h.UndoLast()) // stop the engine
	assert.False(t, g.EngineRunning("VIN-3"))

	require.NoError(t, h.UndoLast()) // lower the door
	assert.False(t, g.DoorOpen())

	assert.ErrorIs(t, h.UndoLast(), command.ErrNothingToUndo)
}

// TestCommand_Identity verifies every work order carries a distinct
// generated ID and a stable name.
func TestCommand_Identity(t *testing.T) {
	g := command.NewGarage()

	a := command.NewOpenDoor(g)
	b := command.NewOpenDoor(g)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "open door", a.Name())
}

// TestSubmit_NilCommand verifies the nil guard.
func TestSubmit_NilCommand(t *testing.T) {
	q := command.NewQueue()
	assert.ErrorIs(t, q.Submit(nil), command.ErrNilCommand)
}
