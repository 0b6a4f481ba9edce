package templatemethod_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/templatemethod"
	"github.com/boushphong/go-design-patterns/vehicle"
)

// fixture returns the vehicle every test in this file runs through a routine.
func fixture(t *testing.T) vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.New("WS-42", "Skoda", "Octavia", 2018, vehicle.KindCar,
		vehicle.WithMileage(90_000))
	require.NoError(t, err)

	return v
}

// TestRun_FullService verifies the skeleton order: inspect, perform,
// certify, one report line each.
func TestRun_FullService(t *testing.T) {
	rep, err := templatemethod.Run(templatemethod.FullService{}, fixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"inspected WS-42",
		"serviced WS-42: oil, brakes, fluids",
		"full-service certificate for WS-42 (2018)",
	}, rep.Steps)
}

// TestRun_QuickWash verifies partial override: QuickWash supplies only
// Perform and inherits the generic certificate from BaseRoutine.
func TestRun_QuickWash(t *testing.T) {
	rep, err := templatemethod.Run(templatemethod.QuickWash{}, fixture(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"inspected WS-42",
		"washed WS-42",
		"certified: WS-42",
	}, rep.Steps)
}

// TestRun_InspectVeto verifies the early-return rule: a failed inspection
// aborts the routine before any work, with the step name in the error.
func TestRun_InspectVeto(t *testing.T) {
	worn, err := vehicle.New("WS-43", "Volvo", "FH16", 2005, vehicle.KindTruck,
		vehicle.WithMileage(1_200_000))
	require.NoError(t, err)

	rep, err := templatemethod.Run(templatemethod.FullService{}, worn)
	assert.ErrorIs(t, err, templatemethod.ErrTooWorn)
	assert.Contains(t, err.Error(), "inspect")
	assert.Empty(t, rep.Steps, "no step may run after a veto")
}

// TestRun_PerformFailure verifies a mid-routine failure aborts before
// certification.
func TestRun_PerformFailure(t *testing.T) {
	boom := errors.New("lift jammed")
	rep, err := templatemethod.Run(failingRoutine{cause: boom}, fixture(t))

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "perform")
	assert.Empty(t, rep.Steps)
}

// TestRun_NilRoutine verifies the nil guard.
func TestRun_NilRoutine(t *testing.T) {
	_, err := templatemethod.Run(nil, fixture(t))
	assert.ErrorIs(t, err, templatemethod.ErrNilRoutine)
}

// failingRoutine is a test-local routine whose work step always fails.
type failingRoutine struct {
	templatemethod.BaseRoutine
	cause error
}

func (f failingRoutine) Perform(vehicle.Vehicle) (string, error) {
	return "", f.cause
}
