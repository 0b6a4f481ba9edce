package facade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/facade"
	"github.com/boushphong/go-design-patterns/vehicle"
)

// mustVehicle builds a valid vehicle for tests or stops the test.
func mustVehicle(t *testing.T, vin string, kind vehicle.Kind, opts ...vehicle.Option) vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.New(vin, "Volvo", "FH16", 2019, kind, opts...)
	require.NoError(t, err)
	return v
}

// TestFullService_HappyPath verifies all three stages run, in order, and the
// report carries one line each.
func TestFullService_HappyPath(t *testing.T) {
	g := facade.NewGarage()
	v := mustVehicle(t, "FS-1", vehicle.KindCar,
		vehicle.WithFuel(vehicle.FuelPetrol), vehicle.WithMileage(90_000))

	rep, err := g.FullService(v)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"inspection passed for FS-1",
		"washed FS-1",
		"filled FS-1 with petrol",
	}, rep.Stages)
}

// TestFullService_InspectionFails verifies a worn-out vehicle is turned away
// at the gate: no stage completes.
func TestFullService_InspectionFails(t *testing.T) {
	g := facade.NewGarage()
	v := mustVehicle(t, "FS-2", vehicle.KindTruck,
		vehicle.WithFuel(vehicle.FuelDiesel),
		vehicle.WithMileage(facade.MaxServiceableKm+1))

	rep, err := g.FullService(v)
	assert.ErrorIs(t, err, facade.ErrInspectionFailed)
	assert.Contains(t, err.Error(), "facade: inspect:")
	assert.Empty(t, rep.Stages)
}

// TestFullService_WashRefused verifies motorcycles pass inspection but stop
// at the wash bay, keeping the one completed stage.
func TestFullService_WashRefused(t *testing.T) {
	g := facade.NewGarage()
	v := mustVehicle(t, "FS-3", vehicle.KindMotorcycle,
		vehicle.WithFuel(vehicle.FuelPetrol))

	rep, err := g.FullService(v)
	assert.ErrorIs(t, err, facade.ErrWashRefused)
	assert.Contains(t, err.Error(), "facade: wash:")
	assert.Equal(t, []string{"inspection passed for FS-3"}, rep.Stages)
}

// TestFullService_WrongFuel verifies an electric vehicle clears the first
// two stages and fails at the pump.
func TestFullService_WrongFuel(t *testing.T) {
	g := facade.NewGarage()
	v := mustVehicle(t, "FS-4", vehicle.KindCar,
		vehicle.WithFuel(vehicle.FuelElectric))

	rep, err := g.FullService(v)
	assert.ErrorIs(t, err, facade.ErrWrongFuel)
	assert.Contains(t, err.Error(), "facade: fuel:")
	assert.Equal(t, []string{
		"inspection passed for FS-4",
		"washed FS-4",
	}, rep.Stages)
}

// TestFullService_BoundaryMileage verifies the inspection ceiling is
// inclusive: exactly MaxServiceableKm still passes.
func TestFullService_BoundaryMileage(t *testing.T) {
	g := facade.NewGarage()
	v := mustVehicle(t, "FS-5", vehicle.KindBus,
		vehicle.WithFuel(vehicle.FuelDiesel),
		vehicle.WithMileage(facade.MaxServiceableKm))

	rep, err := g.FullService(v)
	require.NoError(t, err)
	assert.Len(t, rep.Stages, 3)
}
