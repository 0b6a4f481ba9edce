package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// TestNew_Defaults verifies the constructor fills defaults and keeps the
// explicit fields untouched.
func TestNew_Defaults(t *testing.T) {
	v, err := vehicle.New("KA-101", "Toyota", "Corolla", 2021, vehicle.KindCar)
	require.NoError(t, err)

	assert.Equal(t, "KA-101", v.VIN)
	assert.Equal(t, vehicle.KindCar, v.Kind)
	assert.Equal(t, vehicle.FuelPetrol, v.Fuel, "fuel must default to petrol")
	assert.Zero(t, v.Mileage)
	assert.Zero(t, v.Price)
}

// TestNew_Options verifies options assign fields left-to-right.
func TestNew_Options(t *testing.T) {
	v, err := vehicle.New("TR-7", "Volvo", "FH16", 2019, vehicle.KindTruck,
		vehicle.WithFuel(vehicle.FuelDiesel),
		vehicle.WithMileage(120_000),
		vehicle.WithPrice(84_500),
	)
	require.NoError(t, err)

	assert.Equal(t, vehicle.FuelDiesel, v.Fuel)
	assert.Equal(t, int64(120_000), v.Mileage)
	assert.Equal(t, int64(84_500), v.Price)
}

// TestNew_Violations verifies each constraint surfaces its own sentinel
// and that the returned record is the zero value on failure.
func TestNew_Violations(t *testing.T) {
	tests := []struct {
		name string
		vin  string
		year int
		kind vehicle.Kind
		opts []vehicle.Option
		want error
	}{
		{"empty VIN", "", 2020, vehicle.KindCar, nil, vehicle.ErrEmptyVIN},
		{"unknown kind", "X-1", 2020, vehicle.KindUnknown, nil, vehicle.ErrUnknownKind},
		{"kind out of range", "X-1", 2020, vehicle.Kind(99), nil, vehicle.ErrUnknownKind},
		{"year too early", "X-1", 1885, vehicle.KindCar, nil, vehicle.ErrBadYear},
		{"unknown fuel", "X-1", 2020, vehicle.KindCar,
			[]vehicle.Option{vehicle.WithFuel(vehicle.Fuel(42))}, vehicle.ErrUnknownFuel},
		{"negative mileage", "X-1", 2020, vehicle.KindCar,
			[]vehicle.Option{vehicle.WithMileage(-1)}, vehicle.ErrNegativeMileage},
		{"negative price", "X-1", 2020, vehicle.KindCar,
			[]vehicle.Option{vehicle.WithPrice(-500)}, vehicle.ErrNegativePrice},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := vehicle.New(tc.vin, "Make", "Model", tc.year, tc.kind, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, vehicle.Vehicle{}, v, "failed New must return the zero record")
		})
	}
}

// TestParseKind_RoundTrip verifies parsing accepts every String() form,
// ignoring case and surrounding space.
func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range []vehicle.Kind{
		vehicle.KindCar, vehicle.KindTruck, vehicle.KindMotorcycle, vehicle.KindBus,
	} {
		got, err := vehicle.ParseKind("  " + k.String() + " ")
		require.NoError(t, err, "kind %s", k)
		assert.Equal(t, k, got)

		upper, err := vehicle.ParseKind(string(k.String()[0]-'a'+'A') + k.String()[1:])
		require.NoError(t, err)
		assert.Equal(t, k, upper)
	}
}

// TestParseKind_Unknown verifies the source's "Invalid vehicle type" guard:
// unrecognised text yields ErrUnknownKind and the zero Kind.
func TestParseKind_Unknown(t *testing.T) {
	k, err := vehicle.ParseKind("hovercraft")
	assert.ErrorIs(t, err, vehicle.ErrUnknownKind)
	assert.Equal(t, vehicle.KindUnknown, k)
	assert.Contains(t, err.Error(), "hovercraft", "error must name the offending input")
}

// TestParseFuel_RoundTrip verifies Fuel parsing mirrors Kind parsing.
func TestParseFuel_RoundTrip(t *testing.T) {
	for _, f := range []vehicle.Fuel{
		vehicle.FuelPetrol, vehicle.FuelDiesel, vehicle.FuelElectric, vehicle.FuelHybrid,
	} {
		got, err := vehicle.ParseFuel(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	f, err := vehicle.ParseFuel("steam")
	assert.ErrorIs(t, err, vehicle.ErrUnknownFuel)
	assert.Equal(t, vehicle.FuelUnknown, f)
}

// TestVehicle_String verifies the one-line rendering used across the examples.
func TestVehicle_String(t *testing.T) {
	v, err := vehicle.New("B-9", "Ducati", "Monster", 2022, vehicle.KindMotorcycle)
	require.NoError(t, err)
	assert.Equal(t, "2022 Ducati Monster [motorcycle]", v.String())
}

// TestValidate_ZeroValue verifies a literal zero record is rejected early.
func TestValidate_ZeroValue(t *testing.T) {
	var v vehicle.Vehicle
	assert.ErrorIs(t, v.Validate(), vehicle.ErrEmptyVIN)
}
