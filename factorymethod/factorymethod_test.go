package factorymethod_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/factorymethod"
	"github.com/boushphong/go-design-patterns/vehicle"
)

// TestNew_Products verifies the switch factory manufactures the right
// product per kind.
func TestNew_Products(t *testing.T) {
	tests := []struct {
		kind   vehicle.Kind
		wheels int
	}{
		{vehicle.KindCar, 4},
		{vehicle.KindTruck, 6},
		{vehicle.KindMotorcycle, 2},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			r, err := factorymethod.New(tc.kind)
			require.NoError(t, err)
			assert.Equal(t, tc.wheels, r.Wheels())
			assert.NotEmpty(t, r.Describe())
		})
	}
}

// TestNew_UnknownKind verifies the "Invalid vehicle type" guard: kinds the
// factory does not support are rejected, not guessed.
func TestNew_UnknownKind(t *testing.T) {
	for _, k := range []vehicle.Kind{vehicle.KindUnknown, vehicle.KindBus, vehicle.Kind(99)} {
		r, err := factorymethod.New(k)
		assert.ErrorIs(t, err, vehicle.ErrUnknownKind, "kind %v", k)
		assert.Nil(t, r)
	}
}

// TestRegistry_ObtainStock verifies the registry is pre-seeded with the same
// products the switch factory manufactures.
func TestRegistry_ObtainStock(t *testing.T) {
	r, err := factorymethod.Obtain(vehicle.KindTruck)
	require.NoError(t, err)

	viaNew, err := factorymethod.New(vehicle.KindTruck)
	require.NoError(t, err)

	assert.Equal(t, viaNew.Describe(), r.Describe())
}

// TestRegistry_RegisterAndObtain verifies a third-party kind plugs in
// through Register and manufactures through Obtain.
func TestRegistry_RegisterAndObtain(t *testing.T) {
	err := factorymethod.Register(vehicle.KindBus, func() factorymethod.Rideable {
		return busProduct{}
	})
	require.NoError(t, err)

	r, err := factorymethod.Obtain(vehicle.KindBus)
	require.NoError(t, err)
	assert.Equal(t, 6, r.Wheels())
}

// TestRegistry_Duplicate verifies a kind may be registered exactly once.
func TestRegistry_Duplicate(t *testing.T) {
	err := factorymethod.Register(vehicle.KindCar, func() factorymethod.Rideable {
		return busProduct{}
	})
	assert.ErrorIs(t, err, factorymethod.ErrDuplicateFactory)
}

// TestRegistry_NilFactory verifies nil factories are rejected up front.
func TestRegistry_NilFactory(t *testing.T) {
	err := factorymethod.Register(vehicle.Kind(77), nil)
	assert.ErrorIs(t, err, factorymethod.ErrNilFactory)
}

// TestRegistry_Missing verifies Obtain for an unregistered kind fails with
// ErrNoFactory.
func TestRegistry_Missing(t *testing.T) {
	r, err := factorymethod.Obtain(vehicle.Kind(88))
	assert.ErrorIs(t, err, factorymethod.ErrNoFactory)
	assert.Nil(t, r)
}

// busProduct is a test-local product demonstrating third-party registration.
type busProduct struct{}

func (busProduct) Describe() string { return "coach: 6 wheels, 24 seats" }
func (busProduct) Wheels() int      { return 6 }
