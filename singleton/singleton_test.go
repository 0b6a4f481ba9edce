package singleton_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/singleton"
	"github.com/boushphong/go-design-patterns/vehicle"
)

// TestShared_Identity verifies repeated calls return the same pointer.
func TestShared_Identity(t *testing.T) {
	assert.Same(t, singleton.Shared(), singleton.Shared())
}

// TestLegacyShared_AgreesWithShared verifies both access paths expose the
// single instance.
func TestLegacyShared_AgreesWithShared(t *testing.T) {
	assert.Same(t, singleton.Shared(), singleton.LegacyShared())
	assert.Same(t, singleton.LegacyShared(), singleton.LegacyShared())
}

// TestShared_ConcurrentIdentity verifies the one-instance guarantee under
// contention: many goroutines racing both access paths must all observe the
// same pointer. Run with -race.
func TestShared_ConcurrentIdentity(t *testing.T) {
	const goroutines = 64

	ptrs := make([]*singleton.Depot, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				ptrs[i] = singleton.Shared()
			} else {
				ptrs[i] = singleton.LegacyShared()
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		require.Same(t, ptrs[0], ptrs[i], "goroutine %d saw a different instance", i)
	}
}

// TestDepot_RegisterLookup verifies the registry round-trip and its guards.
func TestDepot_RegisterLookup(t *testing.T) {
	d := singleton.Shared()

	v, err := vehicle.New("DEPOT-1", "Toyota", "Hiace", 2020, vehicle.KindCar)
	require.NoError(t, err)
	require.NoError(t, d.Register(v))

	got, err := d.Lookup("DEPOT-1")
	require.NoError(t, err)
	assert.Equal(t, v, got)

	// Duplicate VIN.
	assert.ErrorIs(t, d.Register(v), singleton.ErrDuplicateVIN)

	// Missing VIN.
	_, err = d.Lookup("DEPOT-ABSENT")
	assert.ErrorIs(t, err, singleton.ErrNotFound)

	// Invalid record never enters the depot.
	err = d.Register(vehicle.Vehicle{})
	assert.ErrorIs(t, err, vehicle.ErrEmptyVIN)
}

// TestDepot_ConcurrentRegister verifies the depot tolerates concurrent
// registration; exactly one goroutine wins each VIN. Run with -race.
func TestDepot_ConcurrentRegister(t *testing.T) {
	d := singleton.Shared()

	const racers = 16
	var wg sync.WaitGroup
	errs := make([]error, racers)
	wg.Add(racers)
	for i := 0; i < racers; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := vehicle.New("DEPOT-RACE", "Fiat", "Panda", 2015, vehicle.KindCar)
			if err != nil {
				errs[i] = err
				return
			}
			errs[i] = d.Register(v)
		}(i)
	}
	wg.Wait()

	var wins, dups int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, singleton.ErrDuplicateVIN)
			dups++
		}
	}
	assert.Equal(t, 1, wins, "exactly one registration may win")
	assert.Equal(t, racers-1, dups)
}
