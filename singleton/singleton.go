// Package singleton implements the process-wide Depot and its two access
// paths: sync.Once and (correct) double-checked locking.
package singleton

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Sentinel errors for depot operations.
var (
	// ErrDuplicateVIN is returned when a VIN is registered twice.
	ErrDuplicateVIN = errors.New("singleton: VIN already registered")

	// ErrNotFound is returned when a VIN is absent from the depot.
	ErrNotFound = errors.New("singleton: VIN not found")
)

// Depot is the process-wide vehicle registry. Do not construct it yourself;
// obtain the unique instance through Shared (or LegacyShared).
type Depot struct {
	mu    sync.RWMutex
	byVIN map[string]vehicle.Vehicle
}

// newDepot is the private constructor both access paths share.
func newDepot() *Depot {
	return &Depot{byVIN: make(map[string]vehicle.Vehicle)}
}

// Register adds a vehicle to the depot. Each VIN may be registered once.
//
// Complexity: O(1). Safe for concurrent use.
func (d *Depot) Register(v vehicle.Vehicle) error {
	if err := v.Validate(); err != nil {
		return fmt.Errorf("singleton: register: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, dup := d.byVIN[v.VIN]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateVIN, v.VIN)
	}
	d.byVIN[v.VIN] = v

	return nil
}

// Lookup returns the vehicle registered under the VIN.
//
// Complexity: O(1). Safe for concurrent use.
func (d *Depot) Lookup(vin string) (vehicle.Vehicle, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.byVIN[vin]
	if !ok {
		return vehicle.Vehicle{}, fmt.Errorf("%w: %s", ErrNotFound, vin)
	}

	return v, nil
}

// Count reports the number of registered vehicles.
func (d *Depot) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return len(d.byVIN)
}

// ---------------------------------------------------------------------------
// Access path 1: sync.Once — the idiomatic Go singleton.
// ---------------------------------------------------------------------------

var (
	once     sync.Once
	instance *Depot
)

// Shared returns the unique Depot, constructing it on first call. Every
// caller, on every goroutine, receives the same pointer.
//
// Complexity: O(1) after the first call.
func Shared() *Depot {
	once.Do(func() { instance = newDepot() })

	return instance
}

// ---------------------------------------------------------------------------
// Access path 2: double-checked locking, the tutorial classic. Correct in Go
// only because the unsynchronized first check is an atomic load.
// ---------------------------------------------------------------------------

var (
	legacyMu  sync.Mutex
	legacyPtr atomic.Pointer[Depot]
)

// LegacyShared returns the same unique Depot as Shared, through explicit
// double-checked locking: check, lock, check again, construct, publish.
// Prefer Shared; this exists because the pattern literature teaches it.
func LegacyShared() *Depot {
	// First check, no lock: the common case after initialization.
	if d := legacyPtr.Load(); d != nil {
		return d
	}

	legacyMu.Lock()
	defer legacyMu.Unlock()

	// Second check, under the lock: another goroutine may have won the race
	// between our first check and the Lock.
	if d := legacyPtr.Load(); d != nil {
		return d
	}

	// Both paths must agree on ONE instance, so the legacy path publishes
	// whatever Shared constructs.
	d := Shared()
	legacyPtr.Store(d)

	return d
}
