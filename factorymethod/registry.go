// Package factorymethod — registry variant: an open set of factories keyed
// by vehicle kind, pre-seeded with the stock products.
package factorymethod

import (
	"errors"
	"fmt"
	"sync"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Sentinel errors for the registry variant.
var (
	// ErrDuplicateFactory is returned when a kind is registered twice.
	ErrDuplicateFactory = errors.New("factorymethod: factory already registered")

	// ErrNilFactory is returned when Register is given a nil Factory.
	ErrNilFactory = errors.New("factorymethod: nil factory")

	// ErrNoFactory is returned when Obtain finds no factory for the kind.
	ErrNoFactory = errors.New("factorymethod: no factory registered")
)

// Factory manufactures one product. Registering a Factory for a kind makes
// that kind obtainable without touching the package.
type Factory func() Rideable

// registry guards the kind → Factory catalog; reads dominate, hence RWMutex.
var registry = struct {
	sync.RWMutex
	byKind map[vehicle.Kind]Factory
}{byKind: defaults()}

// defaults pre-registers the three stock products so Obtain works out of the
// box for the kinds New supports.
func defaults() map[vehicle.Kind]Factory {
	return map[vehicle.Kind]Factory{
		vehicle.KindCar:        func() Rideable { return roadster{} },
		vehicle.KindTruck:      func() Rideable { return hauler{} },
		vehicle.KindMotorcycle: func() Rideable { return cruiser{} },
	}
}

// Register adds a Factory for a kind. A kind may be registered exactly once;
// re-registering yields ErrDuplicateFactory, so stock kinds stay stable.
//
// Complexity: O(1). Safe for concurrent use.
func Register(k vehicle.Kind, f Factory) error {
	if f == nil {
		return fmt.Errorf("%w: kind %q", ErrNilFactory, k)
	}

	registry.Lock()
	defer registry.Unlock()

	if _, dup := registry.byKind[k]; dup {
		return fmt.Errorf("%w: kind %q", ErrDuplicateFactory, k)
	}
	registry.byKind[k] = f

	return nil
}

// Obtain manufactures a product through the registered Factory for the kind.
//
// Complexity: O(1). Safe for concurrent use.
func Obtain(k vehicle.Kind) (Rideable, error) {
	registry.RLock()
	f, ok := registry.byKind[k]
	registry.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: kind %q", ErrNoFactory, k)
	}

	return f(), nil
}
