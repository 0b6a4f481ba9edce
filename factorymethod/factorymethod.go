// Package factorymethod implements the parameterized factory and its three
// stock products.
package factorymethod

import (
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Rideable is the product interface: everything the factory manufactures
// can describe itself and report its wheel count.
type Rideable interface {
	// Describe renders a one-line self-description.
	Describe() string

	// Wheels reports the wheel count.
	Wheels() int
}

// roadster is the concrete car product.
type roadster struct{}

func (roadster) Describe() string { return "roadster: 4 wheels, built for the road" }
func (roadster) Wheels() int      { return 4 }

// hauler is the concrete truck product.
type hauler struct{}

func (hauler) Describe() string { return "hauler: 6 wheels, built to pull" }
func (hauler) Wheels() int      { return 6 }

// cruiser is the concrete motorcycle product.
type cruiser struct{}

func (cruiser) Describe() string { return "cruiser: 2 wheels, built to lean" }
func (cruiser) Wheels() int      { return 2 }

// New is the classic parameterized factory method: one switch, one concrete
// product per supported kind. Kinds outside the supported set are rejected
// with vehicle.ErrUnknownKind wrapped with the offending kind.
//
// Complexity: O(1).
func New(k vehicle.Kind) (Rideable, error) {
	switch k {
	case vehicle.KindCar:
		return roadster{}, nil
	case vehicle.KindTruck:
		return hauler{}, nil
	case vehicle.KindMotorcycle:
		return cruiser{}, nil
	default:
		return nil, fmt.Errorf("factorymethod: %w: %q", vehicle.ErrUnknownKind, k)
	}
}
