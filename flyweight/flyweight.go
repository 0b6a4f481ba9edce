// Package flyweight implements the shared Spec, its memoizing factory and
// the extrinsic FleetCar wrapper.
package flyweight

import (
	"fmt"
	"sync"
)

// Spec is the intrinsic state shared by every car of one trim. Treat it as
// immutable: it is handed out by pointer to any number of fleet cars.
type Spec struct {
	// Make is the manufacturer name.
	Make string

	// Model is the model name.
	Model string

	// Trim names the equipment level.
	Trim string

	// EngineCC is the displacement in cubic centimetres.
	EngineCC int

	// CurbWeightKg is the unladen weight in kilograms.
	CurbWeightKg int
}

// String renders the spec as "Make Model Trim (ccc cc, www kg)".
func (s *Spec) String() string {
	return fmt.Sprintf("%s %s %s (%d cc, %d kg)", s.Make, s.Model, s.Trim, s.EngineCC, s.CurbWeightKg)
}

// specKey identifies one trim in the memoizing map.
type specKey struct {
	make, model, trim string
}

// Factory memoizes Specs by (make, model, trim): one illustrative mutex, one
// map, the same pointer for the same key forever after.
type Factory struct {
	mu    sync.Mutex
	specs map[specKey]*Spec
}

// NewFactory returns an empty flyweight factory.
func NewFactory() *Factory {
	return &Factory{specs: make(map[specKey]*Spec)}
}

// Spec returns the shared Spec for the trim, creating it on first request.
// The numeric fields are recorded from the FIRST request for a key; later
// requests for the same key return the original regardless of arguments.
//
// Complexity: O(1). Safe for concurrent use.
func (f *Factory) Spec(maker, model, trim string, engineCC, curbWeightKg int) *Spec {
	key := specKey{make: maker, model: model, trim: trim}

	f.mu.Lock()
	defer f.mu.Unlock()

	if s, ok := f.specs[key]; ok {
		return s
	}
	s := &Spec{
		Make:         maker,
		Model:        model,
		Trim:         trim,
		EngineCC:     engineCC,
		CurbWeightKg: curbWeightKg,
	}
	f.specs[key] = s

	return s
}

// Len reports the number of distinct specs the factory holds.
func (f *Factory) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.specs)
}

// FleetCar is the extrinsic state: the handful of fields that differ per
// physical car, plus the shared spec.
type FleetCar struct {
	// VIN identifies the physical car.
	VIN string

	// Mileage is this car's odometer reading in kilometres.
	Mileage int64

	// Spec points at the shared intrinsic state.
	Spec *Spec
}

// String renders the car as "VIN: spec, n km".
func (c FleetCar) String() string {
	return fmt.Sprintf("%s: %s, %d km", c.VIN, c.Spec, c.Mileage)
}
