package iterator_test

import (
	"fmt"

	"github.com/boushphong/go-design-patterns/iterator"
	"github.com/boushphong/go-design-patterns/vehicle"
)

// ExampleFleet_Iterator walks the whole fleet, then only the trucks; the
// scanning loop is the same either way.
func ExampleFleet_Iterator() {
	var f iterator.Fleet
	for _, spec := range []struct {
		vin  string
		kind vehicle.Kind
	}{
		{"F-1", vehicle.KindCar},
		{"F-2", vehicle.KindTruck},
		{"F-3", vehicle.KindTruck},
	} {
		v, err := vehicle.New(spec.vin, "Iveco", "Daily", 2021, spec.kind)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		f.Add(v)
	}

	for cur := f.Iterator(); cur.Next(); {
		fmt.Println("all:", cur.Vehicle().VIN)
	}
	for cur := f.FilterKind(vehicle.KindTruck); cur.Next(); {
		fmt.Println("truck:", cur.Vehicle().VIN)
	}
	// Output:
	// all: F-1
	// all: F-2
	// all: F-3
	// truck: F-2
	// truck: F-3
}
