package prototype_test

import (
	"fmt"

	"github.com/boushphong/go-design-patterns/prototype"
	"github.com/boushphong/go-design-patterns/vehicle"
)

// ExampleCatalog registers one master ambulance design and spawns two
// independent copies. Clones get fresh VINs, so the example prints facts
// about the copies rather than the generated identifiers.
func ExampleCatalog() {
	base, err := vehicle.New("MASTER-AMB", "Mercedes", "Sprinter", 2022, vehicle.KindTruck,
		vehicle.WithFuel(vehicle.FuelDiesel))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	master := &prototype.Design{
		Vehicle:   base,
		Extras:    []string{"stretcher mount", "siren"},
		Telemetry: map[string]string{"battery": "12.6V"},
	}

	cat := prototype.NewCatalog()
	if err = cat.Register("ambulance", master); err != nil {
		fmt.Println("error:", err)
		return
	}

	a, _ := cat.Spawn("ambulance")
	b, _ := cat.Spawn("ambulance")

	a.Extras = append(a.Extras, "defibrillator") // customize one clone

	fmt.Println("distinct VINs:", a.Vehicle.VIN != b.Vehicle.VIN)
	fmt.Println("a extras:", len(a.Extras), "| b extras:", len(b.Extras))
	fmt.Println("model:", a.Vehicle.Model)
	// Output:
	// distinct VINs: true
	// a extras: 3 | b extras: 2
	// model: Sprinter
}
