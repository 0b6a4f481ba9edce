// Package vehicle provides the shared vocabulary used by every pattern
// package in this repository: the Vehicle value record, its Kind and Fuel
// enumerations, and a validating constructor with functional options.
//
// Every tutorial package (builder, state, flyweight, …) tells its story on
// the same cast of vehicles, the way a textbook reuses one running example
// chapter after chapter. This package is that cast — and nothing more. It
// carries no pattern logic, no registry, no runtime; pattern packages never
// import each other, only this vocabulary.
//
// What you get:
//
//   - Kind — car, truck, motorcycle, bus (plus the unknown zero value)
//   - Fuel — petrol, diesel, electric, hybrid (plus the unknown zero value)
//   - Vehicle — a plain value record: VIN, Make, Model, Year, Kind, Fuel,
//     Mileage (km) and Price (whole currency units)
//   - New — validating constructor with functional options
//     (WithFuel, WithMileage, WithPrice)
//   - ParseKind / ParseFuel — case-insensitive text → enum conversion,
//     rejecting anything outside the enumerations
//
// Why a value record?
//
//   - Copy-friendly — patterns that need snapshots (memento, prototype)
//     or shared state (flyweight) can demonstrate their point without
//     hidden aliasing.
//   - Deterministic — no clocks, no randomness; every example in the
//     repository prints the same output on every run.
//   - Honest errors — invalid input surfaces as sentinel errors
//     (ErrUnknownKind, ErrEmptyVIN, …) matched with errors.Is, never as
//     a panic.
//
// Usage
//
//	v, err := vehicle.New("VF1-204", "Volvo", "FH16", 2019, vehicle.KindTruck,
//	    vehicle.WithFuel(vehicle.FuelDiesel),
//	    vehicle.WithMileage(120_000),
//	    vehicle.WithPrice(84_500),
//	)
//	if err != nil {
//	    // one of: ErrEmptyVIN, ErrUnknownKind, ErrBadYear,
//	    //         ErrNegativeMileage, ErrNegativePrice
//	}
//	fmt.Println(v) // 2019 Volvo FH16 [truck]
//
// Errors
//
//   - ErrEmptyVIN        — VIN is the empty string.
//   - ErrUnknownKind     — kind is outside the Kind enumeration.
//   - ErrUnknownFuel     — fuel is outside the Fuel enumeration.
//   - ErrBadYear         — model year predates MinYear (1886).
//   - ErrNegativeMileage — mileage below zero.
//   - ErrNegativePrice   — price below zero.
package vehicle
