// Package factorymethod teaches the Factory Method pattern: letting a
// creator function decide which concrete product to instantiate, so callers
// depend only on the product interface.
//
// What
//
//   - Product: Rideable — the interface every manufactured vehicle satisfies
//     (Describe, Wheels).
//   - Concrete products: an unexported roadster, hauler and cruiser; callers
//     never see the types, only the interface.
//   - Parameterized factory: New(kind) — the classic switch-on-kind creator.
//     Unknown kinds are rejected with vehicle.ErrUnknownKind, the guard the
//     tutorials call "Invalid vehicle type".
//   - Registry factory: Register(kind, factory) + Obtain(kind) — the open
//     Go-native variant. New kinds plug in without touching the switch;
//     the registry is guarded by an RWMutex and pre-seeded with the three
//     stock products.
//
// Why two factories?
//
//	The switch is closed: adding a kind means editing New. The registry is
//	open: third parties register their own Factory and Obtain manufactures
//	through it. Teaching both makes the tradeoff visible — the switch is
//	simpler and exhaustive, the registry is extensible and checked at
//	runtime instead of compile time.
//
// Usage
//
//	r, err := factorymethod.New(vehicle.KindTruck)
//	if err != nil { ... }            // wraps vehicle.ErrUnknownKind
//	fmt.Println(r.Describe())        // "hauler: 6 wheels, built to pull"
//
// Errors
//
//   - vehicle.ErrUnknownKind — New with a kind outside the enumeration.
//   - ErrDuplicateFactory    — Register for an already-registered kind.
//   - ErrNilFactory          — Register with a nil Factory.
//   - ErrNoFactory           — Obtain for a kind nobody registered.
//
// Complexity: every operation is O(1). The registry is safe for concurrent
// Register/Obtain; the products themselves are stateless values.
package factorymethod
