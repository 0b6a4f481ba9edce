// Package composite teaches the Composite pattern: arranging objects into a
// tree where a GROUP answers the same questions as a single item, so client
// code totals a whole holding company the way it totals one van.
//
// What
//
//   - Component: Asset — Units (vehicle count), Value (sum), Label.
//   - Leaf: Unit — exactly one vehicle.
//   - Composite: Fleet — a named group of Assets, leaves or sub-fleets
//     alike; Units and Value aggregate recursively, Render draws the tree.
//
//	logistics arm
//	├─ north depot
//	│  ├─ 2019 Volvo FH16 [truck]
//	│  └─ 2021 MAN TGX [truck]
//	└─ 2020 VW Caddy [car]
//
// Why
//
//	The caller asking "what is this worth?" should not care whether "this"
//	is one van or a holding company. The shared interface makes groups
//	and items substitutable; recursion does the bookkeeping.
//
// Usage
//
//	depot := composite.NewFleet("north depot")
//	_ = depot.Add(composite.NewUnit(truck))
//	arm := composite.NewFleet("logistics arm")
//	_ = arm.Add(depot)
//	arm.Units()   // counts through the whole tree
//	arm.Render()  // the indented sketch above
//
// Errors
//
//   - ErrNilAsset — Add(nil).
//   - ErrSelfAdd  — adding a fleet to itself (the one cycle cheap to catch).
//
// Invariants: children keep insertion order; Units/Value/Render agree on
// that order. Complexity: aggregation is O(nodes).
package composite
