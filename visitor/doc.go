// Package visitor teaches the Visitor pattern: adding new operations over a
// FIXED set of element types without touching the elements, by double
// dispatch through an Accept method.
//
// What
//
//   - Elements: Car, Truck, Bus — the stable hierarchy. Each implements
//     Accept(Visitor) with one line: v.VisitCar(c) (or its sibling). That
//     line is the second dispatch.
//   - Visitor: one VisitX method per element type. Adding an operation is
//     adding one visitor type — zero element edits.
//   - Concrete visitors: TollCalc (per-kind tariff plus an axle surcharge
//     for trucks) and EmissionsAudit (g/km classes per element).
//   - Walk(elements, visitor) drives a whole convoy through one visitor.
//
//	element.Accept(v) ──► v.VisitTruck(element)
//	   (dynamic on element)   (static per visitor)
//
// The tradeoff (teach it honestly)
//
//	Visitor trades one axis of change for the other: new OPERATIONS are
//	cheap (one type), new ELEMENT KINDS are expensive (every visitor
//	grows a method). Use it when the element set is stable and the
//	operation set is not — tolls, audits, inspections over the same three
//	vehicle shapes.
//
// Usage
//
//	toll := &visitor.TollCalc{}
//	visitor.Walk(convoy, toll)
//	toll.Total              // summed per-kind tariffs
//
// Complexity: Walk is O(elements); each visit is O(1). Visitors carry their
// own accumulation state and are not safe for concurrent use.
package visitor
