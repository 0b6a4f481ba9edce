// Package strategy teaches the Strategy pattern: encapsulating a family of
// interchangeable algorithms behind one interface, chosen at runtime by the
// context that uses them.
//
// What
//
//   - Strategy: Estimator — turns a leg distance into an estimated Leg
//     (hours on the road, litres of fuel).
//   - Concretes: Motorway (fast, thirsty), Eco (slower, frugal), Scenic
//     (slow, winding). Their speed and consumption constants are exported,
//     so the arithmetic in the examples is checkable.
//   - Function form: EstimatorFunc — any func(float64) Leg is a strategy,
//     no struct required.
//   - Context: Planner — holds the current strategy and sums the legs of a
//     trip through it. Swapping the strategy changes every later estimate;
//     the planner's own code never branches on WHICH strategy it holds.
//
// Why
//
//	The planner's job (sum legs, total a trip) is stable; the estimation
//	policy varies by driver mood. A switch inside Plan would entangle the
//	two. As a strategy, policy is a value: store it, swap it, test it in
//	isolation, pass a closure.
//
// Usage
//
//	p := strategy.NewPlanner(strategy.Eco{})
//	trip, err := p.Plan(120, 80, 45.5)      // three legs, one policy
//	p.SetStrategy(strategy.Motorway{})      // change of mood
//
// Errors
//
//   - ErrNoStrategy  — Plan on a planner without a strategy.
//   - ErrBadDistance — a negative leg distance.
//
// Complexity: Plan is O(legs). A Planner is not safe for concurrent use.
package strategy
