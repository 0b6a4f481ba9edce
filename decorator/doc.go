// Package decorator teaches the Decorator pattern: attaching extra behavior
// to an object by wrapping it in same-interface layers, composed at runtime
// instead of multiplied into subclasses.
//
// What
//
//   - Component: Quote — a price quote (Cost, Description).
//   - Concrete component: Base(v) — the vehicle's list price.
//   - Decorators: SportPack, TowPack, Warranty — each wraps any Quote,
//     adds its surcharge to Cost and its suffix to Description.
//   - Composer: Wrap(base, decorators...) applies layers left to right.
//
//	Wrap(Base(v), SportPack, Warranty)
//
//	  Warranty ─► SportPack ─► Base
//	    Cost()  =  1200     +  4500  + list price
//	    Desc()  =  "... + sport pack + warranty"
//
// Why
//
//	Three option packs as subclasses would need 2³ classes to cover the
//	combinations. As decorators they compose: any subset, any order, one
//	type each. The component interface is the contract that keeps a
//	decorated quote usable anywhere a plain quote is.
//
// Usage
//
//	q, err := decorator.Wrap(decorator.Base(v),
//	    decorator.SportPack, decorator.Warranty)
//	q.Cost()          // list + 4500 + 1200
//	q.Description()   // "2019 Volvo FH16 [truck] + sport pack + warranty"
//
// Errors
//
//   - ErrNilQuote — a decorator (or Wrap) given a nil component.
//
// Invariants: cost is additive; description order equals wrap order.
// Complexity: a stack of n decorators costs O(n) per call.
package decorator
