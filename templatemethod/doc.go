// Package templatemethod teaches the Template Method pattern: fixing the
// SKELETON of an algorithm in one place while letting concrete types vary
// the individual steps.
//
// What
//
//   - Steps: the Routine interface — Inspect (may veto), Perform (the work),
//     Certify (the paperwork).
//   - Template: Run(routine, v) — the one function that owns the order
//     inspect → perform → certify and the early-return-on-failure rule.
//     Concrete routines never control the sequence.
//   - Partial override: BaseRoutine is an embeddable default (no-op Inspect,
//     generic Certify); concrete routines embed it and override only the
//     steps they care about — Go's answer to the abstract base class.
//
//	Run ──► Inspect ──err?──► return (wrapped "inspect")
//	            │ok
//	            ▼
//	        Perform ──err?──► return (wrapped "perform")
//	            │ok
//	            ▼
//	        Certify ──► Report
//
// Why
//
//	The sequence is the invariant worth protecting: nobody certifies an
//	uninspected vehicle. Putting the order in one template function means
//	a new routine cannot get it wrong, only fill in different steps.
//
// Usage
//
//	rep, err := templatemethod.Run(templatemethod.FullService{}, v)
//	if err != nil { ... }     // "templatemethod: inspect: ..." etc.
//	fmt.Println(rep.Steps)    // executed step lines, in order
//
// Errors
//
//   - ErrNilRoutine — Run with a nil Routine.
//   - Step failures — the step's own error wrapped with the step name;
//     branch with errors.Is on the underlying cause.
//
// Complexity: Run is O(cost of the three steps); no goroutines, no state.
package templatemethod
