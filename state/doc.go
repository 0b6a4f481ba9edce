// Package state teaches the State pattern: letting an object change its
// behavior when its internal state changes, by delegating every event to a
// per-state object instead of branching on an enum in every method.
//
// What
//
//   - Phases: Parked, Idle, Moving, Towed — the Phase enumeration.
//   - Events: Start, Drive, Stop, Park, Breakdown, Repair — methods on the
//     Machine.
//   - State objects: one unexported type per phase implements the internal
//     phase interface; the Machine holds the current object and swaps it on
//     each legal transition.
//
//	          Start            Drive
//	 Parked ───────► Idle ───────────► Moving
//	    ▲             │ ▲                │
//	    │        Park │ └──────┬─────────┘
//	    │             ▼      Stop
//	    │  Repair   Towed ◄─────────── Breakdown
//	    └────────────┘      (from Parked, Idle or Moving)
//
// Why state objects?
//
//	The naive machine is one switch per event — every new phase touches
//	every switch. With state objects, each phase owns its complete answer
//	to every event, so the transition table reads phase by phase, and an
//	illegal event is simply the default answer.
//
// Usage
//
//	m := state.NewMachine()                 // starts Parked
//	_ = m.Start()                           // Parked → Idle
//	_ = m.Drive()                           // Idle → Moving
//	err := m.Park()                         // illegal from Moving
//	errors.Is(err, state.ErrInvalidTransition) // true
//	m.History()                             // [parked idle moving]
//
// Errors
//
//   - ErrInvalidTransition — the current phase has no edge for the event;
//     the error names both ("state: cannot Park from moving").
//
// Complexity: every event is O(1); the Machine is not safe for concurrent
// use (drive it from one goroutine, like a real gearbox).
package state
