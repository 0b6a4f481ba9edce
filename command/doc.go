// Package command teaches the Command pattern: reifying a request as an
// object that carries everything needed to perform it — and to take it
// back — so requests can be queued, journaled and undone.
//
// What
//
//   - Receiver: Garage — the toy state the commands act on (door, running
//     engines, fuel levels).
//   - Command: ID (generated), Name, Execute, Undo. Concretes: OpenDoor,
//     StartEngine, Refuel. Each closes over its receiver and arguments at
//     construction time.
//   - Invoker: Queue — Submit commands, Run them FIFO, collect a Journal
//     ("name: outcome" lines, in order). The invoker has no idea what any
//     command does; that ignorance is the pattern.
//   - Undo: History records what ran; UndoLast takes back the most recent
//     command.
//
//	Submit ─► [ open door | start engine | refuel ] ─► Run
//	              │                                      │
//	              ▼                                      ▼
//	           Garage  ◄────────── Undo ◄──────────── History
//
// Why
//
//	Once a request is a value, everything a function call cannot do
//	becomes ordinary: store it for later, log it by name, replay it,
//	reverse it. The price is the ceremony of one type per request, which
//	is why the pattern earns its keep only when queueing or undo is real.
//
// Failure rule
//
//	Run executes in submission order and stops at the first failing
//	command; its error comes back wrapped "command <name>: ...". Commands
//	that already ran stay run (their effects are in History, undoable).
//
// Errors
//
//   - ErrNothingToUndo — UndoLast on an empty history.
//   - ErrDoorClosed    — StartEngine while the garage door is down.
//   - ErrEngineOff     — Undo of a start that was already taken back.
//
// Complexity: Run is O(commands); each command is O(1).
package command
