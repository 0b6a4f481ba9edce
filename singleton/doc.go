// Package singleton teaches the Singleton pattern: guaranteeing exactly one
// instance of a type per process, reachable from anywhere, created lazily
// and safely under concurrency.
//
// What
//
//   - The instance: Depot — a process-wide vehicle registry (Register,
//     Lookup, Count) over an RWMutex-guarded map.
//   - Shared() — the Go way: sync.Once runs the constructor exactly once,
//     every caller gets the same *Depot pointer.
//   - LegacyShared() — the textbook double-checked locking variant, done
//     CORRECTLY: an atomic fast path, then a mutex, then a re-check. It is
//     shown because the tutorials teach it; in Go you should reach for
//     sync.Once, which is this exact dance, packaged and reviewed.
//
// Why double-checked locking is subtle
//
//	The naive version reads the pointer without synchronization on the
//	fast path. Under the Go memory model that read can observe a
//	half-published value. The legacy variant here uses atomic.Pointer for
//	the fast path, which restores correctness at the price of being the
//	long way to spell sync.Once.
//
// Usage
//
//	d := singleton.Shared()
//	if err := d.Register(v); err != nil { ... }  // ErrDuplicateVIN
//	got, err := d.Lookup(v.VIN)                  // ErrNotFound
//
// Errors
//
//   - ErrDuplicateVIN — Register with a VIN already in the depot.
//   - ErrNotFound     — Lookup for a VIN nobody registered.
//
// Concurrency: Shared and LegacyShared are safe to call from any number of
// goroutines and always return the same pointer; the Depot methods are safe
// for concurrent use.
package singleton
