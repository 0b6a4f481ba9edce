// Package observer teaches the Observer pattern: a publisher that knows its
// subscribers only through a narrow callback, so new reactions to an event
// cost a Subscribe call, not a change to the publisher.
//
// What
//
//   - Event: one telemetry reading — VIN, odometer, fuel percentage.
//   - Listener: func(Event) error — the whole subscriber contract.
//   - Broker: Subscribe(id, fn) / Unsubscribe(id) / Publish(ev). Publish
//     fans out synchronously, in subscription order.
//
//	Publish(ev) ──► listener "dashboard"    (1st subscribed)
//	            ──► listener "maintenance"  (2nd subscribed)
//	            ──► ...
//
// Determinism
//
//	Listeners live in a slice, not a map: fan-out order is subscription
//	order, every time. A listener error aborts the fan-out and comes back
//	wrapped with the listener's id; listeners later in the order are not
//	called for that event.
//
// Usage
//
//	b := observer.NewBroker()
//	_ = b.Subscribe("dashboard", func(ev observer.Event) error {
//	    fmt.Println(ev.VIN, ev.OdometerKm)
//	    return nil
//	})
//	err := b.Publish(observer.Event{VIN: "V-1", OdometerKm: 42_000, FuelPct: 80})
//
// Errors
//
//   - ErrDuplicateListener — Subscribe with an id already in use.
//   - ErrUnknownListener   — Unsubscribe for an id never subscribed.
//   - ErrNilListener       — Subscribe with a nil callback.
//
// Complexity: Publish is O(listeners); Subscribe/Unsubscribe are O(listeners)
// over the slice scan.
package observer
