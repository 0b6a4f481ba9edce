// Package observer implements the telemetry broker and its listeners.
package observer

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for subscription management.
var (
	// ErrDuplicateListener is returned when an id is subscribed twice.
	ErrDuplicateListener = errors.New("observer: duplicate listener")

	// ErrUnknownListener is returned when unsubscribing an unknown id.
	ErrUnknownListener = errors.New("observer: unknown listener")

	// ErrNilListener is returned when subscribing a nil callback.
	ErrNilListener = errors.New("observer: nil listener")
)

// Event is one telemetry reading pushed to every listener.
type Event struct {
	// VIN identifies the reporting vehicle.
	VIN string
	// OdometerKm is the odometer reading at the event.
	OdometerKm int
	// FuelPct is the remaining fuel, 0..100.
	FuelPct int
}

// Listener reacts to one event. A non-nil error aborts the fan-out.
type Listener func(Event) error

// subscription pairs an id with its callback.
type subscription struct {
	id string
	fn Listener
}

// Broker fans events out to listeners synchronously, in subscription order.
// Listeners live in a slice so the order is stable; a map would shuffle it.
// Safe for concurrent use.
type Broker struct {
	mu   sync.Mutex
	subs []subscription
}

// NewBroker returns an empty broker.
func NewBroker() *Broker { return &Broker{} }

// Subscribe registers fn under id, appended after every earlier listener.
//
// Returns ErrNilListener for a nil fn and ErrDuplicateListener when the id
// is already taken.
func (b *Broker) Subscribe(id string, fn Listener) error {
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrNilListener, id)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, s := range b.subs {
		if s.id == id {
			return fmt.Errorf("%w: %q", ErrDuplicateListener, id)
		}
	}
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	return nil
}

// Unsubscribe removes the listener under id, preserving the order of the
// rest. Returns ErrUnknownListener when the id was never subscribed.
func (b *Broker) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownListener, id)
}

// Publish delivers ev to every listener, in subscription order, on the
// caller's goroutine. The first listener error aborts the fan-out and is
// returned wrapped with the listener's id.
//
// Complexity: O(listeners).
func (b *Broker) Publish(ev Event) error {
	b.mu.Lock()
	subs := make([]subscription, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		if err := s.fn(ev); err != nil {
			return fmt.Errorf("observer: listener %q: %w", s.id, err)
		}
	}

	return nil
}

// Len reports the current listener count.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}
