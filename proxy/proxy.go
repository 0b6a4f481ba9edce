// Package proxy implements the ECULink real subject and its two proxies.
package proxy

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for diagnostics access.
var (
	// ErrUnknownVIN is returned when the ECU has no fault record for a VIN.
	ErrUnknownVIN = errors.New("proxy: unknown VIN")

	// ErrAccessDenied is returned by Guarded for a wrong credential.
	ErrAccessDenied = errors.New("proxy: access denied")

	// ErrNilSubject is returned when a proxy is built over nothing.
	ErrNilSubject = errors.New("proxy: nil subject")
)

// Diagnostics is the subject interface both the real link and every proxy
// satisfy.
type Diagnostics interface {
	// ReadFault returns the active fault code for a VIN.
	ReadFault(vin string) (string, error)
}

// ECULink is the real subject: a dialed-up link to the engine control unit.
// Construction is the expensive part; the Dials counter on the dialer side
// makes that cost visible.
type ECULink struct {
	faults map[string]string
}

// NewECULink returns a live link over the given fault table.
func NewECULink(faults map[string]string) *ECULink {
	cp := make(map[string]string, len(faults))
	for k, v := range faults {
		cp[k] = v
	}

	return &ECULink{faults: cp}
}

// ReadFault answers from the fault table.
func (l *ECULink) ReadFault(vin string) (string, error) {
	code, ok := l.faults[vin]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownVIN, vin)
	}

	return code, nil
}

// Dialer opens the expensive link. Lazy calls it at most once.
type Dialer func() (*ECULink, error)

// Lazy is the virtual proxy: it dials on first use and memoizes answers.
// Safe for concurrent use.
type Lazy struct {
	dial Dialer

	mu    sync.Mutex
	link  *ECULink
	dials int
	cache map[string]string
	hits  int
}

// NewLazy wraps a dialer; nothing is dialed yet.
func NewLazy(dial Dialer) (*Lazy, error) {
	if dial == nil {
		return nil, fmt.Errorf("%w: no dialer", ErrNilSubject)
	}

	return &Lazy{dial: dial, cache: make(map[string]string)}, nil
}

// ReadFault serves from cache when possible; otherwise it ensures the one
// dial has happened and reads through. Only successful answers are cached.
func (p *Lazy) ReadFault(vin string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if code, ok := p.cache[vin]; ok {
		p.hits++
		return code, nil
	}

	if p.link == nil {
		link, err := p.dial()
		if err != nil {
			return "", fmt.Errorf("proxy: dial: %w", err)
		}
		p.link = link
		p.dials++
	}

	code, err := p.link.ReadFault(vin)
	if err != nil {
		return "", err
	}
	p.cache[vin] = code

	return code, nil
}

// Dials reports how often the expensive link was opened (at most 1).
func (p *Lazy) Dials() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.dials
}

// Hits reports how many reads the cache served.
func (p *Lazy) Hits() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.hits
}

// Guarded is the protection proxy: it forwards only when the credential
// presented at construction matches the required one.
type Guarded struct {
	inner Diagnostics
	allow bool
}

// NewGuarded binds a session credential against the required one. The check
// happens per read, so a denied proxy is inert, not broken.
func NewGuarded(inner Diagnostics, required, presented string) (*Guarded, error) {
	if inner == nil {
		return nil, ErrNilSubject
	}

	return &Guarded{inner: inner, allow: required == presented}, nil
}

// ReadFault forwards to the subject, or refuses without touching it.
func (g *Guarded) ReadFault(vin string) (string, error) {
	if !g.allow {
		return "", fmt.Errorf("%w: fault read on %s", ErrAccessDenied, vin)
	}

	return g.inner.ReadFault(vin)
}
