// Package chain implements the Issue request, the three escalation levels
// and the Chain combinator.
package chain

import (
	"errors"
	"fmt"
)

// Sentinel errors for escalation.
var (
	// ErrBeyondCapability is a single handler's pass-along signal.
	ErrBeyondCapability = errors.New("chain: issue beyond this handler")

	// ErrUnhandled is returned when an issue falls off the end of a chain.
	ErrUnhandled = errors.New("chain: no handler could resolve the issue")

	// ErrUnknownSeverity is returned for issues outside the enumeration.
	ErrUnknownSeverity = errors.New("chain: unknown severity")
)

// Severity grades an issue. Order matters: capability checks compare it.
type Severity int

const (
	// Minor: consumables and small adjustments.
	Minor Severity = iota

	// Major: drivetrain or structural work.
	Major

	// Recall: a manufacturer-level defect.
	Recall
)

// String renders the Severity as a stable lowercase word.
func (s Severity) String() string {
	switch s {
	case Minor:
		return "minor"
	case Major:
		return "major"
	case Recall:
		return "recall"
	default:
		return "unknown"
	}
}

// known reports whether s is inside the enumeration.
func (s Severity) known() bool { return s >= Minor && s <= Recall }

// Issue is the request travelling down the chain.
type Issue struct {
	// VIN identifies the affected vehicle.
	VIN string

	// Severity grades the problem.
	Severity Severity

	// Note describes the symptom.
	Note string
}

// Handler resolves issues or passes them on with ErrBeyondCapability.
type Handler interface {
	// Handle resolves the issue or explains why it cannot.
	Handle(is Issue) (string, error)
}

// level implements one escalation station: a name and the highest severity
// it accepts. All three concrete handlers are this shape.
type level struct {
	name string
	max  Severity
}

// Handle resolves issues up to the station's level, passes on the rest.
func (l level) Handle(is Issue) (string, error) {
	if !is.Severity.known() {
		return "", fmt.Errorf("%w: %d", ErrUnknownSeverity, is.Severity)
	}
	if is.Severity > l.max {
		return "", fmt.Errorf("%w: %s cannot take a %s issue", ErrBeyondCapability, l.name, is.Severity)
	}

	return fmt.Sprintf("%s resolved %s issue on %s (%s)", l.name, is.Severity, is.VIN, is.Note), nil
}

// Mechanic handles minor issues at the counter.
type Mechanic struct{}

// Handle resolves minor issues, passes everything else on.
func (Mechanic) Handle(is Issue) (string, error) {
	return level{name: "mechanic", max: Minor}.Handle(is)
}

// Workshop handles up to major issues.
type Workshop struct{}

// Handle resolves minor and major issues, passes recalls on.
func (Workshop) Handle(is Issue) (string, error) {
	return level{name: "workshop", max: Major}.Handle(is)
}

// Manufacturer handles everything, recalls included.
type Manufacturer struct{}

// Handle resolves any graded issue.
func (Manufacturer) Handle(is Issue) (string, error) {
	return level{name: "manufacturer", max: Recall}.Handle(is)
}

// links is the handler list built by Chain.
type links []Handler

// Handle offers the issue to each handler in order; the first capable one
// wins. ErrBeyondCapability is absorbed as "try the next"; any other error
// aborts immediately (it is an answer, not a refusal).
func (ls links) Handle(is Issue) (string, error) {
	for _, h := range ls {
		res, err := h.Handle(is)
		if err == nil {
			return res, nil
		}
		if !errors.Is(err, ErrBeyondCapability) {
			return "", err
		}
	}

	return "", fmt.Errorf("%w: %s issue on %s", ErrUnhandled, is.Severity, is.VIN)
}

// Chain links handlers into one Handler; order is escalation policy.
func Chain(handlers ...Handler) Handler { return links(handlers) }
