// Package templatemethod implements the Run template over the Routine steps
// and the embeddable BaseRoutine default.
package templatemethod

import (
	"errors"
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// ErrNilRoutine indicates Run was given a nil Routine.
var ErrNilRoutine = errors.New("templatemethod: nil routine")

// Routine declares the steps of a workshop visit. Concrete routines vary the
// steps; only Run controls their order.
type Routine interface {
	// Inspect may veto the routine before any work happens.
	Inspect(v vehicle.Vehicle) error

	// Perform does the work and reports a one-line outcome.
	Perform(v vehicle.Vehicle) (string, error)

	// Certify issues the paperwork line after the work succeeded.
	Certify(v vehicle.Vehicle) string
}

// Report lists the executed step lines in execution order.
type Report struct {
	// Steps holds one line per completed step.
	Steps []string
}

// Run is the template method: it fixes the skeleton inspect → perform →
// certify and the early-return rule. A failed step aborts the routine; its
// error comes back wrapped with the step name and no later step runs.
//
// Complexity: O(cost of the steps).
func Run(r Routine, v vehicle.Vehicle) (Report, error) {
	if r == nil {
		return Report{}, ErrNilRoutine
	}

	var rep Report
	if err := r.Inspect(v); err != nil {
		return Report{}, fmt.Errorf("templatemethod: inspect: %w", err)
	}
	rep.Steps = append(rep.Steps, "inspected "+v.VIN)

	outcome, err := r.Perform(v)
	if err != nil {
		return Report{}, fmt.Errorf("templatemethod: perform: %w", err)
	}
	rep.Steps = append(rep.Steps, outcome)

	rep.Steps = append(rep.Steps, r.Certify(v))

	return rep, nil
}

// BaseRoutine is the embeddable default: inspection passes everything and
// certification issues a generic stamp. Embed it and override only the
// steps your routine actually varies.
type BaseRoutine struct{}

// Inspect accepts every vehicle.
func (BaseRoutine) Inspect(vehicle.Vehicle) error { return nil }

// Certify issues the generic workshop stamp.
func (BaseRoutine) Certify(v vehicle.Vehicle) string {
	return "certified: " + v.VIN
}
