// Package facade implements the three subsystems and the Garage facade
// over them.
package facade

import (
	"errors"
	"fmt"

	"github.com/boushphong/go-design-patterns/vehicle"
)

// Sentinel errors, one per subsystem failure mode.
var (
	// ErrInspectionFailed is returned for vehicles worn beyond
	// MaxServiceableKm.
	ErrInspectionFailed = errors.New("facade: vehicle failed inspection")

	// ErrWashRefused is returned for kinds the rollers cannot take.
	ErrWashRefused = errors.New("facade: wash bay refused vehicle")

	// ErrWrongFuel is returned when the pump has no matching nozzle.
	ErrWrongFuel = errors.New("facade: no nozzle for fuel type")
)

// MaxServiceableKm is the odometer ceiling the inspection lane accepts.
const MaxServiceableKm = 500_000

// inspectionLane is the first subsystem: a go/no-go wear check.
type inspectionLane struct{}

func (inspectionLane) check(v vehicle.Vehicle) error {
	if v.Mileage > MaxServiceableKm {
		return fmt.Errorf("%w: %s at %d km", ErrInspectionFailed, v.VIN, v.Mileage)
	}

	return nil
}

// washBay is the second subsystem: rollers sized for cars and up.
type washBay struct{}

func (washBay) wash(v vehicle.Vehicle) (string, error) {
	if v.Kind == vehicle.KindMotorcycle {
		return "", fmt.Errorf("%w: %s is too narrow for the rollers", ErrWashRefused, v.VIN)
	}

	return "washed " + v.VIN, nil
}

// fuelPump is the third subsystem: combustion nozzles only.
type fuelPump struct{}

func (fuelPump) fill(v vehicle.Vehicle) (string, error) {
	if v.Fuel == vehicle.FuelElectric {
		return "", fmt.Errorf("%w: %s runs on %s", ErrWrongFuel, v.VIN, v.Fuel)
	}

	return fmt.Sprintf("filled %s with %s", v.VIN, v.Fuel), nil
}

// Report lists the completed stage lines in service order.
type Report struct {
	// Stages holds one line per completed stage.
	Stages []string
}

// Garage is the facade: it owns the subsystems and the order they run in.
type Garage struct {
	lane inspectionLane
	bay  washBay
	pump fuelPump
}

// NewGarage wires up the subsystems.
func NewGarage() *Garage { return &Garage{} }

// FullService runs the fixed sequence inspect → wash → fuel. The first
// failing stage aborts the service; its error comes back wrapped with the
// stage name, and the report keeps the stages that did complete.
//
// Complexity: O(1).
func (g *Garage) FullService(v vehicle.Vehicle) (Report, error) {
	var rep Report

	if err := g.lane.check(v); err != nil {
		return rep, fmt.Errorf("facade: inspect: %w", err)
	}
	rep.Stages = append(rep.Stages, "inspection passed for "+v.VIN)

	line, err := g.bay.wash(v)
	if err != nil {
		return rep, fmt.Errorf("facade: wash: %w", err)
	}
	rep.Stages = append(rep.Stages, line)

	line, err = g.pump.fill(v)
	if err != nil {
		return rep, fmt.Errorf("facade: fuel: %w", err)
	}
	rep.Stages = append(rep.Stages, line)

	return rep, nil
}
