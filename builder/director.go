// SPDX-License-Identifier: MIT
//
// File: director.go
// Role: Director — preset construction recipes over the fluent Builder.

package builder

import "github.com/boushphong/go-design-patterns/vehicle"

// AssemblyLine is the director: it knows the order and the parameters of a
// handful of proven recipes, so callers get a finished Blueprint without
// learning the step vocabulary. The same Builder steps do all the work.
//
// The zero value is ready to use.
type AssemblyLine struct{}

// CityCar produces a small four-seat commuter.
func (AssemblyLine) CityCar() (Blueprint, error) {
	return New(vehicle.KindCar).
		Chassis("steel monocoque").
		Engine(1_200).
		Seats(4).
		Paint("arctic silver").
		Extra("parking sensors").
		Build()
}

// HaulTruck produces a three-axle freight tractor.
func (AssemblyLine) HaulTruck() (Blueprint, error) {
	return New(vehicle.KindTruck).
		Chassis("ladder frame").
		Engine(12_800).
		Wheels(6).
		Paint("fleet blue").
		Extra("sleeper cabin").
		Extra("air deflector").
		Build()
}

// CafeRacer produces a single-seat motorcycle.
func (AssemblyLine) CafeRacer() (Blueprint, error) {
	return New(vehicle.KindMotorcycle).
		Chassis("tubular trellis").
		Engine(650).
		Paint("matte black").
		Extra("clip-on bars").
		Build()
}
