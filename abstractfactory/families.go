// Package abstractfactory — the two concrete part families and the terrain
// selector.
package abstractfactory

import "fmt"

// ForTerrain selects the part family matching the terrain. Unknown terrain
// is rejected with ErrUnknownTerrain wrapped with the offending value.
//
// Complexity: O(1).
func ForTerrain(t Terrain) (Factory, error) {
	switch t {
	case TerrainCity:
		return cityFactory{}, nil
	case TerrainOffroad:
		return offroadFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTerrain, t)
	}
}

// ---------------------------------------------------------------------------
// City family: light, efficient, street rubber. Parts are matched by design;
// the "city:" tag in every Spec makes family membership observable.
// ---------------------------------------------------------------------------

type cityFactory struct{}

func (cityFactory) Engine() Engine   { return cityEngine{} }
func (cityFactory) Chassis() Chassis { return cityChassis{} }
func (cityFactory) Tires() Tires     { return cityTires{} }

type cityEngine struct{}

func (cityEngine) Spec() string { return "city: 1.2L three-cylinder" }
func (cityEngine) KW() int      { return 66 }

type cityChassis struct{}

func (cityChassis) Spec() string { return "city: steel monocoque" }

type cityTires struct{}

func (cityTires) Spec() string  { return "city: low-rolling-resistance street" }
func (cityTires) Grip() float64 { return 0.8 }

// ---------------------------------------------------------------------------
// Offroad family: torque, reinforcement, knobby rubber.
// ---------------------------------------------------------------------------

type offroadFactory struct{}

func (offroadFactory) Engine() Engine   { return offroadEngine{} }
func (offroadFactory) Chassis() Chassis { return offroadChassis{} }
func (offroadFactory) Tires() Tires     { return offroadTires{} }

type offroadEngine struct{}

func (offroadEngine) Spec() string { return "offroad: 3.0L turbodiesel" }
func (offroadEngine) KW() int      { return 190 }

type offroadChassis struct{}

func (offroadChassis) Spec() string { return "offroad: reinforced ladder frame" }

type offroadTires struct{}

func (offroadTires) Spec() string  { return "offroad: all-terrain knobby" }
func (offroadTires) Grip() float64 { return 1.1 }
