package bridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boushphong/go-design-patterns/bridge"
)

// TestBridge_Matrix verifies every body × drivetrain pairing works without
// a dedicated type per combination.
func TestBridge_Matrix(t *testing.T) {
	combustion := bridge.Combustion{CC: 2_000}
	electric := bridge.Electric{KWh: 77}

	sc, err := bridge.NewSedan(combustion)
	require.NoError(t, err)
	se, err := bridge.NewSedan(electric)
	require.NoError(t, err)
	hc, err := bridge.NewHauler(combustion)
	require.NoError(t, err)
	he, err := bridge.NewHauler(electric)
	require.NoError(t, err)

	assert.Equal(t, "sedan with combustion drivetrain (110 kW)", sc.Describe())
	assert.Equal(t, "sedan with electric drivetrain (154 kW)", se.Describe())
	assert.Equal(t, "hauler with combustion drivetrain (110 kW)", hc.Describe())
	assert.Equal(t, "hauler with electric drivetrain (154 kW)", he.Describe())
}

// TestLaunch_FeelComesFromImplementor verifies the same body launches
// differently per drivetrain, and different bodies identically per
// drivetrain.
func TestLaunch_FeelComesFromImplementor(t *testing.T) {
	se, err := bridge.NewSedan(bridge.Electric{KWh: 60})
	require.NoError(t, err)
	he, err := bridge.NewHauler(bridge.Electric{KWh: 200})
	require.NoError(t, err)
	sc, err := bridge.NewSedan(bridge.Combustion{CC: 1_600})
	require.NoError(t, err)

	assert.Equal(t, "sedan: silent torque from standstill", se.Launch())
	assert.Equal(t, "hauler: silent torque from standstill", he.Launch())
	assert.Equal(t, "sedan: revs climbing through the gears", sc.Launch())
}

// TestElectric_PowerCap verifies the cooling cap on large packs.
func TestElectric_PowerCap(t *testing.T) {
	assert.Equal(t, 300, bridge.Electric{KWh: 400}.PeakKW())
	assert.Equal(t, 120, bridge.Electric{KWh: 60}.PeakKW())
}

// TestNilDrivetrain verifies both refined abstractions guard the bridge
// field.
func TestNilDrivetrain(t *testing.T) {
	s, err := bridge.NewSedan(nil)
	assert.ErrorIs(t, err, bridge.ErrNilDrivetrain)
	assert.Nil(t, s)

	h, err := bridge.NewHauler(nil)
	assert.ErrorIs(t, err, bridge.ErrNilDrivetrain)
	assert.Nil(t, h)
}
