package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAxesForIsPureTwoWayMapping(t *testing.T) {
	// XY-plane keeps lift on Y; every other value puts lift on Z.
	assert.Equal(t, AxisMap{Drag: 0, Lift: 1, Side: 2}, AxesFor(SymmXY))
	assert.Equal(t, AxisMap{Drag: 0, Lift: 2, Side: 1}, AxesFor(SymmXZ))
	assert.Equal(t, AxisMap{Drag: 0, Lift: 2, Side: 1}, AxesFor(SymmNone))
}

func TestReadGeometry(t *testing.T) {
	lines := []string{
		"alpha 2.5",
		"axref 0.76",
		"lxref 0.14",
		"xcen 0.25",
		"ycen 0.0",
		"zcen 0.1",
		"plane xy",
	}
	geom, err := readGeometry(lines, "infout1f.inp", ModeLenient, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2.5, geom.Alpha)
	assert.Equal(t, 0.76, geom.RefArea)
	assert.Equal(t, 0.14, geom.RefLength)
	assert.Equal(t, [3]float64{0.25, 0.0, 0.1}, geom.Origin)
	assert.Equal(t, SymmXY, geom.Plane)
	assert.Equal(t, AxisMap{Drag: 0, Lift: 1, Side: 2}, geom.Axes())
}

func TestReadGeometryNonXYPlaneMapsToXZ(t *testing.T) {
	for _, token := range []string{"xz", "yz", "unknown"} {
		geom, err := readGeometry([]string{"plane " + token}, "infout1f.inp", ModeLenient, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, SymmXZ, geom.Plane)
	}
}

func TestReadGeometryLenientDefaults(t *testing.T) {
	geom, err := readGeometry([]string{"unrelated line"}, "infout1f.inp", ModeLenient, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, GeometryReference{}, geom)
	assert.Equal(t, SymmNone, geom.Plane)
}

func TestReadGeometryStrictReportsMissingKeys(t *testing.T) {
	lines := []string{
		"alpha 2.5",
		"axref 0.76",
	}
	_, err := readGeometry(lines, "infout1f.inp", ModeStrict, zap.NewNop())
	var mk *MissingKeyError
	require.True(t, errors.As(err, &mk))
	assert.Equal(t, []string{"lxref", "plane", "xcen", "ycen", "zcen"}, mk.Keys)
}

func TestReadGeometryKeyWithoutValue(t *testing.T) {
	_, err := readGeometry([]string{"alpha"}, "infout1f.inp", ModeLenient, zap.NewNop())
	var ml *MalformedLogError
	require.True(t, errors.As(err, &ml))
	assert.Equal(t, 1, ml.Line)
}

func TestHasCLDriverControls(t *testing.T) {
	assert.True(t, hasCLDriverControls([]string{"noise", "cldriver_controls block", "noise"}))
	assert.False(t, hasCLDriverControls([]string{"noise", "fixed alpha run"}))
}
