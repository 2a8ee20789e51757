package parser

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func refState(density, vmag float64) ReferenceState {
	return ReferenceState{Density: density, Vmag: vmag}
}

func TestCoefficientsZeroAlphaReducesToAxisDivision(t *testing.T) {
	// At alpha = 0 the rotation drops out: lift = F[lift]/q, drag = F[drag]/q.
	geom := GeometryReference{RefArea: 2.0, RefLength: 1.0, Plane: SymmXZ}
	loads := AeroLoads{
		ForceTotal:    [3]float64{6, 0, 12},
		ForceInviscid: [3]float64{4, 0, 9},
		ForceViscous:  [3]float64{2, 0, 3},
	}
	// q = 0.5 * 1.5 * 4 * 2 = 6
	c := ComputeCoefficients(refState(1.5, 2.0), geom, loads)
	assert.InDelta(t, 12.0/6.0, c.Lift.Total, 1e-12)
	assert.InDelta(t, 9.0/6.0, c.Lift.Inviscid, 1e-12)
	assert.InDelta(t, 3.0/6.0, c.Lift.Viscous, 1e-12)
	assert.InDelta(t, 6.0/6.0, c.Drag.Total, 1e-12)
	assert.InDelta(t, 4.0/6.0, c.Drag.Inviscid, 1e-12)
	assert.InDelta(t, 2.0/6.0, c.Drag.Viscous, 1e-12)
}

func TestCoefficientsRoundTripScenario(t *testing.T) {
	// Known 1-boundary scenario: force (10,0,2), moment (0,0,5), area 1,
	// density 1, vmag 10, alpha 0, XY symmetry plane. q = 50.
	geom := GeometryReference{RefArea: 1.0, RefLength: 1.0, Plane: SymmXY}
	loads := AeroLoads{
		ForceTotal: [3]float64{10, 0, 2},
		Moment:     [3]float64{0, 0, 5},
	}
	c := ComputeCoefficients(refState(1.0, 10.0), geom, loads)
	assert.Equal(t, 0.0, c.Lift.Total)
	assert.InDelta(t, 0.2, c.Drag.Total, 1e-12)
	// Cm = moment[side=2] / (q * lref) with origin at zero.
	assert.InDelta(t, 5.0/50.0, c.Moment, 1e-12)
	// Lift-axis force is zero, so the center of pressure diverges.
	assert.True(t, math.IsInf(c.CenterOfPressure, 1))
}

func TestCoefficientsAlphaRotation(t *testing.T) {
	geom := GeometryReference{Alpha: 30.0, RefArea: 1.0, RefLength: 1.0, Plane: SymmXZ}
	loads := AeroLoads{ForceTotal: [3]float64{3, 0, 4}}
	c := ComputeCoefficients(refState(1.0, 2.0), geom, loads) // q = 2
	sin, cos := math.Sincos(30.0 * math.Pi / 180.0)
	assert.InDelta(t, (4*cos-3*sin)/2.0, c.Lift.Total, 1e-12)
	assert.InDelta(t, (4*sin+3*cos)/2.0, c.Drag.Total, 1e-12)
}

func TestCoefficientsMomentUsesOriginOffsets(t *testing.T) {
	geom := GeometryReference{
		RefArea:   1.0,
		RefLength: 2.0,
		Origin:    [3]float64{0.25, 0.0, 0.1},
		Plane:     SymmXZ, // drag=0, lift=2, side=1
	}
	loads := AeroLoads{
		ForceTotal: [3]float64{10, 0, 100},
		Moment:     [3]float64{0, 5, 0},
	}
	c := ComputeCoefficients(refState(1.0, 2.0), geom, loads) // q = 2
	want := (5.0 + 100.0*0.25 - 10.0*0.1) / (2.0 * 2.0)
	assert.InDelta(t, want, c.Moment, 1e-12)
	assert.InDelta(t, 5.0/100.0, c.CenterOfPressure, 1e-12)
}

func TestCoefficientsLiftDragRatio(t *testing.T) {
	geom := GeometryReference{RefArea: 1.0, RefLength: 1.0, Plane: SymmXZ}
	loads := AeroLoads{ForceTotal: [3]float64{2, 0, 10}}
	c := ComputeCoefficients(refState(1.0, 2.0), geom, loads)
	assert.InDelta(t, 5.0, c.LiftDrag, 1e-12)

	// Zero drag is not special-cased; callers guard.
	c = ComputeCoefficients(refState(1.0, 2.0), geom, AeroLoads{ForceTotal: [3]float64{0, 0, 10}})
	assert.True(t, math.IsInf(c.LiftDrag, 1))
}

func TestCoefficientsAxisMappingFollowsPlane(t *testing.T) {
	loads := AeroLoads{ForceTotal: [3]float64{1, 20, 300}}
	ref := refState(1.0, 2.0) // q = 2 with area 1

	xy := ComputeCoefficients(ref, GeometryReference{RefArea: 1, RefLength: 1, Plane: SymmXY}, loads)
	assert.InDelta(t, 10.0, xy.Lift.Total, 1e-12) // lift from Y

	xz := ComputeCoefficients(ref, GeometryReference{RefArea: 1, RefLength: 1, Plane: SymmXZ}, loads)
	assert.InDelta(t, 150.0, xz.Lift.Total, 1e-12) // lift from Z
}
