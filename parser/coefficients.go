package parser

import "math"

// Triplet splits one coefficient into its total, inviscid and viscous parts.
type Triplet struct {
	Total    float64
	Inviscid float64
	Viscous  float64
}

// Coefficients is the derived, normalized view of one extraction. It is
// recomputed on demand from the reference state, geometry and loads so it can
// never disagree with them.
type Coefficients struct {
	Lift   Triplet
	Drag   Triplet
	Moment float64
	// LiftDrag is total lift over total drag. Zero drag yields an IEEE
	// infinity; callers guard, the engine does not special-case it.
	LiftDrag float64
	// CenterOfPressure is moment[side]/forceTotal[lift], kept literally from
	// the established convention. It ignores the angle-of-attack rotation and
	// is only meaningful under the solver's sign/axis convention.
	CenterOfPressure float64
}

// ComputeCoefficients normalizes the accumulated loads by freestream dynamic
// pressure and rotates the axis-mapped force pair by angle of attack:
//
//	lift = (F[lift]·cos α − F[drag]·sin α) / q
//	drag = (F[lift]·sin α + F[drag]·cos α) / q
//
// with q = ½·ρ·V²·Aref (·Lref for the moment coefficient).
func ComputeCoefficients(ref ReferenceState, geom GeometryReference, loads AeroLoads) Coefficients {
	var (
		ax       = geom.Axes()
		q        = 0.5 * ref.Density * ref.Vmag * ref.Vmag * geom.RefArea
		sin, cos = math.Sincos(geom.Alpha * math.Pi / 180.0)
	)
	lift := func(f [3]float64) float64 {
		return (f[ax.Lift]*cos - f[ax.Drag]*sin) / q
	}
	drag := func(f [3]float64) float64 {
		return (f[ax.Lift]*sin + f[ax.Drag]*cos) / q
	}

	c := Coefficients{
		Lift: Triplet{
			Total:    lift(loads.ForceTotal),
			Inviscid: lift(loads.ForceInviscid),
			Viscous:  lift(loads.ForceViscous),
		},
		Drag: Triplet{
			Total:    drag(loads.ForceTotal),
			Inviscid: drag(loads.ForceInviscid),
			Viscous:  drag(loads.ForceViscous),
		},
	}
	c.Moment = (loads.Moment[ax.Side] +
		loads.ForceTotal[ax.Lift]*geom.Origin[ax.Drag] -
		loads.ForceTotal[ax.Drag]*geom.Origin[ax.Lift]) / (q * geom.RefLength)
	c.LiftDrag = c.Lift.Total / c.Drag.Total
	c.CenterOfPressure = loads.Moment[ax.Side] / loads.ForceTotal[ax.Lift]
	return c
}
