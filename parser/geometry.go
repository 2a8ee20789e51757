package parser

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// SymmetryPlane identifies the mirror plane of the model. It fixes the
// mapping from Cartesian force/moment components to aerodynamic lift, drag
// and side directions.
type SymmetryPlane uint8

const (
	SymmNone SymmetryPlane = iota
	SymmXY
	SymmXZ
)

func (s SymmetryPlane) String() string {
	switch s {
	case SymmXY:
		return "XY-plane"
	case SymmXZ:
		return "XZ-plane"
	default:
		return "none"
	}
}

// AxisMap gives the Cartesian component index carrying each aerodynamic
// direction.
type AxisMap struct {
	Drag, Lift, Side int
}

// axisByPlane is the single source of the axis convention. A model mirrored
// about XY keeps lift on Y with Z spanwise; every other plane puts lift on Z
// with Y spanwise.
var axisByPlane = map[SymmetryPlane]AxisMap{
	SymmNone: {Drag: 0, Lift: 2, Side: 1},
	SymmXY:   {Drag: 0, Lift: 1, Side: 2},
	SymmXZ:   {Drag: 0, Lift: 2, Side: 1},
}

// AxesFor returns the axis assignment for a symmetry plane.
func AxesFor(plane SymmetryPlane) AxisMap {
	return axisByPlane[plane]
}

// GeometryReference holds the aerodynamic reference values read from the
// geometry input (or, for a CL-driven run, output) file. Alpha is in degrees.
type GeometryReference struct {
	Alpha     float64
	RefArea   float64
	RefLength float64
	Origin    [3]float64
	Plane     SymmetryPlane
}

// Axes returns the axis assignment active for this geometry.
func (g GeometryReference) Axes() AxisMap {
	return AxesFor(g.Plane)
}

// clDriverToken marks a closed-loop control block in the run log. Its
// presence means the solver iterated angle of attack toward a target CL.
const clDriverToken = "cldriver_controls"

func hasCLDriverControls(lines []string) bool {
	for _, line := range lines {
		if strings.Contains(line, clDriverToken) {
			return true
		}
	}
	return false
}

// geometryKeys are the recognized tokens of the geometry file. For each the
// value is the second whitespace field of a line containing the key; the last
// occurrence wins.
var geometryKeys = []string{"alpha", "axref", "lxref", "xcen", "ycen", "zcen", "plane"}

// readGeometry scans the resolved geometry file for the recognized keys. The
// symmetry plane is a string token: "xy" selects the XY plane, anything else
// the XZ plane. Keys that never appear leave their field at zero in
// ModeLenient and fail with MissingKeyError in ModeStrict.
func readGeometry(lines []string, file string, mode Mode, log *zap.Logger) (GeometryReference, error) {
	var geom GeometryReference
	seen := make(map[string]bool, len(geometryKeys))

	for i, line := range lines {
		for _, key := range geometryKeys {
			if !strings.Contains(line, key) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) < 2 {
				return geom, &MalformedLogError{File: file, Line: i + 1,
					Reason: "no value field after key " + key}
			}
			if key == "plane" {
				if fields[1] == "xy" {
					geom.Plane = SymmXY
				} else {
					geom.Plane = SymmXZ
				}
				seen[key] = true
				continue
			}
			v, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return geom, &MalformedLogError{File: file, Line: i + 1,
					Reason: "non-numeric value for " + key}
			}
			switch key {
			case "alpha":
				geom.Alpha = v
			case "axref":
				geom.RefArea = v
			case "lxref":
				geom.RefLength = v
			case "xcen":
				geom.Origin[0] = v
			case "ycen":
				geom.Origin[1] = v
			case "zcen":
				geom.Origin[2] = v
			}
			seen[key] = true
		}
	}
	if mode == ModeStrict {
		var missing []string
		for _, key := range geometryKeys {
			if !seen[key] {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return geom, &MissingKeyError{File: file, Keys: missing}
		}
	}

	log.Debug("geometry reference",
		zap.Float64("alpha", geom.Alpha),
		zap.Float64("refArea", geom.RefArea),
		zap.Float64("refLength", geom.RefLength),
		zap.String("plane", geom.Plane.String()))
	return geom, nil
}
