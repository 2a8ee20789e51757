package parser

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// The tail of mcfd.info1 is one fixed-size block per boundary, in ascending
// 1-based boundary order, with nothing but position identifying the blocks.
const blockLines = 23

// blockField locates one value inside a boundary block: a line offset from
// the block start and a 0-based whitespace column on that line.
type blockField struct {
	name   string
	offset int
	column int
}

// blockSchema is the layout of the per-boundary report block. Force lines
// carry total/inviscid/viscous in three adjacent columns starting at column;
// moment lines carry a single total value.
var blockSchema = struct {
	force  [3]blockField
	moment [3]blockField
}{
	force: [3]blockField{
		{name: "force-x", offset: 3, column: 2},
		{name: "force-y", offset: 4, column: 2},
		{name: "force-z", offset: 5, column: 2},
	},
	moment: [3]blockField{
		{name: "moment-x", offset: 6, column: 2},
		{name: "moment-y", offset: 7, column: 2},
		{name: "moment-z", offset: 8, column: 2},
	},
}

// AeroLoads accumulates raw force and moment contributions over the no-slip
// wall boundaries. Values are physical units, not coefficients.
type AeroLoads struct {
	ForceTotal    [3]float64
	ForceInviscid [3]float64
	ForceViscous  [3]float64
	Moment        [3]float64
}

// readForces parses the tail-aligned boundary blocks of the force/moment
// report and sums the contributions of the no-slip walls. The block region
// start is derived purely from the line count and the declared boundary
// count, so the count from the run log must be exact.
func readForces(lines []string, file string, bounds BoundarySet, log *zap.Logger) (AeroLoads, error) {
	var loads AeroLoads
	if bounds.Count == 0 {
		return loads, nil
	}
	start := len(lines) - blockLines*bounds.Count + 1
	if start < 0 {
		return loads, &MalformedLogError{File: file,
			Reason: "report tail shorter than " + strconv.Itoa(blockLines) + " lines per declared boundary"}
	}

	for ibc := 0; ibc < bounds.Count; ibc++ {
		if !bounds.IsNoSlip(ibc + 1) {
			continue
		}
		block := start + ibc*blockLines
		var tol, inv, vis, mom [3]float64
		for axis, f := range blockSchema.force {
			fields := strings.Fields(lines[block+f.offset])
			if len(fields) < f.column+3 {
				return loads, &MalformedLogError{File: file, Line: block + f.offset + 1,
					Reason: "short " + f.name + " line in boundary block " + strconv.Itoa(ibc+1)}
			}
			var err error
			if tol[axis], err = strconv.ParseFloat(fields[f.column], 64); err != nil {
				return loads, &MalformedLogError{File: file, Line: block + f.offset + 1,
					Reason: "non-numeric total " + f.name}
			}
			if inv[axis], err = strconv.ParseFloat(fields[f.column+1], 64); err != nil {
				return loads, &MalformedLogError{File: file, Line: block + f.offset + 1,
					Reason: "non-numeric inviscid " + f.name}
			}
			if vis[axis], err = strconv.ParseFloat(fields[f.column+2], 64); err != nil {
				return loads, &MalformedLogError{File: file, Line: block + f.offset + 1,
					Reason: "non-numeric viscous " + f.name}
			}
		}
		for axis, f := range blockSchema.moment {
			fields := strings.Fields(lines[block+f.offset])
			if len(fields) < f.column+1 {
				return loads, &MalformedLogError{File: file, Line: block + f.offset + 1,
					Reason: "short " + f.name + " line in boundary block " + strconv.Itoa(ibc+1)}
			}
			var err error
			if mom[axis], err = strconv.ParseFloat(fields[f.column], 64); err != nil {
				return loads, &MalformedLogError{File: file, Line: block + f.offset + 1,
					Reason: "non-numeric " + f.name}
			}
		}
		floats.Add(loads.ForceTotal[:], tol[:])
		floats.Add(loads.ForceInviscid[:], inv[:])
		floats.Add(loads.ForceViscous[:], vis[:])
		floats.Add(loads.Moment[:], mom[:])
		log.Debug("accumulated boundary loads",
			zap.Int("boundary", ibc+1),
			zap.Float64s("forceTotal", tol[:]),
			zap.Float64s("moment", mom[:]))
	}
	return loads, nil
}
