package parser

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	boundaryCountToken = "mbcons"
	noSlipMarker       = "# No-slip adiabatic wall"
)

// BoundarySet records how many boundaries the run declares and which 1-based
// indices are no-slip viscous walls. Only no-slip walls carry aerodynamic
// load; inviscid and symmetry boundaries are excluded from accumulation.
type BoundarySet struct {
	Count       int
	NoSlipWalls []int
}

// IsNoSlip reports whether the 1-based boundary index is a no-slip wall.
func (bs BoundarySet) IsNoSlip(index int) bool {
	for _, w := range bs.NoSlipWalls {
		if w == index {
			return true
		}
	}
	return false
}

// readBoundarySet parses the total boundary count and the no-slip wall
// indices from the run log. The count is the third field of the first
// three-field line containing the count token. Each no-slip wall is announced
// by a marker line whose boundary index sits in the second field of the line
// exactly two lines above it.
func readBoundarySet(lines []string, file string, log *zap.Logger) (BoundarySet, error) {
	var bs BoundarySet
	for i, line := range lines {
		if !strings.Contains(line, boundaryCountToken) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			continue
		}
		n, err := strconv.Atoi(fields[2])
		if err != nil {
			return bs, &MalformedLogError{File: file, Line: i + 1,
				Reason: "non-integer boundary count"}
		}
		if n < 0 {
			return bs, &MalformedLogError{File: file, Line: i + 1,
				Reason: "negative boundary count"}
		}
		bs.Count = n
		break
	}

	for i, line := range lines {
		if !strings.Contains(line, noSlipMarker) {
			continue
		}
		if i < 2 {
			return bs, &MalformedLogError{File: file, Line: i + 1,
				Reason: "no-slip wall marker within two lines of file start"}
		}
		fields := strings.Fields(lines[i-2])
		if len(fields) < 2 {
			return bs, &MalformedLogError{File: file, Line: i - 1,
				Reason: "no boundary index two lines above no-slip wall marker"}
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return bs, &MalformedLogError{File: file, Line: i - 1,
				Reason: "non-integer boundary index above no-slip wall marker"}
		}
		if index < 1 || index > bs.Count {
			return bs, &MalformedLogError{File: file, Line: i - 1,
				Reason: "no-slip wall index " + strconv.Itoa(index) + " outside [1," + strconv.Itoa(bs.Count) + "]"}
		}
		bs.NoSlipWalls = append(bs.NoSlipWalls, index)
	}

	log.Debug("boundary set",
		zap.Int("count", bs.Count),
		zap.Ints("noSlipWalls", bs.NoSlipWalls))
	return bs, nil
}
