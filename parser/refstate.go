package parser

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Freestream air constants used to derive density and Mach number.
const (
	GasConstant = 287.0
	Gamma       = 1.4
)

// ReferenceState holds the freestream conditions read from the run log plus
// the quantities derived from them. Density and Mach are always recomputed
// from pressure, temperature and velocity, never read from a file.
type ReferenceState struct {
	Pressure    float64
	Temperature float64
	Velocity    [3]float64
	Vmag        float64
	Density     float64
	Mach        float64
}

// refTokens maps a run-log token to the index of the value it carries:
// 0 pressure, 1 temperature, 2..4 velocity components.
var refTokens = map[string]int{
	"aero_pres": 0,
	"aero_temp": 1,
	"aero_u":    2,
	"aero_v":    3,
	"aero_w":    4,
}

// readReferenceState scans every line of the run log for the reference-value
// tokens. A line carries a value only when it splits into exactly three
// fields; the third field is the value, the first two are label noise. The
// last occurrence of a token wins. Tokens that never appear leave their field
// at zero in ModeLenient and fail with MissingKeyError in ModeStrict.
func readReferenceState(lines []string, file string, mode Mode, log *zap.Logger) (ReferenceState, error) {
	var (
		ref  ReferenceState
		vals [5]float64
		seen [5]bool
	)
	for i, line := range lines {
		for token, slot := range refTokens {
			if !strings.Contains(line, token) {
				continue
			}
			fields := strings.Fields(line)
			if len(fields) != 3 {
				continue
			}
			v, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return ref, &MalformedLogError{File: file, Line: i + 1,
					Reason: "non-numeric value for " + token}
			}
			vals[slot] = v
			seen[slot] = true
		}
	}
	if mode == ModeStrict {
		var missing []string
		for token, slot := range refTokens {
			if !seen[slot] {
				missing = append(missing, token)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			return ref, &MissingKeyError{File: file, Keys: missing}
		}
	}

	ref.Pressure = vals[0]
	ref.Temperature = vals[1]
	ref.Velocity = [3]float64{vals[2], vals[3], vals[4]}
	ref.Vmag = floats.Norm(ref.Velocity[:], 2)
	ref.Density = ref.Pressure / (GasConstant * ref.Temperature)
	ref.Mach = ref.Vmag / math.Sqrt(Gamma*GasConstant*ref.Temperature)

	log.Debug("reference state",
		zap.Float64("pressure", ref.Pressure),
		zap.Float64("temperature", ref.Temperature),
		zap.Float64("vmag", ref.Vmag),
		zap.Float64("density", ref.Density),
		zap.Float64("mach", ref.Mach))
	return ref, nil
}
