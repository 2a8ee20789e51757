// Package parser extracts aerodynamic performance data from the text output
// of a CFD++ run directory: reference conditions and boundary metadata from
// the run log, geometry reference values from infout1f.inp/.out, and
// per-boundary forces and moments from mcfd.info1.
package parser

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Mode selects how the readers treat recognized keys that never appear.
type Mode uint8

const (
	// ModeLenient leaves recognized-but-absent keys at their zero values,
	// tolerating older and newer solver log variants.
	ModeLenient Mode = iota
	// ModeStrict reports recognized-but-absent keys as a MissingKeyError.
	ModeStrict
)

// Parser extracts the result surface of one case directory. Construct with
// New, call Process once; the returned Result is immutable afterwards.
// Re-running Process is idempotent, the case directory is only read.
type Parser struct {
	c    *Case
	mode Mode
	log  *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithMode selects lenient or strict key handling. Default is ModeLenient.
func WithMode(m Mode) Option {
	return func(p *Parser) { p.mode = m }
}

// WithLogger installs a structured logger. Default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(p *Parser) { p.log = log }
}

// New validates the case directory and its required artifacts. It fails with
// MissingInputError before any parsing happens.
func New(caseName string, opts ...Option) (*Parser, error) {
	c := NewCase(caseName)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p := &Parser{c: c, mode: ModeLenient, log: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Case returns the validated case identity.
func (p *Parser) Case() *Case {
	return p.c
}

// Result is the extraction surface consumed by the report writer and the
// visualization-macro generator.
type Result struct {
	CaseName string
	CLDriven bool
	Ref      ReferenceState
	Bounds   BoundarySet
	Geom     GeometryReference
	Loads    AeroLoads
}

// Coefficients recomputes the normalized view from the stored reference
// state, geometry and loads.
func (r *Result) Coefficients() Coefficients {
	return ComputeCoefficients(r.Ref, r.Geom, r.Loads)
}

// Process runs the extraction steps in dependency order: reference
// conditions, boundary classification, run-mode/geometry resolution, then
// force/moment accumulation. Any structural failure aborts the whole
// extraction; no partial result is returned.
func (p *Parser) Process() (*Result, error) {
	logLines, err := readLines(p.c.LogFile)
	if err != nil {
		return nil, err
	}

	ref, err := readReferenceState(logLines, p.c.LogFile, p.mode, p.log)
	if err != nil {
		return nil, err
	}
	bounds, err := readBoundarySet(logLines, p.c.LogFile, p.log)
	if err != nil {
		return nil, err
	}

	clDriven := hasCLDriverControls(logLines)
	geomFile, err := p.c.resolveGeometrySource(clDriven)
	if err != nil {
		return nil, err
	}
	geomLines, err := readLines(geomFile)
	if err != nil {
		return nil, err
	}
	geom, err := readGeometry(geomLines, geomFile, p.mode, p.log)
	if err != nil {
		return nil, err
	}

	infoLines, err := readLines(p.c.Info1File)
	if err != nil {
		return nil, err
	}
	loads, err := readForces(infoLines, p.c.Info1File, bounds, p.log)
	if err != nil {
		return nil, err
	}

	p.log.Info("case processed",
		zap.String("case", p.c.Name),
		zap.Bool("clDriven", clDriven),
		zap.Int("boundaries", bounds.Count),
		zap.Int("noSlipWalls", len(bounds.NoSlipWalls)))
	return &Result{
		CaseName: p.c.Name,
		CLDriven: clDriven,
		Ref:      ref,
		Bounds:   bounds,
		Geom:     geom,
		Loads:    loads,
	}, nil
}

// WingBoundaries returns the boundary ids tagged WINGUPPER and WINGLOWER in
// the run log, used to pick surface zones for visualization macros. found is
// false unless both tags are present.
func (p *Parser) WingBoundaries() (upper, lower int, found bool, err error) {
	lines, err := readLines(p.c.LogFile)
	if err != nil {
		return 0, 0, false, err
	}
	var hasUpper, hasLower bool
	for i, line := range lines {
		tag := ""
		switch {
		case strings.Contains(line, "WINGUPPER"):
			tag = "WINGUPPER"
		case strings.Contains(line, "WINGLOWER"):
			tag = "WINGLOWER"
		default:
			continue
		}
		fields := strings.Fields(line)
		id, perr := strconv.Atoi(fields[0])
		if perr != nil {
			return 0, 0, false, &MalformedLogError{File: p.c.LogFile, Line: i + 1,
				Reason: "non-integer boundary id on " + tag + " line"}
		}
		if tag == "WINGUPPER" {
			upper, hasUpper = id, true
		} else {
			lower, hasLower = id, true
		}
	}
	return upper, lower, hasUpper && hasLower, nil
}
