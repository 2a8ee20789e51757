// Package report appends per-case aerodynamic data rows to a persisted CSV
// table, one row per extraction.
package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/aerokits/cfdpp/parser"
)

// header matches the established aerodynamic-data sheet layout. The induced/
// wave/profile drag decomposition is not produced by the extractor and is
// written as N/A.
var header = []string{
	"Case", "Ma", "Alpha", "Cl", "Cd", "L/D", "Cd_inv", "Cd_vis", "Cm",
	"Cd_ind", "Cd_wav", "Cd_pro", "WingRootBendingMoment", "CenterOfPressure",
}

// Row is one case's entry in the table.
type Row struct {
	Case                  string
	Mach                  float64
	Alpha                 float64
	Cl                    float64
	Cd                    float64
	LiftDrag              float64
	CdInviscid            float64
	CdViscous             float64
	Cm                    float64
	WingRootBendingMoment float64
	CenterOfPressure      float64
}

// FromResult flattens an extraction result into a table row.
func FromResult(res *parser.Result) Row {
	c := res.Coefficients()
	return Row{
		Case:             res.CaseName,
		Mach:             res.Ref.Mach,
		Alpha:            res.Geom.Alpha,
		Cl:               c.Lift.Total,
		Cd:               c.Drag.Total,
		LiftDrag:         c.LiftDrag,
		CdInviscid:       c.Drag.Inviscid,
		CdViscous:        c.Drag.Viscous,
		Cm:               c.Moment,
		CenterOfPressure: c.CenterOfPressure,
	}
}

// Writer appends rows to the table at Path, creating it with a header row
// when absent.
type Writer struct {
	Path string
}

func NewWriter(path string) *Writer {
	return &Writer{Path: path}
}

// Append writes one row. The file is opened, written and closed per call so
// repeated batch runs can interleave safely.
func (w *Writer) Append(row Row) error {
	writeHeader := !fileExists(w.Path)
	file, err := os.OpenFile(w.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if writeHeader {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	record := []string{
		row.Case,
		fmtF(row.Mach),
		fmtF(row.Alpha),
		fmtF(row.Cl),
		fmtF(row.Cd),
		fmtF(row.LiftDrag),
		fmtF(row.CdInviscid),
		fmtF(row.CdViscous),
		fmtF(row.Cm),
		"N/A",
		"N/A",
		"N/A",
		fmtF(row.WingRootBendingMoment),
		fmtF(row.CenterOfPressure),
	}
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func fmtF(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
