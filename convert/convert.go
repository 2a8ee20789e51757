// Package convert drives the external converttoCGNS binary that turns a
// CFD++ binary solution (pltosout.bin) into a CGNS file Tecplot can load.
package convert

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/aerokits/cfdpp/parser"
)

// SolutionFile is the fixed-name binary solution the converter consumes.
const SolutionFile = "pltosout.bin"

// converterLog receives the converter's combined output inside the case dir.
const converterLog = "convertToCgns.log"

// CreateCGNS runs converttoCGNS inside the case directory, producing cgnsFile
// from pltosout.bin. Converter output is captured in convertToCgns.log. Fails
// with MissingInputError when the case directory or solution file is absent.
func CreateCGNS(caseName, cgnsFile string) error {
	if _, err := os.Stat(caseName); err != nil {
		return &parser.MissingInputError{Path: caseName}
	}
	if _, err := os.Stat(filepath.Join(caseName, SolutionFile)); err != nil {
		return &parser.MissingInputError{Path: filepath.Join(caseName, SolutionFile)}
	}

	logFile, err := os.Create(filepath.Join(caseName, converterLog))
	if err != nil {
		return err
	}
	defer logFile.Close()

	cmd := exec.Command("converttoCGNS", cgnsFile, "1", "1")
	cmd.Dir = caseName
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("converttoCGNS failed for %s: %w", caseName, err)
	}
	return nil
}
