package parser

import (
	"bufio"
	"os"
	"path/filepath"
)

// Case identifies one CFD++ run directory and the fixed-name artifacts inside
// it. The naming convention is solver-imposed: the run log carries the
// directory's own name, the force/moment report and geometry files have fixed
// names.
type Case struct {
	Name       string
	LogFile    string // <name>/<name>.log
	Info1File  string // <name>/mcfd.info1
	InfInFile  string // <name>/infout1f.inp
	InfOutFile string // <name>/infout1f.out
}

func NewCase(name string) *Case {
	return &Case{
		Name:       name,
		LogFile:    filepath.Join(name, filepath.Base(name)+".log"),
		Info1File:  filepath.Join(name, "mcfd.info1"),
		InfInFile:  filepath.Join(name, "infout1f.inp"),
		InfOutFile: filepath.Join(name, "infout1f.out"),
	}
}

// Validate confirms the run directory, the run log and the force/moment
// report exist, and that at least one of the two geometry files is present.
// The geometry source is resolved later, once the run mode is known.
func (c *Case) Validate() error {
	if !exists(c.Name) {
		return &MissingInputError{Path: c.Name}
	}
	for _, path := range []string{c.LogFile, c.Info1File} {
		if !exists(path) {
			return &MissingInputError{Path: path}
		}
	}
	if !exists(c.InfInFile) && !exists(c.InfOutFile) {
		return &MissingInputError{Path: c.InfInFile + " or " + c.InfOutFile}
	}
	return nil
}

// resolveGeometrySource picks the geometry file for the detected run mode: a
// CL-driven run iterates angle of attack internally and writes the converged
// values to infout1f.out, a fixed-angle run keeps them in infout1f.inp.
func (c *Case) resolveGeometrySource(clDriven bool) (string, error) {
	path := c.InfInFile
	if clDriven {
		path = c.InfOutFile
	}
	if !exists(path) {
		return "", &MissingInputError{Path: path}
	}
	return path, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// readLines loads a whole solver file into memory. The inputs are small (tens
// of kilobytes to low megabytes) and several readers need random line access.
func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingInputError{Path: path}
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
