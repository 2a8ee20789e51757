package convert

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerokits/cfdpp/parser"
)

func TestCreateCGNSMissingCaseDirectory(t *testing.T) {
	err := CreateCGNS(filepath.Join(t.TempDir(), "nonexistent"), "solution.cgns")
	var mi *parser.MissingInputError
	require.True(t, errors.As(err, &mi))
}

func TestCreateCGNSMissingSolutionFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sample")
	require.NoError(t, os.Mkdir(name, 0755))

	err := CreateCGNS(name, "solution.cgns")
	var mi *parser.MissingInputError
	require.True(t, errors.As(err, &mi))
	assert.Contains(t, mi.Path, SolutionFile)
}
