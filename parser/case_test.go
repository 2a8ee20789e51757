package parser

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCaseNamingConvention(t *testing.T) {
	c := NewCase("sample")
	assert.Equal(t, filepath.Join("sample", "sample.log"), c.LogFile)
	assert.Equal(t, filepath.Join("sample", "mcfd.info1"), c.Info1File)
	assert.Equal(t, filepath.Join("sample", "infout1f.inp"), c.InfInFile)
	assert.Equal(t, filepath.Join("sample", "infout1f.out"), c.InfOutFile)

	// The log carries the directory's own name even for nested paths.
	c = NewCase(filepath.Join("runs", "m085a2"))
	assert.Equal(t, filepath.Join("runs", "m085a2", "m085a2.log"), c.LogFile)
}

func TestValidateAcceptsEitherGeometryFile(t *testing.T) {
	for _, geomFile := range []string{"infout1f.inp", "infout1f.out"} {
		dir := t.TempDir()
		name := filepath.Join(dir, "sample")
		require.NoError(t, os.Mkdir(name, 0755))
		for _, f := range []string{"sample.log", "mcfd.info1", geomFile} {
			require.NoError(t, os.WriteFile(filepath.Join(name, f), []byte("x\n"), 0644))
		}
		assert.NoError(t, NewCase(name).Validate())
	}
}

func TestValidateMissingLog(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "sample")
	require.NoError(t, os.Mkdir(name, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(name, "mcfd.info1"), []byte("x\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(name, "infout1f.inp"), []byte("x\n"), 0644))

	err := NewCase(name).Validate()
	var mi *MissingInputError
	require.True(t, errors.As(err, &mi))
	assert.Contains(t, mi.Path, "sample.log")
}

func TestReadLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644))
	lines, err := readLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, lines)

	_, err = readLines(filepath.Join(t.TempDir(), "missing.txt"))
	var mi *MissingInputError
	assert.True(t, errors.As(err, &mi))
}
