package parser

import (
	"fmt"
	"strings"
)

// MissingInputError reports a required case artifact that does not exist.
// Extraction never proceeds past a missing artifact.
type MissingInputError struct {
	Path string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("missing input: %s", e.Path)
}

// MalformedLogError reports a violated structural assumption in a solver
// output file: a marker too close to the file start, a short force-report
// tail, or a line missing a positionally required field.
type MalformedLogError struct {
	File   string
	Line   int // 1-based, 0 when the error is not tied to one line
	Reason string
}

func (e *MalformedLogError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.File, e.Reason)
}

// MissingKeyError reports recognized keys that never appeared in a file. It
// is only produced in ModeStrict; ModeLenient leaves the fields zeroed.
type MissingKeyError struct {
	File string
	Keys []string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: missing keys: %s", e.File, strings.Join(e.Keys, ", "))
}
