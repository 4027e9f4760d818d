package squad

import (
	"errors"
	"fmt"
)

// ErrVersionMismatch marks a dataset whose version differs from the expected one.
// It is reported but never stops processing.
var ErrVersionMismatch = errors.New("dataset version mismatch")

// ErrMalformed marks input that is not valid JSON or violates the file schema.
var ErrMalformed = errors.New("malformed input")

// VersionWarning describes a dataset version mismatch.
type VersionWarning struct {
	Expected string
	Got      string
}

// Error renders the warning in the wording of the official evaluation script.
func (w *VersionWarning) Error() string {
	return fmt.Sprintf("evaluation expects v-%s, but got dataset with v-%s", w.Expected, w.Got)
}

// Unwrap lets callers match the warning with errors.Is.
func (w *VersionWarning) Unwrap() error {
	return ErrVersionMismatch
}

// MalformedError reports a file that failed decoding or schema validation.
type MalformedError struct {
	Path   string
	Reason string
}

// Error returns a readable message for malformed input.
func (err *MalformedError) Error() string {
	return fmt.Sprintf("%s: %s", err.Path, err.Reason)
}

// Unwrap exposes ErrMalformed.
func (err *MalformedError) Unwrap() error {
	return ErrMalformed
}
