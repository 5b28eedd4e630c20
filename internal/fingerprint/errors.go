package fingerprint

import "errors"

// Sentinel errors for the build-time fingerprinter.
var (
	// ErrInputDirectoryMissing is returned when the classes root does not
	// exist or is not a directory.
	ErrInputDirectoryMissing = errors.New("fingerprint: input directory missing")

	// ErrNoInputs is returned when the classes root contains zero files
	// surviving the name filter and exclusion patterns.
	ErrNoInputs = errors.New("fingerprint: no inputs after filtering")

	// ErrOutputWriteFailure is returned when a result file could not be
	// written to the output directory.
	ErrOutputWriteFailure = errors.New("fingerprint: output write failure")
)

// ReadFailureError wraps a read failure for a specific file, preserving the
// path for diagnostics.
type ReadFailureError struct {
	Path string
	Err  error
}

func (e *ReadFailureError) Error() string {
	return "fingerprint: read failure for " + e.Path + ": " + e.Err.Error()
}

func (e *ReadFailureError) Unwrap() error {
	return e.Err
}
