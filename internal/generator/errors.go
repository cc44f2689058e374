package generator

import (
	"errors"
	"io/fs"
)

// ErrStale is returned when generated sources no longer match their inputs.
var ErrStale = errors.New("generated sources are out of date")

// FileAccessError reports a failure to open, read, write or close one of the
// files taking part in a conversion.
type FileAccessError struct {
	// Op describes the failed step, e.g. "open input" or "write output".
	Op string
	// Path is the file the step was applied to.
	Path string
	// Err is the underlying I/O error.
	Err error
}

func (e *FileAccessError) Error() string {
	cause := e.Err
	// *fs.PathError repeats the path; keep only its cause.
	var pe *fs.PathError
	if errors.As(cause, &pe) && pe.Path == e.Path {
		cause = pe.Err
	}
	return e.Op + " " + e.Path + ": " + cause.Error()
}

func (e *FileAccessError) Unwrap() error { return e.Err }
