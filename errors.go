package fakebook

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure kinds a build can hit.
var (
	ErrDirectoryNotFound = errors.New("fakebook: input directory not found")
	ErrNoInputFiles      = errors.New("fakebook: no PDF files found")
	ErrUnreadablePDF     = errors.New("fakebook: unreadable PDF")
	ErrCoverImage        = errors.New("fakebook: unusable cover image")
	ErrOutputWrite       = errors.New("fakebook: cannot write output")
)

// BookError represents an error that occurred during a specific build
// operation. It wraps an underlying error and, where applicable, names the
// offending file path.
type BookError struct {
	Op   string // operation name, e.g. "Discover", "Build", "Write"
	Path string // file or directory involved, if any
	Err  error  // underlying error
}

func (e *BookError) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("fakebook.%s: %s: %v", e.Op, e.Path, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("fakebook.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fakebook.%s: unknown error", e.Op)
}

func (e *BookError) Unwrap() error {
	return e.Err
}

// newBookError creates a BookError wrapping kind with operation and path
// context. A non-nil cause is flattened into the message while kind stays on
// the unwrap chain for errors.Is.
func newBookError(op, path string, kind, cause error) *BookError {
	if cause != nil {
		return &BookError{Op: op, Path: path, Err: fmt.Errorf("%w: %v", kind, cause)}
	}
	return &BookError{Op: op, Path: path, Err: kind}
}
