package rename

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTimestamp means metadata was readable but held no parseable
	// creation time under any of the extractor's candidate keys.
	ErrNoTimestamp = errors.New("no usable creation time in metadata")

	// ErrUnsupported means no extractor claims the file's extension.
	ErrUnsupported = errors.New("no extractor for this file type")

	// ErrFiltered means an extractor claimed the file but its metadata
	// did not satisfy the active filters.
	ErrFiltered = errors.New("metadata does not match filters")
)

// PostProcessError reports a failed post-rename step. The rename itself
// already happened; Path is the file's new location.
type PostProcessError struct {
	Path string
	Err  error
}

func (e *PostProcessError) Error() string {
	return fmt.Sprintf("%s: post-processing after rename: %v", e.Path, e.Err)
}

func (e *PostProcessError) Unwrap() error {
	return e.Err
}
