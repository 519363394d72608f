// Package paramfile reads the two external inputs of a configuration build:
// zone definition files and lambda (coefficient) table files. Both are read
// once, before the encoder starts, and any failure aborts the build.
package paramfile

import "fmt"

// ResourceError reports a zone or lambda file that could not be opened,
// read or understood.
type ResourceError struct {
	Path string
	Op   string
	// Line is the 1-based line of a parse failure, or 0.
	Line int
	Err  error
}

func (e *ResourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s:%d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
