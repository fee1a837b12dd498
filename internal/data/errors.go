package data

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingSource is returned when a referenced input does not exist.
// It matches os.ErrNotExist under errors.Is.
var ErrMissingSource = fmt.Errorf("data source does not exist: %w", os.ErrNotExist)

// ShapeError reports input that cannot be turned into a series or grid.
// Row is 1-based over data rows (the header is not counted); 0 means the
// problem is not tied to a row.
type ShapeError struct {
	Source string
	Field  string
	Row    int
	Reason string
}

func (e *ShapeError) Error() string {
	msg := e.Source + ": "
	if e.Row > 0 {
		msg += fmt.Sprintf("row %d: ", e.Row)
	}
	if e.Field != "" {
		msg += fmt.Sprintf("field %q: ", e.Field)
	}
	return msg + e.Reason
}

func missing(path string) error {
	return fmt.Errorf("%w: %s", ErrMissingSource, path)
}

// IsShapeError reports whether err is (or wraps) a *ShapeError.
func IsShapeError(err error) bool {
	var se *ShapeError
	return errors.As(err, &se)
}
