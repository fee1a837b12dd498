package model

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySeries = errors.New("price series is empty")
	ErrEmptyGrid   = errors.New("grid must have at least one row and one column")
)

// RaggedRowError reports a grid row whose length differs from the declared
// column count. Row is 1-based.
type RaggedRowError struct {
	Row  int
	Want int
	Got  int
}

func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("row %d must have exactly %d elements, got %d", e.Row, e.Want, e.Got)
}
