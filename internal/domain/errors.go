package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when construction parameters are out of range.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrDivisionByZero is returned when a sentence has no whitespace-delimited words.
	ErrDivisionByZero = errors.New("division by zero")
)

// RowError reports a failure tied to one input sentence.
type RowError struct {
	Index int
	Text  string
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sentence %d (%q): %v", e.Index, e.Text, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
