// SPDX-License-Identifier: MIT

package console

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension marks a missing, non-integer or out-of-range matrix side.
	ErrInvalidDimension = errors.New("console: invalid dimension")

	// ErrInvalidElement marks a missing, non-numeric or non-finite matrix value.
	ErrInvalidElement = errors.New("console: invalid element")
)

// DimensionError describes a rejected matrix side.
type DimensionError struct {
	Token string // offending token; empty when input ended
	Max   int    // accepted upper bound
	Cause error  // parse or read error, may be nil
}

func (e *DimensionError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v: missing (want 1..%d)", ErrInvalidDimension, e.Max)
	}

	return fmt.Sprintf("%v: %q (want 1..%d)", ErrInvalidDimension, e.Token, e.Max)
}

// Unwrap exposes ErrInvalidDimension and the underlying cause to errors.Is.
func (e *DimensionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidDimension}
	}

	return []error{ErrInvalidDimension, e.Cause}
}

// ElementError describes a rejected matrix value. Row and Col are zero-based.
type ElementError struct {
	Row, Col int
	Token    string // offending token; empty when input ended
	Cause    error
}

func (e *ElementError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v: row %d, column %d: missing", ErrInvalidElement, e.Row+1, e.Col+1)
	}

	return fmt.Sprintf("%v: row %d, column %d: %q", ErrInvalidElement, e.Row+1, e.Col+1, e.Token)
}

// Unwrap exposes ErrInvalidElement and the underlying cause to errors.Is.
func (e *ElementError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrInvalidElement}
	}

	return []error{ErrInvalidElement, e.Cause}
}

// IsInputError reports whether err was caused by bad user input.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidDimension) || errors.Is(err, ErrInvalidElement)
}
