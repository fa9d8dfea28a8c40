// SPDX-License-Identifier: MIT

package edgelist

import (
	"errors"
	"fmt"
)

// Sentinel errors of the loader and writers.
var (
	ErrMalformedLine   = errors.New("edgelist: line must hold 2 (header) or 3 (edge) integers")
	ErrBadToken        = errors.New("edgelist: token is not a valid integer")
	ErrMissingHeader   = errors.New("edgelist: missing \"n m\" header")
	ErrDuplicateHeader = errors.New("edgelist: header given more than once")
	ErrNilResult       = errors.New("edgelist: nil result")
	ErrNilGraph        = errors.New("edgelist: nil graph")
)

// LineError ties a loader error to its 1-based input line.
type LineError struct {
	Line int
	Err  error
}

// Error implements error.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying sentinel to errors.Is.
func (e *LineError) Unwrap() error { return e.Err }
