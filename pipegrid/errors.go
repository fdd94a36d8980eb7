package pipegrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is wrapped by every structural error Build returns.
	ErrInvalidInput = errors.New("pipegrid: invalid input")
	// ErrTooFewRows indicates fewer than MinSize rows.
	ErrTooFewRows = errors.New("pipegrid: too few rows")
	// ErrTooFewColumns indicates fewer than MinSize columns.
	ErrTooFewColumns = errors.New("pipegrid: too few columns")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrNoStart indicates the grid has no Start cell.
	ErrNoStart = errors.New("pipegrid: no start tile")
	// ErrMultipleStarts indicates more than one Start cell.
	ErrMultipleStarts = errors.New("pipegrid: too many start tiles")
	// ErrUnresolvedStart indicates the Start cell is not jointed to exactly two neighbors.
	ErrUnresolvedStart = errors.New("pipegrid: start tile does not resolve to a pipe")
)

// InputError describes why Build rejected its input.
// Row is the offending row index, or -1 when the problem is grid-wide.
type InputError struct {
	Row    int
	Reason string
	Cause  error
}

func (e *InputError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%v: %s", ErrInvalidInput, e.Reason)
	}
	return fmt.Sprintf("%v at row %d: %s", ErrInvalidInput, e.Row, e.Reason)
}

// Unwrap exposes both ErrInvalidInput and the specific cause to errors.Is.
func (e *InputError) Unwrap() []error {
	return []error{ErrInvalidInput, e.Cause}
}

func invalid(row int, cause error, format string, args ...any) *InputError {
	return &InputError{Row: row, Reason: fmt.Sprintf(format, args...), Cause: cause}
}
