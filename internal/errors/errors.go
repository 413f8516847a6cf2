// Package errors provides sentinel errors and error types for the board core.
// It defines the conditions a board mutation can report and a structured
// error type that preserves context while allowing error inspection with
// errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for board operations.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOverflow indicates a piece list is already at its maximum population.
	ErrOverflow = errors.New("piece list overflow")

	// ErrOccupied indicates a placement onto a square that is not empty.
	ErrOccupied = errors.New("square occupied")

	// ErrEmptySquare indicates a removal or move from a square with no piece.
	ErrEmptySquare = errors.New("empty square")

	// ErrOutOfBounds indicates a square outside the 64 playable squares.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidPiece indicates a piece with no kind or an unknown kind/colour.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidPlacement indicates a malformed FEN piece placement field.
	ErrInvalidPlacement = errors.New("invalid piece placement")

	// ErrMissingKing indicates a colour does not have exactly one king.
	ErrMissingKing = errors.New("missing king")

	// ErrInconsistent indicates the occupancy views and piece lists disagree.
	ErrInconsistent = errors.New("inconsistent board state")
)

// BoardError wraps errors with the context of the board operation that
// failed. It implements the error interface and supports unwrapping via
// errors.Is() and errors.As().
type BoardError struct {
	Err    error  // The underlying error
	Op     string // Operation name: "place", "remove", "move", ...
	Square string // Square in algebraic form (if applicable)
	Piece  string // Piece involved (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *BoardError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Square != "" {
		parts = append(parts, e.Square)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	context := strings.Join(parts, " ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "board error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the BoardError wrapper.
func (e *BoardError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
