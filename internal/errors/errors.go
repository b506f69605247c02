// Package errors provides sentinel errors and helpers for the movegen
// library. It defines the common failure conditions of the application
// edges (position loading, board bookkeeping, configuration) while the
// validation and generation hot path stays error-free by design.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a coordinate outside the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrSquareOccupied indicates a placement onto an occupied square.
	ErrSquareOccupied = errors.New("square already occupied")

	// ErrEmptySquare indicates an operation that requires an occupant.
	ErrEmptySquare = errors.New("square is empty")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
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
