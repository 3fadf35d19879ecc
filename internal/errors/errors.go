// Package errors provides sentinel errors and error types for the chess
// strategies module. It defines common error conditions and structured error
// types that preserve context while allowing error inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrNoMoves indicates a strategy was asked to move in a position
	// where the side to move has no pseudo-legal moves.
	ErrNoMoves = errors.New("no moves available")

	// ErrBoardMismatch indicates a move was applied to or reverted from a
	// board it was not generated for. It is raised through panic because
	// a corrupted board invalidates everything searched afterwards.
	ErrBoardMismatch = errors.New("move does not match board")

	// ErrIllegalMove indicates a move the move generator does not offer in
	// the position it was played from, or a move played after the game ended.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnknownStrategy indicates a strategy name that is not registered.
	ErrUnknownStrategy = errors.New("unknown strategy")

	// ErrInvalidDepth indicates a malformed or negative search depth.
	ErrInvalidDepth = errors.New("invalid search depth")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError wraps errors with game context, including the game id,
// ply position, and move information. It implements the error interface
// and supports unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err      error  // The underlying error
	GameID   string // Identifier of the game (empty if unknown)
	PlyNum   int    // Ply number where error occurred (0 if not applicable)
	Player   string // Name of the strategy that was to move (if applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.GameID != "" {
		parts = append(parts, fmt.Sprintf("game %s", e.GameID))
	} else {
		parts = append(parts, "game")
	}

	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}

	if e.Player != "" {
		parts = append(parts, fmt.Sprintf("player %s", e.Player))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// SpecError reports a strategy specification that could not be parsed.
type SpecError struct {
	Err  error  // The underlying error
	Spec string // The specification text as given
}

// Error returns the specification and the reason it was rejected.
func (e *SpecError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("strategy %q: %v", e.Spec, e.Err)
	}
	return fmt.Sprintf("strategy %q", e.Spec)
}

// Unwrap returns the underlying error.
func (e *SpecError) Unwrap() error {
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

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
