// Package errors provides sentinel errors and error types for the chessvar tool.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidSquare indicates a malformed square label.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates the rules of the variant.
	// Every move rejection reason below wraps it.
	ErrIllegalMove = errors.New("illegal move")

	// ErrEmptySquare indicates there is no piece on the source square.
	ErrEmptySquare = fmt.Errorf("%w: no piece on source square", ErrIllegalMove)

	// ErrGameOver indicates the game has already finished.
	ErrGameOver = fmt.Errorf("%w: game is over", ErrIllegalMove)

	// ErrWrongTurn indicates the piece does not belong to the side to move.
	ErrWrongTurn = fmt.Errorf("%w: not this side's turn", ErrIllegalMove)

	// ErrUnreachable indicates the destination is outside the piece's move set.
	ErrUnreachable = fmt.Errorf("%w: destination not reachable", ErrIllegalMove)

	// ErrOwnPiece indicates the destination holds a piece of the mover's colour.
	ErrOwnPiece = fmt.Errorf("%w: destination holds own piece", ErrIllegalMove)

	// ErrKingExposed indicates the move would leave a king attacked.
	ErrKingExposed = fmt.Errorf("%w: king would be attacked", ErrIllegalMove)

	// ErrInvalidFEN indicates a malformed position string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates a general move script parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move rejection with its context: the game it belongs
// to, the ply it would have been, and the requested squares. It implements
// the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err  error  // The underlying error
	Game string // Game label (if known)
	Ply  int    // 1-based ply the move would have been (0 if not applicable)
	From string // Source label as given
	To   string // Destination label as given
	Line int    // Line number in source script (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Game != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Game, e.Line))
		} else {
			parts = append(parts, e.Game)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	if e.From != "" || e.To != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.From+"-"+e.To))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with file location context.
type ParseError struct {
	Err      error  // The underlying error
	File     string // Source file name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" || e.Line > 0 {
		loc := e.File
		if loc == "" {
			loc = "line"
		}
		if e.Line > 0 {
			if e.File != "" {
				loc += fmt.Sprintf(":%d", e.Line)
			} else {
				loc += fmt.Sprintf(" %d", e.Line)
			}
			if e.Column > 0 {
				loc += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
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
