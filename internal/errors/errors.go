// Package errors holds the rejection reasons of the legality filter and the
// error types that carry record context. All of them unwrap to a sentinel, so
// callers test with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotYourPiece indicates the source square is empty or holds an opponent piece.
	ErrNotYourPiece = errors.New("not your piece")

	// ErrOwnSquareOccupied indicates the destination holds a friendly piece.
	ErrOwnSquareOccupied = errors.New("destination occupied by own piece")

	// ErrInvalidPieceMove indicates the move breaks the moving piece's geometry.
	ErrInvalidPieceMove = errors.New("invalid piece move")

	// ErrCastlingUnavailable indicates one of the castling preconditions failed.
	ErrCastlingUnavailable = errors.New("castling unavailable")

	// ErrExposesOwnKing indicates the move leaves the mover's king in check.
	ErrExposesOwnKing = errors.New("move exposes own king")

	// ErrInsufficientHistory indicates an undo beyond the recorded moves.
	ErrInsufficientHistory = errors.New("insufficient history")

	// ErrMalformedNotation indicates square or move text that does not parse.
	ErrMalformedNotation = errors.New("malformed notation")

	// ErrUnparseableMove indicates no piece can legally make the decoded move.
	ErrUnparseableMove = errors.New("unparseable move")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a legality rejection with the move it applies to.
type MoveError struct {
	Err    error  // One of the rejection sentinels
	From   string // Source square in algebraic notation
	To     string // Destination square in algebraic notation
	Detail string // Kind-specific explanation, e.g. "invalid move for knight"
}

// Error returns "e2e5: invalid piece move: invalid move for pawn".
func (e *MoveError) Error() string {
	var b strings.Builder
	if e.From != "" || e.To != "" {
		b.WriteString(e.From)
		b.WriteString(e.To)
		b.WriteString(": ")
	}
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("illegal move")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// GameError ties a replay failure to the ply that caused it.
type GameError struct {
	Err      error
	PlyNum   int    // 1-based ply, 0 when unknown
	MoveText string // Notation as written in the record
	File     string
	Line     int
}

// location renders "file:line" with whichever parts are known.
func location(file string, line int) string {
	switch {
	case file != "" && line > 0:
		return fmt.Sprintf("%s:%d", file, line)
	case line > 0:
		return fmt.Sprintf("line %d", line)
	}
	return file
}

// Error returns e.g. "game.txt:3, ply 5, move "Ke3": unparseable move".
func (e *GameError) Error() string {
	var parts []string
	if loc := location(e.File, e.Line); loc != "" {
		parts = append(parts, loc)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	head := "replay"
	if len(parts) > 0 {
		head = strings.Join(parts, ", ")
	}
	if e.Err == nil {
		return head
	}
	return head + ": " + e.Err.Error()
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError reports a syntax problem in a game record.
type ParseError struct {
	Err      error
	File     string
	Line     int
	Expected string // e.g. "'}'"
	Got      string // e.g. "end of input"
}

// Error returns e.g. "game.txt:4: expected ')', got end of input: malformed notation".
func (e *ParseError) Error() string {
	var parts []string
	if loc := location(e.File, e.Line); loc != "" {
		parts = append(parts, loc)
	}
	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, "expected "+e.Expected+", got "+e.Got)
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrapf prefixes err with formatted context, keeping it visible to errors.Is.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
