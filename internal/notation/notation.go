// Package notation translates moves to and from short algebraic-like text.
//
// Encoding is purely syntactic. Decoding needs a position to resolve which
// piece a short move refers to; it consults the legality filter through the
// Position interface and, when several pieces qualify, picks the first one
// in board scan order.
package notation

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Castling tokens.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// Position is the view of a game that decoding needs.
type Position interface {
	PieceAt(sq chess.Square) chess.Piece
	KingSquare(colour chess.Colour) chess.Square
	ValidateMoveAs(from, to chess.Square, colour chess.Colour) error
}

// Decoded is a move recovered from text.
type Decoded struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.Kind // NoKind unless the text carried "=<Letter>"
}

// Move returns the from/to pair of the decoded move.
func (d Decoded) Move() chess.Move {
	return chess.Move{From: d.From, To: d.To}
}

// Encode renders a move. moved is the piece that moves, captured the piece
// taken (NoPiece if none, the pawn for en passant) and promotion the kind a
// pawn became (NoKind if none).
func Encode(from, to chess.Square, moved, captured chess.Piece, promotion chess.Kind) string {
	kind := moved.Kind()
	if kind == chess.King && abs(to.File()-from.File()) == 2 {
		if to.File() > from.File() {
			return KingsideCastle
		}
		return QueensideCastle
	}

	var sb strings.Builder
	switch {
	case kind == chess.Pawn && !captured.IsEmpty():
		sb.WriteByte(from.FileLetter())
	case kind != chess.Pawn:
		sb.WriteByte(kind.Letter())
	}
	if !captured.IsEmpty() {
		sb.WriteByte('x')
	}
	sb.WriteString(to.String())
	if promotion != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(promotion.Letter())
	}
	return sb.String()
}

// Decode resolves text such as "Nf3", "exd5", "Rae1", "e8=N" or "O-O" into a
// move for colour. Trailing check and annotation marks are ignored.
func Decode(pos Position, text string, colour chess.Colour) (Decoded, error) {
	move := strings.TrimRight(strings.TrimSpace(text), "+#!?")
	if move == "" {
		return Decoded{}, fmt.Errorf("move %q: %w", text, errors.ErrMalformedNotation)
	}

	if kingside, ok := castleSide(move); ok {
		return decodeCastle(pos, text, colour, kingside)
	}

	kind := chess.Pawn
	if k := pieceLetter(move[0]); k != chess.NoKind {
		kind = k
		move = move[1:]
	}

	promotion := chess.NoKind
	if idx := strings.IndexByte(move, '='); idx >= 0 {
		suffix := move[idx+1:]
		if len(suffix) != 1 || kind != chess.Pawn {
			return Decoded{}, fmt.Errorf("move %q: bad promotion: %w", text, errors.ErrMalformedNotation)
		}
		promotion = chess.KindFromLetter(suffix[0])
		if promotion == chess.NoKind || promotion == chess.Pawn || promotion == chess.King {
			return Decoded{}, fmt.Errorf("move %q: cannot promote to %q: %w", text, suffix, errors.ErrMalformedNotation)
		}
		move = move[:idx]
	}

	move = strings.ReplaceAll(move, "x", "")
	if len(move) < 2 {
		return Decoded{}, fmt.Errorf("move %q: %w", text, errors.ErrMalformedNotation)
	}
	to, err := chess.ParseSquare(move[len(move)-2:])
	if err != nil {
		return Decoded{}, fmt.Errorf("move %q: %w", text, err)
	}
	hint := move[:len(move)-2]

	for from := chess.Square(0); int(from) < chess.NumSquares; from++ {
		if !pos.PieceAt(from).Is(colour, kind) {
			continue
		}
		if hint != "" && !strings.Contains(from.String(), hint) {
			continue
		}
		if pos.ValidateMoveAs(from, to, colour) == nil {
			return Decoded{From: from, To: to, Promotion: promotion}, nil
		}
	}
	return Decoded{}, fmt.Errorf("move %q for %v: %w", text, colour, errors.ErrUnparseableMove)
}

// decodeCastle builds the king's two-file move and runs it through the legality filter.
func decodeCastle(pos Position, text string, colour chess.Colour, kingside bool) (Decoded, error) {
	from := pos.KingSquare(colour)
	df := -2
	if kingside {
		df = 2
	}
	to := from.Offset(0, df)
	if !from.Valid() || !to.Valid() {
		return Decoded{}, fmt.Errorf("move %q for %v: %w", text, colour, errors.ErrUnparseableMove)
	}
	if err := pos.ValidateMoveAs(from, to, colour); err != nil {
		return Decoded{}, fmt.Errorf("move %q for %v: %w: %w", text, colour, errors.ErrUnparseableMove, err)
	}
	return Decoded{From: from, To: to}, nil
}

// castleSide recognises castling tokens written with letter O or digit zero.
func castleSide(move string) (kingside bool, ok bool) {
	switch strings.ReplaceAll(move, "0", "O") {
	case KingsideCastle:
		return true, true
	case QueensideCastle:
		return false, true
	}
	return false, false
}

// pieceLetter returns the kind named by an upper-case piece letter. Lower-case
// letters are files, so "b" never means bishop here.
func pieceLetter(c byte) chess.Kind {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
