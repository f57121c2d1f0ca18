// Package chess provides core chess types: colours, pieces, squares and the board grid.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the rank delta of a pawn advance: White moves toward rank 0.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRank returns the rank index holding the colour's pieces in the initial position.
func (c Colour) BackRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the rank index holding the colour's pawns in the initial position.
func (c Colour) PawnRank() int {
	return c.BackRank() - c.Forward()
}

// PromotionRank returns the far rank a pawn of this colour promotes on.
func (c Colour) PromotionRank() int {
	return c.Opposite().BackRank()
}

// Kind represents a chess piece type, independent of colour.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the lower-case name of a piece kind.
func (k Kind) String() string {
	names := []string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// Letter returns the single upper-case letter of a piece kind ('P' for pawns).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts an upper- or lower-case piece letter to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoKind
}

// Piece is a coloured piece. The zero value is NoPiece, an empty square.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 1

// NoPiece marks an empty square.
const NoPiece Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == NoKind {
		return NoPiece
	}
	return Piece(int(kind)<<PieceShift | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Colour extracts the colour of a piece. Undefined for NoPiece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// Kind extracts the piece kind.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return !p.IsEmpty() && p.Colour() == colour && p.Kind() == kind
}

// Rune returns the board letter of a piece: upper case for White, lower case for Black.
func (p Piece) Rune() rune {
	if p.IsEmpty() {
		return '.'
	}
	letter := rune(p.Kind().Letter())
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable description such as "white knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	if p.Colour() == White {
		return "white " + p.Kind().String()
	}
	return "black " + p.Kind().String()
}

// Constants for board dimensions and notation.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FirstCol  = 'a'
	LastCol   = FirstCol + BoardSize - 1
	FirstRank = '1'
	LastRank  = FirstRank + BoardSize - 1
)

// Square identifies a cell as rank*8+file. Rank 0 is the eighth-rank edge
// (Black's back rank) and file 0 is the a-file, so ascending Square values
// follow the canonical scan order.
type Square int8

// NoSquare is the absent square.
const NoSquare Square = -1

// NewSquare builds a square from rank and file indices. Out-of-range
// coordinates return NoSquare.
func NewSquare(rank, file int) Square {
	if rank < 0 || rank >= BoardSize || file < 0 || file >= BoardSize {
		return NoSquare
	}
	return Square(rank*BoardSize + file)
}

// Rank returns the rank index (0 = eighth rank).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the file index (0 = a-file).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && int(s) < NumSquares
}

// Offset returns the square dr ranks and df files away, or NoSquare off the board.
func (s Square) Offset(dr, df int) Square {
	return NewSquare(s.Rank()+dr, s.File()+df)
}

// FileLetter returns the file letter of the square ('a'-'h').
func (s Square) FileLetter() byte {
	return byte(FirstCol + s.File())
}

// RankDigit returns the rank digit of the square ('1'-'8').
func (s Square) RankDigit() byte {
	return byte(LastRank - s.Rank())
}

// String returns algebraic notation such as "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.FileLetter(), s.RankDigit()})
}

// ParseSquare converts algebraic notation ("a1".."h8") to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrMalformedNotation)
	}
	col := text[0] | 0x20 // fold to lower case
	rank := text[1]
	if col < FirstCol || col > LastCol || rank < FirstRank || rank > LastRank {
		return NoSquare, fmt.Errorf("square %q: %w", text, errors.ErrMalformedNotation)
	}
	return NewSquare(int(LastRank-rank), int(col-FirstCol)), nil
}

// MustParseSquare is ParseSquare for constant inputs; it panics on malformed text.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}

// Move is a source-destination square pair.
type Move struct {
	From Square
	To   Square
}

// String returns the move in long form, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}
