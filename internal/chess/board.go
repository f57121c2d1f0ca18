package chess

// Board is the 8x8 grid of cell contents. It is a value type: assigning a
// Board copies every square, which is what move simulation relies on.
type Board struct {
	Squares [NumSquares]Piece
}

// backRank is the piece order on both back ranks, a-file first.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places the standard starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()
	for file := 0; file < BoardSize; file++ {
		for _, colour := range []Colour{White, Black} {
			b.Set(NewSquare(colour.BackRank(), file), MakePiece(colour, backRank[file]))
			b.Set(NewSquare(colour.PawnRank(), file), MakePiece(colour, Pawn))
		}
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [NumSquares]Piece{}
}

// PieceAt returns the piece on sq, or NoPiece for an empty or off-board square.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (b *Board) Set(sq Square, p Piece) {
	if sq.Valid() {
		b.Squares[sq] = p
	}
}

// Move relocates whatever stands on from to to, leaving from empty.
func (b *Board) Move(from, to Square) {
	p := b.PieceAt(from)
	b.Set(from, NoPiece)
	b.Set(to, p)
}

// FindKing returns the square of the colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	king := MakePiece(colour, King)
	for sq := Square(0); int(sq) < NumSquares; sq++ {
		if b.Squares[sq] == king {
			return sq
		}
	}
	return NoSquare
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for _, p := range b.Squares {
		if !p.IsEmpty() {
			n++
		}
	}
	return n
}
