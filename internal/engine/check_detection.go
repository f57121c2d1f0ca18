package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsInCheck reports whether colour's king is attacked in the current position.
func (g *Game) IsInCheck(colour chess.Colour) bool {
	return isKingAttacked(&g.board, g.kings[colour], colour, g.enPassant)
}

// SquareAttacked reports whether any piece of colour by attacks sq in the
// current position.
func (g *Game) SquareAttacked(sq chess.Square, by chess.Colour) bool {
	return isSquareAttacked(&g.board, sq, by, g.enPassant)
}

// isKingAttacked checks colour's king, which must stand on kingSq. The
// square comes from the cache kept by ApplyMove and RestoreState; a mismatch
// means the cache is broken, which is a programming error.
func isKingAttacked(board *chess.Board, kingSq chess.Square, colour chess.Colour, enPassant chess.Square) bool {
	if !board.PieceAt(kingSq).Is(colour, chess.King) {
		panic(fmt.Sprintf("engine: %v king not on cached square %v", colour, kingSq))
	}
	return isSquareAttacked(board, kingSq, colour.Opposite(), enPassant)
}

// isSquareAttacked returns true if the square is attacked by the given colour.
// Pawns attack only their forward diagonals; every other piece attacks
// wherever its movement predicate could reach.
func isSquareAttacked(board *chess.Board, sq chess.Square, by chess.Colour, enPassant chess.Square) bool {
	if !sq.Valid() {
		return false
	}
	for from := chess.Square(0); int(from) < chess.NumSquares; from++ {
		piece := board.Squares[from]
		if piece.IsEmpty() || piece.Colour() != by {
			continue
		}
		if piece.Kind() == chess.Pawn {
			if pawnAttacks(by, from, sq) {
				return true
			}
			continue
		}
		if canPieceMove(board, piece, from, sq, enPassant) {
			return true
		}
	}
	return false
}
