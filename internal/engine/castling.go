package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Home files of the pieces involved in castling.
const (
	kingFile  = 4
	aRookFile = 0
	hRookFile = chess.BoardSize - 1
)

// rookSquares returns where the castling rook starts and lands.
func rookSquares(colour chess.Colour, kingside bool) (from, to chess.Square) {
	rank := colour.BackRank()
	if kingside {
		return chess.NewSquare(rank, hRookFile), chess.NewSquare(rank, kingFile+1)
	}
	return chess.NewSquare(rank, aRookFile), chess.NewSquare(rank, kingFile-1)
}

// validateCastle checks a king's two-file move. Every failure is reported
// as ErrCastlingUnavailable with a detail naming the broken precondition.
func (g *Game) validateCastle(from, to chess.Square, colour chess.Colour) error {
	fail := func(detail string) error {
		return moveError(errors.ErrCastlingUnavailable, from, to, detail)
	}

	if from != chess.NewSquare(colour.BackRank(), kingFile) || to.Rank() != from.Rank() {
		return fail("king is not on its home square")
	}
	kingside := to.File() > from.File()

	if g.castling.KingMoved[colour] {
		return fail("king has moved")
	}
	rookFrom, _ := rookSquares(colour, kingside)
	if !g.castling.CanCastle(colour, kingside) {
		return fail("rook on " + rookFrom.String() + " has moved")
	}
	if !g.board.PieceAt(rookFrom).Is(colour, chess.Rook) {
		return fail("no rook on " + rookFrom.String())
	}

	enemy := colour.Opposite()
	if isSquareAttacked(&g.board, from, enemy, g.enPassant) {
		return fail("king is in check")
	}
	if !isPathClear(&g.board, from, rookFrom) {
		return fail("pieces between king and rook")
	}

	_, step := direction(from, to)
	for sq := from.Offset(0, step); ; sq = sq.Offset(0, step) {
		if isSquareAttacked(&g.board, sq, enemy, g.enPassant) {
			return fail("king passes through attacked square " + sq.String())
		}
		if sq == to {
			break
		}
	}
	return nil
}

// updateCastlingRights clears rights touched by a move: the king leaving
// home, a rook leaving its corner, or a rook being captured in its corner.
func (g *Game) updateCastlingRights(piece chess.Piece, from, to chess.Square) {
	colour := piece.Colour()
	switch piece.Kind() {
	case chess.King:
		g.castling.KingMoved[colour] = true
	case chess.Rook:
		g.markRookMoved(colour, from)
	}
	if captured := g.board.PieceAt(to); captured.Kind() == chess.Rook {
		g.markRookMoved(captured.Colour(), to)
	}
}

// markRookMoved flags the rook whose home square is sq, if any.
func (g *Game) markRookMoved(colour chess.Colour, sq chess.Square) {
	switch sq {
	case chess.NewSquare(colour.BackRank(), aRookFile):
		g.castling.ARookMoved[colour] = true
	case chess.NewSquare(colour.BackRank(), hRookFile):
		g.castling.HRookMoved[colour] = true
	}
}
