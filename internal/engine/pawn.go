package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPawnMove covers single and double pushes, diagonal captures and en passant.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to, enPassant chess.Square) bool {
	dir := colour.Forward()
	dr := to.Rank() - from.Rank()
	df := to.File() - from.File()
	target := board.PieceAt(to)

	switch {
	case df == 0 && dr == dir:
		return target.IsEmpty()

	case df == 0 && dr == 2*dir:
		if from.Rank() != colour.PawnRank() {
			return false
		}
		return target.IsEmpty() && board.PieceAt(from.Offset(dir, 0)).IsEmpty()

	case abs(df) == 1 && dr == dir:
		if !target.IsEmpty() {
			return target.Colour() != colour
		}
		return isEnPassantCapture(board, colour, from, to, enPassant)
	}
	return false
}

// isEnPassantCapture reports whether a pawn of colour moving from→to captures
// en passant: to must be the recorded target square and an enemy pawn must
// stand beside the mover on the destination file.
func isEnPassantCapture(board *chess.Board, colour chess.Colour, from, to, enPassant chess.Square) bool {
	if !enPassant.Valid() || to != enPassant {
		return false
	}
	if fileDistance(from, to) != 1 || to.Rank()-from.Rank() != colour.Forward() {
		return false
	}
	return board.PieceAt(enPassantVictim(from, to)).Is(colour.Opposite(), chess.Pawn)
}

// enPassantVictim is the square of the pawn removed by an en passant capture.
func enPassantVictim(from, to chess.Square) chess.Square {
	return chess.NewSquare(from.Rank(), to.File())
}

// pawnAttacks reports whether a pawn of colour on from attacks sq. Pawns
// attack only diagonally forward, whatever stands on the target.
func pawnAttacks(colour chess.Colour, from, sq chess.Square) bool {
	return sq.Rank()-from.Rank() == colour.Forward() && fileDistance(from, sq) == 1
}
