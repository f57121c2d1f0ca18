package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPieceMove reports whether piece could travel from one square to another
// by its movement geometry alone. Own-piece occupancy of the destination,
// castling and king safety are the legality filter's business.
func canPieceMove(board *chess.Board, piece chess.Piece, from, to, enPassant chess.Square) bool {
	if from == to || !from.Valid() || !to.Valid() {
		return false
	}
	colDiff := fileDistance(from, to)
	rankDiff := rankDistance(from, to)

	switch piece.Kind() {
	case chess.Pawn:
		return canPawnMove(board, piece.Colour(), from, to, enPassant)

	case chess.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.Queen:
		if colDiff != rankDiff && colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, to)

	case chess.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isPathClear checks that every square strictly between from and to is
// empty. The two squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dr, df := direction(from, to)

	for sq := from.Offset(dr, df); sq != to; sq = sq.Offset(dr, df) {
		if !sq.Valid() {
			return false
		}
		if !board.PieceAt(sq).IsEmpty() {
			return false
		}
	}
	return true
}
