package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Movement offsets used to enumerate candidate destinations.
var (
	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	rookDirs      = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs    = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// candidateTargets lists the squares a piece on from could conceivably reach.
// It is a superset of the legal destinations and feeds the legality filter;
// an empty piece has no candidates.
func candidateTargets(board *chess.Board, piece chess.Piece, from chess.Square) []chess.Square {
	var targets []chess.Square
	addOffsets := func(offsets [][2]int) {
		for _, o := range offsets {
			if sq := from.Offset(o[0], o[1]); sq.Valid() {
				targets = append(targets, sq)
			}
		}
	}
	addRays := func(dirs [][2]int) {
		for _, d := range dirs {
			for sq := from.Offset(d[0], d[1]); sq.Valid(); sq = sq.Offset(d[0], d[1]) {
				targets = append(targets, sq)
				if !board.PieceAt(sq).IsEmpty() {
					break
				}
			}
		}
	}

	switch piece.Kind() {
	case chess.Pawn:
		dir := piece.Colour().Forward()
		addOffsets([][2]int{{dir, 0}, {2 * dir, 0}, {dir, -1}, {dir, 1}})
	case chess.Knight:
		addOffsets(knightOffsets[:])
	case chess.Bishop:
		addRays(bishopDirs[:])
	case chess.Rook:
		addRays(rookDirs[:])
	case chess.Queen:
		addRays(rookDirs[:])
		addRays(bishopDirs[:])
	case chess.King:
		addOffsets(kingOffsets[:])
		addOffsets([][2]int{{0, -2}, {0, 2}})
	}
	return targets
}
