package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// LegalMoves returns every move colour could play if it were colour's turn,
// in scan order: ascending source square, then ascending destination.
func (g *Game) LegalMoves(colour chess.Colour) []chess.Move {
	if g.workers > 1 {
		return g.legalMovesParallel(colour)
	}
	var moves []chess.Move
	for from := chess.Square(0); int(from) < chess.NumSquares; from++ {
		if g.board.Squares[from].IsEmpty() || g.board.Squares[from].Colour() != colour {
			continue
		}
		moves = append(moves, g.movesFrom(from, colour)...)
	}
	return moves
}

// legalMovesParallel fans the source squares out over a worker pool. Each
// worker only reads the board; results come back in source order, which is
// already scan order.
func (g *Game) legalMovesParallel(colour chess.Colour) []chess.Move {
	return worker.Collect(g.workers, g.sources(colour), func(from chess.Square) []chess.Move {
		return g.movesFrom(from, colour)
	})
}

// sources returns the squares holding colour's pieces, ascending.
func (g *Game) sources(colour chess.Colour) []chess.Square {
	var squares []chess.Square
	for from := chess.Square(0); int(from) < chess.NumSquares; from++ {
		if p := g.board.Squares[from]; !p.IsEmpty() && p.Colour() == colour {
			squares = append(squares, from)
		}
	}
	return squares
}

// compareMoves orders moves by source square, then destination.
func compareMoves(a, b chess.Move) int {
	if a.From != b.From {
		return int(a.From) - int(b.From)
	}
	return int(a.To) - int(b.To)
}

// LegalMovesFrom returns the legal destinations of the piece on sq, for the
// piece's own colour regardless of whose turn it is. Used for move hints.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Square {
	piece := g.board.PieceAt(sq)
	if piece.IsEmpty() {
		return nil
	}
	moves := g.movesFrom(sq, piece.Colour())
	targets := make([]chess.Square, len(moves))
	for i, m := range moves {
		targets[i] = m.To
	}
	return targets
}

// movesFrom returns the accepted moves from one square, sorted by destination.
func (g *Game) movesFrom(from chess.Square, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for _, to := range candidateTargets(&g.board, g.board.PieceAt(from), from) {
		if g.validate(from, to, colour, true) == nil {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	slices.SortFunc(moves, compareMoves)
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func (g *Game) HasLegalMoves(colour chess.Colour) bool {
	if g.workers > 1 {
		return worker.Any(g.workers, g.sources(colour), func(from chess.Square) []chess.Move {
			return g.movesFrom(from, colour)
		})
	}
	for _, from := range g.sources(colour) {
		piece := g.board.Squares[from]
		for _, to := range candidateTargets(&g.board, piece, from) {
			if g.validate(from, to, colour, true) == nil {
				return true
			}
		}
	}
	return false
}

// ThreatenedPieces returns the squares of colour's pieces attacked by the
// opponent. Any attack counts, including one by a pinned piece.
func (g *Game) ThreatenedPieces(colour chess.Colour) []chess.Square {
	var squares []chess.Square
	for sq := chess.Square(0); int(sq) < chess.NumSquares; sq++ {
		piece := g.board.Squares[sq]
		if piece.IsEmpty() || piece.Colour() != colour {
			continue
		}
		if isSquareAttacked(&g.board, sq, colour.Opposite(), g.enPassant) {
			squares = append(squares, sq)
		}
	}
	return squares
}

// IsCheckmate reports whether colour is in check with no legal move.
func (g *Game) IsCheckmate(colour chess.Colour) bool {
	return g.IsInCheck(colour) && !g.HasLegalMoves(colour)
}

// IsStalemate reports whether colour is not in check but has no legal move.
func (g *Game) IsStalemate(colour chess.Colour) bool {
	return !g.IsInCheck(colour) && !g.HasLegalMoves(colour)
}
