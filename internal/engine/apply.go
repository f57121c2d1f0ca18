package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
)

// MoveOutcome describes an applied move and the position it produced.
type MoveOutcome struct {
	Move      chess.Move
	Piece     chess.Piece
	Captured  chess.Piece
	Promotion chess.Kind
	Castle    bool
	EnPassant bool
	Notation  string

	// Check, Checkmate and Stalemate describe the side now to move.
	Check     bool
	Checkmate bool
	Stalemate bool
}

// Play validates a move for the side to move and applies it. promotion is
// the kind a pawn reaching the far rank becomes; NoKind means queen.
func (g *Game) Play(from, to chess.Square, promotion chess.Kind) (MoveOutcome, error) {
	if !validPromotion(promotion) {
		return MoveOutcome{}, moveError(errors.ErrInvalidPieceMove, from, to, fmt.Sprintf("cannot promote to %v", promotion))
	}
	if err := g.ValidateMove(from, to); err != nil {
		return MoveOutcome{}, err
	}
	return g.ApplyMove(from, to, promotion), nil
}

// PlayNotation decodes text for the side to move and plays it. A promotion
// written in the text overrides defaultPromotion.
func (g *Game) PlayNotation(text string, defaultPromotion chess.Kind) (MoveOutcome, error) {
	decoded, err := notation.Decode(g, text, g.toMove)
	if err != nil {
		return MoveOutcome{}, err
	}
	promotion := decoded.Promotion
	if promotion == chess.NoKind {
		promotion = defaultPromotion
	}
	return g.Play(decoded.From, decoded.To, promotion)
}

// validPromotion accepts NoKind (queen) and knight through queen.
func validPromotion(k chess.Kind) bool {
	return k == chess.NoKind || (k >= chess.Knight && k <= chess.Queen)
}

// ApplyMove executes a move that ValidateMove has accepted for the side to
// move. Calling it with an unvalidated move is a programming error: it
// panics when from does not hold a piece of the side to move or promotion
// is not a kind a pawn may become, and otherwise corrupts nothing it can
// detect.
func (g *Game) ApplyMove(from, to chess.Square, promotion chess.Kind) MoveOutcome {
	piece := g.board.PieceAt(from)
	if piece.IsEmpty() || piece.Colour() != g.toMove {
		panic(fmt.Sprintf("engine: ApplyMove %v%v: no %v piece on %v", from, to, g.toMove, from))
	}
	if !validPromotion(promotion) {
		panic(fmt.Sprintf("engine: ApplyMove %v%v: cannot promote to %v", from, to, promotion))
	}
	if promotion == chess.NoKind {
		promotion = chess.Queen
	}
	colour := piece.Colour()

	snap := Snapshot{
		State:             g.SaveState(),
		Move:              chess.Move{From: from, To: to},
		Piece:             piece,
		Captured:          g.board.PieceAt(to),
		RookFrom:          chess.NoSquare,
		RookTo:            chess.NoSquare,
		EnPassantCaptured: chess.NoSquare,
	}

	if piece.Kind() == chess.Pawn && isEnPassantCapture(&g.board, colour, from, to, g.enPassant) {
		victim := enPassantVictim(from, to)
		snap.EnPassant = true
		snap.EnPassantCaptured = victim
		snap.Captured = g.board.PieceAt(victim)
		g.board.Set(victim, chess.NoPiece)
	}

	g.enPassant = chess.NoSquare
	if piece.Kind() == chess.Pawn && rankDistance(from, to) == 2 {
		g.enPassant = chess.NewSquare((from.Rank()+to.Rank())/2, from.File())
	}

	if piece.Kind() == chess.King && fileDistance(from, to) == 2 {
		rookFrom, rookTo := rookSquares(colour, to.File() > from.File())
		g.board.Move(rookFrom, rookTo)
		snap.Castle = true
		snap.RookFrom = rookFrom
		snap.RookTo = rookTo
	}

	g.updateCastlingRights(piece, from, to)

	if piece.Kind() == chess.King {
		g.kings[colour] = to
	}

	g.board.Move(from, to)

	if piece.Kind() == chess.Pawn && to.Rank() == colour.PromotionRank() {
		g.board.Set(to, chess.MakePiece(colour, promotion))
		snap.Promotion = promotion
	}

	snap.Notation = notation.Encode(from, to, piece, snap.Captured, snap.Promotion)
	g.history.Push(snap)
	g.moveCount++
	g.toMove = colour.Opposite()

	outcome := MoveOutcome{
		Move:      snap.Move,
		Piece:     piece,
		Captured:  snap.Captured,
		Promotion: snap.Promotion,
		Castle:    snap.Castle,
		EnPassant: snap.EnPassant,
		Notation:  snap.Notation,
		Check:     g.IsInCheck(g.toMove),
	}
	if !g.HasLegalMoves(g.toMove) {
		outcome.Checkmate = outcome.Check
		outcome.Stalemate = !outcome.Check
		g.gameOver = true
	}

	g.logger.Debug("move applied",
		"ply", g.moveCount,
		"move", snap.Notation,
		"from", from.String(),
		"to", to.String(),
		"check", outcome.Check)
	if g.gameOver {
		g.logger.Info("game over",
			"ply", g.moveCount,
			"checkmate", outcome.Checkmate,
			"stalemate", outcome.Stalemate,
			"winner", winner(outcome, colour))
	}
	return outcome
}

// UndoMove takes back the last steps moves. It fails with
// ErrInsufficientHistory, changing nothing, unless 1 <= steps <= HistoryLen.
func (g *Game) UndoMove(steps int) error {
	if steps < 1 || steps > g.history.Len() {
		return errors.Wrapf(errors.ErrInsufficientHistory, "undo %d of %d moves", steps, g.history.Len())
	}
	for i := 0; i < steps; i++ {
		snap, _ := g.history.Pop()
		g.RestoreState(snap.State)
	}
	g.gameOver = false
	g.logger.Debug("moves undone", "steps", steps, "ply", g.moveCount)
	return nil
}

func winner(o MoveOutcome, mover chess.Colour) string {
	if o.Checkmate {
		return mover.String()
	}
	return "none"
}
