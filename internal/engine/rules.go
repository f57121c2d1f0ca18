package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateMove checks a move for the side to move. A nil error means the move
// may be applied; otherwise the error is a *errors.MoveError wrapping one of
// the rejection sentinels (ErrNotYourPiece, ErrOwnSquareOccupied,
// ErrInvalidPieceMove, ErrCastlingUnavailable, ErrExposesOwnKing).
func (g *Game) ValidateMove(from, to chess.Square) error {
	return g.validate(from, to, g.toMove, true)
}

// ValidateMoveIgnoringTurn checks geometry for whichever colour stands on from.
// Turn ownership and king safety are not checked, so an accepted move is a
// threat, not necessarily a playable move.
func (g *Game) ValidateMoveIgnoringTurn(from, to chess.Square) error {
	piece := g.board.PieceAt(from)
	if piece.IsEmpty() {
		return moveError(errors.ErrNotYourPiece, from, to, "no piece on "+from.String())
	}
	return g.validate(from, to, piece.Colour(), false)
}

// ValidateMoveAs checks a move as if colour were to move, with full
// ownership and king-safety checks. The game's turn is not changed.
func (g *Game) ValidateMoveAs(from, to chess.Square, colour chess.Colour) error {
	return g.validate(from, to, colour, true)
}

// validate runs the legality checks in order and stops at the first failure.
func (g *Game) validate(from, to chess.Square, mover chess.Colour, kingSafety bool) error {
	piece := g.board.PieceAt(from)
	if piece.IsEmpty() {
		return moveError(errors.ErrNotYourPiece, from, to, "no piece on "+from.String())
	}
	if piece.Colour() != mover {
		return moveError(errors.ErrNotYourPiece, from, to, fmt.Sprintf("%v is not %v's", piece, mover))
	}
	if !to.Valid() {
		return moveError(errors.ErrInvalidPieceMove, from, to, "destination off the board")
	}

	target := g.board.PieceAt(to)
	if !target.IsEmpty() && target.Colour() == mover {
		return moveError(errors.ErrOwnSquareOccupied, from, to, fmt.Sprintf("%v already on %v", target, to))
	}

	if piece.Kind() == chess.King && fileDistance(from, to) == 2 {
		if err := g.validateCastle(from, to, mover); err != nil {
			return err
		}
	} else if !canPieceMove(&g.board, piece, from, to, g.enPassant) {
		return moveError(errors.ErrInvalidPieceMove, from, to, "invalid move for "+piece.Kind().String())
	}

	if kingSafety && g.exposesKing(piece, from, to) {
		return moveError(errors.ErrExposesOwnKing, from, to, "")
	}
	return nil
}

// exposesKing plays the move on a copy of the board and reports whether the
// mover's king is then attacked. The game's own board is never touched.
func (g *Game) exposesKing(piece chess.Piece, from, to chess.Square) bool {
	colour := piece.Colour()
	trial := g.board
	if piece.Kind() == chess.Pawn && isEnPassantCapture(&trial, colour, from, to, g.enPassant) {
		trial.Set(enPassantVictim(from, to), chess.NoPiece)
	}
	trial.Move(from, to)

	kingSq := g.kings[colour]
	if piece.Kind() == chess.King {
		kingSq = to
	}
	return isKingAttacked(&trial, kingSq, colour, chess.NoSquare)
}

func moveError(err error, from, to chess.Square, detail string) error {
	return &errors.MoveError{Err: err, From: from.String(), To: to.String(), Detail: detail}
}
