package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestMustGame(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		wantToMove chess.Colour
	}{
		{"empty means initial position", "", chess.White},
		{"fool's mate", FoolsMateFEN, chess.White},
		{"stalemate", StalemateFEN, chess.Black},
		{"castling", CastlingFEN, chess.White},
		{"kiwipete", KiwipeteFEN, chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := MustGame(t, tt.fen)
			AssertEqual(t, g.ToMove(), tt.wantToMove)
		})
	}
}

func TestMustPlay(t *testing.T) {
	g := MustGame(t, "")
	MustPlay(t, g, "e2e4", "e7e5", "g1f3")

	AssertEqual(t, g.MoveCount(), 3)
	AssertEqual(t, g.ToMove(), chess.Black)
	AssertEqual(t, g.Moves(), []string{"e4", "e5", "Nf3"})
	AssertEqual(t, g.PieceAt(MustSquare(t, "f3")), chess.W(chess.Knight))
}
