package engine_test

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Benchmark positions, from quiet to tactically busy.
var benchFENs = map[string]string{
	"Initial":   engine.InitialFEN,
	"Italian":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"RookEnd":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Kiwipete":  testutil.KiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  testutil.CastlingFEN,
	"Check":     testutil.OpenFileCheckFEN,
}

func mustBenchGame(b *testing.B, fen string, opts ...engine.Option) *engine.Game {
	b.Helper()
	g, err := engine.NewGameFromFEN(fen, opts...)
	if err != nil {
		b.Fatalf("NewGameFromFEN(%q) failed: %v", fen, err)
	}
	return g
}

func BenchmarkNewGameFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				engine.NewGameFromFEN(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := mustBenchGame(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.FEN()
			}
		})
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	cases := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"PawnMove", benchFENs["Initial"], "e2", "e4"},
		{"PieceMove", benchFENs["Initial"], "g1", "f3"},
		{"KingsideCastle", benchFENs["Castling"], "e1", "g1"},
		{"QueensideCastle", benchFENs["Castling"], "e1", "c1"},
		{"EnPassant", benchFENs["EnPassant"], "f5", "e6"},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7", "a8"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			g := mustBenchGame(b, tt.fen)
			from, to := chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.ApplyMove(from, to, chess.NoKind)
				g.UndoMove(1)
			}
		})
	}
}

func BenchmarkPlayNotation(b *testing.B) {
	moves := []string{"e4", "e5", "Nf3", "Nc6", "Bb5", "a6", "Bxc6", "dxc6", "O-O"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := engine.NewGame()
		for _, move := range moves {
			if _, err := g.PlayNotation(move, chess.NoKind); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkIsInCheck(b *testing.B) {
	for _, name := range []string{"Initial", "Check"} {
		b.Run(name, func(b *testing.B) {
			g := mustBenchGame(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.IsInCheck(chess.White)
			}
		})
	}
}

func BenchmarkHasLegalMoves(b *testing.B) {
	for _, name := range []string{"Initial", "Italian", "RookEnd"} {
		b.Run(name, func(b *testing.B) {
			g := mustBenchGame(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.HasLegalMoves(chess.White)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for _, workers := range []int{1, 4} {
		b.Run(map[int]string{1: "Sequential", 4: "Parallel4"}[workers], func(b *testing.B) {
			g := mustBenchGame(b, benchFENs["Kiwipete"], engine.WithWorkers(workers))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.LegalMoves(chess.White)
			}
		})
	}
}
