// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Named positions shared by tests across packages.
const (
	// FoolsMateFEN has White mated by the queen on h4.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	// StalemateFEN has Black's lone king on a8 boxed in by the queen on c7
	// and the king on a6, with Black to move and not in check.
	StalemateFEN = "k7/2Q5/K7/8/8/8/8/8 b - - 0 1"
	// OpenFileCheckFEN has the black queen on e5 checking the white king
	// down the e-file after the e-pawns have gone.
	OpenFileCheckFEN = "rnb1kbnr/pppp1ppp/8/4q3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3"
	// CastlingFEN has both sides free to castle either way.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
	// KiwipeteFEN is a standard move-generation stress position.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// MustGame creates a game from a FEN string, or the initial position if fen
// is empty. It calls t.Fatal if the FEN does not parse.
func MustGame(t testing.TB, fen string, opts ...engine.Option) *engine.Game {
	t.Helper()
	if fen == "" {
		return engine.NewGame(opts...)
	}
	g, err := engine.NewGameFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("failed to load FEN %q: %v", fen, err)
	}
	return g
}

// MustSquare parses algebraic square notation, calling t.Fatal on failure.
func MustSquare(t testing.TB, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("bad square %q: %v", text, err)
	}
	return sq
}

// MustPlay plays long-form moves such as "e2e4" in order, calling t.Fatal
// on the first one the game rejects.
func MustPlay(t testing.TB, g *engine.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if len(m) != 4 {
			t.Fatalf("move %q is not in from-to form", m)
		}
		from := MustSquare(t, m[:2])
		to := MustSquare(t, m[2:])
		if _, err := g.Play(from, to, chess.NoKind); err != nil {
			t.Fatalf("move %s rejected: %v", m, err)
		}
	}
}
