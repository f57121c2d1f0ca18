package notation_test

import (
	"errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/notation"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		from, to  string
		moved     chess.Piece
		captured  chess.Piece
		promotion chess.Kind
		want      string
	}{
		{"pawn push", "e2", "e4", chess.W(chess.Pawn), chess.NoPiece, chess.NoKind, "e4"},
		{"pawn capture", "e4", "d5", chess.W(chess.Pawn), chess.B(chess.Pawn), chess.NoKind, "exd5"},
		{"knight move", "g1", "f3", chess.W(chess.Knight), chess.NoPiece, chess.NoKind, "Nf3"},
		{"bishop capture", "b5", "c6", chess.W(chess.Bishop), chess.B(chess.Knight), chess.NoKind, "Bxc6"},
		{"black queen", "d8", "h4", chess.B(chess.Queen), chess.NoPiece, chess.NoKind, "Qh4"},
		{"promotion", "a7", "a8", chess.W(chess.Pawn), chess.NoPiece, chess.Queen, "a8=Q"},
		{"capture promotion", "a7", "b8", chess.W(chess.Pawn), chess.B(chess.Knight), chess.Knight, "axb8=N"},
		{"kingside castle", "e1", "g1", chess.W(chess.King), chess.NoPiece, chess.NoKind, "O-O"},
		{"queenside castle", "e8", "c8", chess.B(chess.King), chess.NoPiece, chess.NoKind, "O-O-O"},
		{"king step", "e1", "f1", chess.W(chess.King), chess.NoPiece, chess.NoKind, "Kf1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := notation.Encode(chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to), tt.moved, tt.captured, tt.promotion)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		text          string
		colour        chess.Colour
		wantFrom      string
		wantTo        string
		wantPromotion chess.Kind
	}{
		{name: "pawn push", text: "e4", colour: chess.White, wantFrom: "e2", wantTo: "e4"},
		{name: "knight", text: "Nf3", colour: chess.White, wantFrom: "g1", wantTo: "f3"},
		{name: "black knight", text: "Nc6", colour: chess.Black, wantFrom: "b8", wantTo: "c6"},
		{name: "check suffix", text: "Nf3+", colour: chess.White, wantFrom: "g1", wantTo: "f3"},
		{name: "annotations", text: "e4!?", colour: chess.White, wantFrom: "e2", wantTo: "e4"},
		{name: "long form", text: "e2e4", colour: chess.White, wantFrom: "e2", wantTo: "e4"},
		{
			name: "pawn capture", fen: "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1",
			text: "exd5", colour: chess.White, wantFrom: "e4", wantTo: "d5",
		},
		{
			name: "file hint", fen: "4k3/8/8/8/8/8/8/R3K2R w - - 0 1",
			text: "Rhf1", colour: chess.White, wantFrom: "h1", wantTo: "f1",
		},
		{
			name: "rank hint", fen: "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1",
			text: "R1a3", colour: chess.White, wantFrom: "a1", wantTo: "a3",
		},
		{
			name: "ambiguous takes first in scan order", fen: "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1",
			text: "Ra3", colour: chess.White, wantFrom: "a5", wantTo: "a3",
		},
		{
			name: "promotion", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			text: "a8=N", colour: chess.White, wantFrom: "a7", wantTo: "a8", wantPromotion: chess.Knight,
		},
		{
			name: "kingside castle", fen: testutil.CastlingFEN,
			text: "O-O", colour: chess.White, wantFrom: "e1", wantTo: "g1",
		},
		{
			name: "queenside castle with zeros", fen: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			text: "0-0-0", colour: chess.Black, wantFrom: "e8", wantTo: "c8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			got, err := notation.Decode(g, tt.text, tt.colour)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.text, err)
			}
			testutil.AssertEqual(t, got, notation.Decoded{
				From:      testutil.MustSquare(t, tt.wantFrom),
				To:        testutil.MustSquare(t, tt.wantTo),
				Promotion: tt.wantPromotion,
			})
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		text    string
		wantErr error
	}{
		{name: "empty", text: "", wantErr: chesserrors.ErrMalformedNotation},
		{name: "only punctuation", text: "+#", wantErr: chesserrors.ErrMalformedNotation},
		{name: "too short", text: "N", wantErr: chesserrors.ErrMalformedNotation},
		{name: "bad square", text: "Nz9", wantErr: chesserrors.ErrMalformedNotation},
		{name: "bad promotion piece", fen: "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", text: "a8=K", wantErr: chesserrors.ErrMalformedNotation},
		{name: "no piece can reach", text: "Nd4", wantErr: chesserrors.ErrUnparseableMove},
		{name: "blocked bishop", text: "Bc4", wantErr: chesserrors.ErrUnparseableMove},
		{name: "castling blocked", text: "O-O", wantErr: chesserrors.ErrUnparseableMove},
		{name: "hint excludes only candidate", text: "Nbf3", wantErr: chesserrors.ErrUnparseableMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGame(t, tt.fen)
			_, err := notation.Decode(g, tt.text, chess.White)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

// Encoding every legal move and decoding the text must give the move back
// whenever no other piece of the same kind shares the destination.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	fens := []string{
		"",
		testutil.KiwipeteFEN,
		testutil.CastlingFEN,
		"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	}

	for _, fen := range fens {
		g := testutil.MustGame(t, fen)
		colour := g.ToMove()
		moves := g.LegalMoves(colour)

		sharers := make(map[[2]int]int)
		for _, m := range moves {
			sharers[[2]int{int(g.PieceAt(m.From).Kind()), int(m.To)}]++
		}

		for _, m := range moves {
			piece := g.PieceAt(m.From)
			if sharers[[2]int{int(piece.Kind()), int(m.To)}] > 1 && piece.Kind() != chess.Pawn {
				continue
			}
			captured := g.PieceAt(m.To)
			if piece.Kind() == chess.Pawn && m.From.File() != m.To.File() && captured.IsEmpty() {
				captured = chess.MakePiece(colour.Opposite(), chess.Pawn)
			}
			text := notation.Encode(m.From, m.To, piece, captured, chess.NoKind)

			got, err := notation.Decode(g, text, colour)
			if err != nil {
				t.Errorf("%s: Decode(%q) error: %v", g.FEN(), text, err)
				continue
			}
			if got.Move() != m {
				t.Errorf("%s: %v encoded as %q decodes to %v", g.FEN(), m, text, got.Move())
			}
		}
	}
}
