package record

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var foolsMate = []string{"f3", "e5", "g4", "Qh4"}

func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		moves []string
		want  string
	}{
		{"empty", nil, ""},
		{"one ply", []string{"e4"}, "1. e4\n"},
		{"full pair", []string{"e4", "e5"}, "1. e4 e5\n"},
		{"odd tail", []string{"e4", "e5", "Nf3"}, "1. e4 e5\n2. Nf3\n"},
		{"fools mate", foolsMate, "1. f3 e5\n2. g4 Qh4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.moves); err != nil {
				t.Fatalf("Write() error: %v", err)
			}
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestWriteRecord(t *testing.T) {
	t.Run("standard start", func(t *testing.T) {
		var buf bytes.Buffer
		rec := Record{FEN: engine.InitialFEN, Moves: foolsMate, Result: BlackWins}
		if err := WriteRecord(&buf, rec); err != nil {
			t.Fatalf("WriteRecord() error: %v", err)
		}
		testutil.AssertEqual(t, buf.String(), "1. f3 e5\n2. g4 Qh4\n0-1\n")
	})

	t.Run("black to move from FEN", func(t *testing.T) {
		const fen = "4k3/8/8/8/8/8/4P3/4K3 b - - 0 7"
		var buf bytes.Buffer
		rec := Record{FEN: fen, Moves: []string{"Kd8", "e4", "Kc7"}, Result: Unfinished}
		if err := WriteRecord(&buf, rec); err != nil {
			t.Fatalf("WriteRecord() error: %v", err)
		}
		want := "[FEN \"" + fen + "\"]\n\n7... Kd8\n8. e4 Kc7\n"
		testutil.AssertEqual(t, buf.String(), want)
	})

	t.Run("bad FEN", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteRecord(&buf, Record{FEN: "not a fen"})
		if !stderrors.Is(err, errors.ErrInvalidFEN) {
			t.Errorf("WriteRecord() error = %v, want ErrInvalidFEN", err)
		}
	})
}

func TestWriteReadRecord_Result(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
	}{
		{"black wins", Record{FEN: engine.InitialFEN, Moves: foolsMate, Result: BlackWins}},
		{"draw from FEN", Record{FEN: testutil.StalemateFEN, Result: Draw}},
		{"white wins", Record{FEN: engine.InitialFEN, Moves: []string{"e4"}, Result: WhiteWins}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteRecord(&buf, tt.rec); err != nil {
				t.Fatalf("WriteRecord() error: %v", err)
			}
			got, err := ReadRecord(&buf)
			if err != nil {
				t.Fatalf("ReadRecord() error: %v", err)
			}
			testutil.AssertEqual(t, got.Result, tt.rec.Result)
			testutil.AssertEqual(t, len(got.Moves), len(tt.rec.Moves))
		})
	}
}

func TestReadRecord_ResultSources(t *testing.T) {
	rec, err := ReadRecord(strings.NewReader("[Result \"1/2-1/2\"]\n1. e4 e5 (1... c5 0-1) 1-0\n"))
	if err != nil {
		t.Fatalf("ReadRecord() error: %v", err)
	}
	testutil.AssertEqual(t, rec.Result, Draw, "tag wins over the marker")

	rec, err = ReadRecord(strings.NewReader("1. e4 e5\n"))
	if err != nil {
		t.Fatalf("ReadRecord() error: %v", err)
	}
	testutil.AssertEqual(t, rec.Result, "", "no tag and no marker")
}

func TestRead(t *testing.T) {
	text := `[Event "Casual"]
[White "Anon"]

1. e4 {best by test} e5 (1... c5 2. Nf3 {Sicilian (not today)} d6) 2. Nf3 $1 Nc6!?
3.Bb5 a6 ; the Morphy defence Nf6
4.0-0 4...Nf6 1-0
`
	got, err := Read(strings.NewReader(text))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	want := []string{"e4", "e5", "Nf3", "Nc6!?", "Bb5", "a6", "0-0", "Nf6"}
	testutil.AssertEqual(t, got, want)
}

func TestReadRecord_Tags(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/4P3/4K3 b - - 0 7"
	rec, err := ReadRecord(strings.NewReader("[FEN \"" + fen + "\"]\n[Result \"*\"]\n7... Kd8 8. e4\n"))
	if err != nil {
		t.Fatalf("ReadRecord() error: %v", err)
	}
	testutil.AssertEqual(t, rec.FEN, fen)
	testutil.AssertEqual(t, rec.Result, Unfinished)
	testutil.AssertEqual(t, rec.Moves, []string{"Kd8", "e4"})
	testutil.AssertEqual(t, rec.lines, []int{3, 3})
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"unterminated comment", "1. e4 e5\n2. Nf3 {never closed\n", 2},
		{"stray close paren", "1. e4 ) e5", 1},
		{"unclosed variation", "1. e4 (1. d4 d5\n", 2},
		{"tag without value", "[Event]\n1. e4", 1},
		{"unclosed tag", "[Event \"x\"", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.text))
			var parseErr *errors.ParseError
			if !stderrors.As(err, &parseErr) {
				t.Fatalf("Read() error = %v, want *ParseError", err)
			}
			if !stderrors.Is(err, errors.ErrMalformedNotation) {
				t.Errorf("Read() error = %v, want ErrMalformedNotation", err)
			}
			testutil.AssertEqual(t, parseErr.Line, tt.line)
		})
	}
}

func TestStripMoveNumber(t *testing.T) {
	tests := map[string]string{
		"12.":      "",
		"12...":    "",
		"3.Bb5":    "Bb5",
		"4...Nf6":  "Nf6",
		"0-0":      "0-0",
		"0-0-0":    "0-0-0",
		"e4":       "e4",
		"17":       "",
		"Nxe5":     "Nxe5",
		"10.exd5+": "exd5+",
	}
	for in, want := range tests {
		testutil.AssertEqual(t, stripMoveNumber(in), want, "stripMoveNumber(%q)", in)
	}
}

func TestReplay(t *testing.T) {
	g := engine.NewGame()
	if err := Replay(g, foolsMate); err != nil {
		t.Fatalf("Replay() error: %v", err)
	}
	testutil.AssertTrue(t, g.GameOver())
	testutil.AssertEqual(t, Result(g), BlackWins)
	testutil.AssertEqual(t, g.FEN(), testutil.MustGame(t, testutil.FoolsMateFEN).FEN())
}

func TestReplayN(t *testing.T) {
	g := engine.NewGame()
	if err := ReplayN(g, foolsMate, 2); err != nil {
		t.Fatalf("ReplayN() error: %v", err)
	}
	testutil.AssertEqual(t, g.Moves(), []string{"f3", "e5"})
	testutil.AssertEqual(t, Result(g), Unfinished)

	g = engine.NewGame()
	if err := ReplayN(g, foolsMate, 99); err != nil {
		t.Fatalf("ReplayN() past the end error: %v", err)
	}
	testutil.AssertEqual(t, g.HistoryLen(), 4)
}

func TestReplay_Error(t *testing.T) {
	g := engine.NewGame()
	err := Replay(g, []string{"e4", "e5", "Ke3", "Nf6"})

	var gameErr *errors.GameError
	if !stderrors.As(err, &gameErr) {
		t.Fatalf("Replay() error = %v, want *GameError", err)
	}
	testutil.AssertEqual(t, gameErr.PlyNum, 3)
	testutil.AssertEqual(t, gameErr.MoveText, "Ke3")
	testutil.AssertErrorIs(t, err, errors.ErrUnparseableMove)
	testutil.AssertEqual(t, g.HistoryLen(), 2)
}

func TestParse_ErrorLine(t *testing.T) {
	_, err := Parse("1. e4 e5\n2. Ke3 Nf6\n")
	var gameErr *errors.GameError
	if !stderrors.As(err, &gameErr) {
		t.Fatalf("Parse() error = %v, want *GameError", err)
	}
	testutil.AssertEqual(t, gameErr.Line, 2)
	testutil.AssertEqual(t, gameErr.PlyNum, 3)
}

func TestResult(t *testing.T) {
	testutil.AssertEqual(t, Result(engine.NewGame()), Unfinished)
	testutil.AssertEqual(t, Result(testutil.MustGame(t, testutil.FoolsMateFEN)), BlackWins)
	testutil.AssertEqual(t, Result(testutil.MustGame(t, testutil.StalemateFEN)), Draw)

	g := testutil.MustGame(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	testutil.MustPlay(t, g, "a1a8")
	testutil.AssertEqual(t, Result(g), WhiteWins)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("standard start", func(t *testing.T) {
		g, err := Parse("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Bxc6 dxc6 5. O-O")
		if err != nil {
			t.Fatalf("Parse() error: %v", err)
		}
		path := filepath.Join(dir, "ruy.txt")
		if err := Save(path, g); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(data), "1. e4 e5\n2. Nf3 Nc6\n3. Bb5 a6\n4. Bxc6 dxc6\n5. O-O\n")

		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		testutil.AssertEqual(t, loaded.SaveState(), g.SaveState())
		testutil.AssertEqual(t, loaded.Moves(), g.Moves())
	})

	t.Run("custom start", func(t *testing.T) {
		g := testutil.MustGame(t, "4k3/8/8/8/8/8/4P3/4K3 b - - 0 7")
		testutil.MustPlay(t, g, "e8d8", "e2e4")
		path := filepath.Join(dir, "ending.txt")
		if err := Save(path, g); err != nil {
			t.Fatalf("Save() error: %v", err)
		}
		loaded, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error: %v", err)
		}
		testutil.AssertEqual(t, loaded.FEN(), g.FEN())
		testutil.AssertEqual(t, loaded.StartFEN(), g.StartFEN())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.txt"))
		testutil.AssertErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("syntax error names the file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.txt")
		if err := os.WriteFile(path, []byte("1. e4 {oops"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Load(path)
		var parseErr *errors.ParseError
		if !stderrors.As(err, &parseErr) {
			t.Fatalf("Load() error = %v, want *ParseError", err)
		}
		testutil.AssertEqual(t, parseErr.File, path)
	})
}

func TestWriteJSON(t *testing.T) {
	g, err := Parse("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 4. Bxc6 dxc6 5. O-O")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, g); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	var got JSONGame
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, got.InitialFEN, engine.InitialFEN)
	testutil.AssertEqual(t, got.FinalFEN, g.FEN())
	testutil.AssertEqual(t, got.Result, Unfinished)
	testutil.AssertEqual(t, got.PlyCount, 9)
	if len(got.Moves) != 9 {
		t.Fatalf("len(Moves) = %d, want 9", len(got.Moves))
	}

	testutil.AssertEqual(t, got.Moves[6], JSONMove{
		MoveNumber: 4, Color: "white", Notation: "Bxc6",
		From: "b5", To: "c6", Piece: "bishop", Captured: "knight",
	})
	testutil.AssertEqual(t, got.Moves[7].Color, "black")
	testutil.AssertEqual(t, got.Moves[8], JSONMove{
		MoveNumber: 5, Color: "white", Notation: "O-O",
		From: "e1", To: "g1", Piece: "king", Castle: true,
	})
}
