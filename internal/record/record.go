// Package record reads, writes and replays game records.
//
// A record is plain move text, one numbered move pair per line, optionally
// preceded by a [FEN "..."] tag when the game did not start from the
// standard position. Reading is permissive: comments, variations, move
// numbers, results and numeric glyphs are skipped, so most PGN move text
// replays as well.
package record

import (
	"bufio"
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game results.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// Record is a parsed game record.
type Record struct {
	// FEN is the starting position, empty for the standard one.
	FEN    string
	Moves  []string
	Result string

	// lines holds the source line of each move, when read from text.
	lines []int
}

// Write writes moves as "<n>. <white> <black>" lines, white moving first.
func Write(w io.Writer, moves []string) error {
	return writeMoves(w, moves, 1, chess.White)
}

// writeMoves numbers from firstNumber; when first is Black the opening line
// is written "<n>... <black>".
func writeMoves(w io.Writer, moves []string, firstNumber int, first chess.Colour) error {
	bw := bufio.NewWriter(w)
	number := firstNumber
	i := 0
	if first == chess.Black && len(moves) > 0 {
		fmt.Fprintf(bw, "%d... %s\n", number, moves[0])
		number++
		i = 1
	}
	for ; i < len(moves); i += 2 {
		if i+1 < len(moves) {
			fmt.Fprintf(bw, "%d. %s %s\n", number, moves[i], moves[i+1])
		} else {
			fmt.Fprintf(bw, "%d. %s\n", number, moves[i])
		}
		number++
	}
	return bw.Flush()
}

// WriteRecord writes the FEN tag, the numbered moves and a decisive result.
func WriteRecord(w io.Writer, rec Record) error {
	number, first := 1, chess.White
	if rec.FEN != "" && rec.FEN != engine.InitialFEN {
		if _, err := fmt.Fprintf(w, "[FEN %q]\n\n", rec.FEN); err != nil {
			return err
		}
		var err error
		number, first, err = moveNumberOf(rec.FEN)
		if err != nil {
			return err
		}
	}
	if err := writeMoves(w, rec.Moves, number, first); err != nil {
		return err
	}
	if rec.Result != "" && rec.Result != Unfinished {
		if _, err := fmt.Fprintln(w, rec.Result); err != nil {
			return err
		}
	}
	return nil
}

// moveNumberOf returns the fullmove number and side to move of a FEN.
func moveNumberOf(fen string) (int, chess.Colour, error) {
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return 0, chess.White, err
	}
	return g.MoveCount()/2 + 1, g.ToMove(), nil
}

// Read returns the move tokens of a record, ignoring any tags.
func Read(r io.Reader) ([]string, error) {
	rec, err := ReadRecord(r)
	if err != nil {
		return nil, err
	}
	return rec.Moves, nil
}

// ReadRecord parses a record including its FEN tag. The result comes from a
// Result tag, or failing that from the termination marker after the moves.
func ReadRecord(r io.Reader) (Record, error) {
	l := newLexer(r)
	if err := l.run(); err != nil {
		return Record{}, err
	}
	rec := Record{
		FEN:    l.tags["FEN"],
		Result: l.tags["Result"],
	}
	if rec.Result == "" {
		rec.Result = l.result
	}
	for _, t := range l.tokens {
		rec.Moves = append(rec.Moves, t.text)
		rec.lines = append(rec.lines, t.line)
	}
	return rec, nil
}

// Replay plays every token on g.
func Replay(g *engine.Game, tokens []string) error {
	return ReplayN(g, tokens, len(tokens))
}

// ReplayN plays the first plies tokens on g. Pawns reaching the last rank
// without a written promotion become queens. The first failure stops the
// replay and is returned as a *errors.GameError carrying its ply.
func ReplayN(g *engine.Game, tokens []string, plies int) error {
	return replay(g, Record{Moves: tokens}, plies, "")
}

func replay(g *engine.Game, rec Record, plies int, file string) error {
	if plies > len(rec.Moves) {
		plies = len(rec.Moves)
	}
	for i := 0; i < plies; i++ {
		if _, err := g.PlayNotation(rec.Moves[i], chess.Queen); err != nil {
			gameErr := &errors.GameError{
				Err:      err,
				PlyNum:   i + 1,
				MoveText: rec.Moves[i],
				File:     file,
			}
			if i < len(rec.lines) {
				gameErr.Line = rec.lines[i]
			}
			return gameErr
		}
	}
	return nil
}

// FromGame builds the record of everything played in g.
func FromGame(g *engine.Game) Record {
	rec := Record{
		Moves:  g.Moves(),
		Result: Result(g),
	}
	if start := g.StartFEN(); start != engine.InitialFEN {
		rec.FEN = start
	}
	return rec
}

// Result returns the result marker for the current position.
func Result(g *engine.Game) string {
	switch {
	case !g.GameOver():
		return Unfinished
	case !g.IsInCheck(g.ToMove()):
		return Draw
	case g.ToMove() == chess.White:
		return BlackWins
	default:
		return WhiteWins
	}
}

// Save writes the record of g to path.
func Save(path string, g *engine.Game) error {
	var buf bytes.Buffer
	if err := WriteRecord(&buf, FromGame(g)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	return nil
}

// Load reads the record at path and replays it on a new game built with opts.
func Load(path string, opts ...engine.Option) (*engine.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading game: %w", err)
	}
	rec, err := ReadRecord(bytes.NewReader(data))
	if err != nil {
		var parseErr *errors.ParseError
		if stderrors.As(err, &parseErr) {
			parseErr.File = path
		}
		return nil, err
	}
	return replayRecord(rec, path, opts...)
}

// Parse replays record text on a new game.
func Parse(text string, opts ...engine.Option) (*engine.Game, error) {
	rec, err := ReadRecord(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return replayRecord(rec, "", opts...)
}

func replayRecord(rec Record, file string, opts ...engine.Option) (*engine.Game, error) {
	g := engine.NewGame(opts...)
	if rec.FEN != "" {
		var err error
		if g, err = engine.NewGameFromFEN(rec.FEN, opts...); err != nil {
			return nil, err
		}
	}
	if err := replay(g, rec, len(rec.Moves), file); err != nil {
		return nil, err
	}
	return g, nil
}
