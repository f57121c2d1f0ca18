package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/record"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// session is one interactive game driven by text commands.
type session struct {
	cfg    *config.Config
	game   *engine.Game
	opts   []engine.Option
	out    io.Writer
	log    *slog.Logger
	hints  []chess.Square
	flip   bool
	closed bool
}

func newSession(cfg *config.Config, game *engine.Game, opts []engine.Option, logger *slog.Logger) *session {
	return &session{
		cfg:  cfg,
		game: game,
		opts: opts,
		out:  cfg.OutputFile,
		log:  logger,
		flip: cfg.Display.Flip,
	}
}

// command handles one verb. args excludes the verb itself.
type command struct {
	usage   string
	summary string
	run     func(s *session, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"help":    {"help", "Show this list", (*session).cmdHelp},
		"board":   {"board", "Print the board", (*session).cmdBoard},
		"flip":    {"flip", "Turn the board around", (*session).cmdFlip},
		"moves":   {"moves", "List the legal moves of the side to move", (*session).cmdMoves},
		"hint":    {"hint <square>", "Show where the piece on a square can go", (*session).cmdHint},
		"threats": {"threats", "List the side to move's pieces under attack", (*session).cmdThreats},
		"undo":    {"undo [n]", "Take back the last n moves (default 1)", (*session).cmdUndo},
		"history": {"history", "Print the moves played so far", (*session).cmdHistory},
		"fen":     {"fen", "Print the position as FEN", (*session).cmdFEN},
		"new":     {"new", "Start a new game", (*session).cmdNew},
		"save":    {"save <file>", "Save the game record", (*session).cmdSave},
		"load":    {"load <file>", "Replace the game with a saved record", (*session).cmdLoad},
		"svg":     {"svg <file>", "Write the board as an SVG image", (*session).cmdSVG},
		"json":    {"json <file>", "Export the game as JSON", (*session).cmdJSON},
		"quit":    {"quit", "Leave the program", (*session).cmdQuit},
	}
	commands["exit"] = commands["quit"]
}

// run reads commands until quit or end of input.
func (s *session) run(in io.Reader) error {
	s.printBoard()
	s.printStatus()

	scanner := bufio.NewScanner(in)
	for !s.closed {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		s.dispatch(scanner.Text())
	}
	return scanner.Err()
}

// dispatch runs one input line and reports any error to the user.
func (s *session) dispatch(line string) {
	args := splitArgsLine(line)
	if len(args) == 0 {
		return
	}

	var err error
	if cmd, ok := commands[strings.ToLower(args[0])]; ok {
		err = cmd.run(s, args[1:])
	} else {
		err = s.playMove(args)
	}
	if err != nil {
		s.log.Debug("command rejected", "input", line, "error", err)
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// playMove accepts "e2 e4", "e7 e8 n" or a single token such as "Nf3".
func (s *session) playMove(args []string) error {
	var (
		outcome engine.MoveOutcome
		err     error
	)
	switch len(args) {
	case 1:
		outcome, err = s.game.PlayNotation(args[0], s.cfg.Promotion)
	case 2, 3:
		outcome, err = s.playSquares(args)
	default:
		return fmt.Errorf("unknown command %q (type help)", args[0])
	}
	if err != nil {
		return err
	}

	s.hints = nil
	fmt.Fprintf(s.out, "%d. %s\n", (s.game.MoveCount()+1)/2, outcome.Notation)
	s.printBoard()
	s.printStatus()
	return nil
}

func (s *session) playSquares(args []string) (engine.MoveOutcome, error) {
	from, err := chess.ParseSquare(args[0])
	if err != nil {
		return engine.MoveOutcome{}, err
	}
	to, err := chess.ParseSquare(args[1])
	if err != nil {
		return engine.MoveOutcome{}, err
	}
	promo := s.cfg.Promotion
	if len(args) == 3 {
		if promo, err = config.ParsePromotion(args[2]); err != nil {
			return engine.MoveOutcome{}, err
		}
	}
	return s.game.Play(from, to, promo)
}

func (s *session) renderOptions() render.Options {
	return render.Options{
		Coordinates: s.cfg.Display.Coordinates,
		Highlight:   s.hints,
		Flip:        s.flip,
		SquareSize:  s.cfg.Display.SquareSize,
	}
}

func (s *session) printBoard() {
	board := s.game.Board()
	if err := render.Text(s.out, &board, s.renderOptions()); err != nil {
		s.log.Error("drawing board", "error", err)
	}
}

// printStatus reports whose turn it is and any check or terminal state.
func (s *session) printStatus() {
	toMove := s.game.ToMove()
	inCheck := s.game.IsInCheck(toMove)
	switch {
	case s.game.GameOver() && inCheck:
		fmt.Fprintf(s.out, "Checkmate! %v wins.\n", toMove.Opposite())
	case s.game.GameOver():
		fmt.Fprintln(s.out, "Stalemate! The game is drawn.")
	default:
		if inCheck {
			fmt.Fprintf(s.out, "Check to the %v king!\n", strings.ToLower(toMove.String()))
		}
		fmt.Fprintf(s.out, "Move #%d, %v to move\n", s.game.MoveCount()+1, toMove)
	}
}

func (s *session) cmdHelp([]string) error {
	fmt.Fprintln(s.out, "Enter a move as two squares (e2 e4, e7 e8 n) or in short form (Nf3, exd5, O-O).")
	fmt.Fprintln(s.out, "Commands:")
	for _, name := range []string{"board", "flip", "moves", "hint", "threats", "undo", "history", "fen", "new", "save", "load", "svg", "json", "help", "quit"} {
		cmd := commands[name]
		fmt.Fprintf(s.out, "  %-14s %s\n", cmd.usage, cmd.summary)
	}
	return nil
}

func (s *session) cmdBoard([]string) error {
	s.printBoard()
	s.printStatus()
	return nil
}

func (s *session) cmdFlip([]string) error {
	s.flip = !s.flip
	s.printBoard()
	return nil
}

func (s *session) cmdMoves([]string) error {
	moves := s.game.LegalMoves(s.game.ToMove())
	texts := make([]string, len(moves))
	for i, m := range moves {
		texts[i] = m.String()
	}
	fmt.Fprintf(s.out, "%d legal moves: %s\n", len(moves), strings.Join(texts, " "))
	return nil
}

func (s *session) cmdHint(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s", commands["hint"].usage)
	}
	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		return err
	}
	targets := s.game.LegalMovesFrom(sq)
	if len(targets) == 0 {
		fmt.Fprintf(s.out, "No legal moves from %v\n", sq)
		return nil
	}
	fmt.Fprintf(s.out, "%v can move to: %s\n", sq, joinSquares(targets))
	if s.cfg.Display.ShowHints {
		s.hints = targets
		s.printBoard()
	}
	return nil
}

func (s *session) cmdThreats([]string) error {
	threatened := s.game.ThreatenedPieces(s.game.ToMove())
	if len(threatened) == 0 {
		fmt.Fprintln(s.out, "No pieces under attack")
		return nil
	}
	fmt.Fprintf(s.out, "Under attack: %s\n", joinSquares(threatened))
	return nil
}

func (s *session) cmdUndo(args []string) error {
	steps := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("undo count %q is not a number", args[0])
		}
		steps = n
	}
	if err := s.game.UndoMove(steps); err != nil {
		return err
	}
	s.hints = nil
	fmt.Fprintf(s.out, "Took back %d move(s)\n", steps)
	s.printBoard()
	s.printStatus()
	return nil
}

func (s *session) cmdHistory([]string) error {
	if s.game.HistoryLen() == 0 {
		fmt.Fprintln(s.out, "No moves played")
		return nil
	}
	return record.WriteRecord(s.out, record.FromGame(s.game))
}

func (s *session) cmdFEN([]string) error {
	fmt.Fprintln(s.out, s.game.FEN())
	return nil
}

func (s *session) cmdNew([]string) error {
	s.game = engine.NewGame(s.opts...)
	s.hints = nil
	s.printBoard()
	s.printStatus()
	return nil
}

func (s *session) cmdSave(args []string) error {
	path, err := pathArg("save", args)
	if err != nil {
		return err
	}
	if err := record.Save(path, s.game); err != nil {
		return err
	}
	s.log.Info("game saved", "path", path, "plies", s.game.HistoryLen())
	fmt.Fprintf(s.out, "Saved %d moves to %s\n", s.game.HistoryLen(), path)
	return nil
}

func (s *session) cmdLoad(args []string) error {
	path, err := pathArg("load", args)
	if err != nil {
		return err
	}
	g, err := record.Load(path, s.opts...)
	if err != nil {
		return err
	}
	s.game = g
	s.hints = nil
	s.log.Info("game loaded", "path", path, "plies", g.HistoryLen())
	fmt.Fprintf(s.out, "Loaded %d moves from %s\n", g.HistoryLen(), path)
	s.printBoard()
	s.printStatus()
	return nil
}

func (s *session) cmdSVG(args []string) error {
	path, err := pathArg("svg", args)
	if err != nil {
		return err
	}
	board := s.game.Board()
	return writeFile(path, func(w io.Writer) error {
		return render.SVG(w, &board, s.renderOptions())
	})
}

func (s *session) cmdJSON(args []string) error {
	path, err := pathArg("json", args)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error {
		return record.WriteJSON(w, s.game)
	})
}

func (s *session) cmdQuit([]string) error {
	s.closed = true
	fmt.Fprintf(s.out, "Game ended after %d moves\n", s.game.MoveCount())
	return nil
}

func pathArg(name string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: %s", commands[name].usage)
	}
	return args[0], nil
}

// writeFile creates path and hands it to write, reporting the first error.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func joinSquares(squares []chess.Square) string {
	texts := make([]string, len(squares))
	for i, sq := range squares {
		texts[i] = sq.String()
	}
	return strings.Join(texts, " ")
}

// splitArgsLine splits a command line on whitespace, keeping single- or
// double-quoted runs together so file names may contain spaces.
func splitArgsLine(line string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inArg   bool
	)
	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
