// Package engine implements the chess rules: movement, attack detection,
// legality with rejection reasons, legal move generation, terminal-state
// detection, and move execution with reversible history.
package engine

import (
	"io"
	"log/slog"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// CastlingFlags records, per colour, whether the king or either rook has
// left its home square (or the rook was captured there). Index by chess.Colour.
type CastlingFlags struct {
	KingMoved  [2]bool
	ARookMoved [2]bool
	HRookMoved [2]bool
}

// CanCastle reports whether the flags still permit castling on the given side.
func (f CastlingFlags) CanCastle(colour chess.Colour, kingside bool) bool {
	if f.KingMoved[colour] {
		return false
	}
	if kingside {
		return !f.HRookMoved[colour]
	}
	return !f.ARookMoved[colour]
}

// State is the complete mutable position of a game. Restoring a State
// reproduces the position bit for bit.
type State struct {
	Board     chess.Board
	ToMove    chess.Colour
	MoveCount int
	Kings     [2]chess.Square
	Castling  CastlingFlags
	EnPassant chess.Square
}

// Game owns a position and its history. A Game is not safe for concurrent
// mutation; read-only queries may fan out internally (see WithWorkers).
type Game struct {
	board     chess.Board
	toMove    chess.Colour
	moveCount int
	kings     [2]chess.Square
	castling  CastlingFlags
	enPassant chess.Square
	gameOver  bool
	history   History

	workers int
	logger  *slog.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithWorkers sets how many goroutines legal move generation may use.
// Values below 2 keep generation sequential.
func WithWorkers(n int) Option {
	return func(g *Game) {
		if n >= 1 {
			g.workers = n
		}
	}
}

// WithLogger sets the logger used for move and game-over events.
func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGame creates a game in the standard starting position with White to move.
func NewGame(opts ...Option) *Game {
	g := &Game{
		workers: 1,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

// reset puts the standard starting position on the board and clears history.
func (g *Game) reset() {
	g.board.SetupInitialPosition()
	g.toMove = chess.White
	g.moveCount = 0
	g.kings[chess.White] = g.board.FindKing(chess.White)
	g.kings[chess.Black] = g.board.FindKing(chess.Black)
	g.castling = CastlingFlags{}
	g.enPassant = chess.NoSquare
	g.gameOver = false
	g.history = History{}
}

// SaveState captures the current position.
func (g *Game) SaveState() State {
	return State{
		Board:     g.board,
		ToMove:    g.toMove,
		MoveCount: g.moveCount,
		Kings:     g.kings,
		Castling:  g.castling,
		EnPassant: g.enPassant,
	}
}

// RestoreState replaces the current position. History is left untouched.
func (g *Game) RestoreState(s State) {
	g.board = s.Board
	g.toMove = s.ToMove
	g.moveCount = s.MoveCount
	g.kings = s.Kings
	g.castling = s.Castling
	g.enPassant = s.EnPassant
}

// PieceAt returns the piece on sq, or NoPiece.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.board.PieceAt(sq)
}

// Board returns a copy of the current board.
func (g *Game) Board() chess.Board {
	return g.board
}

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour {
	return g.toMove
}

// MoveCount returns the number of plies played since the start position.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// KingSquare returns the cached square of colour's king.
func (g *Game) KingSquare(colour chess.Colour) chess.Square {
	return g.kings[colour]
}

// EnPassant returns the current en passant target square, or NoSquare.
func (g *Game) EnPassant() chess.Square {
	return g.enPassant
}

// Castling returns the castling bookkeeping flags.
func (g *Game) Castling() CastlingFlags {
	return g.castling
}

// GameOver reports whether the last move ended the game by checkmate or stalemate.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// HistoryLen returns the number of moves that can be undone.
func (g *Game) HistoryLen() int {
	return g.history.Len()
}

// LastMove returns the most recent history record.
func (g *Game) LastMove() (Snapshot, bool) {
	return g.history.Last()
}

// Moves returns the notation of every move played, oldest first.
func (g *Game) Moves() []string {
	return g.history.Notations()
}

// MoveAt returns the i-th history record, oldest first.
func (g *Game) MoveAt(i int) (Snapshot, bool) {
	return g.history.At(i)
}
