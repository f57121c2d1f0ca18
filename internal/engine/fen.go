package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. The halfmove clock is
// accepted but not tracked. Each colour needs exactly one king, and the side
// that is not to move must not be in check. A position with no legal move
// for the side to move starts out game over.
func NewGameFromFEN(fen string, opts ...Option) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g := NewGame(opts...)
	g.board.Clear()

	if err := parsePiecePositions(&g.board, parts[0]); err != nil {
		return nil, err
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := countKings(&g.board, colour); n != 1 {
			return nil, fmt.Errorf("%d %v kings: %w", n, colour, errors.ErrInvalidFEN)
		}
		g.kings[colour] = g.board.FindKing(colour)
	}

	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(g, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(g, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(g, parts); err != nil {
		return nil, err
	}
	if idle := g.toMove.Opposite(); g.IsInCheck(idle) {
		return nil, fmt.Errorf("%v is in check but not to move: %w", idle, errors.ErrInvalidFEN)
	}
	g.gameOver = !g.HasLegalMoves(g.toMove)
	return g, nil
}

func countKings(board *chess.Board, colour chess.Colour) int {
	n := 0
	for _, p := range board.Squares {
		if p.Is(colour, chess.King) {
			n++
		}
	}
	return n
}

// parsePiecePositions parses the piece placement field of a FEN string.
// FEN lists the eighth rank first, which is rank index 0 here.
func parsePiecePositions(board *chess.Board, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for rank, row := range rows {
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				if file >= chess.BoardSize {
					return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				board.Set(chess.NewSquare(rank, file), chess.MakePiece(colour, kind))
				file++
			}
		}
		if file != chess.BoardSize {
			return fmt.Errorf("rank %d has %d files: %w", chess.BoardSize-rank, file, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.toMove = chess.White
	case "b":
		g.toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}

// parseCastlingRights turns the availability field into moved flags: a
// missing right marks its rook as moved, and a colour with no rights left,
// or whose king is off its home square, has its king marked as moved.
func parseCastlingRights(g *Game, parts []string) error {
	rights := "-"
	if len(parts) >= 3 {
		rights = parts[2]
	}
	var has [2][2]bool // [colour][kingside]
	if rights != "-" {
		for _, c := range rights {
			switch c {
			case 'K':
				has[chess.White][1] = true
			case 'Q':
				has[chess.White][0] = true
			case 'k':
				has[chess.Black][1] = true
			case 'q':
				has[chess.Black][0] = true
			default:
				return fmt.Errorf("invalid castling right %c: %w", c, errors.ErrInvalidFEN)
			}
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		home := chess.NewSquare(colour.BackRank(), kingFile)
		g.castling.ARookMoved[colour] = !has[colour][0]
		g.castling.HRookMoved[colour] = !has[colour][1]
		g.castling.KingMoved[colour] = g.kings[colour] != home || (!has[colour][0] && !has[colour][1])
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(g *Game, parts []string) error {
	g.enPassant = chess.NoSquare
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}
	g.enPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields. The
// fullmove number sets the ply count.
func parseClocks(g *Game, parts []string) error {
	if len(parts) >= 5 {
		if _, err := strconv.Atoi(parts[4]); err != nil {
			return fmt.Errorf("halfmove clock %q: %w", parts[4], errors.ErrInvalidFEN)
		}
	}
	fullmove := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fullmove number %q: %w", parts[5], errors.ErrInvalidFEN)
		}
		fullmove = n
	}
	g.moveCount = (fullmove - 1) * 2
	if g.toMove == chess.Black {
		g.moveCount++
	}
	return nil
}

// FEN converts the current position to a FEN string. The halfmove clock is
// always written as 0.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, g.toMove)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, g)
	sb.WriteByte(' ')
	sb.WriteString(g.enPassant.String())
	fmt.Fprintf(&sb, " 0 %d", g.moveCount/2+1)

	return sb.String()
}

// StartFEN returns the FEN of the position before the first recorded move,
// or of the current position when nothing has been played.
func (g *Game) StartFEN() string {
	first, ok := g.history.At(0)
	if !ok {
		return g.FEN()
	}
	var start Game
	start.RestoreState(first.State)
	return start.FEN()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.PieceAt(chess.NewSquare(rank, file))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteRune(piece.Rune())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, colour chess.Colour) {
	if colour == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder. A
// right is written only while its flags allow it and king and rook stand at home.
func writeCastlingRights(sb *strings.Builder, g *Game) {
	hasCastling := false
	for _, right := range []struct {
		colour   chess.Colour
		kingside bool
		letter   byte
	}{
		{chess.White, true, 'K'},
		{chess.White, false, 'Q'},
		{chess.Black, true, 'k'},
		{chess.Black, false, 'q'},
	} {
		rookFrom, _ := rookSquares(right.colour, right.kingside)
		home := chess.NewSquare(right.colour.BackRank(), kingFile)
		if g.castling.CanCastle(right.colour, right.kingside) &&
			g.board.PieceAt(home).Is(right.colour, chess.King) &&
			g.board.PieceAt(rookFrom).Is(right.colour, chess.Rook) {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}
