// Package render draws boards as text or SVG.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Options controls board drawing.
type Options struct {
	// Coordinates adds file letters and rank numbers around the board.
	Coordinates bool

	// Highlight marks squares, typically the destinations of a hint.
	Highlight []chess.Square

	// Flip draws the board from Black's side.
	Flip bool

	// SquareSize is the SVG square edge in pixels. Zero means DefaultSquareSize.
	SquareSize int
}

// DefaultSquareSize is used when Options.SquareSize is zero.
const DefaultSquareSize = 45

// SVG colours.
const (
	lightFill     = "#f0d9b5"
	darkFill      = "#b58863"
	highlightFill = "#cdd26a"
	labelFill     = "#404040"
)

func (o Options) highlighted() map[chess.Square]bool {
	set := make(map[chess.Square]bool, len(o.Highlight))
	for _, sq := range o.Highlight {
		set[sq] = true
	}
	return set
}

// square maps a drawing row and column to a board square.
func (o Options) square(row, col int) chess.Square {
	if o.Flip {
		return chess.NewSquare(chess.BoardSize-1-row, chess.BoardSize-1-col)
	}
	return chess.NewSquare(row, col)
}

func (o Options) fileHeader() string {
	var sb strings.Builder
	sb.WriteString(" ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(o.square(0, col).FileLetter() - 'a' + 'A')
	}
	return sb.String()
}

// Text writes the board as rows of piece letters, white upper-case, with
// '.' for empty squares. A highlighted empty square is drawn '*'; a
// highlighted piece is followed by '*' instead of a space.
func Text(w io.Writer, b *chess.Board, opts Options) error {
	bw := bufio.NewWriter(w)
	marks := opts.highlighted()

	if opts.Coordinates {
		fmt.Fprintf(bw, "\n%s\n", opts.fileHeader())
	}
	for row := 0; row < chess.BoardSize; row++ {
		rankDigit := opts.square(row, 0).RankDigit()
		if opts.Coordinates {
			fmt.Fprintf(bw, "%c ", rankDigit)
		}
		for col := 0; col < chess.BoardSize; col++ {
			sq := opts.square(row, col)
			p := b.PieceAt(sq)
			switch {
			case marks[sq] && p.IsEmpty():
				bw.WriteString("* ")
			case marks[sq]:
				fmt.Fprintf(bw, "%c*", p.Rune())
			default:
				fmt.Fprintf(bw, "%c ", p.Rune())
			}
		}
		if opts.Coordinates {
			fmt.Fprintf(bw, "%c", rankDigit)
		}
		bw.WriteByte('\n')
	}
	if opts.Coordinates {
		fmt.Fprintf(bw, "%s\n\n", opts.fileHeader())
	}
	return bw.Flush()
}

// glyphs holds the Unicode figurines indexed by colour then kind.
var glyphs = [2][7]string{
	chess.Black: {"", "♟", "♞", "♝", "♜", "♛", "♚"},
	chess.White: {"", "♙", "♘", "♗", "♖", "♕", "♔"},
}

// Glyph returns the Unicode figurine of p, or "" for an empty square.
func Glyph(p chess.Piece) string {
	if p.IsEmpty() {
		return ""
	}
	return glyphs[p.Colour()][p.Kind()]
}

// SVG writes the board as an SVG image with pieces drawn as figurines.
func SVG(w io.Writer, b *chess.Board, opts Options) error {
	size := opts.SquareSize
	if size <= 0 {
		size = DefaultSquareSize
	}
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	edge := chess.BoardSize*size + 2*margin
	marks := opts.highlighted()

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(edge, edge)
	canvas.Title("chess board")

	canvas.Gid("squares")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := opts.square(row, col)
			fill := lightFill
			if (sq.Rank()+sq.File())%2 == 1 {
				fill = darkFill
			}
			if marks[sq] {
				fill = highlightFill
			}
			canvas.Rect(margin+col*size, margin+row*size, size, size, "fill:"+fill)
		}
	}
	canvas.Gend()

	pieceStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size*4/5)
	canvas.Gid("pieces")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			glyph := Glyph(b.PieceAt(opts.square(row, col)))
			if glyph == "" {
				continue
			}
			canvas.Text(margin+col*size+size/2, margin+row*size+size/2, glyph, pieceStyle)
		}
	}
	canvas.Gend()

	if opts.Coordinates {
		labelStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx;fill:%s", size/3, labelFill)
		canvas.Gid("coordinates")
		for i := 0; i < chess.BoardSize; i++ {
			sq := opts.square(i, i)
			mid := margin + i*size + size/2
			canvas.Text(mid, margin/2, string(sq.FileLetter()), labelStyle)
			canvas.Text(mid, edge-margin/2, string(sq.FileLetter()), labelStyle)
			canvas.Text(margin/2, mid, string(sq.RankDigit()), labelStyle)
			canvas.Text(edge-margin/2, mid, string(sq.RankDigit()), labelStyle)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

// errWriter remembers the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}
