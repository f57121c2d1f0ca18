package record

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	Moves      []JSONMove `json:"moves,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	Notation   string `json:"notation"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     bool   `json:"castle,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
}

// GameToJSON converts the history of g.
func GameToJSON(g *engine.Game) *JSONGame {
	out := &JSONGame{
		InitialFEN: g.StartFEN(),
		FinalFEN:   g.FEN(),
		Result:     Result(g),
		PlyCount:   g.HistoryLen(),
		Moves:      make([]JSONMove, 0, g.HistoryLen()),
	}
	for i := 0; i < g.HistoryLen(); i++ {
		snap, _ := g.MoveAt(i)
		out.Moves = append(out.Moves, convertSnapshot(snap))
	}
	return out
}

func convertSnapshot(s engine.Snapshot) JSONMove {
	m := JSONMove{
		MoveNumber: s.State.MoveCount/2 + 1,
		Color:      colorName(s.Piece.Colour()),
		Notation:   s.Notation,
		From:       s.Move.From.String(),
		To:         s.Move.To.String(),
		Piece:      s.Piece.Kind().String(),
		Castle:     s.Castle,
		EnPassant:  s.EnPassant,
	}
	if !s.Captured.IsEmpty() {
		m.Captured = s.Captured.Kind().String()
	}
	if s.Promotion != chess.NoKind {
		m.Promotion = s.Promotion.String()
	}
	return m
}

func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// WriteJSON writes g as an indented JSON document.
func WriteJSON(w io.Writer, g *engine.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(g))
}
