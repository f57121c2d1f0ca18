package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Snapshot records one applied move: the complete position before it plus
// the metadata describing what it did.
type Snapshot struct {
	State State

	Move     chess.Move
	Piece    chess.Piece
	Captured chess.Piece

	Castle   bool
	RookFrom chess.Square
	RookTo   chess.Square

	EnPassant         bool
	EnPassantCaptured chess.Square

	Promotion chess.Kind
	Notation  string
}

// History is a stack of snapshots, most recent last.
type History struct {
	entries []Snapshot
}

// Push records a snapshot.
func (h *History) Push(s Snapshot) {
	h.entries = append(h.entries, s)
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	last := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return last, true
}

// Len returns the number of snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Last returns the most recent snapshot without removing it.
func (h *History) Last() (Snapshot, bool) {
	if len(h.entries) == 0 {
		return Snapshot{}, false
	}
	return h.entries[len(h.entries)-1], true
}

// At returns the i-th snapshot, oldest first.
func (h *History) At(i int) (Snapshot, bool) {
	if i < 0 || i >= len(h.entries) {
		return Snapshot{}, false
	}
	return h.entries[i], true
}

// Notations returns the notation of every recorded move, oldest first.
func (h *History) Notations() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Notation
	}
	return out
}
