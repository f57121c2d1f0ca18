package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// recorder captures failures so the failing side of each assertion can be
// checked.
type recorder struct {
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestAssertionsPass(t *testing.T) {
	r := &recorder{}
	sentinel := errors.New("sentinel")

	AssertEqual(r, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(r, nil, nil)
	AssertNoError(r, nil)
	AssertError(r, errors.New("boom"))
	AssertErrorIs(r, fmt.Errorf("wrapped: %w", sentinel), sentinel)
	AssertContains(r, "Check to the White king!", "White king")
	AssertNotContains(r, "Stalemate!", "Checkmate")
	AssertTrue(r, true)
	AssertFalse(r, false)
	AssertSquares(r, []chess.Square{chess.MustParseSquare("f3"), chess.MustParseSquare("h3")}, "f3 h3")
	AssertSquares(r, nil, "")
	AssertMoves(r, []chess.Move{{From: chess.MustParseSquare("e2"), To: chess.MustParseSquare("e4")}}, " e2e4 ")

	if len(r.failures) != 0 {
		t.Errorf("passing assertions reported %v", r.failures)
	}
}

func TestAssertionsFail(t *testing.T) {
	sentinel := errors.New("sentinel")
	e4 := chess.MustParseSquare("e4")

	tests := []struct {
		name   string
		assert func(T)
		want   string
	}{
		{"equal", func(r T) { AssertEqual(r, 1, 2) }, "mismatch (-want +got)"},
		{"no error", func(r T) { AssertNoError(r, sentinel) }, "unexpected error: sentinel"},
		{"error", func(r T) { AssertError(r, nil) }, "expected error but got nil"},
		{"error is", func(r T) { AssertErrorIs(r, errors.New("other"), sentinel) }, "error other is not sentinel"},
		{"contains", func(r T) { AssertContains(r, "abc", "x") }, `"abc" does not contain "x"`},
		{"not contains", func(r T) { AssertNotContains(r, "abc", "b") }, `"abc" should not contain "b"`},
		{"true", func(r T) { AssertTrue(r, false) }, "expected true"},
		{"false", func(r T) { AssertFalse(r, true) }, "expected false"},
		{"squares", func(r T) { AssertSquares(r, []chess.Square{e4}, "e5") }, `squares "e4", want "e5"`},
		{"moves", func(r T) { AssertMoves(r, nil, "e2e4") }, `moves "", want "e2e4"`},
		{"message", func(r T) { AssertTrue(r, false, "move %d", 3) }, "move 3: expected true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{}
			tt.assert(r)
			if len(r.failures) != 1 {
				t.Fatalf("got %d failures, want 1", len(r.failures))
			}
			if !strings.Contains(r.failures[0], tt.want) {
				t.Errorf("failure %q does not contain %q", r.failures[0], tt.want)
			}
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{"no args", nil, ""},
		{"single string", []any{"hello"}, "hello"},
		{"single int", []any{42}, "42"},
		{"format", []any{"ply %d: %s", 3, "Ke3"}, "ply 3: Ke3"},
		{"non-string first", []any{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
