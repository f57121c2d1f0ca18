package testutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// T is the part of testing.TB the assertions use. *testing.T satisfies it.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// fail reports a failure, prefixed with the caller's optional message.
func fail(t T, msgAndArgs []any, format string, args ...any) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Errorf("%s", text)
}

// AssertEqual compares got and want with cmp.Diff.
func AssertEqual(t T, got, want any, msgAndArgs ...any) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil.
func AssertError(t T, err error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t T, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, msgAndArgs, "error %v is not %v", err, target)
	}
}

// AssertContains fails if substr is not in got.
func AssertContains(t T, got, substr string, msgAndArgs ...any) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is in got.
func AssertNotContains(t T, got, substr string, msgAndArgs ...any) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t T, condition bool, msgAndArgs ...any) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t T, condition bool, msgAndArgs ...any) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

// AssertSquares compares a square list against space-separated algebraic
// squares, e.g. "f3 h3". Order matters. An empty want matches nil.
func AssertSquares(t T, got []chess.Square, want string, msgAndArgs ...any) {
	t.Helper()
	names := make([]string, len(got))
	for i, sq := range got {
		names[i] = sq.String()
	}
	if have := strings.Join(names, " "); have != strings.Join(strings.Fields(want), " ") {
		fail(t, msgAndArgs, "squares %q, want %q", have, want)
	}
}

// AssertMoves compares a move list against space-separated coordinate
// moves, e.g. "e2e4 g1f3".
func AssertMoves(t T, got []chess.Move, want string, msgAndArgs ...any) {
	t.Helper()
	names := make([]string, len(got))
	for i, m := range got {
		names[i] = m.String()
	}
	if have := strings.Join(names, " "); have != strings.Join(strings.Fields(want), " ") {
		fail(t, msgAndArgs, "moves %q, want %q", have, want)
	}
}

// formatMessage renders the optional message arguments. A leading string is
// used as a format for the rest.
func formatMessage(msgAndArgs ...any) string {
	switch {
	case len(msgAndArgs) == 0:
		return ""
	case len(msgAndArgs) == 1:
		return fmt.Sprint(msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs[0])
}
