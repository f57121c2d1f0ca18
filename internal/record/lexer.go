package record

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// token is one move text with the line it started on.
type token struct {
	text string
	line int
}

// lexer splits game text into move tokens. It drops brace comments,
// nested variations, semicolon comments, move numbers and glyphs, collects
// [Name "value"] tags and remembers the last termination marker.
type lexer struct {
	reader   *bufio.Reader
	line     int
	ravLevel int
	tags     map[string]string
	tokens   []token
	result   string
}

func newLexer(r io.Reader) *lexer {
	return &lexer{
		reader: bufio.NewReader(r),
		line:   1,
		tags:   make(map[string]string),
	}
}

// run consumes the whole input.
func (l *lexer) run() error {
	var word strings.Builder
	wordLine := 0
	flush := func() {
		if word.Len() > 0 {
			l.addWord(word.String(), wordLine)
			word.Reset()
		}
	}

	for {
		ch, err := l.reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		switch {
		case ch == '{':
			flush()
			if err := l.skipComment(); err != nil {
				return err
			}
		case ch == ';':
			flush()
			l.skipLine()
		case ch == '(':
			flush()
			l.ravLevel++
		case ch == ')':
			flush()
			if l.ravLevel == 0 {
				return l.syntaxError("move", "')'")
			}
			l.ravLevel--
		case ch == '[' && l.ravLevel == 0 && word.Len() == 0:
			if err := l.gatherTag(); err != nil {
				return err
			}
		case ch == '\n':
			flush()
			l.line++
		case ch == ' ' || ch == '\t' || ch == '\r':
			flush()
		default:
			if l.ravLevel > 0 {
				continue
			}
			if word.Len() == 0 {
				wordLine = l.line
			}
			word.WriteByte(ch)
		}
	}
	flush()

	if l.ravLevel > 0 {
		return l.syntaxError("')'", "end of input")
	}
	return nil
}

// skipComment discards text up to the closing brace. Brace comments do not nest.
func (l *lexer) skipComment() error {
	start := l.line
	for {
		ch, err := l.reader.ReadByte()
		if err != nil {
			return &errors.ParseError{
				Err:      errors.ErrMalformedNotation,
				Line:     start,
				Expected: "'}'",
				Got:      "end of input",
			}
		}
		switch ch {
		case '}':
			return nil
		case '\n':
			l.line++
		}
	}
}

// skipLine discards the rest of the current line.
func (l *lexer) skipLine() {
	for {
		ch, err := l.reader.ReadByte()
		if err != nil {
			return
		}
		if ch == '\n' {
			l.line++
			return
		}
	}
}

// gatherTag reads `Name "value"]` after the opening bracket.
func (l *lexer) gatherTag() error {
	text, err := l.reader.ReadString(']')
	if err != nil {
		return l.syntaxError("']'", "end of input")
	}
	l.line += strings.Count(text, "\n")
	text = strings.TrimSuffix(text, "]")

	name, value, ok := strings.Cut(strings.TrimSpace(text), " ")
	value = strings.TrimSpace(value)
	if !ok || len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return l.syntaxError("tag", "["+text+"]")
	}
	l.tags[name] = strings.ReplaceAll(value[1:len(value)-1], `\"`, `"`)
	return nil
}

// addWord keeps the move part of a word. Numbers and glyphs are dropped and
// a result marker is kept aside.
func (l *lexer) addWord(word string, line int) {
	if isResult(word) {
		l.result = word
		return
	}
	if strings.HasPrefix(word, "$") {
		return
	}
	word = stripMoveNumber(word)
	if strings.Trim(word, "!?+#") == "" {
		return
	}
	l.tokens = append(l.tokens, token{text: word, line: line})
}

func (l *lexer) syntaxError(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrMalformedNotation,
		Line:     l.line,
		Expected: expected,
		Got:      got,
	}
}

// isResult reports whether word is a game termination marker.
func isResult(word string) bool {
	switch word {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}

// stripMoveNumber removes a leading "12." or "12..." prefix and drops bare
// numbers. Castling written with zeros has no dot and is left alone.
func stripMoveNumber(word string) string {
	digits := 0
	for digits < len(word) && word[digits] >= '0' && word[digits] <= '9' {
		digits++
	}
	switch {
	case digits == 0:
		return word
	case digits == len(word):
		return ""
	case word[digits] != '.':
		return word
	}
	return strings.TrimLeft(word[digits:], ".")
}
