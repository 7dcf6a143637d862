package shell

import "strings"

type lexState int

const (
	stateUnquoted lexState = iota
	stateSingleQuoted
	stateDoubleQuoted
	stateEscape
)

// lexer holds the state of a single Tokenize call.
type lexer struct {
	input []rune
	pos   int

	state lexState
	// resume is the state to return to after an escaped character.
	resume lexState

	token  strings.Builder
	tokens []string
}

// Tokenize splits line into words, stripping quotes and resolving escapes.
// The first word is the command name. It never fails.
func Tokenize(line string) []string {
	lx := &lexer{input: []rune(line)}
	for lx.pos = 0; lx.pos < len(lx.input); lx.pos++ {
		ch := lx.input[lx.pos]

		switch lx.state {
		case stateUnquoted:
			lx.unquoted(ch)
		case stateSingleQuoted:
			lx.singleQuoted(ch)
		case stateDoubleQuoted:
			lx.doubleQuoted(ch)
		case stateEscape:
			lx.append(ch)
			lx.state = lx.resume
		}
	}

	lx.flush()
	return lx.tokens
}

func (lx *lexer) unquoted(ch rune) {
	switch ch {
	case ' ':
		lx.flush()
	case '\\':
		lx.escape()
	case '\'':
		lx.state = stateSingleQuoted
	case '"':
		lx.state = stateDoubleQuoted
	default:
		lx.append(ch)
	}
}

func (lx *lexer) singleQuoted(ch rune) {
	if ch == '\'' {
		lx.state = stateUnquoted
		return
	}
	lx.append(ch)
}

func (lx *lexer) doubleQuoted(ch rune) {
	switch {
	case ch == '"':
		lx.state = stateUnquoted
	case ch == '\\' && isDoubleQuoteEscapable(lx.peek()):
		lx.escape()
	default:
		lx.append(ch)
	}
}

// escape consumes the backslash and arranges for the next rune to be taken
// literally before returning to the current state.
func (lx *lexer) escape() {
	lx.resume = lx.state
	lx.state = stateEscape
}

// peek returns the rune after the current one or 0 at end of input.
func (lx *lexer) peek() rune {
	if lx.pos+1 >= len(lx.input) {
		return 0
	}
	return lx.input[lx.pos+1]
}

func (lx *lexer) append(ch rune) {
	lx.token.WriteRune(ch)
}

// flush pushes the in-progress token if it's non-empty.
func (lx *lexer) flush() {
	if lx.token.Len() == 0 {
		return
	}
	lx.tokens = append(lx.tokens, lx.token.String())
	lx.token.Reset()
}

func isDoubleQuoteEscapable(ch rune) bool {
	switch ch {
	case '\\', '$', '"':
		return true
	default:
		return false
	}
}
