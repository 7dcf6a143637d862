package complete

import (
	"strings"

	"github.com/abiosoft/readline"
)

// ReadlineCompleter completes the command word of a readline buffer.
type ReadlineCompleter struct {
	Index *Index
}

var _ readline.AutoCompleter = (*ReadlineCompleter)(nil)

// Do implements readline.AutoCompleter. Each call is a fresh request: the
// index is rebuilt and the suffixes of every match are returned. A lone
// match gets a trailing space so the user can start typing arguments.
func (c *ReadlineCompleter) Do(line []rune, pos int) ([][]rune, int) {
	if pos > len(line) {
		pos = len(line)
	}

	head := line[:pos]
	start := strings.LastIndex(string(head), " ") + 1
	before := string(head)[:start]
	if strings.TrimSpace(before) != "" {
		// Only the command name is completed.
		return nil, 0
	}
	prefix := string(head)[start:]

	session := c.Index.NewSession(prefix)
	single := session.Remaining() == 1

	var out [][]rune
	for {
		match, ok := session.Next()
		if !ok {
			break
		}
		suffix := strings.TrimPrefix(match, prefix)
		if single {
			suffix += " "
		}
		out = append(out, []rune(suffix))
	}

	return out, len([]rune(prefix))
}
