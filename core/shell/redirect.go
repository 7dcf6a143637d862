package shell

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingRedirectTarget is returned when a redirection operator is the
// last word on the line.
var ErrMissingRedirectTarget = errors.New("syntax error near unexpected token `newline'")

// Stream identifies a redirectable output stream.
type Stream int

const (
	Stdout Stream = 1
	Stderr Stream = 2
)

func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return fmt.Sprintf("fd%d", int(s))
	}
}

// Redirect sends one stream to a file.
type Redirect struct {
	Stream Stream
	Target string
	Append bool
}

// Flags returns the os.OpenFile flags for the redirect target.
func (r Redirect) Flags() int {
	flag := os.O_CREATE | os.O_WRONLY
	if r.Append {
		return flag | os.O_APPEND
	}
	return flag | os.O_TRUNC
}

// Command is a tokenized line with redirections removed.
type Command struct {
	Args []string

	// Redirects holds at most one entry per stream.
	Redirects map[Stream]Redirect
}

// Name returns the command name or "" for an empty command.
func (c *Command) Name() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

var redirectOperators = map[string]Redirect{
	">":   {Stream: Stdout},
	"1>":  {Stream: Stdout},
	">>":  {Stream: Stdout, Append: true},
	"1>>": {Stream: Stdout, Append: true},
	"2>":  {Stream: Stderr},
	"2>>": {Stream: Stderr, Append: true},
}

// ParseRedirects strips redirection operators and their targets from tokens.
// A later redirection of a stream replaces an earlier one.
func ParseRedirects(tokens []string) (*Command, error) {
	cmd := &Command{}

	for i := 0; i < len(tokens); i++ {
		redirect, ok := redirectOperators[tokens[i]]
		if !ok {
			cmd.Args = append(cmd.Args, tokens[i])
			continue
		}

		if i+1 >= len(tokens) {
			return nil, ErrMissingRedirectTarget
		}
		i++
		redirect.Target = tokens[i]

		if cmd.Redirects == nil {
			cmd.Redirects = make(map[Stream]Redirect)
		}
		cmd.Redirects[redirect.Stream] = redirect
	}

	return cmd, nil
}

// Parse tokenizes line and extracts its redirections.
func Parse(line string) (*Command, error) {
	return ParseRedirects(Tokenize(line))
}
