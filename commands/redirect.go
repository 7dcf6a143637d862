package commands

import (
	"fmt"
	"io"

	"github.com/josephlewis42/minish/core/shell"
	"github.com/josephlewis42/minish/core/vos"
)

// openRedirects opens the redirect targets of cmd and returns the streams
// the command should use.
func (s *Shell) openRedirects(cmd *shell.Command) (vos.VIO, io.Closer, error) {
	stdio := s.stdio
	var toClose vos.ListCloser

	for _, stream := range []shell.Stream{shell.Stdout, shell.Stderr} {
		redirect, ok := cmd.Redirects[stream]
		if !ok {
			continue
		}

		fd, err := s.FS.OpenFile(s.abs(redirect.Target), redirect.Flags(), 0644)
		if err != nil {
			toClose.Close()
			return nil, nil, fmt.Errorf("%s: %w", redirect.Target, err)
		}
		toClose = append(toClose, fd)

		switch stream {
		case shell.Stdout:
			stdio = stdio.WithStdout(fd)
		case shell.Stderr:
			stdio = stdio.WithStderr(fd)
		}
	}

	return stdio, toClose, nil
}
