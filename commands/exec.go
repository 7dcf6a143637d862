package commands

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/josephlewis42/minish/core/vos"
)

// runProgram starts the program at path and waits for it to finish.
func (s *Shell) runProgram(ctx context.Context, stdio vos.VIO, path string, args []string) int {
	cmd := exec.CommandContext(ctx, path, args[1:]...)
	cmd.Args = args
	cmd.Dir = s.wd
	cmd.Env = s.Env.Environ()
	cmd.Stdin = stdio.Stdin()
	cmd.Stdout = stdio.Stdout()
	cmd.Stderr = stdio.Stderr()

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		s.Logger.Printf("running %q: %v", path, err)
		fmt.Fprintf(stdio.Stderr(), "%s: %v\n", args[0], err)
		return 126
	}
}
