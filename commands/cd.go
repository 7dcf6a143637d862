package commands

import (
	"fmt"
	"strings"

	"github.com/josephlewis42/minish/core/vos"
)

// Cd changes the shell's working directory. No argument or ~ goes to $HOME.
type Cd struct{}

var _ Builtin = Cd{}

func (Cd) Name() string { return "cd" }

func (Cd) Run(s *Shell, stdio vos.VIO, args []string) int {
	var target string
	switch len(args) {
	case 1:
		target = "~"
	case 2:
		target = args[1]
	default:
		fmt.Fprintf(stdio.Stderr(), "%s: too many arguments\n", args[0])
		return 1
	}

	dir := s.expandHome(target)
	if err := s.Chdir(dir); err != nil {
		fmt.Fprintf(stdio.Stderr(), "%s: %s: No such file or directory\n", args[0], target)
		return 1
	}
	return 0
}

// expandHome replaces a leading ~ with $HOME, read at the time of the call.
func (s *Shell) expandHome(p string) string {
	switch {
	case p == "~":
		return s.Env.Getenv(vos.EnvHome)
	case strings.HasPrefix(p, "~/"):
		return s.Env.Getenv(vos.EnvHome) + p[1:]
	default:
		return p
	}
}

func init() {
	mustAddBuiltin(Cd{})
}
