package commands

import (
	"fmt"
	"strconv"

	"github.com/josephlewis42/minish/core/vos"
)

// Exit quits the shell with the given status, defaulting to the status of
// the last command.
type Exit struct{}

var _ Builtin = Exit{}

func (Exit) Name() string { return "exit" }

func (Exit) Run(s *Shell, stdio vos.VIO, args []string) int {
	switch len(args) {
	case 1:
		s.exit(s.LastStatus())
	case 2:
		code, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(stdio.Stderr(), "%s: %s: numeric argument required\n", args[0], args[1])
			s.exit(2)
			return 2
		}
		s.exit(code & 0xff)
	default:
		fmt.Fprintf(stdio.Stderr(), "%s: too many arguments\n", args[0])
		return 1
	}

	return s.exitCode
}

func init() {
	mustAddBuiltin(Exit{})
}
