package commands

import (
	"fmt"

	"github.com/josephlewis42/minish/core/vos"
)

// Pwd prints the working directory.
type Pwd struct{}

var _ Builtin = Pwd{}

func (Pwd) Name() string { return "pwd" }

func (Pwd) Run(s *Shell, stdio vos.VIO, args []string) int {
	fmt.Fprintln(stdio.Stdout(), s.Getwd())
	return 0
}

func init() {
	mustAddBuiltin(Pwd{})
}
