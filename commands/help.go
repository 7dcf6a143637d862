package commands

import (
	"fmt"

	"github.com/josephlewis42/minish/core/vos"
)

// Help lists the builtins.
type Help struct{}

var _ Builtin = Help{}

func (Help) Name() string { return "help" }

func (Help) Run(s *Shell, stdio vos.VIO, args []string) int {
	printer := ColorPrinter{Enabled: s.Color}
	w := stdio.Stdout()

	fmt.Fprintln(w, "These shell commands are defined internally.")
	fmt.Fprintln(w, "Other names are looked up in the directories listed in $PATH.")
	fmt.Fprintln(w)
	for _, name := range BuiltinNames() {
		fmt.Fprintf(w, "  %s\n", printer.Sprint(ColorBoldBlue, name))
	}
	return 0
}

func init() {
	mustAddBuiltin(Help{})
}
