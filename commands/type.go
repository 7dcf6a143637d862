package commands

import (
	"fmt"

	"github.com/josephlewis42/minish/core/vos"
)

// Type describes how each name would be interpreted as a command.
type Type struct{}

var _ Builtin = Type{}

func (Type) Name() string { return "type" }

func (Type) Run(s *Shell, stdio vos.VIO, args []string) int {
	cmd := &SimpleCommand{
		Use:   "type [-at] NAME...",
		Short: "Display information about command type.",
	}
	opts := cmd.Flags()
	all := opts.Bool('a', "display all locations containing an executable named NAME")
	kindOnly := opts.Bool('t', "output a single word: builtin, file or nothing")

	return cmd.Run(stdio, args, func() int {
		printer := ColorPrinter{Enabled: s.Color}
		w := stdio.Stdout()

		ret := 0
		for _, name := range opts.Args() {
			var locations []string
			if *all {
				locations = s.Resolver.ResolveAll(name)
			} else if path, ok := s.Resolver.Resolve(name); ok {
				locations = []string{path}
			}
			_, isBuiltin := LookupBuiltin(name)

			switch {
			case *kindOnly && isBuiltin:
				fmt.Fprintln(w, "builtin")
			case *kindOnly && len(locations) > 0:
				fmt.Fprintln(w, "file")
			case *kindOnly:
				ret = 1
			case !isBuiltin && len(locations) == 0:
				fmt.Fprintf(stdio.Stderr(), "%s: not found\n", name)
				ret = 1
			default:
				if isBuiltin {
					fmt.Fprintln(w, Describe(printer.Sprint(ColorBoldGreen, name)))
				}
				// Builtins shadow programs, only -a shows both.
				if isBuiltin && !*all {
					continue
				}
				for _, loc := range locations {
					fmt.Fprintf(w, "%s is %s\n", name, loc)
				}
			}
		}
		return ret
	})
}

func init() {
	mustAddBuiltin(Type{})
}
