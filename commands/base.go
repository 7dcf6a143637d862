package commands

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"github.com/josephlewis42/minish/core/vos"
	getopt "github.com/pborman/getopt/v2"
)

// Builtin is a command implemented by the shell itself.
type Builtin interface {
	// Name is the word that invokes the builtin.
	Name() string

	// Run executes the builtin, args[0] is the builtin name. It returns the
	// exit status.
	Run(s *Shell, stdio vos.VIO, args []string) int
}

var allBuiltins = make(map[string]Builtin)

func mustAddBuiltin(b Builtin) {
	if _, ok := allBuiltins[b.Name()]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", b.Name()))
	}
	allBuiltins[b.Name()] = b
}

// LookupBuiltin returns the builtin invoked by name.
func LookupBuiltin(name string) (Builtin, bool) {
	b, ok := allBuiltins[name]
	return b, ok
}

// BuiltinNames returns the names of every builtin in sorted order.
func BuiltinNames() []string {
	var names []string
	for name := range allBuiltins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the one line description of a builtin.
func Describe(name string) string {
	return fmt.Sprintf("%s is a shell builtin", name)
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// NeverBail skips printing usage on bad flags and always runs the
	// callback.
	NeverBail bool

	flags    *getopt.Set
	showHelp *bool
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run the command, if flag parsing was successful call the callback.
func (s *SimpleCommand) Run(stdio vos.VIO, args []string, callback func() int) int {
	opts := s.Flags()
	if s.showHelp == nil {
		s.showHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(args, nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(stdio.Stderr(), "%s: %s\n", args[0], err)
		s.PrintHelp(stdio.Stderr())
		return 2
	}

	if *s.showHelp {
		s.PrintHelp(stdio.Stdout())
		return 0
	}

	return callback()
}

var (
	ColorBoldGreen = color.New(color.FgGreen, color.Bold)
	ColorBoldBlue  = color.New(color.FgBlue, color.Bold)
)

// ColorPrinter formats text in color when enabled.
type ColorPrinter struct {
	Enabled bool
}

// Sprint formats a in c if color is enabled.
func (p ColorPrinter) Sprint(c *color.Color, a ...interface{}) string {
	if !p.Enabled {
		return fmt.Sprint(a...)
	}
	// The library turns color off when stdout isn't a terminal, Enabled wins.
	forced := *c
	forced.EnableColor()
	return forced.Sprint(a...)
}
