package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/minish/core/complete"
	"github.com/josephlewis42/minish/core/resolve"
	"github.com/josephlewis42/minish/core/shell"
	"github.com/josephlewis42/minish/core/vos"
)

// ErrNoSuchDirectory is returned when changing to a missing directory.
var ErrNoSuchDirectory = errors.New("no such directory")

// Options configure a new Shell. Zero values are replaced with defaults that
// touch nothing on the host.
type Options struct {
	Env vos.VEnv
	FS  vos.VFS

	// Dir is the initial working directory.
	Dir string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives internal errors, never user facing messages.
	Logger *log.Logger

	Color bool
}

type Shell struct {
	Env      vos.VEnv
	FS       vos.VFS
	Resolver *resolve.Resolver
	Index    *complete.Index
	Logger   *log.Logger
	Color    bool

	// Watcher, if set, is synced with PATH before each line.
	Watcher *resolve.Watcher

	stdio   *vos.VIOAdapter
	wd      string
	lastRet int

	exited   bool
	exitCode int
}

// NewShell creates a shell.
func NewShell(opts Options) *Shell {
	if opts.Env == nil {
		opts.Env = vos.NewMapEnv()
	}
	if opts.FS == nil {
		opts.FS = vos.NewOsFs()
	}
	if opts.Dir == "" {
		opts.Dir = "/"
	}
	if opts.Stdin == nil {
		opts.Stdin = strings.NewReader("")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}

	searchPath := resolve.NewSearchPath(opts.Env)
	s := &Shell{
		Env:      opts.Env,
		FS:       opts.FS,
		Resolver: resolve.NewResolver(searchPath, opts.FS),
		Index:    complete.NewIndex(BuiltinNames(), searchPath, opts.FS),
		Logger:   opts.Logger,
		Color:    opts.Color,
		stdio:    vos.NewVIOAdapter(opts.Stdin, opts.Stdout, opts.Stderr),
		wd:       filepath.Clean(opts.Dir),
	}
	s.Resolver.Scanner().Getwd = s.Getwd
	s.Index.Scanner().Getwd = s.Getwd
	s.Env.Setenv(vos.EnvPWD, s.wd)
	return s
}

// Getwd returns the working directory.
func (s *Shell) Getwd() string {
	return s.wd
}

// Chdir changes the working directory, relative paths are resolved against
// the current one.
func (s *Shell) Chdir(dir string) error {
	abs := s.abs(dir)
	if !vos.DirExists(s.FS, abs) {
		return fmt.Errorf("%s: %w", dir, ErrNoSuchDirectory)
	}
	s.wd = abs
	s.Resolver.WorkingDirChanged()
	return s.Env.Setenv(vos.EnvPWD, abs)
}

func (s *Shell) abs(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(s.wd, name)
}

// LastStatus returns the exit status of the last command.
func (s *Shell) LastStatus() int {
	return s.lastRet
}

// Exited reports whether exit ran and the status it chose.
func (s *Shell) Exited() (int, bool) {
	return s.exitCode, s.exited
}

func (s *Shell) exit(code int) {
	s.exited = true
	s.exitCode = code
}

// RunLine runs a single command line and returns its exit status.
func (s *Shell) RunLine(ctx context.Context, line string) int {
	if s.Watcher != nil {
		s.Watcher.Sync()
	}

	cmd, err := shell.Parse(line)
	if err != nil {
		fmt.Fprintf(s.stdio.Stderr(), "minish: %v\n", err)
		s.lastRet = 2
		return s.lastRet
	}
	if len(cmd.Args) == 0 {
		return s.lastRet
	}

	stdio, closer, err := s.openRedirects(cmd)
	if err != nil {
		fmt.Fprintf(s.stdio.Stderr(), "minish: %v\n", err)
		s.lastRet = 1
		return s.lastRet
	}
	defer closer.Close()

	s.lastRet = s.dispatch(ctx, stdio, cmd.Args)
	return s.lastRet
}

func (s *Shell) dispatch(ctx context.Context, stdio vos.VIO, args []string) int {
	name := args[0]
	if builtin, ok := LookupBuiltin(name); ok {
		return builtin.Run(s, stdio, args)
	}

	path, ok := s.lookPath(name)
	if !ok {
		fmt.Fprintf(stdio.Stderr(), "%s: command not found\n", name)
		return 127
	}

	return s.runProgram(ctx, stdio, path, args)
}

// lookPath resolves name on the search path. Names containing a slash are
// used directly.
func (s *Shell) lookPath(name string) (string, bool) {
	if strings.Contains(name, "/") {
		info, err := s.FS.Stat(s.abs(name))
		if err != nil || !vos.IsExecutable(info.Mode()) {
			return "", false
		}
		return s.abs(name), true
	}

	return s.Resolver.Resolve(name)
}

// RunInteractive reads lines from rl until EOF or exit and returns the exit
// status of the shell.
func (s *Shell) RunInteractive(ctx context.Context, rl *readline.Instance) int {
	for !s.exited {
		line, err := rl.Readline()

		switch {
		case err == io.EOF:
			return s.lastRet // Input closed, quit.

		case err == readline.ErrInterrupt:
			// Interrupt clears line.
			continue

		case err != nil:
			s.Logger.Printf("Error readline: %v", err)
			continue

		case strings.TrimSpace(line) == "":
			continue

		default:
			s.RunLine(ctx, line)
		}
	}

	return s.exitCode
}

// RunScript runs lines in order until one of them calls exit.
func (s *Shell) RunScript(ctx context.Context, lines []string) int {
	for _, line := range lines {
		if s.exited {
			break
		}
		s.RunLine(ctx, line)
	}

	if s.exited {
		return s.exitCode
	}
	return s.lastRet
}
