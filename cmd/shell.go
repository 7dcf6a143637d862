package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/minish/commands"
	"github.com/josephlewis42/minish/core/complete"
	"github.com/josephlewis42/minish/core/config"
	"github.com/josephlewis42/minish/core/resolve"
	"github.com/josephlewis42/minish/core/vos"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exitFunc is replaced in tests.
var exitFunc = os.Exit

// newHostShell builds a shell over the host environment and filesystem.
// The returned func releases everything the shell opened.
func newHostShell(cmd *cobra.Command, cfg *config.Configuration) (*commands.Shell, func(), error) {
	var cleanup vos.ListCloser

	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	appLog, err := cfg.OpenAppLog()
	if err != nil {
		return nil, nil, err
	}
	if appLog != nil {
		cleanup = append(cleanup, appLog)
		logger = log.New(appLog, "", log.LstdFlags)
	}

	env := vos.NewMapEnv()
	if err := vos.CopyEnv(env, vos.OSEnv{}); err != nil {
		cleanup.Close()
		return nil, nil, err
	}
	if env.Getenv(vos.EnvPath) == "" {
		env.Setenv(vos.EnvPath, cfg.DefaultPath)
	}

	wd, err := os.Getwd()
	if err != nil {
		cleanup.Close()
		return nil, nil, err
	}

	s := commands.NewShell(commands.Options{
		Env:    env,
		FS:     vos.NewOsFs(),
		Dir:    wd,
		Stdin:  cmd.InOrStdin(),
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Logger: logger,
		Color:  cfg.ShouldColor(isTerminal(os.Stdout)),
	})

	return s, func() { cleanup.Close() }, nil
}

// runShell runs line if it's set, otherwise reads commands interactively.
// It returns the shell's exit status.
func runShell(cmd *cobra.Command, line string) (int, error) {
	logger := log.New(cmd.ErrOrStderr(), "", 0)
	cfg, err := loadConfig(logger)
	if err != nil {
		return 0, err
	}

	s, cleanup, err := newHostShell(cmd, cfg)
	if err != nil {
		return 0, err
	}
	defer cleanup()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if cfg.WatchPath {
		watcher, err := resolve.NewWatcher(s.Resolver, s.Logger)
		if err != nil {
			return 0, err
		}
		defer watcher.Close()
		watcher.Sync()
		go watcher.Run(ctx)
		s.Watcher = watcher
	}

	if cmd.Flags().Changed("command") {
		return s.RunScript(ctx, []string{line}), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:       cfg.Prompt,
		HistoryFile:  cfg.HistoryPath(),
		AutoComplete: &complete.ReadlineCompleter{Index: s.Index},
		Stdin:        readline.NewCancelableStdin(cmd.InOrStdin()),
		Stdout:       cmd.OutOrStdout(),
		Stderr:       cmd.ErrOrStderr(),
		FuncGetWidth: func() int {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 80
			}
			return width
		},
		FuncIsTerminal: func() bool {
			return isTerminal(os.Stdin)
		},
	})
	if err != nil {
		return 0, err
	}
	defer rl.Close()

	return s.RunInteractive(ctx, rl), nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
