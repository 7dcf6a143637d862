package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var whichCmd = &cobra.Command{
	Use:   "which NAME...",
	Short: "Print the program each name resolves to on $PATH.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(log.New(cmd.ErrOrStderr(), "", 0))
		if err != nil {
			return err
		}
		s, cleanup, err := newHostShell(cmd, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		missing := 0
		for _, name := range args {
			path, ok := s.Resolver.Resolve(name)
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s not found\n", name)
				missing++
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		}

		if missing > 0 {
			cmd.SilenceErrors = true
			return fmt.Errorf("%d of %d names not found", missing, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whichCmd)
}
