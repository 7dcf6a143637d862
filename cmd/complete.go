package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [PREFIX]",
	Short: "Print the builtins and programs starting with PREFIX.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		var prefix string
		if len(args) > 0 {
			prefix = args[0]
		}

		cfg, err := loadConfig(log.New(cmd.ErrOrStderr(), "", 0))
		if err != nil {
			return err
		}
		s, cleanup, err := newHostShell(cmd, cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		session := s.Index.NewSession(prefix)
		for {
			match, ok := session.Next()
			if !ok {
				break
			}
			fmt.Fprintln(cmd.OutOrStdout(), match)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
