package cmd

import (
	"fmt"

	"github.com/josephlewis42/minish/commands"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the builtin commands of the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range commands.BuiltinNames() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, commands.Describe(name))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
