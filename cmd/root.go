package cmd

import (
	"log"

	"github.com/josephlewis42/minish/core/config"
	"github.com/spf13/cobra"
)

var (
	cfgPath     string
	commandLine string
)

func loadConfig(logger *log.Logger) (*config.Configuration, error) {
	return config.LoadOrDefault(cfgPath, logger)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minish",
	Short: "A minimal interactive shell",
	Long: `A minimal interactive shell with quoting, output redirection, a cached
PATH lookup and tab completion of builtins and programs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		code, err := runShell(cmd, commandLine)
		if err != nil {
			return err
		}
		if code != 0 {
			exitFunc(code)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
