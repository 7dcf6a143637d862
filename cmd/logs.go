package cmd

import (
	"errors"
	"io"
	"log"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:     "logs",
	Aliases: []string{"log"},
	Short:   "Print the application log configured by app_log.",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig(log.New(cmd.ErrOrStderr(), "", 0))
		if err != nil {
			return err
		}
		if cfg.AppLog == "" {
			return errors.New("no app_log configured")
		}

		fd, err := cfg.ReadAppLog()
		if err != nil {
			return err
		}
		defer fd.Close()

		_, err = io.Copy(cmd.OutOrStdout(), fd)
		return err
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
