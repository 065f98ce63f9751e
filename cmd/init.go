package cmd

import (
	"log"

	"github.com/josephlewis42/fesh/core/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		logger := log.New(cmd.ErrOrStderr(), "", 0)

		path := configPath()
		if err := config.Initialize(afero.NewOsFs(), path); err != nil {
			return err
		}

		logger.Printf("Wrote configuration to %s", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
