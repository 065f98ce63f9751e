package cmd

import (
	"fmt"

	"github.com/josephlewis42/fesh/core/shell"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands handled by the shell itself.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, op := range shell.BuiltinOps {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", op.Usage(), op.Short())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
