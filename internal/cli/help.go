package cli

import (
	"github.com/spf13/cobra"
)

func (a *App) newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help",
		Short: "List available commands",
		Args:  exactArgs(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.writeUsage(cmd.OutOrStdout())
			return nil
		},
	}
}
