package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <NAME>",
		Short: "Print a greeting for the given name",
		Args:  exactArgs("NAME"),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Hello, %s!\n", args[0])
			return nil
		},
	}
}
