package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// usageError marks a user-caused invocation mistake. The dispatcher renders
// it as a message plus the command listing and exits with ExitUsage.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// exactArgs validates that a command received exactly one positional per
// name, reporting the first missing name as a usage error.
func exactArgs(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			return usageErrorf("%s: missing required argument <%s>", cmd.Name(), names[len(args)])
		}
		if len(args) > len(names) {
			if len(names) == 0 {
				return usageErrorf("%s: takes no arguments", cmd.Name())
			}
			return usageErrorf("%s: expected %d argument(s), got %d", cmd.Name(), len(names), len(args))
		}
		return nil
	}
}
