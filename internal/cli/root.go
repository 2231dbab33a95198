// Package cli wires up the monarch-tools command-line front end: a fixed
// registry of subcommands built once at startup and a dispatcher that maps
// every outcome to a process exit code.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Process exit codes.
const (
	ExitSuccess  = 0 // command completed normally
	ExitInternal = 1 // unexpected failure inside a handler
	ExitUsage    = 2 // unknown command or malformed arguments
)

// App holds the command registry for a single process invocation. The
// registry is built once in New and never mutated afterwards; the order
// commands are registered in is the order help listings use.
type App struct {
	root     *cobra.Command
	commands []*cobra.Command
	log      *logrus.Logger
	verbose  bool
}

// New builds the application with its built-in commands registered.
func New() *App {
	a := &App{log: logrus.New()}
	a.log.SetLevel(logrus.WarnLevel)

	a.root = &cobra.Command{
		Use:     "monarch-tools",
		Short:   "Prepare bank and credit-card statement data for Monarch",
		Version: "0.1.0",
		Long: `monarch-tools processes bank and credit-card statement PDFs
into structured exports suitable for importing into Monarch.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.SetOutput(cmd.ErrOrStderr())
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			}
			a.log.WithField("command", cmd.Name()).Debug("dispatching")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageErrorf("missing command")
			}
			return usageErrorf("unknown command %q", args[0])
		},
	}
	a.root.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "enable debug logging")
	a.root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})
	a.root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		a.writeUsage(cmd.OutOrStdout())
	})

	a.register(newHelloCmd())
	a.register(newNameCmd())
	helpCmd := a.newHelpCmd()
	a.register(helpCmd)
	a.root.SetHelpCommand(helpCmd)
	a.register(a.newExtractCmd())

	return a
}

// register adds cmd to the registry. It panics if the name is taken, since
// a duplicate identifier is a programming error, not a runtime condition.
func (a *App) register(cmd *cobra.Command) {
	for _, existing := range a.commands {
		if existing.Name() == cmd.Name() {
			panic(fmt.Sprintf("command %q already registered", cmd.Name()))
		}
	}
	a.commands = append(a.commands, cmd)
	a.root.AddCommand(cmd)
}

// Run dispatches args to the matching command and returns the process exit
// code. It is the single error boundary: usage mistakes become ExitUsage
// with a usage listing on stderr, anything else a handler reports or panics
// with becomes ExitInternal with a one-line diagnostic.
func (a *App) Run(args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "monarch-tools: internal error: %v\n", r)
			code = ExitInternal
		}
	}()

	// cobra treats nil args as "use os.Args"; an empty invocation must stay
	// empty.
	if args == nil {
		args = []string{}
	}
	a.root.SetArgs(args)
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)

	err := a.root.Execute()
	if err == nil {
		return ExitSuccess
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintf(stderr, "monarch-tools: %s\n", uerr.msg)
		a.writeUsage(stderr)
		return ExitUsage
	}

	fmt.Fprintf(stderr, "monarch-tools: %v\n", err)
	return ExitInternal
}

// writeUsage renders the command listing in registration order.
func (a *App) writeUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: monarch-tools <command> [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, c := range a.commands {
		fmt.Fprintf(w, "  %-33s %s\n", c.Use, c.Short)
	}
}
