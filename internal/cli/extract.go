package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/example/monarch-tools/internal/config"
)

// newExtractCmd builds the extract command. Extraction itself is not
// implemented yet: the command validates its arguments, resolves the
// institution against the configured table, and reports what it would do.
func (a *App) newExtractCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "extract <INSTITUTION> <FILE_PATH>",
		Short: "Extract transactions from a statement PDF (stub)",
		Args:  exactArgs("INSTITUTION", "FILE_PATH"),
		RunE: func(cmd *cobra.Command, args []string) error {
			institution, statement := args[0], args[1]
			if statement == "" {
				return usageErrorf("extract: <FILE_PATH> must not be empty")
			}

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			inst, ok := cfg.Institutions[institution]
			if !ok {
				return usageErrorf("extract: unknown institution %q (valid: %s)",
					institution, strings.Join(cfg.InstitutionNames(), ", "))
			}

			a.log.WithFields(logrus.Fields{
				"institution": institution,
				"statement":   statement,
			}).Debug("extract requested")

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "extract: not yet implemented")
			fmt.Fprintf(w, "  institution: %s (%s)\n", institution, inst.DisplayName)
			fmt.Fprintf(w, "  statement:   %s\n", statement)
			fmt.Fprintf(w, "  would write: %s\n", outputPath(statement, cfg.OutputSuffix))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML institution table")

	return cmd
}

// outputPath derives the export path next to the statement: the statement
// path with its extension replaced by the configured suffix.
func outputPath(statement, suffix string) string {
	return strings.TrimSuffix(statement, filepath.Ext(statement)) + suffix
}
