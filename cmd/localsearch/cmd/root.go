// Package cmd provides the CLI commands for localsearch.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"localsearch/internal/ui"
	"localsearch/internal/version"
)

// debugMode enables debug logging for all commands.
var debugMode bool

// NewRootCmd creates the root command for the localsearch CLI.
func NewRootCmd() *cobra.Command {
	var reindex bool

	cmd := &cobra.Command{
		Use:   "localsearch",
		Short: "Index and search your local documents",
		Long: `localsearch indexes the XML, XHTML, and PDF documents under your
configured document directories and answers free-text queries ranked
by TF-IDF relevance.

Running it with no arguments opens the interactive search UI.`,
		Version: version.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return runTUI(reindex)
		},
	}

	cmd.SetVersionTemplate("localsearch version {{.Version}}\n")

	cmd.Flags().BoolVar(&reindex, "reindex", false, "Force a full rebuild before opening the UI")
	cmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	cmd.AddCommand(newIndexCmd())
	cmd.AddCommand(newSearchCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// runTUI loads (or rebuilds) the index and starts the interactive UI.
func runTUI(reindex bool) error {
	if !ui.IsTTY(os.Stdout) {
		return fmt.Errorf("stdout is not a terminal; use 'localsearch search <terms>' instead")
	}

	a, cleanup, err := newApp(debugMode)
	if err != nil {
		return err
	}
	defer cleanup()

	if reindex {
		if _, err := a.Reindex(); err != nil {
			return err
		}
	} else if err := a.loadIndex(); err != nil {
		return err
	}

	return ui.Run(a, a.cfg.Theme)
}
