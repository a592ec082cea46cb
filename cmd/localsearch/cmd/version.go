package cmd

import (
	"github.com/spf13/cobra"

	"localsearch/internal/output"
	"localsearch/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the localsearch version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output.New(cmd.OutOrStdout()).Statusf("", "localsearch %s", version.Version)
		},
	}
}
