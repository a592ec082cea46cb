package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"localsearch/internal/output"
)

func newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Rebuild the document index",
		Long: `Walk every configured document directory, rebuild the index from
scratch, and persist it. Any previously persisted index is replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.New(cmd.OutOrStdout())

			a, cleanup, err := newApp(debugMode)
			if err != nil {
				return err
			}
			defer cleanup()

			start := time.Now()
			docs, err := a.Reindex()
			if err != nil {
				return err
			}

			out.Statusf("📚", "Indexed %d documents in %s", docs, time.Since(start).Round(time.Millisecond))
			out.Statusf("", "index: %s", a.store.Path())
			for _, root := range a.cfg.Roots(a.paths) {
				out.Statusf("", "root:  %s", root)
			}
			return nil
		},
	}
}
