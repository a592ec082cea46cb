package cmd

import (
	"github.com/spf13/cobra"

	"localsearch/internal/output"
)

func newStatsCmd() *cobra.Command {
	var recent, top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show index and query statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.New(cmd.OutOrStdout())

			a, cleanup, err := newApp(debugMode)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.loadIndex(); err != nil {
				return err
			}

			out.Statusf("📚", "Documents indexed: %d", a.DocumentCount())
			out.Statusf("", "index: %s", a.store.Path())

			if a.tel == nil {
				return nil
			}
			total, zero, err := a.tel.Totals()
			if err != nil {
				out.Warning("query statistics unavailable: " + err.Error())
				return nil
			}
			out.Newline()
			out.Statusf("🔍", "Queries recorded: %d (%d with no results)", total, zero)

			if records, err := a.tel.Recent(recent); err == nil && len(records) > 0 {
				out.Status("", "recent:")
				for _, r := range records {
					out.Statusf("", "  %q → %d results in %dms", r.Query, r.Results, r.DurationMS)
				}
			}

			if terms, err := a.tel.TopTerms(top); err == nil && len(terms) > 0 {
				out.Status("", "top terms:")
				for _, tc := range terms {
					out.Statusf("", "  %s (%d)", tc.Term, tc.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent queries to show")
	cmd.Flags().IntVar(&top, "top", 5, "Number of top query terms to show")

	return cmd
}
