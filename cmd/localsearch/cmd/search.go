package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"localsearch/internal/output"
)

// searchOptions holds CLI flags for search.
type searchOptions struct {
	limit  int
	format string // "text", "json"
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions

	cmd := &cobra.Command{
		Use:   "search <term>...",
		Short: "Search the indexed documents",
		Long: `Search the indexed documents and print paths ranked by TF-IDF
relevance. Terms are matched after the same lowercasing and English
stemming applied at index time.

Examples:
  localsearch search compiler design
  localsearch search "signal processing" --limit 5 --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of results (0 = all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")

	return cmd
}

func runSearch(cmd *cobra.Command, terms []string, opts searchOptions) error {
	out := output.New(cmd.OutOrStdout())

	a, cleanup, err := newApp(debugMode)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := a.loadIndex(); err != nil {
		return err
	}

	results := a.Search(terms)
	if opts.limit > 0 && len(results) > opts.limit {
		results = results[:opts.limit]
	}

	switch opts.format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		if len(results) == 0 {
			out.Status("", "No results.")
			return nil
		}
		for i, path := range results {
			out.Statusf("", "%d. %s", i+1, path)
		}
		return nil
	}
}
