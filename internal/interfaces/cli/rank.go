package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/laliga-forwards/internal/interfaces/csvexport"
)

func newRankCommand(opts *rootOptions) *cobra.Command {
	var export string
	var limit int

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank the built-in forwards",
		Long: `Ranks the built-in La Liga forwards with the active points table.

Examples:
  # Print the ranking
  forwards rank

  # Export the stats table as CSV
  forwards rank --export stats > stats.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit must be >= 0")
			}

			services, logger, err := opts.services(0)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			analysis, err := services.Ranking.BuiltinAnalysis(cmd.Context())
			if err != nil {
				return err
			}

			if export != "" {
				body, err := csvexport.Render(analysis, export)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(body)
				return err
			}

			ranking := analysis.Ranking
			if limit > 0 && limit < len(ranking) {
				ranking = ranking[:limit]
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tPLAYER\tSCORE")
			for idx, entry := range ranking {
				fmt.Fprintf(tw, "%d\t%s\t%d\n", idx+1, entry.Player, entry.Score)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "write a CSV table instead: scores or stats")
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the top N players (0 shows all)")
	return cmd
}
