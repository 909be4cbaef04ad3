package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ewanmcn/wintermeds/internal/model"
	"github.com/ewanmcn/wintermeds/internal/report"
)

func boardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Per-health-board December/January comparison",
		Long: `Show each health board's December-to-January change, for one season or
for every season in the data.

Examples:
  wintermeds boards
  wintermeds boards --season 2019/2020`,
		RunE: runBoards,
	}

	cmd.Flags().String("season", "", "limit output to one season (YYYY/YYYY)")

	return cmd
}

func runBoards(cmd *cobra.Command, _ []string) error {
	seasonFilter, _ := cmd.Flags().GetString("season")

	result, err := runPipeline(cmd.Context(), true, "")
	if err != nil {
		return err
	}

	rows := result.BoardComparisons
	title := "Per-board December vs January"
	if seasonFilter != "" {
		rows = lo.Filter(rows, func(row model.ComparisonRow, _ int) bool {
			return row.Season == seasonFilter
		})
		title = fmt.Sprintf("Per-board December vs January, %s", seasonFilter)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.BoardComparisonTable(title, rows))

	if len(result.UnmatchedBoards) > 0 {
		fmt.Fprintf(out, "Boards with no prescription records: %d\n", len(result.UnmatchedBoards))
		for _, board := range result.UnmatchedBoards {
			fmt.Fprintf(out, "  %s (%s)\n", board.Name, board.Code)
		}
	}
	return nil
}
