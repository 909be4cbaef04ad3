package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ewanmcn/wintermeds/internal/report"
)

func seasonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seasons",
		Short: "National December/January totals per winter season",
		Long: `Aggregate the filtered prescription records into national totals per
season and month, and show the December-to-January change for every winter
holiday season in the data.

Examples:
  # All seasons for the configured medication
  wintermeds seasons --data ./data --medication amoxicillin

  # Bar chart only
  wintermeds seasons --chart`,
		RunE: runSeasons,
	}

	cmd.Flags().Bool("chart", false, "render the seasonal bar chart only")

	return cmd
}

func runSeasons(cmd *cobra.Command, _ []string) error {
	chartOnly, _ := cmd.Flags().GetBool("chart")

	result, err := runPipeline(cmd.Context(), true, "")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if chartOnly {
		fmt.Fprintln(out, report.SeasonChart(result.SeasonTotals))
		return nil
	}

	fmt.Fprintln(out, report.SeasonChart(result.SeasonTotals))
	fmt.Fprintln(out, report.SeasonComparisonTable(result.SeasonComparisons))
	return nil
}
