package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ewanmcn/wintermeds/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every pipeline table as CSV files",
		Long: `Run the full pipeline and export the monthly totals, the seasonal and
per-board comparisons, and (when an education file is configured) the
combined analytical table as CSV files.

Examples:
  wintermeds export --out ./out
  wintermeds export --out ./out --education-file data/census_qualifications.csv`,
		RunE: runExport,
	}

	cmd.Flags().String("out", "out", "output directory for the CSV files")
	cmd.Flags().String("education-file", "", "census qualification table (.csv or .xlsx)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	outDir, _ := cmd.Flags().GetString("out")
	educationFile, _ := cmd.Flags().GetString("education-file")

	result, err := runPipeline(cmd.Context(), true, educationFile)
	if err != nil {
		return err
	}

	if err := report.WriteAllCSVs(outDir, result); err != nil {
		return err
	}

	slog.Info("Export complete",
		"dir", outDir,
		"monthly_rows", len(result.MonthlyTotals),
		"season_rows", len(result.SeasonComparisons),
		"board_rows", len(result.BoardComparisons),
		"combined_rows", len(result.Combined))
	return nil
}
