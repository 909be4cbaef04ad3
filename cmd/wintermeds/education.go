package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ewanmcn/wintermeds/internal/common"
	"github.com/ewanmcn/wintermeds/internal/report"
)

func educationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "education",
		Short: "Join board averages with census qualification levels",
		Long: `Average each board's seasonal December-to-January difference across the
observed seasons and join it with the census qualification table by board
name. Boards without a census match (and census areas without prescription
data) stay in the output with missing fields, so join failures are visible.

Examples:
  wintermeds education --education-file data/census_qualifications.xlsx`,
		RunE: runEducation,
	}

	cmd.Flags().String("education-file", "", "census qualification table (.csv or .xlsx)")

	return cmd
}

func runEducation(cmd *cobra.Command, _ []string) error {
	educationFile, _ := cmd.Flags().GetString("education-file")
	if educationFile == "" && viper.GetString("data.education_file") == "" {
		return fmt.Errorf("%w: education file (--education-file or data.education_file)", common.ErrMissingConfig)
	}

	result, err := runPipeline(cmd.Context(), true, educationFile)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.EducationScatter(result.Combined))
	fmt.Fprintln(out, report.CombinedTable(result.Combined))
	return nil
}
