package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ewanmcn/wintermeds/internal/model"
	"github.com/ewanmcn/wintermeds/internal/pipeline"
)

// WriteAllCSVs exports every pipeline table into dir, one file per table.
func WriteAllCSVs(dir string, result *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := WriteMonthlyTotalsCSV(filepath.Join(dir, "monthly_totals.csv"), result.MonthlyTotals); err != nil {
		return err
	}
	if err := WriteComparisonCSV(filepath.Join(dir, "season_comparison.csv"), result.SeasonComparisons); err != nil {
		return err
	}
	if err := WriteComparisonCSV(filepath.Join(dir, "board_comparison.csv"), result.BoardComparisons); err != nil {
		return err
	}
	if len(result.Combined) > 0 {
		if err := WriteCombinedCSV(filepath.Join(dir, "education_combined.csv"), result.Combined); err != nil {
			return err
		}
	}
	return nil
}

// WriteMonthlyTotalsCSV writes one row per paid month.
func WriteMonthlyTotalsCSV(path string, rows []model.AggregateRow[model.PaidDate]) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"paid_month", "paid_quantity_sum"}); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{row.Key.String(), strconv.FormatInt(row.PaidQuantitySum, 10)}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteComparisonCSV writes wide comparison rows. Nil fields export as empty
// cells, never as zero.
func WriteComparisonCSV(path string, rows []model.ComparisonRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"board", "season", "december", "january", "difference", "percent_change"}); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.Board,
			row.Season,
			csvInt(row.DecemberValue),
			csvInt(row.JanuaryValue),
			csvInt(row.Difference),
			csvFloat(row.PercentChange),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteCombinedCSV writes the education join output.
func WriteCombinedCSV(path string, rows []model.CombinedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	w := csv.NewWriter(f)
	defer w.Flush()

	headers := []string{"board", "seasons_observed", "average_difference", "population_16_plus", "no_qualifications_pct", "scaled_difference"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, row := range rows {
		rec := []string{
			row.BoardName,
			strconv.Itoa(row.SeasonsObserved),
			csvFloat(row.AverageDifference),
			csvInt(row.Population16Plus),
			csvFloat(row.EducationProportion),
			csvFloat(row.ScaledDifference),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return w.Error()
}

func csvInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func csvFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
