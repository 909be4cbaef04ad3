// Package pipeline wires the loading, labeling, aggregation, comparison and
// join stages into one batch run. Every run is independent and stateless:
// identical inputs always produce identical output rows.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/schollz/progressbar/v3"

	"github.com/ewanmcn/wintermeds/internal/aggregate"
	"github.com/ewanmcn/wintermeds/internal/compare"
	"github.com/ewanmcn/wintermeds/internal/join"
	"github.com/ewanmcn/wintermeds/internal/loader"
	"github.com/ewanmcn/wintermeds/internal/model"
)

// Config selects the input files and the medication under analysis.
type Config struct {
	DataDir        string
	ExtractPattern string
	Medication     string
	BoardsFile     string
	EducationFile  string // optional; empty skips the education join
	Workers        int    // concurrent extract loads; <=1 loads serially
	Progress       bool   // show a progress bar while loading extracts
}

// Result holds every table the pipeline produces. The report layer consumes
// these plain rows; nothing here depends on how they are rendered.
type Result struct {
	Records           []model.PrescriptionRecord
	UnmatchedBoards   []model.HealthBoard
	MonthlyTotals     []model.AggregateRow[model.PaidDate]
	SeasonTotals      []model.AggregateRow[model.SeasonLabel]
	SeasonComparisons []model.ComparisonRow
	BoardComparisons  []model.ComparisonRow
	BoardAverages     []join.BoardAverage
	Combined          []model.CombinedRow
}

// Run executes the full pipeline once.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	files, err := loader.DiscoverExtracts(cfg.DataDir, cfg.ExtractPattern)
	if err != nil {
		return nil, err
	}

	records, err := loadExtracts(ctx, cfg, files)
	if err != nil {
		return nil, err
	}

	boards, err := loader.ReadBoards(cfg.BoardsFile)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 && cfg.Medication != "" {
		slog.Warn("No records matched the requested medication",
			"medication", cfg.Medication)
	}

	merged := loader.Merge(records, boards)

	slog.Info("Loaded prescription data",
		"files", len(files),
		"records", len(merged.Records),
		"boards", len(boards),
		"boards_without_records", len(merged.UnmatchedBoards))

	result := &Result{
		Records:         merged.Records,
		UnmatchedBoards: merged.UnmatchedBoards,
		MonthlyTotals:   aggregate.Sum(merged.Records, aggregate.ByDate),
		SeasonTotals:    aggregate.Sum(merged.Records, aggregate.BySeasonMonth),
	}
	result.SeasonComparisons = compare.Pivot(result.SeasonTotals)
	result.BoardComparisons = compare.PivotBoards(
		aggregate.Sum(merged.Records, aggregate.ByBoardSeasonMonth))
	result.BoardAverages = join.Averages(result.BoardComparisons)

	if cfg.EducationFile != "" {
		refs, err := loader.ReadEducation(cfg.EducationFile)
		if err != nil {
			return nil, err
		}
		result.Combined = join.Combine(result.BoardAverages, refs)
	}

	return result, nil
}

// loadExtracts reads every extract file, fanning out across a small worker
// pool when configured. The files are independent and read-only, so the only
// coordination needed is collecting results; everything after loading is
// strictly sequential. Results keep the discovery order regardless of which
// worker finished first.
func loadExtracts(ctx context.Context, cfg Config, files []string) ([]model.PrescriptionRecord, error) {
	reader := loader.NewExtractReader(cfg.Medication)

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(len(files)), "loading extracts")
	}

	perFile := make([][]model.PrescriptionRecord, len(files))
	errs := make([]error, len(files))

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(files) {
		workers = len(files)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				perFile[i], errs[i] = reader.ReadFile(ctx, files[i])
				if bar != nil {
					_ = bar.Add(1)
				}
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", files[i], err)
		}
	}

	var records []model.PrescriptionRecord
	for _, recs := range perFile {
		records = append(records, recs...)
	}
	return records, nil
}
