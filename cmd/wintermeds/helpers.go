package main

import (
	"context"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ewanmcn/wintermeds/internal/pipeline"
)

// pipelineConfig assembles the pipeline configuration from flags, config
// file and environment. educationOverride, when set, wins over the
// data.education_file config key.
func pipelineConfig(progress bool, educationOverride string) pipeline.Config {
	dataDir := viper.GetString("data.dir")

	boards := viper.GetString("data.boards_file")
	if boards == "" {
		boards = filepath.Join(dataDir, "hb_lookup.csv")
	}

	education := educationOverride
	if education == "" {
		education = viper.GetString("data.education_file")
	}

	pattern := viper.GetString("data.extract_pattern")

	workers := viper.GetInt("data.workers")
	if workers == 0 {
		workers = 4
	}

	return pipeline.Config{
		DataDir:        dataDir,
		ExtractPattern: pattern,
		Medication:     viper.GetString("data.medication"),
		BoardsFile:     boards,
		EducationFile:  education,
		Workers:        workers,
		Progress:       progress,
	}
}

// runPipeline executes the full pipeline with the resolved configuration.
func runPipeline(ctx context.Context, progress bool, educationOverride string) (*pipeline.Result, error) {
	return pipeline.Run(ctx, pipelineConfig(progress, educationOverride))
}
