package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestPipelineConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	t.Run("defaults derive from the data directory", func(t *testing.T) {
		viper.Reset()
		viper.Set("data.dir", "/srv/extracts")

		cfg := pipelineConfig(false, "")
		assert.Equal(t, "/srv/extracts", cfg.DataDir)
		assert.Equal(t, filepath.Join("/srv/extracts", "hb_lookup.csv"), cfg.BoardsFile)
		assert.Empty(t, cfg.EducationFile)
		assert.Equal(t, 4, cfg.Workers)
	})

	t.Run("explicit settings win", func(t *testing.T) {
		viper.Reset()
		viper.Set("data.dir", "/srv/extracts")
		viper.Set("data.boards_file", "/etc/boards.csv")
		viper.Set("data.education_file", "/etc/census.csv")
		viper.Set("data.workers", 2)
		viper.Set("data.medication", "amoxicillin")

		cfg := pipelineConfig(true, "")
		assert.Equal(t, "/etc/boards.csv", cfg.BoardsFile)
		assert.Equal(t, "/etc/census.csv", cfg.EducationFile)
		assert.Equal(t, 2, cfg.Workers)
		assert.Equal(t, "amoxicillin", cfg.Medication)
		assert.True(t, cfg.Progress)
	})

	t.Run("flag override beats the config key", func(t *testing.T) {
		viper.Reset()
		viper.Set("data.education_file", "/etc/census.csv")

		cfg := pipelineConfig(false, "/tmp/other.xlsx")
		assert.Equal(t, "/tmp/other.xlsx", cfg.EducationFile)
	})
}
