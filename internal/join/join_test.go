package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ewanmcn/wintermeds/internal/model"
)

func ival(n int64) *int64 { return &n }

func compRow(board, seasonLabel string, diff *int64) model.ComparisonRow {
	return model.ComparisonRow{Board: board, Season: seasonLabel, Difference: diff}
}

func TestAverages(t *testing.T) {
	t.Run("divides by observed seasons, not a constant", func(t *testing.T) {
		rows := []model.ComparisonRow{
			compRow("NHS Fife", "2019/2020", ival(-20)),
			compRow("NHS Fife", "2020/2021", ival(-30)),
			compRow("NHS Lothian", "2019/2020", ival(-10)),
		}

		averages := Averages(rows)
		require.Len(t, averages, 2)

		fife := averages[0]
		assert.Equal(t, "NHS Fife", fife.Board)
		assert.Equal(t, 2, fife.Seasons)
		require.NotNil(t, fife.Average)
		assert.InDelta(t, -25.0, *fife.Average, 1e-9)

		lothian := averages[1]
		assert.Equal(t, 1, lothian.Seasons)
		require.NotNil(t, lothian.Average)
		assert.InDelta(t, -10.0, *lothian.Average, 1e-9)
	})

	t.Run("undefined differences are excluded from the divisor", func(t *testing.T) {
		rows := []model.ComparisonRow{
			compRow("NHS Fife", "2019/2020", ival(-20)),
			compRow("NHS Fife", "2020/2021", nil), // January missing that year
		}

		averages := Averages(rows)
		require.Len(t, averages, 1)
		assert.Equal(t, 1, averages[0].Seasons)
		require.NotNil(t, averages[0].Average)
		assert.InDelta(t, -20.0, *averages[0].Average, 1e-9)
	})

	t.Run("board with no defined difference keeps a nil average", func(t *testing.T) {
		averages := Averages([]model.ComparisonRow{
			compRow("NHS Fife", "2019/2020", nil),
		})
		require.Len(t, averages, 1)
		assert.Nil(t, averages[0].Average)
		assert.Equal(t, 0, averages[0].Seasons)
	})
}

func TestCombine(t *testing.T) {
	refs := []model.EducationReference{
		{
			BoardName:        "Ayrshire and Arran",
			Population16Plus: 100000,
			Tiers:            map[model.QualificationTier]int64{model.TierNoQualifications: 25000},
		},
		{
			BoardName:        "Grampian",
			Population16Plus: 200000,
			Tiers:            map[model.QualificationTier]int64{model.TierNoQualifications: 30000},
		},
	}

	avg := -50.0
	averages := []BoardAverage{
		{Board: "NHS Ayrshire and Arran", Seasons: 4, Average: &avg},
		{Board: "NHS Borders", Seasons: 2, Average: &avg},
	}

	rows := Combine(averages, refs)
	require.Len(t, rows, 3)

	t.Run("prefix convention joins board names to census areas", func(t *testing.T) {
		row := rows[0]
		assert.Equal(t, "NHS Ayrshire and Arran", row.BoardName)
		require.NotNil(t, row.Population16Plus)
		assert.Equal(t, int64(100000), *row.Population16Plus)
		require.NotNil(t, row.EducationProportion)
		assert.InDelta(t, 25.0, *row.EducationProportion, 1e-9)
		require.NotNil(t, row.ScaledDifference)
		assert.InDelta(t, -50.0/100000, *row.ScaledDifference, 1e-12)
	})

	t.Run("board without census match keeps nil education fields", func(t *testing.T) {
		row := rows[1]
		assert.Equal(t, "NHS Borders", row.BoardName)
		require.NotNil(t, row.AverageDifference)
		assert.Nil(t, row.Population16Plus)
		assert.Nil(t, row.EducationProportion)
		assert.Nil(t, row.ScaledDifference)
	})

	t.Run("census area without prescription data is retained", func(t *testing.T) {
		row := rows[2]
		assert.Equal(t, "NHS Grampian", row.BoardName)
		assert.Nil(t, row.AverageDifference)
		require.NotNil(t, row.EducationProportion)
		assert.InDelta(t, 15.0, *row.EducationProportion, 1e-9)
	})
}

func TestCombine_NilAverageSkipsScaling(t *testing.T) {
	refs := []model.EducationReference{
		{
			BoardName:        "Fife",
			Population16Plus: 50000,
			Tiers:            map[model.QualificationTier]int64{model.TierNoQualifications: 10000},
		},
	}
	averages := []BoardAverage{{Board: "NHS Fife", Seasons: 0}}

	rows := Combine(averages, refs)
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].AverageDifference)
	assert.Nil(t, rows[0].ScaledDifference)
	require.NotNil(t, rows[0].EducationProportion, "census side still fills in")
}
