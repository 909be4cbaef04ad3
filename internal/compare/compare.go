// Package compare pivots long-format monthly aggregates into wide
// December/January comparison rows.
package compare

import (
	"github.com/ewanmcn/wintermeds/internal/aggregate"
	"github.com/ewanmcn/wintermeds/internal/model"
)

// Pivot reshapes national (season, month) aggregates into one wide row per
// season. A season missing either month keeps nil for that month, and its
// difference and percent change stay nil too: missing data is never
// conflated with a true zero.
func Pivot(rows []model.AggregateRow[model.SeasonLabel]) []model.ComparisonRow {
	byKey := make(map[string]*model.ComparisonRow)
	var order []string

	for _, agg := range rows {
		row, exists := byKey[agg.Key.Season]
		if !exists {
			row = &model.ComparisonRow{Season: agg.Key.Season}
			byKey[agg.Key.Season] = row
			order = append(order, agg.Key.Season)
		}
		assign(row, agg.Key.MonthName, agg.PaidQuantitySum)
	}

	return finalize(byKey, order)
}

// PivotBoards reshapes per-board (board, season, month) aggregates into one
// wide row per board and season.
func PivotBoards(rows []model.AggregateRow[aggregate.BoardSeasonMonth]) []model.ComparisonRow {
	type pairKey struct{ board, season string }

	byKey := make(map[pairKey]*model.ComparisonRow)
	var order []pairKey

	for _, agg := range rows {
		k := pairKey{board: agg.Key.Board, season: agg.Key.Season}
		row, exists := byKey[k]
		if !exists {
			row = &model.ComparisonRow{Season: agg.Key.Season, Board: agg.Key.Board}
			byKey[k] = row
			order = append(order, k)
		}
		assign(row, agg.Key.Month, agg.PaidQuantitySum)
	}

	out := make([]model.ComparisonRow, len(order))
	for i, k := range order {
		derive(byKey[k])
		out[i] = *byKey[k]
	}
	return out
}

func assign(row *model.ComparisonRow, month string, sum int64) {
	v := sum
	switch month {
	case model.MonthDecember:
		row.DecemberValue = &v
	case model.MonthJanuary:
		row.JanuaryValue = &v
	}
}

// derive fills Difference and PercentChange once both months are known.
// A zero December leaves PercentChange nil: the ratio is undefined, and an
// Inf or NaN must never reach the report.
func derive(row *model.ComparisonRow) {
	if row.DecemberValue == nil || row.JanuaryValue == nil {
		return
	}
	diff := *row.JanuaryValue - *row.DecemberValue
	row.Difference = &diff
	if *row.DecemberValue == 0 {
		return
	}
	pct := float64(diff) / float64(*row.DecemberValue)
	row.PercentChange = &pct
}

func finalize(byKey map[string]*model.ComparisonRow, order []string) []model.ComparisonRow {
	out := make([]model.ComparisonRow, len(order))
	for i, k := range order {
		derive(byKey[k])
		out[i] = *byKey[k]
	}
	return out
}
