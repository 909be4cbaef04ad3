// Package aggregate groups prescription records and sums paid quantities.
package aggregate

import (
	"github.com/ewanmcn/wintermeds/internal/model"
	"github.com/ewanmcn/wintermeds/internal/season"
)

// KeyFunc derives the grouping key for a record. Returning ok=false excludes
// the record from the grouping entirely (e.g. months outside the winter
// pair); a record with a nil quantity still creates and counts toward its
// group, it just adds nothing to the sum.
type KeyFunc[K comparable] func(model.PrescriptionRecord) (K, bool)

// Sum produces one row per distinct key with the summed paid quantity.
// Output rows appear in first-seen key order, so a given input order always
// yields the same output.
func Sum[K comparable](records []model.PrescriptionRecord, key KeyFunc[K]) []model.AggregateRow[K] {
	totals := make(map[K]*model.AggregateRow[K])
	var order []K

	for _, rec := range records {
		k, ok := key(rec)
		if !ok {
			continue
		}
		row, exists := totals[k]
		if !exists {
			row = &model.AggregateRow[K]{Key: k}
			totals[k] = row
			order = append(order, k)
		}
		if rec.PaidQuantity != nil {
			row.PaidQuantitySum += *rec.PaidQuantity
		}
	}

	out := make([]model.AggregateRow[K], len(order))
	for i, k := range order {
		out[i] = *totals[k]
	}
	return out
}

// ByDate groups records by their paid month.
func ByDate(rec model.PrescriptionRecord) (model.PaidDate, bool) {
	return rec.PaidDate, true
}

// BySeasonMonth groups December/January records by their season label.
// Records from other months are excluded.
func BySeasonMonth(rec model.PrescriptionRecord) (model.SeasonLabel, bool) {
	return season.ForDate(rec.PaidDate)
}

// BoardSeasonMonth keys a record by health board and season month.
type BoardSeasonMonth struct {
	Board  string
	Season string
	Month  string
}

// ByBoardSeasonMonth groups December/January records per health board.
// Records whose board join failed fall back to the raw code so they stay
// visible rather than collapsing into one another silently.
func ByBoardSeasonMonth(rec model.PrescriptionRecord) (BoardSeasonMonth, bool) {
	label, ok := season.ForDate(rec.PaidDate)
	if !ok {
		return BoardSeasonMonth{}, false
	}
	board := rec.BoardName
	if board == "" {
		board = rec.HBCode
	}
	return BoardSeasonMonth{Board: board, Season: label.Season, Month: label.MonthName}, true
}
