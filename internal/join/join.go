// Package join combines per-board comparison output with the census
// education reference into the final analytical table.
package join

import (
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/ewanmcn/wintermeds/internal/model"
)

// BoardAverage is a board's mean seasonal December→January difference.
type BoardAverage struct {
	// Average is nil when no season for the board had a defined difference.
	Average *float64
	Board   string
	// Seasons counts the distinct seasons whose difference was defined; it
	// is the divisor of Average, never a hardcoded year count.
	Seasons int
}

// Averages folds per-board-and-season comparison rows into one average
// difference per board. Rows with an undefined difference (a missing month)
// are skipped, so the divisor is the number of seasons actually observed.
// Board order follows first appearance in the input.
func Averages(rows []model.ComparisonRow) []BoardAverage {
	totals := make(map[string]*BoardAverage)
	sums := make(map[string]int64)
	var order []string

	for _, row := range rows {
		avg, exists := totals[row.Board]
		if !exists {
			avg = &BoardAverage{Board: row.Board}
			totals[row.Board] = avg
			order = append(order, row.Board)
		}
		if row.Difference == nil {
			continue
		}
		sums[row.Board] += *row.Difference
		avg.Seasons++
	}

	out := make([]BoardAverage, len(order))
	for i, board := range order {
		avg := totals[board]
		if avg.Seasons > 0 {
			mean := float64(sums[board]) / float64(avg.Seasons)
			avg.Average = &mean
		}
		out[i] = *avg
	}
	return out
}

// Combine outer-joins board averages with the education reference by board
// name. Census area names lack the "NHS " prefix carried by the board
// reference, so the prefix convention is applied before matching; matching
// is otherwise exact, which is a known fragility of name-keyed joins.
// Unmatched rows from either side are retained with nil for the missing
// side so join failures stay visible downstream.
func Combine(averages []BoardAverage, refs []model.EducationReference) []model.CombinedRow {
	byName := make(map[string]model.EducationReference, len(refs))
	for _, ref := range refs {
		byName[joinKey(ref.BoardName)] = ref
	}

	matched := make(map[string]bool, len(refs))
	out := make([]model.CombinedRow, 0, len(averages)+len(refs))

	for _, avg := range averages {
		row := model.CombinedRow{
			BoardName:         avg.Board,
			SeasonsObserved:   avg.Seasons,
			AverageDifference: avg.Average,
		}
		if ref, ok := byName[joinKey(avg.Board)]; ok {
			matched[joinKey(ref.BoardName)] = true
			fillEducation(&row, ref, avg.Average)
		} else {
			slog.Warn("Board has no census education match", "board", avg.Board)
		}
		out = append(out, row)
	}

	// Census areas never seen in the prescription data.
	leftovers := lo.Filter(refs, func(ref model.EducationReference, _ int) bool {
		return !matched[joinKey(ref.BoardName)]
	})
	for _, ref := range leftovers {
		row := model.CombinedRow{BoardName: displayName(ref.BoardName)}
		fillEducation(&row, ref, nil)
		out = append(out, row)
	}

	return out
}

func fillEducation(row *model.CombinedRow, ref model.EducationReference, avg *float64) {
	pop := ref.Population16Plus
	row.Population16Plus = &pop
	row.EducationProportion = ref.Proportion(model.TierNoQualifications)
	if avg != nil && pop != 0 {
		scaled := *avg / float64(pop)
		row.ScaledDifference = &scaled
	}
}

// joinKey normalizes a board name for matching: trimmed, case-folded, and
// stripped of the "NHS " prefix so both naming conventions meet in the middle.
func joinKey(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "NHS ")
	return strings.ToLower(name)
}

// displayName renders a census-only area under the board naming convention.
func displayName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "NHS ") {
		return name
	}
	return "NHS " + name
}
