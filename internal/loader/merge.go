package loader

import (
	"log/slog"

	"github.com/samber/lo"

	"github.com/ewanmcn/wintermeds/internal/model"
)

// MergeResult is the output of the full outer join between prescription
// records and the health-board reference.
type MergeResult struct {
	// Records carries every input record, with BoardName filled in where the
	// coalesced code matched the reference. Unmatched records keep an empty
	// BoardName rather than being dropped.
	Records []model.PrescriptionRecord
	// UnmatchedBoards lists reference entries with no prescription record,
	// kept so absence can be detected downstream instead of silently lost.
	UnmatchedBoards []model.HealthBoard
}

// Merge joins records against the board reference by health-board code.
func Merge(records []model.PrescriptionRecord, boards []model.HealthBoard) MergeResult {
	byCode := lo.KeyBy(boards, func(b model.HealthBoard) string { return b.Code })

	seen := make(map[string]bool, len(boards))
	merged := make([]model.PrescriptionRecord, len(records))
	unmatched := 0
	for i, rec := range records {
		if board, ok := byCode[rec.HBCode]; ok && rec.HBCode != "" {
			rec.BoardName = board.Name
			seen[rec.HBCode] = true
		} else {
			unmatched++
		}
		merged[i] = rec
	}

	missing := lo.Filter(boards, func(b model.HealthBoard, _ int) bool {
		return !seen[b.Code]
	})

	if unmatched > 0 {
		slog.Warn("Records with no matching health board",
			"count", unmatched,
			"total", len(records))
	}

	return MergeResult{Records: merged, UnmatchedBoards: missing}
}
