package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ewanmcn/wintermeds/internal/common"
	"github.com/ewanmcn/wintermeds/internal/model"
)

// The published census qualification table carries title/metadata rows above
// the header and footnote rows below the data.
const (
	educationLeadingRows  = 10
	educationTrailingRows = 3
)

var (
	colArea       = []string{"area", "area_name", "health_board_area"}
	colPopulation = []string{"all_people_aged_16_and_over", "total_population_16_and_over", "all_people_16_and_over"}
	colNoQuals    = []string{"no_qualifications"}
)

// ReadEducation loads the census qualification reference table. Both the
// spreadsheet release (.xlsx) and a CSV export of it are accepted.
func ReadEducation(path string) ([]model.EducationReference, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readEducationXLSX(path)
	default:
		return readEducationCSV(path)
	}
}

func readEducationCSV(path string) ([]model.EducationReference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open education reference: %w", err)
	}
	defer func() { _ = f.Close() }()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1 // the junk rows are ragged

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	return parseEducationRows(filepath.Base(path), rows)
}

func readEducationXLSX(path string) ([]model.EducationReference, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open education reference: %w", err)
	}
	defer func() { _ = f.Close() }()

	// Sheet names in the published workbook are not stable; probe for the
	// first sheet tall enough to hold the junk rows plus a header and data.
	minRows := educationLeadingRows + educationTrailingRows + 2
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) < minRows {
			continue
		}
		return parseEducationRows(filepath.Base(path), rows)
	}

	return nil, fmt.Errorf("%w: %s", common.ErrNoSuchSheet, filepath.Base(path))
}

// parseEducationRows trims the fixed leading and trailing non-data rows, then
// reads the header and data. Qualification tiers beyond "no qualifications"
// are carried through untouched so later analysis can pick them up.
func parseEducationRows(name string, rows [][]string) ([]model.EducationReference, error) {
	if len(rows) <= educationLeadingRows+educationTrailingRows {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyFile, name)
	}
	rows = rows[educationLeadingRows : len(rows)-educationTrailingRows]

	header := rows[0]
	idx := indexHeaders(header)
	areaIdx, ok := idx.lookup(colArea...)
	if !ok {
		return nil, common.NewSchemaError(name, "area")
	}
	popIdx, ok := idx.lookup(colPopulation...)
	if !ok {
		return nil, common.NewSchemaError(name, "all_people_aged_16_and_over")
	}
	if _, ok := idx.lookup(colNoQuals...); !ok {
		return nil, common.NewSchemaError(name, "no_qualifications")
	}

	// Every column that is neither the area nor the population total is
	// treated as a qualification tier.
	tierCols := make(map[model.QualificationTier]int)
	for i, raw := range header {
		key := normalizeHeader(raw)
		if key == "" || i == areaIdx || i == popIdx {
			continue
		}
		if _, dup := tierCols[model.QualificationTier(key)]; !dup {
			tierCols[model.QualificationTier(key)] = i
		}
	}

	refs := make([]model.EducationReference, 0, len(rows)-1)
	for n, rec := range rows[1:] {
		area := field(rec, areaIdx)
		if area == "" {
			continue
		}

		rowNum := educationLeadingRows + 2 + n // position in the original file
		pop, err := parseCount(field(rec, popIdx))
		if err != nil {
			return nil, common.NewRowError(name, rowNum, "all_people_aged_16_and_over", err)
		}

		tiers := make(map[model.QualificationTier]int64, len(tierCols))
		for tier, i := range tierCols {
			cell := field(rec, i)
			if cell == "" {
				continue
			}
			count, err := parseCount(cell)
			if err != nil {
				return nil, common.NewRowError(name, rowNum, string(tier), err)
			}
			tiers[tier] = count
		}

		refs = append(refs, model.EducationReference{
			BoardName:        area,
			Population16Plus: pop,
			Tiers:            tiers,
		})
	}

	return refs, nil
}

// parseCount reads a census count cell, tolerating thousands separators.
func parseCount(s string) (int64, error) {
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	return n, nil
}
