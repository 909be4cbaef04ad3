package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ewanmcn/wintermeds/internal/common"
	"github.com/ewanmcn/wintermeds/internal/model"
)

// Column aliases seen across extract years, normalized form. The health-board
// code moved from HBT2014 to HBT when the reference codes changed; both
// columns may be present with only one populated.
var (
	colPaidDate = []string{"paid_date_month", "paiddatemonth"}
	colHBT      = []string{"hbt"}
	colHBT2014  = []string{"hbt2014"}
	colItem     = []string{"bnf_item_description", "bnfitemdescription", "item_description"}
	colQuantity = []string{"paid_quantity", "paidquantity"}
)

// ExtractReader parses monthly prescription extract files, keeping only rows
// whose item description matches the configured medication.
type ExtractReader struct {
	medication string // uppercased; empty keeps every row
}

// NewExtractReader creates a reader filtering for the given medication.
// An empty medication keeps all rows.
func NewExtractReader(medication string) *ExtractReader {
	return &ExtractReader{medication: strings.ToUpper(strings.TrimSpace(medication))}
}

// ReadFile parses one extract file into prescription records.
func (r *ExtractReader) ReadFile(ctx context.Context, path string) ([]model.PrescriptionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open extract: %w", err)
	}
	defer func() { _ = f.Close() }()

	return r.Read(ctx, filepath.Base(path), f)
}

// Read parses an extract from reader. name identifies the source in errors
// and logs. An input with a header but no data rows yields an empty slice,
// not an error.
func (r *ExtractReader) Read(ctx context.Context, name string, reader io.Reader) ([]model.PrescriptionRecord, error) {
	cr := csv.NewReader(reader)
	cr.FieldsPerRecord = -1 // ragged rows are tolerated; missing cells read as blank

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", name, err)
	}

	idx := indexHeaders(header)
	dateIdx, ok := idx.lookup(colPaidDate...)
	if !ok {
		return nil, common.NewSchemaError(name, "paid_date_month")
	}
	itemIdx, ok := idx.lookup(colItem...)
	if !ok {
		return nil, common.NewSchemaError(name, "bnf_item_description")
	}
	qtyIdx, ok := idx.lookup(colQuantity...)
	if !ok {
		return nil, common.NewSchemaError(name, "paid_quantity")
	}

	// Neither board-code column alone is required, but at least one of the
	// two historical names must exist.
	hbtIdx, hasHBT := idx.lookup(colHBT...)
	hbt2014Idx, hasHBT2014 := idx.lookup(colHBT2014...)
	if !hasHBT && !hasHBT2014 {
		return nil, common.NewSchemaError(name, "hbt")
	}

	var records []model.PrescriptionRecord
	row := 1 // header was row 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		row++

		item := field(rec, itemIdx)
		if r.medication != "" && !strings.Contains(strings.ToUpper(item), r.medication) {
			continue
		}

		date, err := model.ParsePaidDate(field(rec, dateIdx))
		if err != nil {
			return nil, common.NewRowError(name, row, "paid_date_month", err)
		}

		qty, err := parseQuantity(field(rec, qtyIdx))
		if err != nil {
			return nil, common.NewRowError(name, row, "paid_quantity", err)
		}

		code := ""
		if hasHBT {
			code = field(rec, hbtIdx)
		}
		if code == "" && hasHBT2014 {
			code = field(rec, hbt2014Idx)
		}

		records = append(records, model.PrescriptionRecord{
			PaidDate:        date,
			HBCode:          code,
			ItemDescription: item,
			PaidQuantity:    qty,
		})
	}

	slog.Debug("Parsed extract",
		"file", name,
		"records", len(records))

	return records, nil
}

// parseQuantity reads a paid quantity cell. Blank and NA cells are missing
// data (nil), not errors; anything else must be a non-negative integer.
func parseQuantity(s string) (*int64, error) {
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "null") {
		return nil, nil
	}
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("negative quantity %d", n)
	}
	return &n, nil
}
