// Package model defines the core domain types for the prescription analysis pipeline.
package model

import (
	"fmt"
	"time"
)

// PaidDate identifies the calendar month a prescription was paid in.
type PaidDate struct {
	Year  int
	Month time.Month
}

// ParsePaidDate parses the YYYYMM form used by the monthly extracts.
func ParsePaidDate(s string) (PaidDate, error) {
	t, err := time.Parse("200601", s)
	if err != nil {
		return PaidDate{}, fmt.Errorf("invalid paid date %q: %w", s, err)
	}
	return PaidDate{Year: t.Year(), Month: t.Month()}, nil
}

// String renders the date as YYYY-MM for keys and display.
func (d PaidDate) String() string {
	return fmt.Sprintf("%04d-%02d", d.Year, int(d.Month))
}

// Before reports whether d is earlier than other.
func (d PaidDate) Before(other PaidDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	return d.Month < other.Month
}

// PrescriptionRecord is a single unified row from a monthly community
// prescription extract, merged with its health-board name. Immutable once
// created by the loader.
type PrescriptionRecord struct {
	PaidQuantity    *int64 // nil when the source field was blank
	PaidDate        PaidDate
	HBCode          string // empty when neither legacy code column was set
	BoardName       string // empty when the reference join found no match
	ItemDescription string
}

// HealthBoard is one entry of the static health-board reference table.
type HealthBoard struct {
	Code string
	Name string
}
