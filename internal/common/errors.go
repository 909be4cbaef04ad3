// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Loading errors.
	ErrNoExtracts  = errors.New("no extract files found")
	ErrEmptyFile   = errors.New("file contains no data rows")
	ErrNoSuchSheet = errors.New("no usable worksheet found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SchemaError reports a required column that is absent from a source file
// after header normalization. Structural: the run cannot continue.
type SchemaError struct {
	File   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.File, e.Column)
}

// NewSchemaError creates a SchemaError for a missing column in a source file.
func NewSchemaError(file, column string) error {
	return &SchemaError{File: file, Column: column}
}

// RowError reports a date or numeric field that could not be parsed,
// identifying the offending row. Structural: the run cannot continue.
type RowError struct {
	Err   error
	File  string
	Field string
	Row   int
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: cannot parse %s: %v", e.File, e.Row, e.Field, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// NewRowError creates a RowError for an unparseable field.
// Row is the 1-based position in the source file, header included.
func NewRowError(file string, row int, field string, err error) error {
	return &RowError{File: file, Row: row, Field: field, Err: err}
}

// IsStructural reports whether err aborts the run (schema or parse failure)
// rather than flowing through as missing data.
func IsStructural(err error) bool {
	var schemaErr *SchemaError
	if errors.As(err, &schemaErr) {
		return true
	}
	var rowErr *RowError
	return errors.As(err, &rowErr)
}
