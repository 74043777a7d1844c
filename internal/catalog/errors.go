package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCatalogUnavailable is returned when the menu source cannot be read.
var ErrCatalogUnavailable = errors.New("menu catalog unavailable")

// Severity levels of a RecordError.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// RecordError describes a menu record that was skipped ("error") or loaded
// with a caveat ("warning").
type RecordError struct {
	// Severity is SeverityError for skipped records, SeverityWarning otherwise.
	Severity string

	// Line is the 1-based line (text) or row (spreadsheet) of the record.
	Line int

	// Value is the raw record as read.
	Value string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("[%s] line %d: %s (value: '%s')",
		strings.ToUpper(e.Severity),
		e.Line,
		e.Message,
		e.Value,
	)
}

// LoadReport summarises a catalog load.
type LoadReport struct {
	// Source is the path that was loaded.
	Source string

	// Loaded is the number of entries in the resulting catalog.
	Loaded int

	// Problems holds skipped records and warnings in source order.
	Problems []*RecordError
}

// Skipped returns the number of records that were dropped.
func (r *LoadReport) Skipped() int {
	n := 0
	for _, p := range r.Problems {
		if p.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Warnings returns the number of records loaded with a caveat.
func (r *LoadReport) Warnings() int {
	return len(r.Problems) - r.Skipped()
}
