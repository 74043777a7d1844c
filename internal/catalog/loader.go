// =============================================================================
// Cafeteria Billing - Catalog Loader
// =============================================================================
//
// Load reads a menu source and builds a Catalog. Two source formats are
// supported and chosen by file extension:
//
//   .xlsx  : first sheet, column A = name, column B = price
//   other  : text, one "<name>, <price>" record per line
//
// PRICES:
//   Amounts are kept in whole cents. A price with finer precision is rounded
//   to the cent and reported as a warning.
//
// ROBUSTNESS:
//   A malformed record never aborts the load. It is skipped and reported in
//   the LoadReport with its line number so the operator can fix the menu.
//   Only an unreadable source fails, with ErrCatalogUnavailable.
//
// =============================================================================

package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Load reads the menu source at path.
//
// RETURNS:
//   - The catalog built from every well-formed record.
//   - A report of skipped and suspicious records.
//   - An error wrapping ErrCatalogUnavailable if the source cannot be read.
func Load(path string) (*Catalog, *LoadReport, error) {
	b := newBuilder(path)

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		err = readSpreadsheet(path, b)
	default:
		err = readText(path, b)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCatalogUnavailable, path, err)
	}

	return b.catalog(), b.report, nil
}

// =============================================================================
// BUILDER
// =============================================================================

// builder validates raw records and collects the accepted ones.
type builder struct {
	items  []Item
	seen   map[string]int
	report *LoadReport
}

func newBuilder(source string) *builder {
	return &builder{
		seen:   make(map[string]int),
		report: &LoadReport{Source: source},
	}
}

// add validates one raw record. line is 1-based.
func (b *builder) add(line int, raw string, fields []string) {
	if len(fields) != 2 {
		b.reject(line, raw, fmt.Sprintf("expected '<name>, <price>', got %d field(s)", len(fields)))
		return
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		b.reject(line, raw, "item name is empty")
		return
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		b.reject(line, raw, "item name contains control characters")
		return
	}

	price, msg := parsePrice(fields[1])
	if msg != "" {
		b.reject(line, raw, msg)
		return
	}
	if cents := price.Round(2); !cents.Equal(price) {
		b.warn(line, raw, fmt.Sprintf("price %s rounded to %s", price.String(), cents.StringFixed(2)))
		price = cents
	}

	key := Normalize(name)
	if first, dup := b.seen[key]; dup {
		b.warn(line, raw, fmt.Sprintf("duplicate of item on line %d; orders will be priced from the first", first))
	} else {
		b.seen[key] = line
	}

	b.items = append(b.items, Item{Name: name, UnitPrice: price})
}

func (b *builder) reject(line int, raw, msg string) {
	b.report.Problems = append(b.report.Problems, &RecordError{
		Severity: SeverityError,
		Line:     line,
		Value:    raw,
		Message:  msg,
	})
}

func (b *builder) warn(line int, raw, msg string) {
	b.report.Problems = append(b.report.Problems, &RecordError{
		Severity: SeverityWarning,
		Line:     line,
		Value:    raw,
		Message:  msg,
	})
}

func (b *builder) catalog() *Catalog {
	c := New(b.items...)
	b.report.Loaded = c.Len()
	return c
}

// parsePrice validates a price field. It returns a non-empty message when the
// value is not a non-negative decimal.
func parsePrice(value string) (decimal.Decimal, string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Decimal{}, "price is empty"
	}

	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Sprintf("price '%s' is not a decimal number", value)
	}
	if price.IsNegative() {
		return decimal.Decimal{}, "price must not be negative"
	}

	return price, ""
}
