package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// readSpreadsheet reads a menu from the first sheet of an XLSX workbook.
//
// LAYOUT:
//   | Column A | Column B |
//   |----------|----------|
//   | Name     | Price    |   <- optional header, detected when B1 is not a number
//   | Tea      | 1.50     |
//
// Columns beyond B are ignored. Empty rows are skipped without being reported.
func readSpreadsheet(path string, b *builder) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}

	for i, row := range rows {
		if isRowEmpty(row) {
			continue
		}
		if i == 0 && isHeaderRow(row) {
			continue
		}

		fields := row
		if len(fields) > 2 {
			fields = fields[:2]
		}
		b.add(i+1, strings.Join(row, ","), fields)
	}

	return nil
}

// isRowEmpty checks if all cells in a row are empty.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isHeaderRow(row []string) bool {
	if len(row) < 2 {
		return false
	}
	_, err := decimal.NewFromString(strings.TrimSpace(row[1]))
	return err != nil
}
