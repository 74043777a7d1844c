package invoice

import (
	"fmt"

	"github.com/ginjaninja78/cafeteria-billing/pkg/utils"
	"github.com/xuri/excelize/v2"
)

const (
	invoicesSheet = "Invoices"
	linesSheet    = "Lines"
)

// Export writes invoices to an XLSX workbook at path.
//
// WORKBOOK LAYOUT:
//   Invoices : Ref | Timestamp | Total | Payment | Change
//   Lines    : Ref | Item | Qty | Unit Price | Line Total
func Export(invoices []*Invoice, path string) error {
	if err := utils.EnsureParentDir(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), invoicesSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(linesSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	invoiceRows := [][]interface{}{{"Ref", "Timestamp", "Total", "Payment", "Change"}}
	lineRows := [][]interface{}{{"Ref", "Item", "Qty", "Unit Price", "Line Total"}}

	for _, inv := range invoices {
		ref := inv.ID.String()
		invoiceRows = append(invoiceRows, []interface{}{
			ref,
			inv.Timestamp.Format(TimestampLayout),
			inv.Total.InexactFloat64(),
			inv.Payment.InexactFloat64(),
			inv.Change.InexactFloat64(),
		})
		for _, l := range inv.Lines {
			lineRows = append(lineRows, []interface{}{
				ref,
				l.Name,
				l.Quantity,
				l.UnitPrice.InexactFloat64(),
				l.LineTotal.InexactFloat64(),
			})
		}
	}

	if err := writeRows(f, invoicesSheet, invoiceRows); err != nil {
		return err
	}
	if err := writeRows(f, linesSheet, lineRows); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
