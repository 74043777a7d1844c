// =============================================================================
// Cafeteria Billing - Invoices Command
// =============================================================================
//
// The 'invoices' command reads the append-only invoice log back.
//
// COMMAND USAGE:
//   billing invoices list              : one line per recorded invoice
//   billing invoices export [--out f]  : write the log to an XLSX workbook
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/cafeteria-billing/internal/invoice"
	"github.com/ginjaninja78/cafeteria-billing/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var exportPath string

// invoicesCmd groups the invoice log commands.
var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Inspect and export the invoice log",
}

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded invoices",
	RunE: func(cmd *cobra.Command, args []string) error {
		invoices, err := readInvoiceLog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(invoices) == 0 {
			fmt.Fprintln(out, "No invoices recorded yet.")
			return nil
		}

		sum := decimal.Zero
		sym := appConfig.CurrencySymbol
		for _, inv := range invoices {
			fmt.Fprintf(out, "%s  %-36s  %3d line(s)  %s%s\n",
				inv.Timestamp.Format(invoice.TimestampLayout),
				inv.ID,
				len(inv.Lines),
				sym, inv.Total.StringFixed(2),
			)
			sum = sum.Add(inv.Total)
		}
		fmt.Fprintf(out, "\n%d invoice(s), takings %s%s\n", len(invoices), sym, sum.StringFixed(2))
		return nil
	},
}

var invoicesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the invoice log to an XLSX workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		invoices, err := readInvoiceLog()
		if err != nil {
			return err
		}

		path := exportPath
		if path == "" {
			name := utils.GenerateOutputFileName(appConfig.ExportNameFormat, ".xlsx", time.Now())
			path = filepath.Join(appConfig.ExportDir, name)
		}

		if err := invoice.Export(invoices, path); err != nil {
			return fmt.Errorf("failed to export invoices: %w", err)
		}

		logger.Sugar().Infow("invoices exported", "count", len(invoices), "path", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d invoice(s) to %s\n", len(invoices), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesCmd.AddCommand(invoicesExportCmd)

	invoicesExportCmd.Flags().StringVar(&exportPath, "out", "", "Workbook path (default: export_dir/export_name_format)")
}

func readInvoiceLog() ([]*invoice.Invoice, error) {
	rec := invoice.NewRecorder(appConfig.InvoiceLog, appConfig.CurrencySymbol)
	invoices, err := rec.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", rec.Path(), err)
	}
	return invoices, nil
}
