// =============================================================================
// Cafeteria Billing - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Cafeteria Billing CLI. It delegates to
// the cmd package, which defines the Cobra commands.
//
// USAGE:
//   billing run               - Serve one customer at the counter
//   billing menu              - Load the menu and report malformed records
//   billing invoices list     - List recorded invoices
//   billing invoices export   - Export the invoice log to a workbook
//   billing version           - Display the application version
//
// ARCHITECTURE:
//   - cmd/       : CLI command definitions (Cobra)
//   - internal/  : catalog, order ledger, pricing, payment, invoice, session
//   - pkg/       : shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/cafeteria-billing/cmd"
)

func main() {
	cmd.Execute()
}
