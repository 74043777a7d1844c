// =============================================================================
// Cafeteria Billing - Invoice
// =============================================================================
//
// An Invoice is the immutable snapshot taken when an order is paid. It is
// rendered to the customer, appended to the invoice log, and can later be
// read back from the log and exported to a spreadsheet.
//
// FILES IN THIS PACKAGE:
//   invoice.go  : the snapshot and the on-screen rendering
//   log.go      : the append-only log block format and Recorder
//   parse.go    : reading invoice blocks back from a log
//   export.go   : XLSX export of parsed invoices
//
// =============================================================================

package invoice

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ginjaninja78/cafeteria-billing/internal/payment"
	"github.com/ginjaninja78/cafeteria-billing/internal/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TimestampLayout is the timestamp format used in invoice blocks.
const TimestampLayout = "2006-01-02 15:04:05"

// separator closes every table and invoice block.
var separator = strings.Repeat("-", 35)

// Invoice is a finalized, paid order.
type Invoice struct {
	// ID is a unique reference printed in the log header.
	ID uuid.UUID

	// Timestamp is when the invoice was finalized, truncated to seconds.
	Timestamp time.Time

	// Lines are the priced order lines. Unresolved lines are not invoiced.
	Lines []pricing.PricedLine

	Total   decimal.Decimal
	Payment decimal.Decimal
	Change  decimal.Decimal
}

// New snapshots a priced order and its settlement.
func New(q pricing.Quote, r payment.Receipt, now time.Time) *Invoice {
	lines := make([]pricing.PricedLine, len(q.Lines))
	copy(lines, q.Lines)

	return &Invoice{
		ID:        uuid.New(),
		Timestamp: now.Truncate(time.Second),
		Lines:     lines,
		Total:     q.Total,
		Payment:   r.Payment,
		Change:    r.Change,
	}
}

// =============================================================================
// ON-SCREEN RENDERING
// =============================================================================

// WriteTable writes the item table shared by the order summary and the
// final invoice.
func WriteTable(w io.Writer, lines []pricing.PricedLine) {
	fmt.Fprintf(w, "%-10s%5s%10s%10s\n", "Item", "Qty", "Price", "Total")
	fmt.Fprintln(w, separator)
	for _, l := range lines {
		fmt.Fprintf(w, "%-10s%5d%10s%10s\n",
			l.Name,
			l.Quantity,
			l.UnitPrice.StringFixed(2),
			l.LineTotal.StringFixed(2),
		)
	}
	fmt.Fprintln(w, separator)
}

// Render writes the customer-facing invoice.
//
// PARAMETERS:
//   - w: Destination, usually the terminal.
//   - symbol: Currency symbol printed before amounts.
//   - farewell: Closing line; omitted when empty.
func (inv *Invoice) Render(w io.Writer, symbol, farewell string) {
	fmt.Fprintln(w, "\n\t--- Final Invoice ---")
	WriteTable(w, inv.Lines)
	writeSummary(w, inv, symbol)
	fmt.Fprintln(w, separator)
	if farewell != "" {
		fmt.Fprintf(w, "%s\n\n", farewell)
	}
}

func writeSummary(w io.Writer, inv *Invoice, symbol string) {
	fmt.Fprintf(w, "%25s: %s%s\n", "Total", symbol, inv.Total.StringFixed(2))
	fmt.Fprintf(w, "%25s: %s%s\n", "Payment", symbol, inv.Payment.StringFixed(2))
	fmt.Fprintf(w, "%25s: %s%s\n", "Change", symbol, inv.Change.StringFixed(2))
}
