// =============================================================================
// Cafeteria Billing - Pricing Engine
// =============================================================================
//
// Resolves order lines against the catalog and derives line totals and the
// order total. Resolution uses catalog.FindByName, the same normalization the
// ledger keys its lines with.
//
// UNRESOLVED LINES:
//   A line whose name no longer resolves (the menu was reloaded without it)
//   is skipped and reported as an UnresolvedItem. The same policy applies to
//   the total, summaries and invoices; the line stays in the order.
//
// =============================================================================

package pricing

import (
	"fmt"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
	"github.com/ginjaninja78/cafeteria-billing/internal/order"
	"github.com/shopspring/decimal"
)

// PricedLine is an order line with its resolved price.
type PricedLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// UnresolvedItem reports an order line with no matching menu entry.
type UnresolvedItem struct {
	Name     string
	Quantity int
}

// Error implements the error interface so warnings can be logged uniformly.
func (u UnresolvedItem) Error() string {
	return fmt.Sprintf("%s not found in the menu, skipping", u.Name)
}

// Quote is the priced view of an order.
type Quote struct {
	Lines      []PricedLine
	Total      decimal.Decimal
	Unresolved []UnresolvedItem
}

// PriceOf returns the unit price of itemName, matching case-insensitively and
// ignoring surrounding whitespace.
func PriceOf(itemName string, c *catalog.Catalog) (decimal.Decimal, bool) {
	entry, ok := c.FindByName(itemName)
	if !ok {
		return decimal.Zero, false
	}
	return entry.UnitPrice, true
}

// Price resolves every line of an order.
func Price(lines []order.Line, c *catalog.Catalog) Quote {
	q := Quote{Total: decimal.Zero}

	for _, line := range lines {
		price, ok := PriceOf(line.Name, c)
		if !ok {
			q.Unresolved = append(q.Unresolved, UnresolvedItem{Name: line.Name, Quantity: line.Quantity})
			continue
		}

		lineTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		q.Lines = append(q.Lines, PricedLine{
			Name:      line.Name,
			Quantity:  line.Quantity,
			UnitPrice: price,
			LineTotal: lineTotal,
		})
		q.Total = q.Total.Add(lineTotal)
	}

	return q
}

// ComputeTotal sums quantity * unit price over the resolvable lines.
func ComputeTotal(lines []order.Line, c *catalog.Catalog) (decimal.Decimal, []UnresolvedItem) {
	q := Price(lines, c)
	return q.Total, q.Unresolved
}

// LineDetail returns the priced lines used for summaries and invoices.
func LineDetail(lines []order.Line, c *catalog.Catalog) ([]PricedLine, []UnresolvedItem) {
	q := Price(lines, c)
	return q.Lines, q.Unresolved
}
