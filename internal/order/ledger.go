// =============================================================================
// Cafeteria Billing - Order Ledger
// =============================================================================
//
// The ledger is the customer's order: one line per distinct item with the
// quantity ordered so far. Lines are keyed by catalog.Normalize of the item
// name, so additions by menu number and deletions/updates by typed name meet
// in the same identity space.
//
// INVARIANTS:
//   - Every line has 0 < Quantity <= MaxQuantity.
//   - An item that is not ordered has no line (never a zero-quantity line).
//   - Lines() returns lines in first-insertion order.
//
// =============================================================================

package order

import (
	"fmt"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
)

// MaxQuantity is the largest quantity a single line may hold.
const MaxQuantity = 9999

// Line is one item of the order.
type Line struct {
	// Name is the display name taken from the catalog entry.
	Name string

	// Quantity is the number of units ordered.
	Quantity int
}

// Ledger accumulates an order against a catalog.
type Ledger struct {
	catalog *catalog.Catalog
	lines   map[string]*Line
	order   []string
}

// NewLedger creates an empty ledger resolving menu numbers through c.
func NewLedger(c *catalog.Catalog) *Ledger {
	return &Ledger{
		catalog: c,
		lines:   make(map[string]*Line),
	}
}

// AddItem adds quantity units of the catalog entry with the given key.
// Adding an item that is already ordered increases its quantity.
//
// RETURNS:
//   - The line after the addition.
//   - ErrUnknownItem if the key does not resolve, ErrInvalidQuantity if
//     quantity is not positive or the line would exceed MaxQuantity.
func (l *Ledger) AddItem(catalogKey, quantity int) (Line, error) {
	entry, ok := l.catalog.Entry(catalogKey)
	if !ok {
		return Line{}, fmt.Errorf("%w: %d", ErrUnknownItem, catalogKey)
	}
	if quantity <= 0 || quantity > MaxQuantity {
		return Line{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	key := catalog.Normalize(entry.Name)
	if line, ok := l.lines[key]; ok {
		if quantity > MaxQuantity-line.Quantity {
			return Line{}, fmt.Errorf("%w: %s already has %d, at most %d per line",
				ErrInvalidQuantity, line.Name, line.Quantity, MaxQuantity)
		}
		line.Quantity += quantity
		return *line, nil
	}

	line := &Line{Name: entry.Name, Quantity: quantity}
	l.lines[key] = line
	l.order = append(l.order, key)
	return *line, nil
}

// RemoveItem deletes the line matching name (case and surrounding
// whitespace ignored) and returns it.
func (l *Ledger) RemoveItem(name string) (Line, error) {
	key := catalog.Normalize(name)
	line, ok := l.lines[key]
	if !ok {
		return Line{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}

	l.drop(key)
	return *line, nil
}

// SetQuantity replaces the quantity of the line matching name.
//
// Zero removes the line, keeping the no-zero-lines invariant; a negative
// quantity or one above MaxQuantity is rejected with ErrInvalidQuantity. The returned line carries the
// new quantity (zero when removed).
func (l *Ledger) SetQuantity(name string, quantity int) (Line, error) {
	key := catalog.Normalize(name)
	line, ok := l.lines[key]
	if !ok {
		return Line{}, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}
	if quantity < 0 || quantity > MaxQuantity {
		return Line{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	if quantity == 0 {
		l.drop(key)
		return Line{Name: line.Name}, nil
	}

	line.Quantity = quantity
	return *line, nil
}

// Quantity returns the ordered quantity of name, zero if not ordered.
func (l *Ledger) Quantity(name string) int {
	if line, ok := l.lines[catalog.Normalize(name)]; ok {
		return line.Quantity
	}
	return 0
}

// IsEmpty reports whether nothing is ordered.
func (l *Ledger) IsEmpty() bool {
	return len(l.order) == 0
}

// Len returns the number of lines.
func (l *Ledger) Len() int {
	return len(l.order)
}

// Lines returns a copy of the lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.lines[key])
	}
	return out
}

// Reset discards every line.
func (l *Ledger) Reset() {
	l.lines = make(map[string]*Line)
	l.order = nil
}

func (l *Ledger) drop(key string) {
	delete(l.lines, key)
	for i, k := range l.order {
		if k == key {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
}
