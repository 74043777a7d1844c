// =============================================================================
// Cafeteria Billing - Menu Catalog
// =============================================================================
//
// The catalog is the priced menu of the counter. It is loaded once at startup
// and never mutated afterwards; a reload builds a new Catalog and replaces the
// old one wholesale.
//
// KEYS:
//   Entries are keyed 1..N in source order. The key is what the customer types
//   at the menu prompt.
//
// NAME IDENTITY:
//   Normalize is the single identity function for item names. The order ledger
//   keys its lines with it and the pricing engine resolves lines with it, so a
//   name typed as " tea " and the catalog entry "Tea" are the same item.
//
// =============================================================================

package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one priced menu item.
type Entry struct {
	// Key is the 1-based position of the entry in the menu source.
	Key int

	// Name is the display name as written in the menu source (trimmed).
	Name string

	// UnitPrice is the flat price of one unit.
	UnitPrice decimal.Decimal
}

// Catalog is an ordered, read-only set of menu entries.
type Catalog struct {
	entries []Entry
}

// Normalize returns the identity key of an item name: surrounding whitespace
// removed and letter case folded.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// New builds a catalog from (name, price) pairs, assigning keys sequentially
// from 1 in the given order.
func New(items ...Item) *Catalog {
	c := &Catalog{entries: make([]Entry, 0, len(items))}
	for _, item := range items {
		c.entries = append(c.entries, Entry{
			Key:       len(c.entries) + 1,
			Name:      strings.TrimSpace(item.Name),
			UnitPrice: item.UnitPrice,
		})
	}
	return c
}

// Item is an unkeyed menu record used to build a catalog.
type Item struct {
	Name      string
	UnitPrice decimal.Decimal
}

// Empty returns a catalog with no entries. A session built on it cannot
// order anything but still runs.
func Empty() *Catalog {
	return &Catalog{}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns the entries in key order. The slice is a copy.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Entry looks an entry up by its key.
func (c *Catalog) Entry(key int) (Entry, bool) {
	if c == nil || key < 1 || key > len(c.entries) {
		return Entry{}, false
	}
	return c.entries[key-1], true
}

// FindByName returns the first entry whose normalized name equals the
// normalized form of name.
func (c *Catalog) FindByName(name string) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	want := Normalize(name)
	for _, e := range c.entries {
		if Normalize(e.Name) == want {
			return e, true
		}
	}
	return Entry{}, false
}
