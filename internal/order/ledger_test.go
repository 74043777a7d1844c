package order

import (
	"errors"
	"math"
	"testing"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Item{Name: "Tea", UnitPrice: decimal.RequireFromString("1.50")},
		catalog.Item{Name: "Sandwich", UnitPrice: decimal.RequireFromString("3.00")},
		catalog.Item{Name: "Soup", UnitPrice: decimal.RequireFromString("4.25")},
	)
}

func TestAddItem_AccumulatesSameItem(t *testing.T) {
	l := NewLedger(testCatalog())

	_, err := l.AddItem(1, 2)
	require.NoError(t, err)
	_, err = l.AddItem(2, 1)
	require.NoError(t, err)
	line, err := l.AddItem(1, 3)
	require.NoError(t, err)

	assert.Equal(t, Line{Name: "Tea", Quantity: 5}, line)
	assert.Equal(t, []Line{{Name: "Tea", Quantity: 5}, {Name: "Sandwich", Quantity: 1}}, l.Lines())
}

func TestAddItem_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		key      int
		quantity int
		want     error
	}{
		{"unknown key", 9, 1, ErrUnknownItem},
		{"zero key", 0, 1, ErrUnknownItem},
		{"zero quantity", 1, 0, ErrInvalidQuantity},
		{"negative quantity", 1, -2, ErrInvalidQuantity},
		{"above line maximum", 1, MaxQuantity + 1, ErrInvalidQuantity},
		{"max int", 1, math.MaxInt, ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger(testCatalog())
			_, err := l.AddItem(tt.key, tt.quantity)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, l.IsEmpty())
		})
	}
}

func TestAddItem_CapsAccumulatedQuantity(t *testing.T) {
	l := NewLedger(testCatalog())
	_, err := l.AddItem(1, MaxQuantity)
	require.NoError(t, err)

	_, err = l.AddItem(1, 1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, MaxQuantity, l.Quantity("tea"))

	for _, line := range l.Lines() {
		assert.Positive(t, line.Quantity)
	}
}

func TestAddItem_EmptyCatalogOrdersNothing(t *testing.T) {
	l := NewLedger(catalog.Empty())
	_, err := l.AddItem(1, 1)
	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestRemoveItem_CaseInsensitive(t *testing.T) {
	l := NewLedger(testCatalog())
	_, err := l.AddItem(1, 2)
	require.NoError(t, err)
	_, err = l.AddItem(2, 1)
	require.NoError(t, err)

	removed, err := l.RemoveItem("  tea ")
	require.NoError(t, err)

	assert.Equal(t, "Tea", removed.Name)
	assert.Equal(t, []Line{{Name: "Sandwich", Quantity: 1}}, l.Lines())
}

func TestRemoveItem_NotFound(t *testing.T) {
	l := NewLedger(testCatalog())
	_, err := l.RemoveItem("Coffee")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveThenAdd_DoesNotResurrectQuantity(t *testing.T) {
	l := NewLedger(testCatalog())
	_, err := l.AddItem(3, 4)
	require.NoError(t, err)
	_, err = l.RemoveItem("SOUP")
	require.NoError(t, err)
	_, err = l.AddItem(3, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, l.Quantity("soup"))
}

func TestSetQuantity(t *testing.T) {
	l := NewLedger(testCatalog())
	_, err := l.AddItem(1, 2)
	require.NoError(t, err)
	_, err = l.AddItem(2, 1)
	require.NoError(t, err)

	line, err := l.SetQuantity("sandwich", 4)
	require.NoError(t, err)
	assert.Equal(t, Line{Name: "Sandwich", Quantity: 4}, line)

	_, err = l.SetQuantity("Tea", -1)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 2, l.Quantity("tea"))

	_, err = l.SetQuantity("Tea", math.MaxInt)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 2, l.Quantity("tea"))

	line, err = l.SetQuantity("TEA", 0)
	require.NoError(t, err)
	assert.Equal(t, Line{Name: "Tea"}, line)
	assert.Equal(t, []Line{{Name: "Sandwich", Quantity: 4}}, l.Lines())

	_, err = l.SetQuantity("Coffee", 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestLines_InsertionOrderAndCopy(t *testing.T) {
	l := NewLedger(testCatalog())
	for _, key := range []int{3, 1, 2} {
		_, err := l.AddItem(key, 1)
		require.NoError(t, err)
	}

	lines := l.Lines()
	assert.Equal(t, "Soup", lines[0].Name)
	assert.Equal(t, "Tea", lines[1].Name)
	assert.Equal(t, "Sandwich", lines[2].Name)

	lines[0].Quantity = 99
	assert.Equal(t, 1, l.Quantity("Soup"))
}

func TestReset(t *testing.T) {
	l := NewLedger(testCatalog())
	_, err := l.AddItem(1, 1)
	require.NoError(t, err)

	l.Reset()
	assert.True(t, l.IsEmpty())
	assert.Zero(t, l.Len())
}
