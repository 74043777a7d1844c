package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ginjaninja78/cafeteria-billing/internal/catalog"
	"github.com/ginjaninja78/cafeteria-billing/internal/invoice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecorder struct {
	invoices []*invoice.Invoice
	err      error
}

func (f *fakeRecorder) Append(inv *invoice.Invoice) error {
	if f.err != nil {
		return f.err
	}
	f.invoices = append(f.invoices, inv)
	return nil
}

func menu() *catalog.Catalog {
	return catalog.New(
		catalog.Item{Name: "Tea", UnitPrice: decimal.RequireFromString("1.50")},
		catalog.Item{Name: "Sandwich", UnitPrice: decimal.RequireFromString("3.00")},
	)
}

func script(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func newSession(c *catalog.Catalog, in *strings.Reader, rec Recorder) (*Session, *bytes.Buffer) {
	var out bytes.Buffer
	s := New(c, in, &out, rec, Options{
		Farewell: "Thank you for dining with us!",
		Now:      func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local) },
	})
	return s, &out
}

func TestRun_FullCheckout(t *testing.T) {
	rec := &fakeRecorder{}
	in := script(
		"abc",              // not a number
		"3", "",            // finish with empty order, press enter
		"9",                // unknown item
		"1", "2",           // Tea x2
		"2", "1",           // Sandwich x1
		"3",                // finish
		"4", "",            // view order
		"2", "tea",         // delete Tea, lowercase
		"1", "1", "2", "3", // add Tea x2 again
		"3", "COFFEE",      // update unknown item
		"7",                // invalid modify option
		"5",                // finalize
		"maybe",            // invalid confirmation
		"n",                // decline, back to modifying
		"5",                // finalize again
		"YES",              // confirm
		"abc",              // invalid amount
		"5",                // short by 1.00
		"10",               // pay
	)
	s, out := newSession(menu(), in, rec)

	inv, err := s.Run()
	require.NoError(t, err)

	assert.Equal(t, Finalized, s.State())
	assert.True(t, s.Ledger().IsEmpty())

	require.Len(t, inv.Lines, 2)
	assert.Equal(t, "Sandwich", inv.Lines[0].Name)
	assert.Equal(t, "Tea", inv.Lines[1].Name)
	assert.Equal(t, 2, inv.Lines[1].Quantity)
	assert.Equal(t, "6.00", inv.Total.StringFixed(2))
	assert.Equal(t, "10.00", inv.Payment.StringFixed(2))
	assert.Equal(t, "4.00", inv.Change.StringFixed(2))

	require.Len(t, rec.invoices, 1)
	assert.Same(t, inv, rec.invoices[0])

	text := out.String()
	for _, want := range []string{
		"Welcome to the Cafeteria Billing System!",
		"1. Tea        - $1.50",
		"3. Finish Order",
		"Invalid input. Please enter a valid number.",
		"You must add at least one item to continue with billing.",
		"Invalid choice. Please select a valid item number.",
		"--- Current Order ---",
		"Tea removed from the order.",
		"COFFEE not found in the order.",
		"Invalid choice. Please try again.",
		"Order finalized.",
		"Current total: $6.00",
		"Invalid choice. Please enter 'yes/y' or 'no/n'.",
		"You can continue modifying the order.",
		"Invalid input. Please enter a valid amount.",
		"Insufficient amount. You still owe $1.00.",
		"--- Final Invoice ---",
		"Change: $4.00",
		"Thank you for dining with us!",
	} {
		assert.Contains(t, text, want)
	}
}

func TestRun_EmptyOrderCannotBeFinalized(t *testing.T) {
	rec := &fakeRecorder{}
	in := script(
		"1", "1", "3",      // Tea x1, finish
		"2", "Tea",         // delete it
		"5",                // finalize rejected
		"1", "2", "1", "3", // Sandwich x1
		"5", "y", "3",
	)
	s, out := newSession(menu(), in, rec)

	inv, err := s.Run()
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Your order is empty. Add at least one item before finalizing.")
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, "Sandwich", inv.Lines[0].Name)
	assert.Equal(t, "0.00", inv.Change.StringFixed(2))
}

func TestRun_UpdateQuantity(t *testing.T) {
	in := script(
		"1", "3", "2", "3", "3", // Tea x3, Sandwich x3, finish
		"3", "tea", "-2",        // rejected
		"3", "tea", "x",         // not a number
		"3", "Tea", "4",         // Tea x4
		"3", "sandwich", "0",    // removes Sandwich
		"5", "y", "6",
	)
	s, out := newSession(menu(), in, &fakeRecorder{})

	inv, err := s.Run()
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Quantity must be between 0 and 9999.")
	assert.Contains(t, text, "Tea quantity updated to 4.")
	assert.Contains(t, text, "Sandwich removed from the order.")

	require.Len(t, inv.Lines, 1)
	assert.Equal(t, 4, inv.Lines[0].Quantity)
	assert.Equal(t, "6.00", inv.Total.StringFixed(2))
}

func TestRun_InvalidQuantityAtOrdering(t *testing.T) {
	in := script("1", "0", "1", "1", "3", "5", "y", "1.50")
	s, out := newSession(menu(), in, &fakeRecorder{})

	inv, err := s.Run()
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Quantity must be between 1 and 9999 per item.")
	assert.Equal(t, 1, inv.Lines[0].Quantity)
}

func TestRun_QuantityCannotOverflow(t *testing.T) {
	in := script(
		"1", "9223372036854775807", // rejected
		"1", "9999",                // Tea x9999
		"1", "1",                   // rejected, line is full
		"3", "5", "y",              // finish, finalize, confirm
		"0",                        // short payment
		"14998.50",                 // exact payment
	)
	s, out := newSession(menu(), in, &fakeRecorder{})

	inv, err := s.Run()
	require.NoError(t, err)

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "Quantity must be between 1 and 9999 per item."))
	assert.Contains(t, text, "Insufficient amount. You still owe $14998.50.")
	require.Len(t, inv.Lines, 1)
	assert.Equal(t, 9999, inv.Lines[0].Quantity)
	assert.Equal(t, "14998.50", inv.Total.StringFixed(2))
	assert.Equal(t, "0.00", inv.Change.StringFixed(2))
}

func TestRun_InputClosed(t *testing.T) {
	s, _ := newSession(menu(), script("1", "2"), &fakeRecorder{})

	_, err := s.Run()
	assert.ErrorIs(t, err, ErrInputClosed)
	assert.Equal(t, Ordering, s.State())
}

func TestRun_EmptyCatalogDoesNotCrash(t *testing.T) {
	s, out := newSession(catalog.Empty(), script("1", "", "2"), &fakeRecorder{})

	_, err := s.Run()
	assert.ErrorIs(t, err, ErrInputClosed)

	text := out.String()
	assert.Contains(t, text, "1. Finish Order")
	assert.Contains(t, text, "You must add at least one item to continue with billing.")
	assert.Contains(t, text, "Invalid choice. Please select a valid item number.")
}

func TestRun_RecorderFailureIsNotFatal(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	s, out := newSession(menu(), script("1", "1", "3", "5", "y", "2"), rec)

	inv, err := s.Run()
	require.NoError(t, err)
	assert.NotNil(t, inv)
	assert.Contains(t, out.String(), "Warning: the invoice could not be recorded.")
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		want     bool
	}{
		{Browsing, Ordering, true},
		{Ordering, Modifying, true},
		{Modifying, Ordering, true},
		{Modifying, AwaitingConfirmation, true},
		{AwaitingConfirmation, Modifying, true},
		{AwaitingConfirmation, AwaitingPayment, true},
		{AwaitingPayment, Finalized, true},
		{Browsing, AwaitingPayment, false},
		{AwaitingPayment, Modifying, false},
		{Finalized, Browsing, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestTransition_Illegal(t *testing.T) {
	s, _ := newSession(menu(), script(), nil)
	err := s.transition(Finalized)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, Browsing, s.State())
}

func TestANSITerminal(t *testing.T) {
	var buf bytes.Buffer
	ANSITerminal{Out: &buf}.Clear()
	assert.Equal(t, "\033[H\033[2J", buf.String())
	NopTerminal{}.Clear()
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "awaiting_confirmation", AwaitingConfirmation.String())
	assert.Equal(t, "state(42)", State(42).String())
}
