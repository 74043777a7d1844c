// =============================================================================
// Cafeteria Billing - Payment Settlement
// =============================================================================
//
// A Settlement reconciles the tendered amount against the order total.
//
// STATES:
//   AwaitingPayment --(amount >= total)--> Settled
//   AwaitingPayment --(amount <  total)--> AwaitingPayment (shortfall reported)
//
// Settled is terminal. Underpayment is never accepted and change is never
// negative.
//
// =============================================================================

package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// State is the settlement state.
type State int

const (
	AwaitingPayment State = iota
	Settled
)

func (s State) String() string {
	switch s {
	case AwaitingPayment:
		return "awaiting_payment"
	case Settled:
		return "settled"
	default:
		return "unknown"
	}
}

// Receipt is the outcome of a successful settlement.
type Receipt struct {
	Payment decimal.Decimal
	Change  decimal.Decimal
}

// Settlement tracks payment of one order total.
type Settlement struct {
	total   decimal.Decimal
	state   State
	receipt Receipt
}

// NewSettlement starts a settlement for total, awaiting payment.
func NewSettlement(total decimal.Decimal) *Settlement {
	return &Settlement{total: total, state: AwaitingPayment}
}

// Total returns the amount due.
func (s *Settlement) Total() decimal.Decimal { return s.total }

// State returns the current state.
func (s *Settlement) State() State { return s.state }

// Receipt returns the receipt of a settled payment.
func (s *Settlement) Receipt() (Receipt, bool) {
	return s.receipt, s.state == Settled
}

// Settle tenders amount against the total.
//
// RETURNS:
//   - The receipt when amount covers the total.
//   - *InsufficientPaymentError (matching ErrInsufficientPayment) when it
//     does not; the settlement keeps awaiting payment.
//   - ErrNegativeAmount or ErrAlreadySettled for invalid calls.
func (s *Settlement) Settle(amount decimal.Decimal) (Receipt, error) {
	if s.state == Settled {
		return Receipt{}, ErrAlreadySettled
	}
	if amount.IsNegative() {
		return Receipt{}, ErrNegativeAmount
	}
	if amount.LessThan(s.total) {
		return Receipt{}, &InsufficientPaymentError{Shortfall: s.total.Sub(amount)}
	}

	s.receipt = Receipt{Payment: amount, Change: amount.Sub(s.total)}
	s.state = Settled
	return s.receipt, nil
}

// Settle is the stateless form: it settles amountTendered against total in
// one step.
func Settle(amountTendered, total decimal.Decimal) (Receipt, error) {
	return NewSettlement(total).Settle(amountTendered)
}

// ParseAmount parses a tendered amount such as "10", "10.50" or "$10.50".
// symbol is the configured currency symbol and may be empty. Amounts finer
// than a cent are rejected.
func ParseAmount(text, symbol string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(text)
	if symbol != "" {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, symbol))
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil || cleaned == "" || !amount.Equal(amount.Round(2)) {
		return decimal.Decimal{}, &InputFormatError{Input: text}
	}
	return amount, nil
}
