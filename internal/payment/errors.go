package payment

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrNegativeAmount      = errors.New("payment amount must not be negative")
	ErrAlreadySettled      = errors.New("payment already settled")
)

// InsufficientPaymentError carries the amount still owed.
type InsufficientPaymentError struct {
	Shortfall decimal.Decimal
}

func (e *InsufficientPaymentError) Error() string {
	return fmt.Sprintf("insufficient amount, %s still owed", e.Shortfall.StringFixed(2))
}

// Is lets errors.Is match ErrInsufficientPayment.
func (e *InsufficientPaymentError) Is(target error) bool {
	return target == ErrInsufficientPayment
}

// InputFormatError is returned when an amount cannot be parsed.
type InputFormatError struct {
	Input string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("%q is not a valid amount", e.Input)
}
