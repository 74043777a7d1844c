package session

import "errors"

var (
	ErrInputClosed       = errors.New("input closed before the order was finalized")
	ErrIllegalTransition = errors.New("illegal transition of session state")
	ErrEmptyOrder        = errors.New("order is empty, nothing to check out")
)
