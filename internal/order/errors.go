package order

import "errors"

var (
	ErrUnknownItem     = errors.New("no menu item with that number")
	ErrInvalidQuantity = errors.New("quantity must be a positive whole number")
	ErrItemNotFound    = errors.New("item not found in the order")
)
