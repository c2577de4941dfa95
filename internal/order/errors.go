package order

import "errors"

var (
	ErrEmptyCart           = errors.New("cart is empty, nothing to order")
	IllegalTransitionError = errors.New("illegal transition of submission status")
)
