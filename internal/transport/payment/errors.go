package payment

import "errors"

var (
	ErrNoOrders        = errors.New("no orders")
	ErrPaymentMismatch = errors.New("payment does not match order")
)
