package domain

import (
	"errors"
	"fmt"
)

// Ошибки слоя хранения.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrLockTimeout    = errors.New("lock timeout")
	ErrCheckViolation = errors.New("check violation")
	ErrUnknown        = errors.New("unknown error")
)

// Бизнес-ошибки. Текст ошибок показывается пользователю.
var (
	ErrEventNotFound   = errors.New("event not found")
	ErrUnopenedEvent   = errors.New("event is not opened yet")
	ErrExpiredEvent    = errors.New("event is already closed")
	ErrProductNotFound = errors.New("product not found")
	ErrLackOfStock     = errors.New("not enough stock")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPaymentFail     = errors.New("payment failed")
	ErrCancelFail      = errors.New("order cannot be cancelled")
	ErrQueueCreateFail = errors.New("failed to create admission queue")

	ErrQueueNotFound   = errors.New("admission queue not found")
	ErrNotAdmitted     = errors.New("not admitted yet")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidBoard    = errors.New("invalid board")
	ErrNotEnoughPoint  = errors.New("not enough point")
	ErrUploadFail      = errors.New("image upload failed")
	ErrEmailVerifyFail = errors.New("email verification failed")
)

// LackOfStockError детализирует ErrLackOfStock.
type LackOfStockError struct {
	ProductID int64
	Requested int64
	Available int64
}

func NewLackOfStockError(productID, requested, available int64) error {
	return &LackOfStockError{ProductID: productID, Requested: requested, Available: available}
}

func (e *LackOfStockError) Error() string {
	return fmt.Sprintf(
		"%s: product %d requested %d, available %d",
		ErrLackOfStock.Error(),
		e.ProductID,
		e.Requested,
		e.Available,
	)
}

func (e *LackOfStockError) Is(target error) bool {
	return target == ErrLackOfStock
}

// PaymentFailError ErrPaymentFail с причиной отказа. Причина в ответ пользователю не попадает.
type PaymentFailError struct {
	OrderID int64
	Cause   error
}

func NewPaymentFailError(orderID int64, cause error) error {
	return &PaymentFailError{OrderID: orderID, Cause: cause}
}

func (e *PaymentFailError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: order %d", ErrPaymentFail.Error(), e.OrderID)
	}
	return fmt.Sprintf("%s: order %d: %s", ErrPaymentFail.Error(), e.OrderID, e.Cause.Error())
}

func (e *PaymentFailError) Is(target error) bool {
	return target == ErrPaymentFail
}

func (e *PaymentFailError) Unwrap() error {
	return e.Cause
}
