package repoargs

import (
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateOrder struct {
	UserID     int64
	BoardID    int64
	TotalPrice decimal.Decimal
}

type CreateOrderedLine struct {
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     decimal.Decimal
}

// UpdateOrderStatus обновление статуса заказа. Обновление выполняется только если текущий статус
// равен From, иначе репозиторий возвращает domain.ErrRecordNotFound.
type UpdateOrderStatus struct {
	ID              int64
	From            domain.OrderStatusType
	To              domain.OrderStatusType
	PaymentID       string
	UsedPoint       decimal.Decimal
	TotalPaidAmount decimal.Decimal
}

type StaleOrders struct {
	CreatedBefore time.Time
	Limit         uint
}
