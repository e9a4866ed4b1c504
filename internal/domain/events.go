package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderEventType string

const (
	OrderEventRegistered OrderEventType = "OrderRegistered"
	OrderEventCompleted  OrderEventType = "OrderCompleted"
	OrderEventFailed     OrderEventType = "OrderFailed"
	OrderEventCancelled  OrderEventType = "OrderCancelled"
)

type OrderEvent struct {
	Type       OrderEventType
	OrderID    int64
	UserID     int64
	BoardID    int64
	Status     OrderStatusType
	TotalPrice decimal.Decimal
	OccurredAt time.Time
}

// NewOrderEvent собирает событие по текущему состоянию заказа.
func NewOrderEvent(t OrderEventType, o *Order, at time.Time) OrderEvent {
	return OrderEvent{
		Type:       t,
		OrderID:    o.ID,
		UserID:     o.UserID,
		BoardID:    o.BoardID,
		Status:     o.Status,
		TotalPrice: o.TotalPrice,
		OccurredAt: at,
	}
}
