package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatusType string

const (
	PaymentStatusReady     PaymentStatusType = "ready"
	PaymentStatusPaid      PaymentStatusType = "paid"
	PaymentStatusFailed    PaymentStatusType = "failed"
	PaymentStatusCancelled PaymentStatusType = "cancelled"
)

// PaymentRecord платеж, как его видит платежный шлюз.
type PaymentRecord struct {
	ID          string
	MerchantUID string
	Status      PaymentStatusType
	Amount      decimal.Decimal
	PaidAt      time.Time
}
