package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string
	Point     decimal.Decimal
}

type Board struct {
	ID           int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	CompanyID    int64
	Title        string
	Content      string
	ThumbnailURL string
	DetailURL    string
	Status       BoardStatusType
	StartedAt    time.Time
	EndedAt      time.Time
}

// IsOpenAt проверяет окно продаж. Границы не строгие: в момент StartedAt и EndedAt доска открыта.
func (b *Board) IsOpenAt(t time.Time) bool {
	return !t.Before(b.StartedAt) && !t.After(b.EndedAt)
}

type Product struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	BoardID   int64
	Name      string
	Price     decimal.Decimal
	Stock     int64
}

type BoardThumbnail struct {
	ID      int64
	BoardID int64
	URL     string
}

type OrderedLine struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	Price     decimal.Decimal
}

type Order struct {
	ID              int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	UserID          int64
	BoardID         int64
	Status          OrderStatusType
	TotalPrice      decimal.Decimal
	UsedPoint       decimal.Decimal
	TotalPaidAmount decimal.Decimal
	PaymentID       string
	Lines           []OrderedLine
}

// MerchantUID идентификатор заказа на стороне платежного шлюза.
func (o *Order) MerchantUID() string {
	return MerchantUID(o.ID)
}

type VerificationCode struct {
	ID        int64
	CreatedAt time.Time
	Email     string
	CodeHash  string
	ExpiresAt time.Time
	Attempts  int
}
