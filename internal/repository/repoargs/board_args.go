package repoargs

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBoard struct {
	CompanyID    int64
	Title        string
	Content      string
	ThumbnailURL string
	DetailURL    string
	StartedAt    time.Time
	EndedAt      time.Time
}

type CreateProduct struct {
	BoardID int64
	Name    string
	Price   decimal.Decimal
	Stock   int64
}
