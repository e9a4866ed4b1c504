package events

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventVersion = 1

	HeaderEventType    = "x-event-type"
	HeaderEventVersion = "x-event-version"
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderPayload struct {
	OrderID    int64           `json:"order_id"`
	UserID     int64           `json:"user_id"`
	BoardID    int64           `json:"board_id"`
	Status     string          `json:"status"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// NewEnvelope заворачивает событие заказа. CorrelationID - id заказа, он же ключ партиционирования.
func NewEnvelope(producer string, event domain.OrderEvent) (*Envelope, error) {
	payload, err := json.Marshal(OrderPayload{
		OrderID:    event.OrderID,
		UserID:     event.UserID,
		BoardID:    event.BoardID,
		Status:     string(event.Status),
		TotalPrice: event.TotalPrice,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %s", err.Error())
	}
	return &Envelope{
		EventID:       uuid.NewString(),
		EventType:     string(event.Type),
		EventVersion:  EventVersion,
		OccurredAt:    event.OccurredAt.UTC(),
		Producer:      producer,
		CorrelationID: PartitionKey(event.OrderID),
		Payload:       payload,
	}, nil
}

func PartitionKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}
