package events

import (
	"context"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/sirupsen/logrus"
)

// LogPublisher пишет события в лог. Используется, когда брокеры Kafka не настроены.
type LogPublisher struct {
	l *logrus.Entry
}

func NewLogPublisher(l *logrus.Logger) *LogPublisher {
	return &LogPublisher{l: l.WithFields(logrus.Fields{
		"component": "events",
		"module":    "log_publisher",
	})}
}

func (p *LogPublisher) Publish(_ context.Context, event domain.OrderEvent) error {
	p.l.WithFields(logrus.Fields{
		"event":      event.Type,
		"orderID":    event.OrderID,
		"userID":     event.UserID,
		"boardID":    event.BoardID,
		"status":     event.Status,
		"totalPrice": event.TotalPrice.String(),
	}).Info("order event")
	return nil
}
