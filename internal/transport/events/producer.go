// Package events публикует события жизненного цикла заказов.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
)

const (
	defaultInboxSize    = 1024
	defaultFlushTimeout = 5 * time.Second
)

var (
	ErrInboxFull      = errors.New("event inbox is full")
	ErrProducerClosed = errors.New("event producer is closed")
)

// Producer асинхронно отправляет события в Kafka. Publish только кладет сообщение во входящую очередь,
// запись в брокер выполняет Run.
type Producer struct {
	w     Writer
	inbox chan kafka.Message
	// mu защищает closed: после закрытия в inbox ничего не попадает, и flush видит все принятые сообщения.
	mu       sync.RWMutex
	closed   bool
	producer string
	l        *logrus.Entry
}

// NewProducer создает продюсер, пишущий в topic. Сообщения одного заказа попадают в одну партицию.
func NewProducer(brokers []string, topic, producer string, l *logrus.Logger) *Producer {
	entry := l.WithFields(logrus.Fields{
		"component": "events",
		"module":    "producer",
		"topic":     topic,
	})
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				entry.WithError(err).WithField("messages", len(messages)).Error("kafka write failed")
			}
		},
	}
	return newProducer(w, producer, defaultInboxSize, entry)
}

func newProducer(w Writer, producer string, inboxSize int, l *logrus.Entry) *Producer {
	return &Producer{
		w:        w,
		inbox:    make(chan kafka.Message, inboxSize),
		producer: producer,
		l:        l,
	}
}

// Publish ставит событие в очередь на отправку. Контекст трассировки ctx попадает в заголовки сообщения.
// Не блокируется: при переполненной очереди возвращает ErrInboxFull.
func (p *Producer) Publish(ctx context.Context, event domain.OrderEvent) error {
	envelope, err := NewEnvelope(p.producer, event)
	if err != nil {
		return err
	}
	value, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %s", err.Error())
	}

	headers := []kafka.Header{
		{Key: HeaderEventType, Value: []byte(envelope.EventType)},
		{Key: HeaderEventVersion, Value: []byte(strconv.Itoa(envelope.EventVersion))},
	}
	otel.GetTextMapPropagator().Inject(ctx, headerCarrier{headers: &headers})

	msg := kafka.Message{
		Key:     []byte(envelope.CorrelationID),
		Value:   value,
		Time:    envelope.OccurredAt,
		Headers: headers,
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrProducerClosed
	}
	select {
	case p.inbox <- msg:
		return nil
	default:
		return fmt.Errorf("%w: event %s", ErrInboxFull, envelope.EventID)
	}
}

// Run отправляет сообщения из очереди до отмены контекста. После отмены дописывает то, что уже лежит в
// очереди, и закрывает writer.
func (p *Producer) Run(ctx context.Context) error {
	p.l.Info("Starting")
	for {
		select {
		case <-ctx.Done():
			p.close()
			return p.flush()
		case msg := <-p.inbox:
			if err := p.w.WriteMessages(ctx, msg); err != nil {
				p.l.WithError(err).WithField("key", string(msg.Key)).Error("write message")
			}
		}
	}
}

// close запрещает новые Publish. Возвращается только после завершения всех уже начатых.
func (p *Producer) close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

func (p *Producer) flush() error {
	flushCtx, cancel := context.WithTimeout(context.Background(), defaultFlushTimeout)
	defer cancel()

	var pending []kafka.Message
drain:
	for {
		select {
		case msg := <-p.inbox:
			pending = append(pending, msg)
		default:
			break drain
		}
	}

	var errs []error
	if len(pending) > 0 {
		p.l.WithField("messages", len(pending)).Info("Flushing")
		if err := p.w.WriteMessages(flushCtx, pending...); err != nil {
			errs = append(errs, fmt.Errorf("flush %d messages: %w", len(pending), err))
		}
	}
	if err := p.w.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close writer: %w", err))
	}
	p.l.Info("Stopped")
	return errors.Join(errs...)
}
