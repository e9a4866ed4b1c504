package admission

import (
	"context"
	"errors"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	defaultAdmitBatch    int64 = 50
	defaultAdmitCapacity int64 = 500
	defaultAdmitInterval       = time.Second
	defaultAdmissionTTL        = 5 * time.Minute
	defaultTickTimeout         = 3 * time.Second
)

// Admitter периодически продвигает очереди всех активных досок.
type Admitter struct {
	q        *Queue
	l        *logrus.Entry
	batch    int64
	capacity int64
	interval time.Duration
	ttl      time.Duration
}

func NewAdmitter(q *Queue, l *logrus.Logger) *Admitter {
	return &Admitter{
		q: q,
		l: l.WithFields(logrus.Fields{
			"component": "admission",
			"module":    "admitter",
		}),
		batch:    defaultAdmitBatch,
		capacity: defaultAdmitCapacity,
		interval: defaultAdmitInterval,
		ttl:      defaultAdmissionTTL,
	}
}

// SetBatch устанавливает кол-во участников, допускаемых за один тик на каждую доску.
func (a *Admitter) SetBatch(batch int64) *Admitter {
	if batch > 0 {
		a.batch = batch
	}
	return a
}

// SetCapacity ограничивает кол-во одновременно допущенных участников на доску. 0 снимает ограничение.
func (a *Admitter) SetCapacity(capacity int64) *Admitter {
	if capacity >= 0 {
		a.capacity = capacity
	}
	return a
}

func (a *Admitter) SetInterval(interval time.Duration) *Admitter {
	if interval > 0 {
		a.interval = interval
	}
	return a
}

// SetAdmissionTTL устанавливает время, за которое допущенный участник должен оформить заказ.
func (a *Admitter) SetAdmissionTTL(ttl time.Duration) *Admitter {
	if ttl > 0 {
		a.ttl = ttl
	}
	return a
}

// Run продвигает очереди раз в interval до отмены контекста.
//
// Алгоритм работы:
//  1. Получает список досок с живой очередью.
//  2. Для каждой доски выселяет участников, чей допуск старше ttl.
//  3. Допускает следующих batch участников, пока допущенных не больше capacity.
func (a *Admitter) Run(ctx context.Context) error {
	a.l.WithFields(logrus.Fields{
		"batch":    a.batch,
		"capacity": a.capacity,
		"interval": a.interval,
		"ttl":      a.ttl,
	}).Info("Starting")

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.l.Info("Got stop signal, exiting...")
			return nil
		case <-ticker.C:
			if err := a.tick(ctx); err != nil {
				a.l.WithError(err).Error("admission tick")
			}
		}
	}
}

func (a *Admitter) tick(ctx context.Context) error {
	tickCtx, cancel := context.WithTimeout(ctx, defaultTickTimeout)
	defer cancel()

	boards, err := a.q.ActiveBoards(tickCtx)
	if err != nil {
		return err
	}

	deadline := a.q.now().Add(-a.ttl)
	for _, boardID := range boards {
		l := a.l.WithField("boardID", boardID)

		evicted, evictErr := a.q.EvictExpired(tickCtx, boardID, deadline)
		if evictErr != nil {
			l.WithError(evictErr).Warn("evict expired")
		} else if evicted > 0 {
			l.WithField("evicted", evicted).Debug("evicted expired admissions")
		}

		cutoff, admitErr := a.q.Admit(tickCtx, boardID, a.batch, a.capacity)
		if admitErr != nil {
			// очередь могла истечь между ActiveBoards и Admit
			if !errors.Is(admitErr, domain.ErrQueueNotFound) {
				l.WithError(admitErr).Warn("admit")
			}
			continue
		}
		l.WithField("cutoff", cutoff).Debug("admitted")
	}
	return nil
}
