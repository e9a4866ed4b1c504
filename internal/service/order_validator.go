package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/sirupsen/logrus"
)

type Validator struct {
	queue            AdmissionQueue
	l                *logrus.Entry
	requireAdmission bool
}

func NewOrderValidator(queue AdmissionQueue, l *logrus.Logger) *Validator {
	return &Validator{
		queue: queue,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "order_validator",
		}),
	}
}

// SetRequireAdmission включает проверку допуска из очереди перед блокировкой товаров.
func (v *Validator) SetRequireAdmission(require bool) *Validator {
	v.requireAdmission = require
	return v
}

// Validate проверяет заявку на заказ в рамках транзакции tx.
//
// Параметры:
//   - tx: транзакция, в которой будет создан заказ. Блокировки товаров держатся до ее коммита.
//   - observedAt: момент, на который проверяется окно продаж.
//
// Алгоритм работы:
//  1. Ищет доску. Если ее нет - убирает пользователя из очереди и возвращает domain.ErrEventNotFound.
//  2. Проверяет окно продаж. Границы строгие: ровно в StartedAt и EndedAt заказ принимается.
//     До старта - domain.ErrUnopenedEvent, после окончания - domain.ErrExpiredEvent. Место в очереди сохраняется.
//  3. Если включена проверка допуска, недопущенный пользователь получает domain.ErrNotAdmitted.
//  4. Объединяет позиции с одинаковым товаром и блокирует товары в порядке возрастания id, чтобы
//     конкурентные заказы не взаимоблокировались.
//  5. Нет товара (или он с другой доски) - выход из очереди и domain.ErrProductNotFound,
//     не хватает остатка - выход из очереди и *domain.LackOfStockError.
func (v *Validator) Validate(
	ctx context.Context,
	tx uow.TX,
	req domain.RegisterOrder,
	userID int64,
	observedAt time.Time,
) ([]domain.ValidatedLine, error) {
	lines, linesErr := mergeLines(req.Lines)
	if linesErr != nil {
		return nil, linesErr
	}

	boardRepo, repoErr := uow.GetAs[BoardRepository](tx, uow.RepositoryName(repoargs.BoardRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	board, boardErr := boardRepo.FindByID(ctx, req.BoardID)
	if boardErr != nil {
		if errors.Is(boardErr, domain.ErrRecordNotFound) {
			return nil, v.reject(ctx, req.BoardID, userID, fmt.Errorf("board %d: %w", req.BoardID, domain.ErrEventNotFound))
		}
		return nil, fmt.Errorf("find board %d: %w", req.BoardID, boardErr)
	}

	if observedAt.Before(board.StartedAt) {
		return nil, fmt.Errorf("board %d opens at %s: %w", board.ID, board.StartedAt, domain.ErrUnopenedEvent)
	}
	if observedAt.After(board.EndedAt) {
		return nil, fmt.Errorf("board %d closed at %s: %w", board.ID, board.EndedAt, domain.ErrExpiredEvent)
	}

	if v.requireAdmission {
		admitted, admErr := v.queue.IsAdmitted(ctx, board.ID, userID)
		if admErr != nil {
			return nil, fmt.Errorf("check admission: %w", admErr)
		}
		if !admitted {
			return nil, fmt.Errorf("user %d on board %d: %w", userID, board.ID, domain.ErrNotAdmitted)
		}
	}

	ledger, ledgerErr := NewStockLedger(tx)
	if ledgerErr != nil {
		return nil, ledgerErr
	}

	validated := make([]domain.ValidatedLine, 0, len(lines))
	for _, line := range lines {
		product, lockErr := ledger.LockAndRead(ctx, line.ProductID)
		if lockErr != nil {
			if errors.Is(lockErr, domain.ErrProductNotFound) {
				return nil, v.reject(ctx, board.ID, userID, lockErr)
			}
			return nil, lockErr
		}
		if product.BoardID != board.ID {
			return nil, v.reject(ctx, board.ID, userID,
				fmt.Errorf("product %d is not on board %d: %w", product.ID, board.ID, domain.ErrProductNotFound))
		}
		if line.Quantity > product.Stock {
			return nil, v.reject(ctx, board.ID, userID,
				domain.NewLackOfStockError(product.ID, line.Quantity, product.Stock))
		}
		validated = append(validated, domain.ValidatedLine{Product: *product, Quantity: line.Quantity})
	}
	return validated, nil
}

// reject убирает пользователя из очереди и возвращает cause. Ошибка выхода из очереди только логируется:
// пользователю важнее причина отказа.
func (v *Validator) reject(ctx context.Context, boardID, userID int64, cause error) error {
	if err := v.queue.Exit(ctx, boardID, userID); err != nil {
		v.l.WithError(err).WithFields(logrus.Fields{
			"boardID": boardID,
			"userID":  userID,
		}).Warn("exit queue after rejected order")
	}
	return cause
}

// mergeLines суммирует количества одинаковых товаров и сортирует позиции по возрастанию product id.
func mergeLines(lines []domain.RegisterOrderLine) ([]domain.RegisterOrderLine, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty order: %w", domain.ErrInvalidOrder)
	}
	qty := make(map[int64]int64, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("product %d quantity %d: %w", line.ProductID, line.Quantity, domain.ErrInvalidOrder)
		}
		qty[line.ProductID] += line.Quantity
	}

	merged := make([]domain.RegisterOrderLine, 0, len(qty))
	for productID, q := range qty {
		merged = append(merged, domain.RegisterOrderLine{ProductID: productID, Quantity: q})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].ProductID < merged[j].ProductID })
	return merged, nil
}
