package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	errOwnerMismatch   = errors.New("order belongs to another user")
	errOrderNotPending = errors.New("order is not waiting for payment")
)

type OrderService struct {
	uow             uow.UOW
	orderRepo       OrderRepository
	validator       OrderValidator
	queue           AdmissionQueue
	payments        PaymentGateway
	events          EventPublisher
	l               *logrus.Entry
	now             func() time.Time
	restockOnCancel bool
}

type OrderServiceDeps struct {
	Validator OrderValidator
	Queue     AdmissionQueue
	Payments  PaymentGateway
	Events    EventPublisher
	Logger    *logrus.Logger
}

func NewOrderService(u uow.UOW, deps OrderServiceDeps) (*OrderService, error) {
	orderRepo, err := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &OrderService{
		uow:       u,
		orderRepo: orderRepo,
		validator: deps.Validator,
		queue:     deps.Queue,
		payments:  deps.Payments,
		events:    deps.Events,
		l: deps.Logger.WithFields(logrus.Fields{
			"component": "service",
			"module":    "orders",
		}),
		now:             time.Now,
		restockOnCancel: true,
	}, nil
}

// SetRestockOnCancel включает возврат остатков при отмене заказа.
func (o *OrderService) SetRestockOnCancel(restock bool) *OrderService {
	o.restockOnCancel = restock
	return o
}

// Register оформляет заказ и возвращает его id.
//
// Алгоритм работы:
//  1. В одной транзакции: валидация (блокирует товары), создание заказа в статусе PAYMENT_WAIT с позициями,
//     списание остатков. Любая ошибка откатывает все целиком.
//  2. После коммита пользователь покидает очередь, публикуется событие OrderRegistered.
//
// Ошибки валидатора возвращаются без изменения типа.
func (o *OrderService) Register(ctx context.Context, userID int64, args domain.RegisterOrder) (int64, error) {
	ctx, span := tracer.Start(ctx, "OrderService.Register", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("board.id", args.BoardID),
	))
	defer span.End()

	observedAt := o.now()

	var order *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		lines, validateErr := o.validator.Validate(c, tx, args, userID, observedAt)
		if validateErr != nil {
			return validateErr //nolint:wrapcheck
		}

		created, createErr := o.createOrder(c, tx, userID, args.BoardID, lines)
		if createErr != nil {
			return createErr
		}
		order = created
		return nil
	})
	if txErr != nil {
		span.RecordError(txErr)
		span.SetStatus(codes.Error, "register order")
		return 0, fmt.Errorf("registering order: %w", txErr)
	}

	span.SetAttributes(attribute.Int64("order.id", order.ID))

	if err := o.queue.Exit(ctx, order.BoardID, userID); err != nil {
		o.l.WithError(err).WithField("orderID", order.ID).Warn("exit queue after checkout")
	}
	o.publish(ctx, domain.OrderEventRegistered, order)

	return order.ID, nil
}

func (o *OrderService) createOrder(
	ctx context.Context,
	tx uow.TX,
	userID, boardID int64,
	lines []domain.ValidatedLine,
) (*domain.Order, error) {
	orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	ledger, ledgerErr := NewStockLedger(tx)
	if ledgerErr != nil {
		return nil, ledgerErr
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Product.Price.Mul(decimal.NewFromInt(line.Quantity)))
	}

	order, createErr := orderRepo.Create(ctx, repoargs.CreateOrder{
		UserID:     userID,
		BoardID:    boardID,
		TotalPrice: total,
	})
	if createErr != nil {
		return nil, createErr //nolint:wrapcheck
	}

	lineArgs := make([]repoargs.CreateOrderedLine, len(lines))
	for i, line := range lines {
		lineArgs[i] = repoargs.CreateOrderedLine{
			OrderID:   order.ID,
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		}
	}
	orderLines, linesErr := orderRepo.CreateLines(ctx, lineArgs)
	if linesErr != nil {
		return nil, linesErr //nolint:wrapcheck
	}

	for _, line := range lines {
		if err := ledger.Decrement(ctx, line.Product.ID, line.Quantity); err != nil {
			return nil, err
		}
	}

	order.Lines = orderLines
	return order, nil
}

type CompleteOrderArgs struct {
	OrderID         int64
	PaymentID       string
	UsedPoint       decimal.Decimal
	TotalPaidAmount decimal.Decimal
}

// Complete подтверждает оплату заказа.
//
// Алгоритм работы:
//  1. Заказ должен существовать (иначе domain.ErrOrderNotFound), принадлежать userID и ждать оплаты
//     (иначе ошибка, совместимая с domain.ErrPaymentFail).
//  2. Платеж запрашивается у шлюза и сверяется с заказом вне транзакции БД.
//  3. Если платеж не найден или не сходится, заказ переводится в ORDER_FAIL и только после записи
//     возвращается *domain.PaymentFailError.
//  4. Иначе в одной транзакции заказ переводится в ORDER_COMPLETE и с пользователя списываются баллы.
//     Нехватка баллов обрабатывается как в п.3.
func (o *OrderService) Complete(ctx context.Context, userID int64, args CompleteOrderArgs) (*domain.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.Complete", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("order.id", args.OrderID),
	))
	defer span.End()

	order, findErr := o.findOrder(ctx, args.OrderID)
	if findErr != nil {
		return nil, findErr
	}
	if order.UserID != userID {
		return nil, domain.NewPaymentFailError(order.ID, errOwnerMismatch)
	}
	if order.Status != domain.OrderStatusPaymentWait {
		return nil, domain.NewPaymentFailError(order.ID, errOrderNotPending)
	}

	record, fetchErr := o.payments.FetchPayment(ctx, args.PaymentID)
	if fetchErr == nil {
		candidate := *order
		candidate.PaymentID = args.PaymentID
		candidate.UsedPoint = args.UsedPoint
		candidate.TotalPaidAmount = args.TotalPaidAmount
		fetchErr = o.payments.Validate(record, &candidate)
	}
	if fetchErr != nil {
		span.RecordError(fetchErr)
		span.SetStatus(codes.Error, "payment rejected")
		return nil, o.failOrder(ctx, order, fetchErr)
	}

	completed, completeErr := o.completeOrder(ctx, order, args)
	if completeErr != nil {
		span.RecordError(completeErr)
		span.SetStatus(codes.Error, "complete order")
		switch {
		case errors.Is(completeErr, domain.ErrNotEnoughPoint):
			return nil, o.failOrder(ctx, order, completeErr)
		case errors.Is(completeErr, errOrderNotPending):
			return nil, domain.NewPaymentFailError(order.ID, completeErr)
		}
		return nil, fmt.Errorf("completing order %d: %w", order.ID, completeErr)
	}

	o.publish(ctx, domain.OrderEventCompleted, completed)
	return completed, nil
}

// completeOrder переводит заказ в ORDER_COMPLETE и списывает баллы в одной транзакции.
func (o *OrderService) completeOrder(
	ctx context.Context,
	order *domain.Order,
	args CompleteOrderArgs,
) (*domain.Order, error) {
	var completed *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		locked, lockErr := orderRepo.FindByIDForUpdate(c, order.ID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status != domain.OrderStatusPaymentWait {
			return errOrderNotPending
		}

		updated, updErr := orderRepo.UpdateStatus(c, repoargs.UpdateOrderStatus{
			ID:              order.ID,
			From:            domain.OrderStatusPaymentWait,
			To:              domain.OrderStatusComplete,
			PaymentID:       args.PaymentID,
			UsedPoint:       args.UsedPoint,
			TotalPaidAmount: args.TotalPaidAmount,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if err := userRepo.DebitPoint(c, order.UserID, args.UsedPoint); err != nil {
			return err //nolint:wrapcheck
		}
		completed = updated
		return nil
	})
	if txErr != nil {
		return nil, txErr //nolint:wrapcheck
	}
	return completed, nil
}

// failOrder фиксирует ORDER_FAIL и возвращает *domain.PaymentFailError с причиной cause.
// Остатки не возвращаются.
func (o *OrderService) failOrder(ctx context.Context, order *domain.Order, cause error) error {
	if err := o.persistFail(ctx, order); err != nil {
		o.l.WithError(err).WithField("orderID", order.ID).Error("persist failed order")
		return domain.NewPaymentFailError(order.ID, errors.Join(cause, err))
	}
	return domain.NewPaymentFailError(order.ID, cause)
}

// persistFail переводит заказ из PAYMENT_WAIT в ORDER_FAIL. Если заказ уже не ждет оплаты,
// возвращает domain.ErrRecordNotFound.
func (o *OrderService) persistFail(ctx context.Context, order *domain.Order) error {
	var failed *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		updated, updErr := orderRepo.UpdateStatus(c, repoargs.UpdateOrderStatus{
			ID:   order.ID,
			From: domain.OrderStatusPaymentWait,
			To:   domain.OrderStatusFail,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}
		failed = updated
		return nil
	})
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}

	o.publish(ctx, domain.OrderEventFailed, failed)
	return nil
}

// Cancel отменяет заказ пользователя.
//
// Алгоритм работы:
//  1. Заказ блокируется. Нет заказа - domain.ErrOrderNotFound, чужой заказ или заказ в статусе,
//     из которого отмена невозможна, - domain.ErrCancelFail. Статус при этом не меняется.
//  2. Заказ переводится в ORDER_CANCEL. Если он был оплачен, списанные баллы возвращаются.
//  3. Если включен возврат остатков, позиции возвращаются на склад через StockLedger.
func (o *OrderService) Cancel(ctx context.Context, userID, orderID int64) error {
	ctx, span := tracer.Start(ctx, "OrderService.Cancel", trace.WithAttributes(
		attribute.Int64("user.id", userID),
		attribute.Int64("order.id", orderID),
	))
	defer span.End()

	var cancelled *domain.Order
	txErr := o.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, repoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		order, findErr := orderRepo.FindByIDForUpdate(c, orderID)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				return fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
			}
			return findErr //nolint:wrapcheck
		}
		if order.UserID != userID {
			return fmt.Errorf("order %d: %w: %w", orderID, domain.ErrCancelFail, errOwnerMismatch)
		}
		if !order.Status.CanTransition(domain.OrderStatusCancel) {
			return fmt.Errorf("order %d in status %s: %w", orderID, order.Status, domain.ErrCancelFail)
		}

		updated, updErr := orderRepo.UpdateStatus(c, repoargs.UpdateOrderStatus{
			ID:   order.ID,
			From: order.Status,
			To:   domain.OrderStatusCancel,
		})
		if updErr != nil {
			return updErr //nolint:wrapcheck
		}

		if order.Status == domain.OrderStatusComplete {
			userRepo, userRepoErr := uow.GetAs[UserRepository](tx, uow.RepositoryName(repoargs.UserRepoName))
			if userRepoErr != nil {
				return userRepoErr //nolint:wrapcheck
			}
			if err := userRepo.CreditPoint(c, order.UserID, order.UsedPoint); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if o.restockOnCancel {
			if err := o.restock(c, tx, orderRepo, order.ID); err != nil {
				return err
			}
		}
		cancelled = updated
		return nil
	})
	if txErr != nil {
		span.RecordError(txErr)
		span.SetStatus(codes.Error, "cancel order")
		return fmt.Errorf("cancelling order: %w", txErr)
	}

	o.publish(ctx, domain.OrderEventCancelled, cancelled)
	return nil
}

func (o *OrderService) restock(ctx context.Context, tx uow.TX, orderRepo OrderRepository, orderID int64) error {
	lines, linesErr := orderRepo.GetLines(ctx, orderID)
	if linesErr != nil {
		return linesErr //nolint:wrapcheck
	}
	ledger, ledgerErr := NewStockLedger(tx)
	if ledgerErr != nil {
		return ledgerErr
	}
	return ledger.RestockLines(ctx, lines)
}

// Get возвращает заказ пользователя с позициями. Чужой заказ неотличим от несуществующего.
func (o *OrderService) Get(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := o.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
	}
	lines, linesErr := o.orderRepo.GetLines(ctx, orderID)
	if linesErr != nil {
		return nil, fmt.Errorf("getting order lines: %w", linesErr)
	}
	order.Lines = lines
	return order, nil
}

func (o *OrderService) findOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := o.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("order %d: %w", orderID, domain.ErrOrderNotFound)
		}
		return nil, fmt.Errorf("finding order %d: %w", orderID, err)
	}
	return order, nil
}

func (o *OrderService) publish(ctx context.Context, t domain.OrderEventType, order *domain.Order) {
	if o.events == nil || order == nil {
		return
	}
	if err := o.events.Publish(ctx, domain.NewOrderEvent(t, order, o.now())); err != nil {
		o.l.WithError(err).WithFields(logrus.Fields{
			"orderID": order.ID,
			"event":   t,
		}).Warn("publish order event")
	}
}
