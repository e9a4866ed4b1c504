package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/sirupsen/logrus"
)

var errPaymentNotSettled = errors.New("payment was not settled in time")

// StaleOrders возвращает заказы, которые ждут оплату дольше olderThan.
func (o *OrderService) StaleOrders(ctx context.Context, olderThan time.Duration, limit uint) ([]domain.Order, error) {
	orders, err := o.orderRepo.GetStale(ctx, repoargs.StaleOrders{
		CreatedBefore: o.now().Add(-olderThan),
		Limit:         limit,
	})
	if err != nil {
		return nil, fmt.Errorf("getting stale orders: %w", err)
	}
	return orders, nil
}

// ReconcileArgs результат поиска платежа по зависшему заказу. Record == nil - шлюз платежа не знает.
type ReconcileArgs struct {
	Order  domain.Order
	Record *domain.PaymentRecord
}

// Reconcile закрывает зависшие заказы по данным платежного шлюза. Каждый заказ обрабатывается в своей
// транзакции, ошибки собираются в одну.
//
// Алгоритм работы:
//  1. Оплаченный платеж с нашим merchant uid и суммой не больше стоимости заказа завершает заказ,
//     разница между стоимостью и суммой платежа списывается баллами.
//  2. Во всех остальных случаях заказ переводится в ORDER_FAIL без возврата остатков.
func (o *OrderService) Reconcile(ctx context.Context, updates []ReconcileArgs) error {
	var errs []error
	for _, update := range updates {
		order := update.Order
		l := o.l.WithField("orderID", order.ID)

		if !settles(update.Record, &order) {
			if err := o.persistFail(ctx, &order); err != nil {
				// заказ успели обработать конкурентно
				if errors.Is(err, domain.ErrRecordNotFound) {
					continue
				}
				errs = append(errs, fmt.Errorf("fail stale order %d: %w", order.ID, err))
				continue
			}
			l.WithError(errPaymentNotSettled).Info("stale order failed")
			continue
		}

		paid := update.Record.Amount
		completed, completeErr := o.completeOrder(ctx, &order, CompleteOrderArgs{
			OrderID:         order.ID,
			PaymentID:       update.Record.ID,
			UsedPoint:       order.TotalPrice.Sub(paid),
			TotalPaidAmount: paid,
		})
		if completeErr != nil {
			if errors.Is(completeErr, domain.ErrNotEnoughPoint) {
				if err := o.persistFail(ctx, &order); err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
					errs = append(errs, fmt.Errorf("fail stale order %d: %w", order.ID, err))
				}
				continue
			}
			if errors.Is(completeErr, errOrderNotPending) {
				continue
			}
			errs = append(errs, fmt.Errorf("reconcile order %d: %w", order.ID, completeErr))
			continue
		}
		l.WithFields(logrus.Fields{"paymentID": update.Record.ID, "paid": paid}).Info("stale order completed")
		o.publish(ctx, domain.OrderEventCompleted, completed)
	}
	return errors.Join(errs...)
}

func settles(record *domain.PaymentRecord, order *domain.Order) bool {
	return record != nil &&
		record.Status == domain.PaymentStatusPaid &&
		record.MerchantUID == order.MerchantUID() &&
		!record.Amount.IsNegative() &&
		record.Amount.LessThanOrEqual(order.TotalPrice)
}
