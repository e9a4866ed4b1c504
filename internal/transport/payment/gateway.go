// Package payment связывает заказы с внешним платежным шлюзом: проверка платежей при завершении заказа
// и сверка зависших заказов.
package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/transport/payment/client"
)

// Gateway адаптер платежного шлюза для сервисного слоя.
type Gateway struct {
	client Client
}

func NewGateway(baseURL, apiKey string) *Gateway {
	return &Gateway{client: client.New(baseURL, apiKey)}
}

// FetchPayment получает платеж по идентификатору шлюза.
func (g *Gateway) FetchPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	payment, err := g.client.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch payment `%s`: %w", paymentID, err)
	}
	return toRecord(payment), nil
}

// FindByMerchantUID ищет платеж заказа. Если шлюз платежа не знает, возвращает nil без ошибки.
func (g *Gateway) FindByMerchantUID(ctx context.Context, merchantUID string) (*domain.PaymentRecord, error) {
	payment, err := g.client.FindByMerchantUID(ctx, merchantUID)
	if err != nil {
		var statusErr *client.StatusCodeError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, nil //nolint:nilnil
		}
		return nil, fmt.Errorf("find payment of `%s`: %w", merchantUID, err)
	}
	return toRecord(payment), nil
}

// Validate сверяет платеж с заказом. order должен содержать PaymentID, UsedPoint и TotalPaidAmount из запроса
// на завершение.
//
// Платеж принимается, если:
//   - он оплачен и принадлежит этому заказу (merchant uid и payment id);
//   - сумма платежа равна TotalPaidAmount;
//   - UsedPoint + TotalPaidAmount равно стоимости заказа.
//
// Иначе возвращается ErrPaymentMismatch.
func (g *Gateway) Validate(record *domain.PaymentRecord, order *domain.Order) error {
	switch {
	case record == nil:
		return fmt.Errorf("%w: no payment", ErrPaymentMismatch)
	case record.Status != domain.PaymentStatusPaid:
		return fmt.Errorf("%w: payment status `%s`", ErrPaymentMismatch, record.Status)
	case record.MerchantUID != order.MerchantUID():
		return fmt.Errorf("%w: merchant uid `%s`", ErrPaymentMismatch, record.MerchantUID)
	case order.PaymentID != "" && record.ID != order.PaymentID:
		return fmt.Errorf("%w: payment id `%s`", ErrPaymentMismatch, record.ID)
	case order.UsedPoint.IsNegative() || order.TotalPaidAmount.IsNegative():
		return fmt.Errorf("%w: negative amount", ErrPaymentMismatch)
	case !record.Amount.Equal(order.TotalPaidAmount):
		return fmt.Errorf("%w: paid %s, declared %s", ErrPaymentMismatch, record.Amount, order.TotalPaidAmount)
	case !order.UsedPoint.Add(order.TotalPaidAmount).Equal(order.TotalPrice):
		return fmt.Errorf("%w: point %s + paid %s != total %s",
			ErrPaymentMismatch, order.UsedPoint, order.TotalPaidAmount, order.TotalPrice)
	}
	return nil
}

func toRecord(p *client.Payment) *domain.PaymentRecord {
	record := &domain.PaymentRecord{
		ID:          p.ImpUID,
		MerchantUID: p.MerchantUID,
		Status:      domain.PaymentStatusType(p.Status),
		Amount:      p.Amount,
	}
	if p.PaidAt > 0 {
		record.PaidAt = time.Unix(p.PaidAt, 0).UTC()
	}
	return record
}
