package payment

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/fsdevblog/flashboard/internal/transport/payment/client"
	"github.com/fsdevblog/flashboard/internal/transport/payment/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor   *Processor
	mockClient  *mocks.MockClient
	mockService *mocks.MockServicer
	ctrl        *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockClient = mocks.NewMockClient(s.ctrl)
	s.mockService = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = NewProcessor(s.mockService, &Gateway{client: s.mockClient}, logger).SetWorkers(2)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

func testOrders() []domain.Order {
	return []domain.Order{
		{ID: 1, UserID: 100, Status: domain.OrderStatusPaymentWait, TotalPrice: decimal.NewFromInt(10000)},
		{ID: 2, UserID: 101, Status: domain.OrderStatusPaymentWait, TotalPrice: decimal.NewFromInt(5000)},
	}
}

// TestProcess_NoOrders Тест на случай, когда нет зависших заказов.
func (s *ProcessorTestSuite) TestProcess_NoOrders() {
	s.mockService.EXPECT().
		StaleOrders(gomock.Any(), s.processor.paymentWaitTTL, s.processor.limitPerIteration).
		Return(nil, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoOrders)
}

// TestProcess_Success платеж первого заказа найден, второго в шлюзе нет.
func (s *ProcessorTestSuite) TestProcess_Success() {
	s.mockService.EXPECT().
		StaleOrders(gomock.Any(), s.processor.paymentWaitTTL, s.processor.limitPerIteration).
		Return(testOrders(), nil)

	s.mockClient.EXPECT().
		FindByMerchantUID(gomock.Any(), "order_1").
		Return(&client.Payment{ImpUID: "imp_1", MerchantUID: "order_1", Status: "paid", Amount: decimal.NewFromInt(9000)}, nil)
	s.mockClient.EXPECT().
		FindByMerchantUID(gomock.Any(), "order_2").
		Return(nil, client.NewStatusCodeError(http.StatusNotFound))

	s.mockService.EXPECT().
		Reconcile(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, updates []service.ReconcileArgs) {
			s.Require().Len(updates, 2)
			for _, update := range updates {
				switch update.Order.ID {
				case 1:
					s.Require().NotNil(update.Record)
					s.Equal("imp_1", update.Record.ID)
				case 2:
					s.Nil(update.Record)
				default:
					s.Failf("unexpected order", "order %d", update.Order.ID)
				}
			}
		}).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

// TestProcess_ReconcileDeadlineScalesWithBatch большая пачка получает время на каждый заказ.
func (s *ProcessorTestSuite) TestProcess_ReconcileDeadlineScalesWithBatch() {
	const batch = 10
	orders := make([]domain.Order, 0, batch)
	for i := range int64(batch) {
		orders = append(orders, domain.Order{
			ID:         i + 1,
			UserID:     100,
			Status:     domain.OrderStatusPaymentWait,
			TotalPrice: decimal.NewFromInt(1000),
		})
	}
	s.mockService.EXPECT().
		StaleOrders(gomock.Any(), s.processor.paymentWaitTTL, s.processor.limitPerIteration).
		Return(orders, nil)
	s.mockClient.EXPECT().
		FindByMerchantUID(gomock.Any(), gomock.Any()).
		Return(nil, client.NewStatusCodeError(http.StatusNotFound)).
		Times(batch)

	s.mockService.EXPECT().
		Reconcile(gomock.Any(), gomock.Len(batch)).
		Do(func(ctx context.Context, _ []service.ReconcileArgs) {
			deadline, ok := ctx.Deadline()
			s.Require().True(ok)
			s.Greater(time.Until(deadline), defaultServiceTimeout)
		}).
		Return(nil)

	s.NoError(s.processor.process(s.T().Context()))
}

func TestReconcileTimeout(t *testing.T) {
	cases := []struct {
		orders int
		want   time.Duration
	}{
		{orders: 1, want: defaultServiceTimeout},
		{orders: 3, want: defaultServiceTimeout},
		{orders: 100, want: 100 * defaultOrderReconcileTimeout},
	}
	for _, tc := range cases {
		if got := reconcileTimeout(tc.orders); got != tc.want {
			t.Errorf("reconcileTimeout(%d) = %s, want %s", tc.orders, got, tc.want)
		}
	}
}

// TestProcess_TransientErrorSkipsOrder заказ с ошибкой шлюза не попадает в сверку, чтобы не провалить оплаченный заказ.
func (s *ProcessorTestSuite) TestProcess_TransientErrorSkipsOrder() {
	s.mockService.EXPECT().
		StaleOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(testOrders(), nil)

	s.mockClient.EXPECT().
		FindByMerchantUID(gomock.Any(), "order_1").
		Return(nil, client.NewStatusCodeError(http.StatusInternalServerError))
	s.mockClient.EXPECT().
		FindByMerchantUID(gomock.Any(), "order_2").
		Return(nil, errors.New("connection reset by peer"))

	s.mockService.EXPECT().Reconcile(gomock.Any(), gomock.Any()).Times(0)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

// TestProcess_TooManyRequests после 429 воркер ждет Retry-After и повторяет запрос.
func (s *ProcessorTestSuite) TestProcess_TooManyRequests() {
	order := testOrders()[:1]
	s.mockService.EXPECT().
		StaleOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(order, nil)

	gomock.InOrder(
		s.mockClient.EXPECT().
			FindByMerchantUID(gomock.Any(), "order_1").
			Return(nil, client.NewTooManyRequestError(10*time.Millisecond)),
		s.mockClient.EXPECT().
			FindByMerchantUID(gomock.Any(), "order_1").
			Return(&client.Payment{ImpUID: "imp_1", MerchantUID: "order_1", Status: "failed"}, nil),
	)

	s.mockService.EXPECT().
		Reconcile(gomock.Any(), gomock.Len(1)).
		Return(nil)

	ctx, cancel := context.WithTimeout(s.T().Context(), time.Second)
	defer cancel()
	s.NoError(s.processor.process(ctx))
}

func (s *ProcessorTestSuite) TestRun_StopsOnCancel() {
	s.mockService.EXPECT().
		StaleOrders(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	ctx, cancel := context.WithCancel(s.T().Context())
	done := make(chan error, 1)
	go func() { done <- s.processor.SetInterval(10 * time.Millisecond).Run(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.Fail("processor did not stop")
	}
}
