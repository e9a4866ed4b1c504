package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func orderURL(orderID int64, suffix string) string {
	return fmt.Sprintf("%s/orders/%d%s", RouteGroup, orderID, suffix)
}

func (s *APITestSuite) TestRegisterOrder() {
	validBody := orderBody(1, []OrderLineParams{{ProductID: 10, Quantity: 2}, {ProductID: 11, Quantity: 1}})

	s.Run("created", func() {
		s.mockOrderService.EXPECT().
			Register(gomock.Any(), testUserID, domain.RegisterOrder{
				BoardID: 1,
				Lines:   []domain.RegisterOrderLine{{ProductID: 10, Quantity: 2}, {ProductID: 11, Quantity: 1}},
			}).
			Return(int64(77), nil)

		status, body := s.jsonRequest(http.MethodPost, RouteGroup+OrdersRoute, s.userToken, validBody)
		s.Equal(http.StatusCreated, status)
		s.JSONEq(`{"orderId":77}`, string(body))
	})

	s.Run("not authorized", func() {
		s.mockOrderService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, _ := s.jsonRequest(http.MethodPost, RouteGroup+OrdersRoute, "", validBody)
		s.Equal(http.StatusUnauthorized, status)
	})

	invalid := []struct {
		name string
		body any
	}{
		{name: "no lines", body: orderBody(1, nil)},
		{name: "zero quantity", body: orderBody(1, []OrderLineParams{{ProductID: 10, Quantity: 0}})},
		{name: "no board", body: orderBody(0, []OrderLineParams{{ProductID: 10, Quantity: 1}})},
		{name: "not json", body: "boardId=1"},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			s.mockOrderService.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			status, _ := s.jsonRequest(http.MethodPost, RouteGroup+OrdersRoute, s.userToken, tc.body)
			s.Equal(http.StatusBadRequest, status)
		})
	}

	serviceErrors := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "lack of stock",
			err:        fmt.Errorf("register: %w", domain.NewLackOfStockError(10, 2, 1)),
			wantStatus: http.StatusConflict,
			wantMsg:    domain.NewLackOfStockError(10, 2, 1).Error(),
		},
		{
			name:       "expired event",
			err:        fmt.Errorf("board 1: %w", domain.ErrExpiredEvent),
			wantStatus: http.StatusForbidden,
			wantMsg:    domain.ErrExpiredEvent.Error(),
		},
		{
			name:       "unopened event",
			err:        domain.ErrUnopenedEvent,
			wantStatus: http.StatusForbidden,
			wantMsg:    domain.ErrUnopenedEvent.Error(),
		},
		{
			name:       "not admitted",
			err:        domain.ErrNotAdmitted,
			wantStatus: http.StatusForbidden,
			wantMsg:    domain.ErrNotAdmitted.Error(),
		},
		{
			name:       "board not found",
			err:        domain.ErrEventNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    domain.ErrEventNotFound.Error(),
		},
		{
			name:       "product not found",
			err:        domain.ErrProductNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    domain.ErrProductNotFound.Error(),
		},
		{
			name:       "lock timeout",
			err:        fmt.Errorf("lock product 10: %w", domain.ErrLockTimeout),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "service temporarily unavailable",
		},
		{
			name:       "unexpected error is hidden",
			err:        errors.New("pq: connection reset"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "internal server error",
		},
	}
	for _, tc := range serviceErrors {
		s.Run(tc.name, func() {
			s.mockOrderService.EXPECT().Register(gomock.Any(), testUserID, gomock.Any()).Return(int64(0), tc.err)

			status, body := s.jsonRequest(http.MethodPost, RouteGroup+OrdersRoute, s.userToken, validBody)
			s.Equal(tc.wantStatus, status)
			s.Equal(tc.wantMsg, s.errorMessage(body))
		})
	}
}

func orderBody(boardID int64, lines []OrderLineParams) map[string]any {
	return map[string]any{"boardId": boardID, "lines": lines}
}

func (s *APITestSuite) TestShowOrder() {
	s.Run("found", func() {
		s.mockOrderService.EXPECT().Get(gomock.Any(), testUserID, int64(7)).Return(&domain.Order{
			ID:         7,
			BoardID:    1,
			Status:     domain.OrderStatusPaymentWait,
			TotalPrice: decimal.NewFromInt(25000),
			Lines:      []domain.OrderedLine{{ProductID: 10, Quantity: 5, Price: decimal.NewFromInt(5000)}},
		}, nil)

		status, body := s.jsonRequest(http.MethodGet, orderURL(7, ""), s.userToken, nil)
		s.Require().Equal(http.StatusOK, status)

		var resp OrderResponse
		s.Require().NoError(json.Unmarshal(body, &resp))
		s.Equal(int64(7), resp.ID)
		s.Equal(domain.OrderStatusPaymentWait, resp.Status)
		s.True(decimal.NewFromInt(25000).Equal(resp.TotalPrice))
		s.Len(resp.Lines, 1)
	})

	s.Run("someone else's order", func() {
		s.mockOrderService.EXPECT().Get(gomock.Any(), testUserID, int64(8)).Return(nil, domain.ErrOrderNotFound)

		status, _ := s.jsonRequest(http.MethodGet, orderURL(8, ""), s.userToken, nil)
		s.Equal(http.StatusNotFound, status)
	})

	s.Run("invalid id", func() {
		status, _ := s.jsonRequest(http.MethodGet, RouteGroup+"/orders/abc", s.userToken, nil)
		s.Equal(http.StatusBadRequest, status)
	})
}

func (s *APITestSuite) TestCompleteOrder() {
	params := map[string]any{"paymentId": "imp_1", "usedPoint": 1000, "totalPaidAmount": "24000"}

	s.Run("completed", func() {
		s.mockOrderService.EXPECT().
			Complete(gomock.Any(), testUserID, gomock.Any()).
			DoAndReturn(func(_ any, _ int64, args service.CompleteOrderArgs) (*domain.Order, error) {
				s.Equal(int64(7), args.OrderID)
				s.Equal("imp_1", args.PaymentID)
				s.True(decimal.NewFromInt(1000).Equal(args.UsedPoint))
				s.True(decimal.NewFromInt(24000).Equal(args.TotalPaidAmount))
				return &domain.Order{ID: 7, Status: domain.OrderStatusComplete, PaymentID: "imp_1"}, nil
			})

		status, body := s.jsonRequest(http.MethodPost, orderURL(7, "/complete"), s.userToken, params)
		s.Require().Equal(http.StatusOK, status)

		var resp OrderResponse
		s.Require().NoError(json.Unmarshal(body, &resp))
		s.Equal(domain.OrderStatusComplete, resp.Status)
	})

	s.Run("payment failure hides the cause", func() {
		cause := errors.New("gateway said: card 4111 declined")
		s.mockOrderService.EXPECT().
			Complete(gomock.Any(), testUserID, gomock.Any()).
			Return(nil, domain.NewPaymentFailError(7, cause))

		status, body := s.jsonRequest(http.MethodPost, orderURL(7, "/complete"), s.userToken, params)
		s.Equal(http.StatusUnprocessableEntity, status)
		s.Equal(domain.ErrPaymentFail.Error(), s.errorMessage(body))
		s.NotContains(string(body), "4111")
	})

	s.Run("negative point", func() {
		s.mockOrderService.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, _ := s.jsonRequest(http.MethodPost, orderURL(7, "/complete"), s.userToken,
			map[string]any{"paymentId": "imp_1", "usedPoint": -1, "totalPaidAmount": 25001})
		s.Equal(http.StatusBadRequest, status)
	})

	s.Run("no payment id", func() {
		s.mockOrderService.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, _ := s.jsonRequest(http.MethodPost, orderURL(7, "/complete"), s.userToken,
			map[string]any{"usedPoint": 0, "totalPaidAmount": 25000})
		s.Equal(http.StatusBadRequest, status)
	})
}

func (s *APITestSuite) TestCancelOrder() {
	s.Run("cancelled", func() {
		s.mockOrderService.EXPECT().Cancel(gomock.Any(), testUserID, int64(7)).Return(nil)

		status, body := s.jsonRequest(http.MethodPost, orderURL(7, "/cancel"), s.userToken, nil)
		s.Equal(http.StatusOK, status)
		s.JSONEq(`{"orderId":7,"status":"ORDER_CANCEL"}`, string(body))
	})

	s.Run("cannot cancel", func() {
		s.mockOrderService.EXPECT().Cancel(gomock.Any(), testUserID, int64(7)).
			Return(fmt.Errorf("order 7: %w", domain.ErrCancelFail))

		status, body := s.jsonRequest(http.MethodPost, orderURL(7, "/cancel"), s.userToken, nil)
		s.Equal(http.StatusUnprocessableEntity, status)
		s.Equal(domain.ErrCancelFail.Error(), s.errorMessage(body))
	})
}
