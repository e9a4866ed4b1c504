package service

import (
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/internal/service/mocks"
	"github.com/fsdevblog/flashboard/pkg/uow"
	uowmocks "github.com/fsdevblog/flashboard/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

const (
	testBoardID   int64 = 1
	testProductID int64 = 10
	testUserID    int64 = 100
)

type OrderValidatorTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockTX          *uowmocks.MockTX
	mockBoardRepo   *mocks.MockBoardRepository
	mockProductRepo *mocks.MockProductRepository
	mockQueue       *mocks.MockAdmissionQueue
	validator       *Validator
}

func TestOrderValidatorSuite(t *testing.T) {
	suite.Run(t, new(OrderValidatorTestSuite))
}

func (s *OrderValidatorTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *OrderValidatorTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockBoardRepo = mocks.NewMockBoardRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)
	s.mockQueue = mocks.NewMockAdmissionQueue(s.mockCtrl)

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BoardRepoName)).
		Return(s.mockBoardRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ProductRepoName)).
		Return(s.mockProductRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.validator = NewOrderValidator(s.mockQueue, l)
}

func mustTime(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func testBoard(startedAt, endedAt string) *domain.Board {
	return &domain.Board{
		ID:        testBoardID,
		Title:     "winter sale",
		Status:    domain.BoardStatusOnSale,
		StartedAt: mustTime(startedAt),
		EndedAt:   mustTime(endedAt),
	}
}

func testProduct(id, stock int64) *domain.Product {
	return &domain.Product{
		ID:      id,
		BoardID: testBoardID,
		Name:    "limited sneakers",
		Price:   decimal.NewFromInt(1000),
		Stock:   stock,
	}
}

func singleLine(qty int64) domain.RegisterOrder {
	return domain.RegisterOrder{
		BoardID: testBoardID,
		Lines:   []domain.RegisterOrderLine{{ProductID: testProductID, Quantity: qty}},
	}
}

func (s *OrderValidatorTestSuite) TestValidate_SaleWindow() {
	cases := []struct {
		name       string
		board      *domain.Board
		observedAt string
		wantErr    error
	}{
		{
			name:       "inside window",
			board:      testBoard("2024-12-23T08:30", "2024-12-24T08:30"),
			observedAt: "2024-12-24T06:30",
		},
		{
			name:       "exactly at start",
			board:      testBoard("2024-12-23T08:30", "2024-12-24T08:30"),
			observedAt: "2024-12-23T08:30",
		},
		{
			name:       "exactly at end",
			board:      testBoard("2024-12-23T08:30", "2024-12-24T08:30"),
			observedAt: "2024-12-24T08:30",
		},
		{
			name:       "after end",
			board:      testBoard("2024-12-23T08:30", "2024-12-24T08:30"),
			observedAt: "2024-12-24T08:31",
			wantErr:    domain.ErrExpiredEvent,
		},
		{
			name:       "before start",
			board:      testBoard("2024-12-24T08:30", "2024-12-25T08:30"),
			observedAt: "2024-12-24T08:29",
			wantErr:    domain.ErrUnopenedEvent,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).Return(tc.board, nil)
			if tc.wantErr == nil {
				s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).
					Return(testProduct(testProductID, 5), nil)
			}
			// окно продаж не выкидывает пользователя из очереди
			s.mockQueue.EXPECT().Exit(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			lines, err := s.validator.Validate(s.T().Context(), s.mockTX, singleLine(5), testUserID, mustTime(tc.observedAt))
			if tc.wantErr != nil {
				s.Require().ErrorIs(err, tc.wantErr)
				s.Nil(lines)
				return
			}
			s.Require().NoError(err)
			s.Require().Len(lines, 1)
			s.Equal(testProductID, lines[0].Product.ID)
			s.EqualValues(5, lines[0].Quantity)
		})
	}
}

func (s *OrderValidatorTestSuite) TestValidate_Rejections() {
	cases := []struct {
		name    string
		req     domain.RegisterOrder
		prepare func()
		wantErr error
	}{
		{
			name: "board not found",
			req:  singleLine(1),
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrEventNotFound,
		},
		{
			name: "product not found",
			req:  singleLine(1),
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
				s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "product of another board",
			req:  singleLine(1),
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
				foreign := testProduct(testProductID, 5)
				foreign.BoardID = testBoardID + 1
				s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).Return(foreign, nil)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "lack of stock",
			req:  singleLine(2),
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
				s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).
					Return(testProduct(testProductID, 1), nil)
			},
			wantErr: domain.ErrLackOfStock,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			tc.prepare()
			s.mockQueue.EXPECT().Exit(gomock.Any(), testBoardID, testUserID).Return(nil)

			_, err := s.validator.Validate(s.T().Context(), s.mockTX, tc.req, testUserID, mustTime("2024-12-24T06:30"))
			s.Require().ErrorIs(err, tc.wantErr)
		})
	}
}

func (s *OrderValidatorTestSuite) TestValidate_LackOfStockDetails() {
	s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
		Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
	s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).Return(testProduct(testProductID, 1), nil)
	s.mockQueue.EXPECT().Exit(gomock.Any(), testBoardID, testUserID).Return(nil)

	_, err := s.validator.Validate(s.T().Context(), s.mockTX, singleLine(2), testUserID, mustTime("2024-12-24T06:30"))

	var lackErr *domain.LackOfStockError
	s.Require().ErrorAs(err, &lackErr)
	s.Equal(testProductID, lackErr.ProductID)
	s.EqualValues(2, lackErr.Requested)
	s.EqualValues(1, lackErr.Available)
}

func (s *OrderValidatorTestSuite) TestValidate_LocksInAscendingOrder() {
	req := domain.RegisterOrder{
		BoardID: testBoardID,
		Lines: []domain.RegisterOrderLine{
			{ProductID: 30, Quantity: 1},
			{ProductID: 20, Quantity: 1},
			{ProductID: 30, Quantity: 2},
		},
	}
	s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
		Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
	gomock.InOrder(
		s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), int64(20)).Return(testProduct(20, 5), nil),
		s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), int64(30)).Return(testProduct(30, 5), nil),
	)

	lines, err := s.validator.Validate(s.T().Context(), s.mockTX, req, testUserID, mustTime("2024-12-24T06:30"))
	s.Require().NoError(err)
	s.Require().Len(lines, 2)
	s.Equal(int64(20), lines[0].Product.ID)
	s.Equal(int64(30), lines[1].Product.ID)
	s.EqualValues(3, lines[1].Quantity, "duplicate lines are merged")
}

func (s *OrderValidatorTestSuite) TestValidate_InvalidRequest() {
	cases := []struct {
		name string
		req  domain.RegisterOrder
	}{
		{name: "no lines", req: domain.RegisterOrder{BoardID: testBoardID}},
		{name: "zero quantity", req: singleLine(0)},
		{name: "negative quantity", req: singleLine(-1)},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.validator.Validate(s.T().Context(), s.mockTX, tc.req, testUserID, mustTime("2024-12-24T06:30"))
			s.ErrorIs(err, domain.ErrInvalidOrder)
		})
	}
}

func (s *OrderValidatorTestSuite) TestValidate_RequireAdmission() {
	s.Run("not admitted", func() {
		s.validator.SetRequireAdmission(true)
		s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
			Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
		s.mockQueue.EXPECT().IsAdmitted(gomock.Any(), testBoardID, testUserID).Return(false, nil)

		_, err := s.validator.Validate(s.T().Context(), s.mockTX, singleLine(1), testUserID, mustTime("2024-12-24T06:30"))
		s.ErrorIs(err, domain.ErrNotAdmitted)
	})

	s.Run("admitted", func() {
		s.validator.SetRequireAdmission(true)
		s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
			Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
		s.mockQueue.EXPECT().IsAdmitted(gomock.Any(), testBoardID, testUserID).Return(true, nil)
		s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).Return(testProduct(testProductID, 5), nil)

		_, err := s.validator.Validate(s.T().Context(), s.mockTX, singleLine(1), testUserID, mustTime("2024-12-24T06:30"))
		s.NoError(err)
	})
}
