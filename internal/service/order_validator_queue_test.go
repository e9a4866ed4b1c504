package service

import (
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fsdevblog/flashboard/internal/admission"
	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/internal/service/mocks"
	"github.com/fsdevblog/flashboard/pkg/uow"
	uowmocks "github.com/fsdevblog/flashboard/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

// OrderValidatorQueueTestSuite проверяет валидатор поверх настоящей очереди допуска в miniredis.
type OrderValidatorQueueTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockTX          *uowmocks.MockTX
	mockBoardRepo   *mocks.MockBoardRepository
	mockProductRepo *mocks.MockProductRepository
	rdb             *redis.Client
	queue           *admission.Queue
	validator       *Validator
}

func TestOrderValidatorQueueSuite(t *testing.T) {
	suite.Run(t, new(OrderValidatorQueueTestSuite))
}

func (s *OrderValidatorQueueTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *OrderValidatorQueueTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockBoardRepo = mocks.NewMockBoardRepository(s.mockCtrl)
	s.mockProductRepo = mocks.NewMockProductRepository(s.mockCtrl)

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.BoardRepoName)).
		Return(s.mockBoardRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.ProductRepoName)).
		Return(s.mockProductRepo, nil).AnyTimes()

	mr := miniredis.RunT(s.T())
	s.rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	s.T().Cleanup(func() { _ = s.rdb.Close() })
	s.queue = admission.NewQueue(s.rdb)
	s.Require().NoError(s.queue.CreateQueue(s.T().Context(), testBoardID, time.Now().Add(24*time.Hour)))

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.validator = NewOrderValidator(s.queue, l).SetRequireAdmission(true)
}

// admit ставит пользователя в очередь и допускает его. Возвращает выданный билет.
func (s *OrderValidatorQueueTestSuite) admit(userID int64) int64 {
	ctx := s.T().Context()
	pos, err := s.queue.Join(ctx, testBoardID, userID)
	s.Require().NoError(err)
	_, err = s.queue.Admit(ctx, testBoardID, 1, 0)
	s.Require().NoError(err)

	admitted, err := s.queue.IsAdmitted(ctx, testBoardID, userID)
	s.Require().NoError(err)
	s.Require().True(admitted)
	return pos.Ticket
}

func (s *OrderValidatorQueueTestSuite) TestRejectionReleasesQueueSlot() {
	cases := []struct {
		name    string
		prepare func()
		wantErr error
	}{
		{
			name: "board not found",
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrEventNotFound,
		},
		{
			name: "product not found",
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
				s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).
					Return(nil, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrProductNotFound,
		},
		{
			name: "lack of stock",
			prepare: func() {
				s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
					Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
				s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).
					Return(testProduct(testProductID, 0), nil)
			},
			wantErr: domain.ErrLackOfStock,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			ctx := s.T().Context()
			ticket := s.admit(testUserID)
			tc.prepare()

			_, err := s.validator.Validate(ctx, s.mockTX, singleLine(1), testUserID, mustTime("2024-12-24T06:30"))
			s.Require().ErrorIs(err, tc.wantErr)

			admitted, admErr := s.queue.IsAdmitted(ctx, testBoardID, testUserID)
			s.Require().NoError(admErr)
			s.False(admitted, "rejected user must leave the queue")

			pos, joinErr := s.queue.Join(ctx, testBoardID, testUserID)
			s.Require().NoError(joinErr)
			s.Greater(pos.Ticket, ticket, "rejoin goes to the back of the line")
			s.False(pos.Admitted)
		})
	}
}

func (s *OrderValidatorQueueTestSuite) TestClosedWindowKeepsQueueSlot() {
	ctx := s.T().Context()
	ticket := s.admit(testUserID)
	s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
		Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)

	_, err := s.validator.Validate(ctx, s.mockTX, singleLine(1), testUserID, mustTime("2024-12-23T08:00"))
	s.Require().ErrorIs(err, domain.ErrUnopenedEvent)

	pos, joinErr := s.queue.Join(ctx, testBoardID, testUserID)
	s.Require().NoError(joinErr)
	s.Equal(ticket, pos.Ticket)
	s.True(pos.Admitted)
}

func (s *OrderValidatorQueueTestSuite) TestAcceptedOrderKeepsQueueSlot() {
	ctx := s.T().Context()
	s.admit(testUserID)
	s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
		Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)
	s.mockProductRepo.EXPECT().LockAndRead(gomock.Any(), testProductID).
		Return(testProduct(testProductID, 3), nil)

	lines, err := s.validator.Validate(ctx, s.mockTX, singleLine(2), testUserID, mustTime("2024-12-24T06:30"))
	s.Require().NoError(err)
	s.Require().Len(lines, 1)

	// выход из очереди выполняет OrderService после коммита
	admitted, admErr := s.queue.IsAdmitted(ctx, testBoardID, testUserID)
	s.Require().NoError(admErr)
	s.True(admitted)
}

func (s *OrderValidatorQueueTestSuite) TestNotAdmittedKeepsWaiting() {
	ctx := s.T().Context()
	s.admit(testUserID)
	waiting, err := s.queue.Join(ctx, testBoardID, testUserID+1)
	s.Require().NoError(err)
	s.mockBoardRepo.EXPECT().FindByID(gomock.Any(), testBoardID).
		Return(testBoard("2024-12-23T08:30", "2024-12-24T08:30"), nil)

	_, err = s.validator.Validate(ctx, s.mockTX, singleLine(1), testUserID+1, mustTime("2024-12-24T06:30"))
	s.Require().ErrorIs(err, domain.ErrNotAdmitted)

	pos, joinErr := s.queue.Join(ctx, testBoardID, testUserID+1)
	s.Require().NoError(joinErr)
	s.Equal(waiting.Ticket, pos.Ticket)
	s.EqualValues(0, pos.Ahead)
}
