package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/internal/service/mocks"
	"github.com/fsdevblog/flashboard/pkg/uow"
	uowmocks "github.com/fsdevblog/flashboard/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type VerificationServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockUOW    *uowmocks.MockUOW
	mockTX     *uowmocks.MockTX
	mockRepo   *mocks.MockVerificationRepository
	mockHasher *mocks.MockCodeHasher
	mockMailer *mocks.MockMailer
	service    *VerificationService
	now        time.Time
	email      string
}

func TestVerificationServiceSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}

func (s *VerificationServiceTestSuite) SetupSubTest() {
	s.SetupTest()
}

func (s *VerificationServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockRepo = mocks.NewMockVerificationRepository(s.mockCtrl)
	s.mockHasher = mocks.NewMockCodeHasher(s.mockCtrl)
	s.mockMailer = mocks.NewMockMailer(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.VerificationRepoName)).
		Return(s.mockRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.VerificationRepoName)).Return(s.mockRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	svc, err := NewVerificationService(s.mockUOW, s.mockHasher, s.mockMailer)
	s.Require().NoError(err)
	s.now = time.Now()
	svc.now = func() time.Time { return s.now }
	svc.code = func() (string, error) { return "123456", nil }
	s.service = svc
	s.email = gofakeit.Email()
}

func (s *VerificationServiceTestSuite) TestSendCode() {
	s.Run("success", func() {
		s.mockHasher.EXPECT().Hash("123456").Return("hashed", nil)
		gomock.InOrder(
			s.mockRepo.EXPECT().DeleteAllByEmail(gomock.Any(), s.email).Return(nil),
			s.mockRepo.EXPECT().Create(gomock.Any(), repoargs.CreateVerificationCode{
				Email:     s.email,
				CodeHash:  "hashed",
				ExpiresAt: s.now.Add(DefaultVerificationCodeTTL),
			}).Return(&domain.VerificationCode{ID: 1}, nil),
			s.mockMailer.EXPECT().Send(gomock.Any(), s.email, gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, body string) error {
					s.Contains(body, "123456")
					return nil
				}),
		)

		s.NoError(s.service.SendCode(s.T().Context(), s.email))
	})

	s.Run("mail failure", func() {
		s.mockHasher.EXPECT().Hash("123456").Return("hashed", nil)
		s.mockRepo.EXPECT().DeleteAllByEmail(gomock.Any(), s.email).Return(nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.VerificationCode{ID: 1}, nil)
		s.mockMailer.EXPECT().Send(gomock.Any(), s.email, gomock.Any(), gomock.Any()).
			Return(errors.New("smtp: connection refused"))

		err := s.service.SendCode(s.T().Context(), s.email)
		s.ErrorIs(err, domain.ErrEmailVerifyFail)
	})
}

func (s *VerificationServiceTestSuite) TestConfirm() {
	stored := func(expiresAt time.Time) *domain.VerificationCode {
		return &domain.VerificationCode{ID: 1, Email: s.email, CodeHash: "hashed", ExpiresAt: expiresAt}
	}

	s.Run("success", func() {
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(stored(s.now.Add(time.Minute)), nil)
		s.mockHasher.EXPECT().Compare("123456", "hashed").Return(true)
		s.mockRepo.EXPECT().DeleteAllByEmail(gomock.Any(), s.email).Return(nil)

		s.NoError(s.service.Confirm(s.T().Context(), s.email, "123456"))
	})

	s.Run("mismatch", func() {
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(stored(s.now.Add(time.Minute)), nil)
		s.mockHasher.EXPECT().Compare("000000", "hashed").Return(false)
		s.mockRepo.EXPECT().IncrementAttempts(gomock.Any(), int64(1)).Return(1, nil)

		s.ErrorIs(s.service.Confirm(s.T().Context(), s.email, "000000"), domain.ErrEmailVerifyFail)
	})

	s.Run("last attempt burns the code", func() {
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(stored(s.now.Add(time.Minute)), nil)
		s.mockHasher.EXPECT().Compare("000000", "hashed").Return(false)
		gomock.InOrder(
			s.mockRepo.EXPECT().IncrementAttempts(gomock.Any(), int64(1)).Return(DefaultVerificationAttempts, nil),
			s.mockRepo.EXPECT().DeleteAllByEmail(gomock.Any(), s.email).Return(nil),
		)

		err := s.service.Confirm(s.T().Context(), s.email, "000000")
		s.ErrorIs(err, domain.ErrEmailVerifyFail)
		s.ErrorContains(err, "too many attempts")
	})

	s.Run("attempts exhausted rejects a correct code", func() {
		code := stored(s.now.Add(time.Minute))
		code.Attempts = 3
		s.service.SetMaxAttempts(3)
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(code, nil)
		// ни сравнения, ни удаления: код уже сожжен
		s.mockHasher.EXPECT().Compare(gomock.Any(), gomock.Any()).Times(0)
		s.mockRepo.EXPECT().DeleteAllByEmail(gomock.Any(), gomock.Any()).Times(0)

		err := s.service.Confirm(s.T().Context(), s.email, "123456")
		s.ErrorIs(err, domain.ErrEmailVerifyFail)
		s.ErrorContains(err, "too many attempts")
	})

	s.Run("attempt counter failure", func() {
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(stored(s.now.Add(time.Minute)), nil)
		s.mockHasher.EXPECT().Compare("000000", "hashed").Return(false)
		s.mockRepo.EXPECT().IncrementAttempts(gomock.Any(), int64(1)).Return(0, errors.New("conn reset"))

		err := s.service.Confirm(s.T().Context(), s.email, "000000")
		s.Error(err)
		s.NotErrorIs(err, domain.ErrEmailVerifyFail)
	})

	s.Run("expired", func() {
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(stored(s.now), nil)

		s.ErrorIs(s.service.Confirm(s.T().Context(), s.email, "123456"), domain.ErrEmailVerifyFail)
	})

	s.Run("no code", func() {
		s.mockRepo.EXPECT().FindLatestByEmail(gomock.Any(), s.email).Return(nil, domain.ErrRecordNotFound)

		s.ErrorIs(s.service.Confirm(s.T().Context(), s.email, "123456"), domain.ErrEmailVerifyFail)
	})
}

func TestGenerateCode(t *testing.T) {
	for range 20 {
		code, err := generateCode()
		if err != nil {
			t.Fatal(err)
		}
		if len(code) != verificationCodeDigits {
			t.Fatalf("code %q has %d digits", code, len(code))
		}
	}
}
