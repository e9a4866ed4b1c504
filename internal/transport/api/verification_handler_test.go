package api

import (
	"net/http"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/golang/mock/gomock"
)

func (s *APITestSuite) TestSendVerificationCode() {
	s.Run("sent", func() {
		s.mockVerificationService.EXPECT().SendCode(gomock.Any(), "user@example.com").Return(nil)

		status, _ := s.jsonRequest(http.MethodPost, RouteGroup+VerificationRoute, "",
			map[string]string{"email": "user@example.com"})
		s.Equal(http.StatusAccepted, status)
	})

	s.Run("invalid email", func() {
		s.mockVerificationService.EXPECT().SendCode(gomock.Any(), gomock.Any()).Times(0)

		status, _ := s.jsonRequest(http.MethodPost, RouteGroup+VerificationRoute, "",
			map[string]string{"email": "not-an-email"})
		s.Equal(http.StatusBadRequest, status)
	})

	s.Run("mail failure", func() {
		s.mockVerificationService.EXPECT().SendCode(gomock.Any(), "user@example.com").
			Return(domain.ErrEmailVerifyFail)

		status, body := s.jsonRequest(http.MethodPost, RouteGroup+VerificationRoute, "",
			map[string]string{"email": "user@example.com"})
		s.Equal(http.StatusUnprocessableEntity, status)
		s.Equal(domain.ErrEmailVerifyFail.Error(), s.errorMessage(body))
	})
}

func (s *APITestSuite) TestConfirmVerificationCode() {
	s.Run("confirmed", func() {
		s.mockVerificationService.EXPECT().Confirm(gomock.Any(), "user@example.com", "123456").Return(nil)

		status, body := s.jsonRequest(http.MethodPost, RouteGroup+VerificationAckRoute, "",
			map[string]string{"email": "user@example.com", "code": "123456"})
		s.Equal(http.StatusOK, status)
		s.JSONEq(`{"verified":true}`, string(body))
	})

	s.Run("wrong code", func() {
		s.mockVerificationService.EXPECT().Confirm(gomock.Any(), "user@example.com", "000000").
			Return(domain.ErrEmailVerifyFail)

		status, _ := s.jsonRequest(http.MethodPost, RouteGroup+VerificationAckRoute, "",
			map[string]string{"email": "user@example.com", "code": "000000"})
		s.Equal(http.StatusUnprocessableEntity, status)
	})

	s.Run("malformed code", func() {
		s.mockVerificationService.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, _ := s.jsonRequest(http.MethodPost, RouteGroup+VerificationAckRoute, "",
			map[string]string{"email": "user@example.com", "code": "12ab"})
		s.Equal(http.StatusBadRequest, status)
	})
}
