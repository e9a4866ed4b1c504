package api

import (
	"net/http"

	"github.com/fsdevblog/flashboard/internal/admission"
	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/golang/mock/gomock"
)

const testQueueURL = RouteGroup + "/boards/3/queue"

func (s *APITestSuite) TestJoinQueue() {
	s.Run("joined", func() {
		s.mockQueueService.EXPECT().Join(gomock.Any(), int64(3), testUserID).
			Return(&admission.Position{Ticket: 12, Ahead: 4}, nil)

		status, body := s.jsonRequest(http.MethodPost, testQueueURL, s.userToken, nil)
		s.Equal(http.StatusOK, status)
		s.JSONEq(`{"ticket":12,"ahead":4,"admitted":false}`, string(body))
	})

	s.Run("no queue", func() {
		s.mockQueueService.EXPECT().Join(gomock.Any(), int64(3), testUserID).Return(nil, domain.ErrQueueNotFound)

		status, _ := s.jsonRequest(http.MethodPost, testQueueURL, s.userToken, nil)
		s.Equal(http.StatusNotFound, status)
	})
}

func (s *APITestSuite) TestQueueStatus() {
	s.mockQueueService.EXPECT().IsAdmitted(gomock.Any(), int64(3), testUserID).Return(true, nil)

	status, body := s.jsonRequest(http.MethodGet, testQueueURL, s.userToken, nil)
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"admitted":true}`, string(body))
}

func (s *APITestSuite) TestExitQueue() {
	s.mockQueueService.EXPECT().Exit(gomock.Any(), int64(3), testUserID).Return(nil)

	status, body := s.jsonRequest(http.MethodDelete, testQueueURL, s.userToken, nil)
	s.Equal(http.StatusNoContent, status)
	s.Empty(body)
}
