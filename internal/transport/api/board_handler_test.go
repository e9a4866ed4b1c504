package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/fsdevblog/flashboard/internal/transport/api/testutils"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func boardFields() map[string]string {
	return map[string]string{
		"title":     "Winter sale",
		"content":   "Everything must go",
		"startedAt": "2024-12-23T08:30:00+09:00",
		"endedAt":   "2024-12-24T08:30:00+09:00",
		"products":  `[{"name":"Mug","price":"5000","stock":5},{"name":"Cap","price":12000,"stock":1}]`,
	}
}

func (s *APITestSuite) createBoard(token string, fields map[string]string, files []testutils.MultipartFile) (int, []byte) {
	body, contentType, err := testutils.MultipartBody(fields, files)
	s.Require().NoError(err)
	return s.request(http.MethodPost, RouteGroup+BoardsRoute, body,
		testutils.WithHeader("Content-Type", contentType),
		testutils.WithBearer(token),
	)
}

func (s *APITestSuite) TestCreateBoard() {
	files := []testutils.MultipartFile{
		{Field: "thumbnails", Name: "a.png", Content: []byte("a")},
		{Field: "thumbnails", Name: "b.png", Content: []byte("b")},
		{Field: "detail", Name: "detail.png", Content: []byte("detail")},
	}

	s.Run("created", func() {
		s.mockBoardService.EXPECT().
			Create(gomock.Any(), testCompanyID, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(
				_ any,
				_ int64,
				args service.CreateBoardArgs,
				thumbnails []domain.File,
				detail domain.File,
			) (*domain.Board, error) {
				s.Equal("Winter sale", args.Title)
				s.True(args.StartedAt.Equal(time.Date(2024, 12, 22, 23, 30, 0, 0, time.UTC)))
				s.Require().Len(args.Products, 2)
				s.True(decimal.NewFromInt(12000).Equal(args.Products[1].Price))

				s.Require().Len(thumbnails, 2)
				s.Equal("a.png", thumbnails[0].Name)
				s.Equal("detail.png", detail.Name)

				rc, err := detail.Open()
				s.Require().NoError(err)
				content, err := io.ReadAll(rc)
				s.Require().NoError(err)
				s.Require().NoError(rc.Close())
				s.Equal("detail", string(content))
				return &domain.Board{ID: 3}, nil
			})

		status, body := s.createBoard(s.companyToken, boardFields(), files)
		s.Equal(http.StatusCreated, status)
		s.JSONEq(`{"id":3}`, string(body))
	})

	s.Run("users cannot create boards", func() {
		s.mockBoardService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		status, _ := s.createBoard(s.userToken, boardFields(), files)
		s.Equal(http.StatusForbidden, status)
	})

	invalid := []struct {
		name   string
		modify func(map[string]string)
	}{
		{name: "no title", modify: func(f map[string]string) { delete(f, "title") }},
		{name: "ends before start", modify: func(f map[string]string) { f["endedAt"] = "2024-12-22T08:30:00+09:00" }},
		{name: "broken products", modify: func(f map[string]string) { f["products"] = "[{" }},
		{name: "no products", modify: func(f map[string]string) { f["products"] = "[]" }},
		{name: "negative stock", modify: func(f map[string]string) {
			f["products"] = `[{"name":"Mug","price":1,"stock":-1}]`
		}},
		{name: "title too long in bytes", modify: func(f map[string]string) {
			f["title"] = testutils.GenerateOverBytesUnderRunes(100)
		}},
	}
	for _, tc := range invalid {
		s.Run(tc.name, func() {
			s.mockBoardService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			fields := boardFields()
			tc.modify(fields)
			status, _ := s.createBoard(s.companyToken, fields, files)
			s.Equal(http.StatusBadRequest, status)
		})
	}

	s.Run("too many thumbnails", func() {
		s.mockBoardService.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		many := make([]testutils.MultipartFile, maxThumbnails+1)
		for i := range many {
			many[i] = testutils.MultipartFile{Field: "thumbnails", Name: fmt.Sprintf("%d.png", i), Content: []byte("x")}
		}
		status, _ := s.createBoard(s.companyToken, boardFields(), many)
		s.Equal(http.StatusBadRequest, status)
	})

	s.Run("queue creation failure", func() {
		s.mockBoardService.EXPECT().
			Create(gomock.Any(), testCompanyID, gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("creating board: %w: redis down", domain.ErrQueueCreateFail))

		status, body := s.createBoard(s.companyToken, boardFields(), files)
		s.Equal(http.StatusInternalServerError, status)
		s.Equal(domain.ErrQueueCreateFail.Error(), s.errorMessage(body))
	})
}

func (s *APITestSuite) TestShowBoard() {
	s.Run("found", func() {
		s.mockBoardService.EXPECT().Get(gomock.Any(), int64(3)).Return(&service.BoardDetails{
			Board:      &domain.Board{ID: 3, Title: "Winter sale", Status: domain.BoardStatusOnSale},
			Products:   []domain.Product{{ID: 10, Name: "Mug", Price: decimal.NewFromInt(5000), Stock: 5}},
			Thumbnails: []domain.BoardThumbnail{{URL: "/static/a.png"}},
		}, nil)

		status, body := s.request(http.MethodGet, RouteGroup+"/boards/3", nil)
		s.Require().Equal(http.StatusOK, status)

		var resp BoardResponse
		s.Require().NoError(json.Unmarshal(body, &resp))
		s.Equal("Winter sale", resp.Title)
		s.Equal([]string{"/static/a.png"}, resp.Thumbnails)
		s.Require().Len(resp.Products, 1)
		s.Equal(int64(5), resp.Products[0].Stock)
	})

	s.Run("not found", func() {
		s.mockBoardService.EXPECT().Get(gomock.Any(), int64(4)).Return(nil, domain.ErrEventNotFound)

		status, body := s.request(http.MethodGet, RouteGroup+"/boards/4", nil)
		s.Equal(http.StatusNotFound, status)
		s.Equal(domain.ErrEventNotFound.Error(), s.errorMessage(body))
	})
}
