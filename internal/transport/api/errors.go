package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/gin-gonic/gin"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses порядок важен: первое совпадение определяет статус ответа.
var errorStatuses = []errorStatus{
	{target: domain.ErrEventNotFound, status: http.StatusNotFound},
	{target: domain.ErrProductNotFound, status: http.StatusNotFound},
	{target: domain.ErrOrderNotFound, status: http.StatusNotFound},
	{target: domain.ErrQueueNotFound, status: http.StatusNotFound},
	{target: domain.ErrUnopenedEvent, status: http.StatusForbidden},
	{target: domain.ErrExpiredEvent, status: http.StatusForbidden},
	{target: domain.ErrNotAdmitted, status: http.StatusForbidden},
	{target: domain.ErrLackOfStock, status: http.StatusConflict},
	{target: domain.ErrPaymentFail, status: http.StatusUnprocessableEntity},
	{target: domain.ErrCancelFail, status: http.StatusUnprocessableEntity},
	{target: domain.ErrEmailVerifyFail, status: http.StatusUnprocessableEntity},
	{target: domain.ErrQueueCreateFail, status: http.StatusInternalServerError},
	{target: domain.ErrUploadFail, status: http.StatusInternalServerError},
	{target: domain.ErrInvalidOrder, status: http.StatusBadRequest},
	{target: domain.ErrInvalidBoard, status: http.StatusBadRequest},
}

// abortWithServiceError отвечает статусом, соответствующим бизнес-ошибке. Клиент видит только текст
// бизнес-ошибки (и детали нехватки остатка), исходная ошибка уходит в лог. Ошибки, не относящиеся
// к бизнес-логике, отдаются как 500 (или 503 при таймауте блокировки) без текста.
func abortWithServiceError(c *gin.Context, err error) {
	for _, es := range errorStatuses {
		if !errors.Is(err, es.target) {
			continue
		}
		public := es.target
		var lackErr *domain.LackOfStockError
		if errors.As(err, &lackErr) {
			public = lackErr
		}
		_ = c.AbortWithError(es.status, public).SetType(gin.ErrorTypePublic)
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		return
	}

	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrLockTimeout) {
		status = http.StatusServiceUnavailable
	}
	_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
}
