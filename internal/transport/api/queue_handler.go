package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queueSvs QueueServicer
}

func NewQueueHandler(queueSvs QueueServicer) *QueueHandler {
	return &QueueHandler{
		queueSvs: queueSvs,
	}
}

type PositionResponse struct {
	Ticket   int64 `json:"ticket"`
	Ahead    int64 `json:"ahead"`
	Admitted bool  `json:"admitted"`
}

// Join POST RouteGroup + QueueRoute. Ставит пользователя в очередь доски. Повторный вызов возвращает
// ту же позицию.
func (h *QueueHandler) Join(c *gin.Context) {
	boardID, ok := paramID(c, "boardID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	pos, err := h.queueSvs.Join(reqCtx, boardID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PositionResponse{Ticket: pos.Ticket, Ahead: pos.Ahead, Admitted: pos.Admitted})
}

// Status GET RouteGroup + QueueRoute.
func (h *QueueHandler) Status(c *gin.Context) {
	boardID, ok := paramID(c, "boardID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	admitted, err := h.queueSvs.IsAdmitted(reqCtx, boardID, getUserIDFromContext(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"admitted": admitted})
}

// Exit DELETE RouteGroup + QueueRoute.
func (h *QueueHandler) Exit(c *gin.Context) {
	boardID, ok := paramID(c, "boardID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.queueSvs.Exit(reqCtx, boardID, getUserIDFromContext(c)); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusNoContent)
}
