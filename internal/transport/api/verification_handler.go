package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationSvs VerificationServicer
}

func NewVerificationHandler(verificationSvs VerificationServicer) *VerificationHandler {
	return &VerificationHandler{
		verificationSvs: verificationSvs,
	}
}

type SendCodeParams struct {
	Email string `binding:"required,email,max_bytes=255" json:"email"`
}

type ConfirmCodeParams struct {
	Email string `binding:"required,email,max_bytes=255" json:"email"`
	Code  string `binding:"required,len=6,numeric"       json:"code"`
}

// Send POST RouteGroup + VerificationRoute. Отправляет код подтверждения на email.
func (h *VerificationHandler) Send(c *gin.Context) {
	var params SendCodeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	// отправка письма может занять время.
	reqCtx, cancel := context.WithTimeout(c, DefaultUploadTimeout)
	defer cancel()

	if err := h.verificationSvs.SendCode(reqCtx, params.Email); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.AbortWithStatus(http.StatusAccepted)
}

// Confirm POST RouteGroup + VerificationAckRoute.
func (h *VerificationHandler) Confirm(c *gin.Context) {
	var params ConfirmCodeParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.verificationSvs.Confirm(reqCtx, params.Email, params.Code); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": true})
}
