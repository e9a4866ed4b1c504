package client

import (
	"fmt"
	"time"
)

// StatusCodeError ответ шлюза с HTTP статусом, отличным от 200 и 429.
type StatusCodeError struct {
	Code  int
	Route string
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	if e.Route == "" {
		return fmt.Sprintf("payment gateway responded with status %d", e.Code)
	}
	return fmt.Sprintf("payment gateway responded with status %d on %s", e.Code, e.Route)
}

// TooManyRequestError шлюз ограничил частоту запросов, повторять не раньше RetryAfter.
type TooManyRequestError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestError(retryAfter time.Duration) *TooManyRequestError {
	return &TooManyRequestError{RetryAfter: retryAfter}
}

func (e *TooManyRequestError) Error() string {
	return fmt.Sprintf("payment gateway rate limit, retry after %s", e.RetryAfter)
}

// GatewayError ответ 200 с ненулевым кодом в конверте.
type GatewayError struct {
	Code    int
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway error %d: %s", e.Code, e.Message)
}
