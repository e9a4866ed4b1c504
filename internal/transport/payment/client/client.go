package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

const (
	RoutePayment           = "/payments/%s"
	RoutePaymentByMerchant = "/payments/find/%s"
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60
)

// Payment платеж в формате API шлюза. PaidAt - unix time, 0 если платеж не оплачен.
type Payment struct {
	ImpUID      string          `json:"imp_uid"`
	MerchantUID string          `json:"merchant_uid"`
	Status      string          `json:"status"`
	Amount      decimal.Decimal `json:"amount"`
	PaidAt      int64           `json:"paid_at"`
}

// Response конверт, в который шлюз заворачивает любой ответ. Code != 0 означает ошибку на стороне шлюза.
type Response struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Response *Payment `json:"response"`
}

// HTTPClient ходит в REST API платежного шлюза.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func New(baseURL, apiKey string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: http.DefaultClient,
	}
}

// FetchPayment получает платеж по идентификатору шлюза.
// При ответе сервера со статусом отличным от http.StatusOK, возвращает ошибку StatusCodeError, или
// TooManyRequestError в случае http.StatusTooManyRequests.
func (c HTTPClient) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	return c.get(ctx, fmt.Sprintf(RoutePayment, url.PathEscape(paymentID)))
}

// FindByMerchantUID ищет платеж по идентификатору заказа на нашей стороне. Ошибки как у FetchPayment.
func (c HTTPClient) FindByMerchantUID(ctx context.Context, merchantUID string) (*Payment, error) {
	return c.get(ctx, fmt.Sprintf(RoutePaymentByMerchant, url.PathEscape(merchantUID)))
}

//nolint:nonamedreturns
func (c HTTPClient) get(ctx context.Context, route string) (payment *Payment, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+route, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %s", doErr.Error())
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := NewStatusCodeError(resp.StatusCode)
		statusErr.Route = route
		return nil, statusErr
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		err = fmt.Errorf("read response: %s", readErr.Error())
		return nil, err
	}

	var envelope Response
	if jsonErr := json.Unmarshal(body, &envelope); jsonErr != nil {
		err = fmt.Errorf("parse response: %s", jsonErr.Error())
		return nil, err
	}
	if envelope.Code != 0 || envelope.Response == nil {
		return nil, &GatewayError{Code: envelope.Code, Message: envelope.Message}
	}

	return envelope.Response, nil
}

// parseRetryAfter в случае ошибки или значения вне [minRetryAfter, maxRetryAfter] возвращает 60 секунд.
func parseRetryAfter(value string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(value)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		retryAfter = decimal.NewFromInt(defaultRetryAfter)
	}
	return time.Duration(retryAfter.IntPart()) * time.Second
}
