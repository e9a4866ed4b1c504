package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type OrderLineParams struct {
	ProductID int64 `binding:"required,gt=0" json:"productId"`
	Quantity  int64 `binding:"required,gt=0" json:"quantity"`
}

type RegisterOrderParams struct {
	BoardID int64             `binding:"required,gt=0"                json:"boardId"`
	Lines   []OrderLineParams `binding:"required,min=1,max=100,dive" json:"lines"`
}

type CompleteOrderParams struct {
	PaymentID       string          `binding:"required,max_bytes=255" json:"paymentId"`
	UsedPoint       decimal.Decimal `binding:"gte=0"                  json:"usedPoint"`
	TotalPaidAmount decimal.Decimal `binding:"gte=0"                  json:"totalPaidAmount"`
}

type OrderLineResponse struct {
	ProductID int64           `json:"productId"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID              int64                  `json:"id"`
	BoardID         int64                  `json:"boardId"`
	Status          domain.OrderStatusType `json:"status"`
	TotalPrice      decimal.Decimal        `json:"totalPrice"`
	UsedPoint       decimal.Decimal        `json:"usedPoint"`
	TotalPaidAmount decimal.Decimal        `json:"totalPaidAmount"`
	PaymentID       string                 `json:"paymentId,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	Lines           []OrderLineResponse    `json:"lines,omitempty"`
}

func newOrderResponse(order *domain.Order) OrderResponse {
	lines := make([]OrderLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = OrderLineResponse{ProductID: line.ProductID, Quantity: line.Quantity, Price: line.Price}
	}
	return OrderResponse{
		ID:              order.ID,
		BoardID:         order.BoardID,
		Status:          order.Status,
		TotalPrice:      order.TotalPrice,
		UsedPoint:       order.UsedPoint,
		TotalPaidAmount: order.TotalPaidAmount,
		PaymentID:       order.PaymentID,
		CreatedAt:       order.CreatedAt,
		Lines:           lines,
	}
}

// Register POST RouteGroup + OrdersRoute. Оформляет заказ, в ответе id заказа в статусе PAYMENT_WAIT.
func (o *OrdersHandler) Register(c *gin.Context) {
	var params RegisterOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	lines := make([]domain.RegisterOrderLine, len(params.Lines))
	for i, line := range params.Lines {
		lines[i] = domain.RegisterOrderLine{ProductID: line.ProductID, Quantity: line.Quantity}
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	orderID, err := o.orderSvs.Register(reqCtx, getUserIDFromContext(c), domain.RegisterOrder{
		BoardID: params.BoardID,
		Lines:   lines,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"orderId": orderID})
}

// Show GET RouteGroup + OrderRoute. Чужой заказ неотличим от несуществующего.
func (o *OrdersHandler) Show(c *gin.Context) {
	orderID, ok := paramID(c, "orderID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := o.orderSvs.Get(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Complete POST RouteGroup + OrderCompleteRoute. Подтверждает оплату заказа.
func (o *OrdersHandler) Complete(c *gin.Context) {
	orderID, ok := paramID(c, "orderID")
	if !ok {
		return
	}
	var params CompleteOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		abortWithBindError(c, bindErr)
		return
	}

	// шлюз может отвечать долго, даем запросу больше времени.
	reqCtx, cancel := context.WithTimeout(c, 2*DefaultServiceTimeout) //nolint:mnd
	defer cancel()

	order, err := o.orderSvs.Complete(reqCtx, getUserIDFromContext(c), service.CompleteOrderArgs{
		OrderID:         orderID,
		PaymentID:       params.PaymentID,
		UsedPoint:       params.UsedPoint,
		TotalPaidAmount: params.TotalPaidAmount,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newOrderResponse(order))
}

// Cancel POST RouteGroup + OrderCancelRoute.
func (o *OrdersHandler) Cancel(c *gin.Context) {
	orderID, ok := paramID(c, "orderID")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := o.orderSvs.Cancel(reqCtx, getUserIDFromContext(c), orderID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orderId": orderID, "status": domain.OrderStatusCancel})
}
