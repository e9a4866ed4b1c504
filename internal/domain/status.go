package domain

type OrderStatusType string

const (
	OrderStatusPaymentWait OrderStatusType = "PAYMENT_WAIT"
	OrderStatusComplete    OrderStatusType = "ORDER_COMPLETE"
	OrderStatusFail        OrderStatusType = "ORDER_FAIL"
	OrderStatusCancel      OrderStatusType = "ORDER_CANCEL"
)

var orderTransitions = map[OrderStatusType]map[OrderStatusType]bool{
	OrderStatusPaymentWait: {OrderStatusComplete: true, OrderStatusFail: true, OrderStatusCancel: true},
	OrderStatusComplete:    {OrderStatusCancel: true},
	OrderStatusFail:        {},
	OrderStatusCancel:      {},
}

// CanTransition сообщает, допустим ли переход заказа из статуса s в статус to.
func (s OrderStatusType) CanTransition(to OrderStatusType) bool {
	return orderTransitions[s][to]
}

// IsFinal true для статусов, из которых нет переходов.
func (s OrderStatusType) IsFinal() bool {
	return len(orderTransitions[s]) == 0
}

type BoardStatusType string

const (
	BoardStatusReady   BoardStatusType = "READY"
	BoardStatusOnSale  BoardStatusType = "ON_SALE"
	BoardStatusSoldOut BoardStatusType = "SOLD_OUT"
	BoardStatusClosed  BoardStatusType = "CLOSED"
)

type UserRoleType string

const (
	UserRoleCustomer UserRoleType = "customer"
	UserRoleCompany  UserRoleType = "company"
)
