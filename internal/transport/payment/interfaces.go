package payment

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
	"github.com/fsdevblog/flashboard/internal/transport/payment/client"
)

type Client interface {
	FetchPayment(ctx context.Context, paymentID string) (*client.Payment, error)
	FindByMerchantUID(ctx context.Context, merchantUID string) (*client.Payment, error)
}

type Servicer interface {
	StaleOrders(ctx context.Context, olderThan time.Duration, limit uint) ([]domain.Order, error)
	Reconcile(ctx context.Context, updates []service.ReconcileArgs) error
}
