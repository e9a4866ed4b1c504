package service

import (
	"context"
	"time"

	"github.com/fsdevblog/flashboard/internal/admission"
	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type BoardRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Board, error)
	Create(ctx context.Context, args repoargs.CreateBoard) (*domain.Board, error)
	CreateThumbnails(ctx context.Context, boardID int64, urls []string) ([]domain.BoardThumbnail, error)
	GetThumbnails(ctx context.Context, boardID int64) ([]domain.BoardThumbnail, error)
}

type ProductRepository interface {
	LockAndRead(ctx context.Context, id int64) (*domain.Product, error)
	Decrement(ctx context.Context, id int64, qty int64) error
	Restock(ctx context.Context, id int64, qty int64) error
	CreateBatch(ctx context.Context, args []repoargs.CreateProduct) ([]domain.Product, error)
	GetByBoardID(ctx context.Context, boardID int64) ([]domain.Product, error)
}

type OrderRepository interface {
	Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error)
	CreateLines(ctx context.Context, lines []repoargs.CreateOrderedLine) ([]domain.OrderedLine, error)
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error)
	GetLines(ctx context.Context, orderID int64) ([]domain.OrderedLine, error)
	UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error)
	GetStale(ctx context.Context, args repoargs.StaleOrders) ([]domain.Order, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	DebitPoint(ctx context.Context, id int64, amount decimal.Decimal) error
	CreditPoint(ctx context.Context, id int64, amount decimal.Decimal) error
}

type VerificationRepository interface {
	DeleteAllByEmail(ctx context.Context, email string) error
	Create(ctx context.Context, args repoargs.CreateVerificationCode) (*domain.VerificationCode, error)
	FindLatestByEmail(ctx context.Context, email string) (*domain.VerificationCode, error)
	IncrementAttempts(ctx context.Context, id int64) (int, error)
}

type AdmissionQueue interface {
	CreateQueue(ctx context.Context, boardID int64, closesAt time.Time) error
	Join(ctx context.Context, boardID, userID int64) (*admission.Position, error)
	Exit(ctx context.Context, boardID, userID int64) error
	IsAdmitted(ctx context.Context, boardID, userID int64) (bool, error)
}

type OrderValidator interface {
	Validate(
		ctx context.Context,
		tx uow.TX,
		req domain.RegisterOrder,
		userID int64,
		observedAt time.Time,
	) ([]domain.ValidatedLine, error)
}

type PaymentGateway interface {
	FetchPayment(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)
	Validate(record *domain.PaymentRecord, order *domain.Order) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type ImageUploader interface {
	Upload(ctx context.Context, file domain.File) (string, error)
	UploadMany(ctx context.Context, files []domain.File) ([]string, error)
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type CodeHasher interface {
	Hash(code string) (string, error)
	Compare(code, hash string) bool
}
