package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/flashboard/internal/admission"
	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/service"
)

type BoardServicer interface {
	Create(
		ctx context.Context,
		companyID int64,
		args service.CreateBoardArgs,
		thumbnails []domain.File,
		detail domain.File,
	) (*domain.Board, error)
	Get(ctx context.Context, boardID int64) (*service.BoardDetails, error)
}

type QueueServicer interface {
	Join(ctx context.Context, boardID, userID int64) (*admission.Position, error)
	IsAdmitted(ctx context.Context, boardID, userID int64) (bool, error)
	Exit(ctx context.Context, boardID, userID int64) error
}

type OrderServicer interface {
	Register(ctx context.Context, userID int64, args domain.RegisterOrder) (int64, error)
	Get(ctx context.Context, userID, orderID int64) (*domain.Order, error)
	Complete(ctx context.Context, userID int64, args service.CompleteOrderArgs) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID int64) error
}

type VerificationServicer interface {
	SendCode(ctx context.Context, email string) error
	Confirm(ctx context.Context, email, code string) error
}
