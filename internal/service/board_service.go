package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type BoardService struct {
	uow         uow.UOW
	boardRepo   BoardRepository
	productRepo ProductRepository
	queue       AdmissionQueue
	uploader    ImageUploader
	now         func() time.Time
}

func NewBoardService(u uow.UOW, queue AdmissionQueue, uploader ImageUploader) (*BoardService, error) {
	boardRepo, err := uow.GetRepositoryAs[BoardRepository](u, uow.RepositoryName(repoargs.BoardRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	productRepo, err := uow.GetRepositoryAs[ProductRepository](u, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &BoardService{
		uow:         u,
		boardRepo:   boardRepo,
		productRepo: productRepo,
		queue:       queue,
		uploader:    uploader,
		now:         time.Now,
	}, nil
}

type CreateProductArgs struct {
	Name  string
	Price decimal.Decimal
	Stock int64
}

type CreateBoardArgs struct {
	Title     string
	Content   string
	StartedAt time.Time
	EndedAt   time.Time
	Products  []CreateProductArgs
}

func (a CreateBoardArgs) validate(now time.Time) error {
	switch {
	case strings.TrimSpace(a.Title) == "":
		return errors.New("empty title")
	case !a.StartedAt.Before(a.EndedAt):
		return errors.New("sale must start before it ends")
	case !a.EndedAt.After(now):
		return errors.New("sale already ended")
	case len(a.Products) == 0:
		return errors.New("board without products")
	}
	for _, p := range a.Products {
		if strings.TrimSpace(p.Name) == "" || p.Price.IsNegative() || p.Stock < 0 {
			return fmt.Errorf("invalid product `%s`", p.Name)
		}
	}
	return nil
}

// Create создает доску с товарами и очередь допуска к ней.
//
// Параметры:
//   - companyID: продавец, от имени которого создается доска.
//   - thumbnails: превью доски, первое становится обложкой.
//   - detail: изображение с описанием.
//
// Алгоритм работы:
//  1. Проверяет аргументы (domain.ErrInvalidBoard) и загружает изображения (domain.ErrUploadFail).
//  2. В одной транзакции создает доску, товары и превью, затем очередь допуска, которая живет до EndedAt.
//     Если очередь создать не удалось, транзакция откатывается и возвращается domain.ErrQueueCreateFail:
//     доска без очереди не публикуется.
func (b *BoardService) Create(
	ctx context.Context,
	companyID int64,
	args CreateBoardArgs,
	thumbnails []domain.File,
	detail domain.File,
) (*domain.Board, error) {
	ctx, span := tracer.Start(ctx, "BoardService.Create", trace.WithAttributes(
		attribute.Int64("company.id", companyID),
	))
	defer span.End()

	if err := args.validate(b.now()); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidBoard, err.Error())
	}

	thumbnailURLs, uploadErr := b.uploader.UploadMany(ctx, thumbnails)
	if uploadErr != nil {
		return nil, fmt.Errorf("%w: thumbnails: %s", domain.ErrUploadFail, uploadErr.Error())
	}
	detailURL, uploadErr := b.uploader.Upload(ctx, detail)
	if uploadErr != nil {
		return nil, fmt.Errorf("%w: detail: %s", domain.ErrUploadFail, uploadErr.Error())
	}
	var cover string
	if len(thumbnailURLs) > 0 {
		cover = thumbnailURLs[0]
	}

	var board *domain.Board
	txErr := b.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		boardRepo, repoErr := uow.GetAs[BoardRepository](tx, uow.RepositoryName(repoargs.BoardRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		productRepo, repoErr := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		created, createErr := boardRepo.Create(c, repoargs.CreateBoard{
			CompanyID:    companyID,
			Title:        args.Title,
			Content:      args.Content,
			ThumbnailURL: cover,
			DetailURL:    detailURL,
			StartedAt:    args.StartedAt,
			EndedAt:      args.EndedAt,
		})
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}

		products := make([]repoargs.CreateProduct, len(args.Products))
		for i, p := range args.Products {
			products[i] = repoargs.CreateProduct{BoardID: created.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
		}
		if _, err := productRepo.CreateBatch(c, products); err != nil {
			return err //nolint:wrapcheck
		}
		if _, err := boardRepo.CreateThumbnails(c, created.ID, thumbnailURLs); err != nil {
			return err //nolint:wrapcheck
		}

		if err := b.queue.CreateQueue(c, created.ID, created.EndedAt); err != nil {
			if errors.Is(err, domain.ErrQueueCreateFail) {
				return err //nolint:wrapcheck
			}
			return fmt.Errorf("%w: %s", domain.ErrQueueCreateFail, err.Error())
		}
		board = created
		return nil
	})
	if txErr != nil {
		span.RecordError(txErr)
		span.SetStatus(codes.Error, "create board")
		return nil, fmt.Errorf("creating board: %w", txErr)
	}
	return board, nil
}

type BoardDetails struct {
	Board      *domain.Board
	Products   []domain.Product
	Thumbnails []domain.BoardThumbnail
}

// Get возвращает доску с товарами. Нет доски - domain.ErrEventNotFound.
func (b *BoardService) Get(ctx context.Context, boardID int64) (*BoardDetails, error) {
	board, err := b.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("board %d: %w", boardID, domain.ErrEventNotFound)
		}
		return nil, fmt.Errorf("finding board: %w", err)
	}
	products, err := b.productRepo.GetByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("getting board products: %w", err)
	}
	thumbnails, err := b.boardRepo.GetThumbnails(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("getting board thumbnails: %w", err)
	}
	return &BoardDetails{Board: board, Products: products, Thumbnails: thumbnails}, nil
}
