package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const boardColumns = `id, created_at, updated_at, company_id, title, content, thumbnail_url, detail_url,
	status::text, started_at, ended_at`

type BoardRepository struct {
	conn uow.DBTX
}

func NewBoardRepository(conn uow.DBTX) *BoardRepository {
	return &BoardRepository{conn: conn}
}

// FindByID ищет доску по id. Возвращает domain.ErrRecordNotFound если доски нет.
func (b *BoardRepository) FindByID(ctx context.Context, id int64) (*domain.Board, error) {
	row := b.conn.QueryRow(ctx, `SELECT `+boardColumns+` FROM boards WHERE id = $1`, id)
	board, err := scanBoard(row)
	if err != nil {
		return nil, convertErr(err, "finding board by id %d", id)
	}
	return board, nil
}

func (b *BoardRepository) Create(ctx context.Context, args repoargs.CreateBoard) (*domain.Board, error) {
	row := b.conn.QueryRow(ctx, `
		INSERT INTO boards (company_id, title, content, thumbnail_url, detail_url, started_at, ended_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+boardColumns,
		args.CompanyID,
		args.Title,
		args.Content,
		args.ThumbnailURL,
		args.DetailURL,
		args.StartedAt,
		args.EndedAt,
	)
	board, err := scanBoard(row)
	if err != nil {
		return nil, convertErr(err, "creating board `%s`", args.Title)
	}
	return board, nil
}

// CreateThumbnails сохраняет ссылки на превью доски одним батчем.
func (b *BoardRepository) CreateThumbnails(
	ctx context.Context,
	boardID int64,
	urls []string,
) ([]domain.BoardThumbnail, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	batch := new(pgx.Batch)
	for _, url := range urls {
		batch.Queue(`INSERT INTO board_thumbnails (board_id, url) VALUES ($1, $2) RETURNING id`, boardID, url)
	}

	br := b.conn.SendBatch(ctx, batch)
	defer br.Close()

	thumbnails := make([]domain.BoardThumbnail, len(urls))
	for i, url := range urls {
		thumbnails[i] = domain.BoardThumbnail{BoardID: boardID, URL: url}
		if err := br.QueryRow().Scan(&thumbnails[i].ID); err != nil {
			return nil, convertErr(err, "creating thumbnail #%d for board %d", i, boardID)
		}
	}
	if err := br.Close(); err != nil {
		return nil, convertErr(err, "closing thumbnails batch for board %d", boardID)
	}
	return thumbnails, nil
}

func (b *BoardRepository) GetThumbnails(ctx context.Context, boardID int64) ([]domain.BoardThumbnail, error) {
	rows, err := b.conn.Query(ctx,
		`SELECT id, board_id, url FROM board_thumbnails WHERE board_id = $1 ORDER BY id`, boardID)
	if err != nil {
		return nil, convertErr(err, "getting thumbnails of board %d", boardID)
	}
	thumbnails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BoardThumbnail, error) {
		var t domain.BoardThumbnail
		scanErr := row.Scan(&t.ID, &t.BoardID, &t.URL)
		return t, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning thumbnails of board %d", boardID)
	}
	return thumbnails, nil
}

func scanBoard(row pgx.Row) (*domain.Board, error) {
	var (
		board  domain.Board
		status string
	)
	if err := row.Scan(
		&board.ID,
		&board.CreatedAt,
		&board.UpdatedAt,
		&board.CompanyID,
		&board.Title,
		&board.Content,
		&board.ThumbnailURL,
		&board.DetailURL,
		&status,
		&board.StartedAt,
		&board.EndedAt,
	); err != nil {
		return nil, fmt.Errorf("scan board: %w", err)
	}
	board.Status = domain.BoardStatusType(status)
	return &board, nil
}
