package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, created_at, updated_at, board_id, name, price, stock`

// ProductRepository хранилище товаров. Остаток меняется только через LockAndRead/Decrement/Restock,
// вызываемые в одной транзакции.
type ProductRepository struct {
	conn uow.DBTX
}

func NewProductRepository(conn uow.DBTX) *ProductRepository {
	return &ProductRepository{conn: conn}
}

// LockAndRead читает товар с блокировкой строки (SELECT ... FOR UPDATE). Блокировка держится до конца
// транзакции. Ожидание чужой блокировки ограничено lock_timeout транзакции, по истечении которого
// возвращается domain.ErrLockTimeout.
func (p *ProductRepository) LockAndRead(ctx context.Context, id int64) (*domain.Product, error) {
	row := p.conn.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1 FOR UPDATE`, id)
	product, err := scanProduct(row)
	if err != nil {
		return nil, convertErr(err, "locking product %d", id)
	}
	return product, nil
}

// Decrement уменьшает остаток товара на qty. Если остатка не хватает, строка не обновляется и
// возвращается domain.ErrLackOfStock.
func (p *ProductRepository) Decrement(ctx context.Context, id int64, qty int64) error {
	tag, err := p.conn.Exec(ctx,
		`UPDATE products SET stock = stock - $2, updated_at = now() WHERE id = $1 AND stock >= $2`,
		id, qty)
	if err != nil {
		return convertErr(err, "decrementing stock of product %d by %d", id, qty)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/decrementing stock of product %d by %d] %w", id, qty, domain.ErrLackOfStock)
	}
	return nil
}

// Restock возвращает qty единиц товара на склад.
func (p *ProductRepository) Restock(ctx context.Context, id int64, qty int64) error {
	tag, err := p.conn.Exec(ctx,
		`UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`, id, qty)
	if err != nil {
		return convertErr(err, "restocking product %d by %d", id, qty)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/restocking product %d] %w", id, domain.ErrRecordNotFound)
	}
	return nil
}

// CreateBatch создает товары доски одним батчем.
func (p *ProductRepository) CreateBatch(ctx context.Context, args []repoargs.CreateProduct) ([]domain.Product, error) {
	if len(args) == 0 {
		return nil, nil
	}

	batch := new(pgx.Batch)
	for _, a := range args {
		batch.Queue(`INSERT INTO products (board_id, name, price, stock) VALUES ($1, $2, $3, $4)
			RETURNING `+productColumns, a.BoardID, a.Name, a.Price, a.Stock)
	}

	br := p.conn.SendBatch(ctx, batch)
	defer br.Close()

	products := make([]domain.Product, len(args))
	for i := range args {
		product, err := scanProduct(br.QueryRow())
		if err != nil {
			return nil, convertErr(err, "creating product `%s`", args[i].Name)
		}
		products[i] = *product
	}
	if err := br.Close(); err != nil {
		return nil, convertErr(err, "closing products batch")
	}
	return products, nil
}

// GetByBoardID возвращает товары доски, отсортированные по id.
func (p *ProductRepository) GetByBoardID(ctx context.Context, boardID int64) ([]domain.Product, error) {
	rows, err := p.conn.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE board_id = $1 ORDER BY id`, boardID)
	if err != nil {
		return nil, convertErr(err, "getting products of board %d", boardID)
	}
	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Product, error) {
		product, scanErr := scanProduct(row)
		if scanErr != nil {
			return domain.Product{}, scanErr
		}
		return *product, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning products of board %d", boardID)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.BoardID,
		&product.Name,
		&product.Price,
		&product.Stock,
	); err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return &product, nil
}
