package pgrepo

import (
	"context"
	"fmt"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const orderColumns = `id, created_at, updated_at, user_id, board_id, status::text, total_price, used_point,
	total_paid_amount, payment_id`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create создает заказ в статусе PAYMENT_WAIT.
func (o *OrderRepository) Create(ctx context.Context, args repoargs.CreateOrder) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		INSERT INTO orders (user_id, board_id, status, total_price)
		VALUES ($1, $2, $3::order_status_type, $4)
		RETURNING `+orderColumns,
		args.UserID,
		args.BoardID,
		string(domain.OrderStatusPaymentWait),
		args.TotalPrice,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "creating order for user %d on board %d", args.UserID, args.BoardID)
	}
	return order, nil
}

// CreateLines сохраняет позиции заказа одним батчем.
func (o *OrderRepository) CreateLines(
	ctx context.Context,
	lines []repoargs.CreateOrderedLine,
) ([]domain.OrderedLine, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	batch := new(pgx.Batch)
	for _, l := range lines {
		batch.Queue(`INSERT INTO ordered_lines (order_id, product_id, quantity, price) VALUES ($1, $2, $3, $4)
			RETURNING id`, l.OrderID, l.ProductID, l.Quantity, l.Price)
	}

	br := o.conn.SendBatch(ctx, batch)
	defer br.Close()

	res := make([]domain.OrderedLine, len(lines))
	for i, l := range lines {
		res[i] = domain.OrderedLine{
			OrderID:   l.OrderID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.Price,
		}
		if err := br.QueryRow().Scan(&res[i].ID); err != nil {
			return nil, convertErr(err, "creating line for product %d of order %d", l.ProductID, l.OrderID)
		}
	}
	if err := br.Close(); err != nil {
		return nil, convertErr(err, "closing ordered lines batch")
	}
	return res, nil
}

// FindByID ищет заказ по id без позиций. Возвращает domain.ErrRecordNotFound если заказа нет.
func (o *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(o.conn.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding order by id %d", id)
	}
	return order, nil
}

// FindByIDForUpdate как FindByID, но блокирует строку заказа до конца транзакции.
func (o *OrderRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		return nil, convertErr(err, "locking order %d", id)
	}
	return order, nil
}

// GetLines возвращает позиции заказа в порядке возрастания product_id.
func (o *OrderRepository) GetLines(ctx context.Context, orderID int64) ([]domain.OrderedLine, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT id, order_id, product_id, quantity, price FROM ordered_lines
		WHERE order_id = $1 ORDER BY product_id`, orderID)
	if err != nil {
		return nil, convertErr(err, "getting lines of order %d", orderID)
	}
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OrderedLine, error) {
		var l domain.OrderedLine
		scanErr := row.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.Price)
		return l, scanErr //nolint:wrapcheck
	})
	if err != nil {
		return nil, convertErr(err, "scanning lines of order %d", orderID)
	}
	return lines, nil
}

// UpdateStatus меняет статус заказа с args.From на args.To. Если текущий статус отличается от args.From
// (заказ уже обработан конкурентно), возвращает domain.ErrRecordNotFound.
// PaymentID, UsedPoint и TotalPaidAmount записываются только при переходе в ORDER_COMPLETE.
func (o *OrderRepository) UpdateStatus(ctx context.Context, args repoargs.UpdateOrderStatus) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx, `
		UPDATE orders SET
			status            = $3::order_status_type,
			payment_id        = CASE WHEN $7::boolean THEN $4 ELSE payment_id END,
			used_point        = CASE WHEN $7::boolean THEN $5 ELSE used_point END,
			total_paid_amount = CASE WHEN $7::boolean THEN $6 ELSE total_paid_amount END,
			updated_at        = now()
		WHERE id = $1 AND status = $2::order_status_type
		RETURNING `+orderColumns,
		args.ID,
		string(args.From),
		string(args.To),
		args.PaymentID,
		args.UsedPoint,
		args.TotalPaidAmount,
		args.To == domain.OrderStatusComplete,
	)
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, "updating order %d status %s -> %s", args.ID, args.From, args.To)
	}
	return order, nil
}

// GetStale возвращает заказы в статусе PAYMENT_WAIT, созданные раньше args.CreatedBefore.
func (o *OrderRepository) GetStale(ctx context.Context, args repoargs.StaleOrders) ([]domain.Order, error) {
	safeLimit, safeLimitErr := safeConvertUintToInt32(args.Limit)
	if safeLimitErr != nil {
		return nil, convertErr(safeLimitErr, "converting limit to int32")
	}

	rows, err := o.conn.Query(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE status = $1::order_status_type AND created_at < $2
		ORDER BY created_at
		LIMIT $3`,
		string(domain.OrderStatusPaymentWait),
		args.CreatedBefore,
		safeLimit,
	)
	if err != nil {
		return nil, convertErr(err, "getting stale orders")
	}
	orders, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Order, error) {
		order, scanErr := scanOrder(row)
		if scanErr != nil {
			return domain.Order{}, scanErr
		}
		return *order, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning stale orders")
	}
	return orders, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		order  domain.Order
		status string
	)
	if err := row.Scan(
		&order.ID,
		&order.CreatedAt,
		&order.UpdatedAt,
		&order.UserID,
		&order.BoardID,
		&status,
		&order.TotalPrice,
		&order.UsedPoint,
		&order.TotalPaidAmount,
		&order.PaymentID,
	); err != nil {
		return nil, fmt.Errorf("scan order: %w", err)
	}
	order.Status = domain.OrderStatusType(status)
	return &order, nil
}
