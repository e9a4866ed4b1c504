package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type UserRepository struct {
	conn uow.DBTX
}

func NewUserRepository(conn uow.DBTX) *UserRepository {
	return &UserRepository{conn: conn}
}

// FindByID ищет юзера по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	err := u.conn.QueryRow(ctx,
		`SELECT id, created_at, updated_at, email, point FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt, &user.Email, &user.Point)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return &user, nil
}

// DebitPoint списывает amount баллов. Если баллов не хватает, возвращает domain.ErrNotEnoughPoint,
// если юзера нет - domain.ErrRecordNotFound.
func (u *UserRepository) DebitPoint(ctx context.Context, id int64, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	var point decimal.Decimal
	err := u.conn.QueryRow(ctx, `
		UPDATE users SET point = point - $2, updated_at = now()
		WHERE id = $1 AND point >= $2
		RETURNING point`, id, amount,
	).Scan(&point)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return convertErr(err, "debiting %s points of user %d", amount, id)
	}

	if _, findErr := u.FindByID(ctx, id); findErr != nil {
		return findErr
	}
	return fmt.Errorf("[repository/debiting %s points of user %d] %w", amount, id, domain.ErrNotEnoughPoint)
}

// CreditPoint начисляет amount баллов.
func (u *UserRepository) CreditPoint(ctx context.Context, id int64, amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}
	tag, err := u.conn.Exec(ctx,
		`UPDATE users SET point = point + $2, updated_at = now() WHERE id = $1`, id, amount)
	if err != nil {
		return convertErr(err, "crediting %s points to user %d", amount, id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("[repository/crediting points to user %d] %w", id, domain.ErrRecordNotFound)
	}
	return nil
}
