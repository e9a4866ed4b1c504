package pgrepo

import (
	"context"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
)

type VerificationRepository struct {
	conn uow.DBTX
}

func NewVerificationRepository(conn uow.DBTX) *VerificationRepository {
	return &VerificationRepository{conn: conn}
}

func (v *VerificationRepository) DeleteAllByEmail(ctx context.Context, email string) error {
	if _, err := v.conn.Exec(ctx, `DELETE FROM verification_codes WHERE email = $1`, email); err != nil {
		return convertErr(err, "deleting verification codes of `%s`", email)
	}
	return nil
}

func (v *VerificationRepository) Create(
	ctx context.Context,
	args repoargs.CreateVerificationCode,
) (*domain.VerificationCode, error) {
	code := domain.VerificationCode{Email: args.Email, CodeHash: args.CodeHash, ExpiresAt: args.ExpiresAt}
	err := v.conn.QueryRow(ctx, `
		INSERT INTO verification_codes (email, code_hash, expires_at) VALUES ($1, $2, $3)
		RETURNING id, created_at`, args.Email, args.CodeHash, args.ExpiresAt,
	).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		return nil, convertErr(err, "creating verification code for `%s`", args.Email)
	}
	return &code, nil
}

// FindLatestByEmail возвращает последний выданный код. Возвращает domain.ErrRecordNotFound если кодов нет.
func (v *VerificationRepository) FindLatestByEmail(ctx context.Context, email string) (*domain.VerificationCode, error) {
	var code domain.VerificationCode
	err := v.conn.QueryRow(ctx, `
		SELECT id, created_at, email, code_hash, expires_at, attempts FROM verification_codes
		WHERE email = $1 ORDER BY id DESC LIMIT 1`, email,
	).Scan(&code.ID, &code.CreatedAt, &code.Email, &code.CodeHash, &code.ExpiresAt, &code.Attempts)
	if err != nil {
		return nil, convertErr(err, "finding latest verification code of `%s`", email)
	}
	return &code, nil
}

// IncrementAttempts учитывает неудачную попытку ввода кода и возвращает их общее кол-во.
func (v *VerificationRepository) IncrementAttempts(ctx context.Context, id int64) (int, error) {
	var attempts int
	err := v.conn.QueryRow(ctx,
		`UPDATE verification_codes SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts`, id,
	).Scan(&attempts)
	if err != nil {
		return 0, convertErr(err, "incrementing attempts of verification code %d", id)
	}
	return attempts, nil
}
