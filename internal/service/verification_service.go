package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
)

const (
	DefaultVerificationCodeTTL  = 10 * time.Minute
	DefaultVerificationAttempts = 5
	verificationCodeDigits      = 6
	verificationMailSubject     = "Flashboard email verification"
)

type VerificationService struct {
	uow    uow.UOW
	repo   VerificationRepository
	hasher CodeHasher
	mailer Mailer
	ttl    time.Duration
	// maxAttempts кол-во неверных вводов, после которого код сжигается.
	maxAttempts int
	now         func() time.Time
	code        func() (string, error)
}

func NewVerificationService(u uow.UOW, hasher CodeHasher, mailer Mailer) (*VerificationService, error) {
	repo, err := uow.GetRepositoryAs[VerificationRepository](u, uow.RepositoryName(repoargs.VerificationRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &VerificationService{
		uow:         u,
		repo:        repo,
		hasher:      hasher,
		mailer:      mailer,
		ttl:         DefaultVerificationCodeTTL,
		maxAttempts: DefaultVerificationAttempts,
		now:         time.Now,
		code:        generateCode,
	}, nil
}

func (v *VerificationService) SetTTL(ttl time.Duration) *VerificationService {
	if ttl > 0 {
		v.ttl = ttl
	}
	return v
}

func (v *VerificationService) SetMaxAttempts(n int) *VerificationService {
	if n > 0 {
		v.maxAttempts = n
	}
	return v
}

// SendCode выдает новый код подтверждения и отправляет его на email. Ранее выданные коды удаляются.
// Ошибка отправки письма возвращается как domain.ErrEmailVerifyFail.
func (v *VerificationService) SendCode(ctx context.Context, email string) error {
	code, codeErr := v.code()
	if codeErr != nil {
		return fmt.Errorf("generating verification code: %w", codeErr)
	}
	hash, hashErr := v.hasher.Hash(code)
	if hashErr != nil {
		return fmt.Errorf("hashing verification code: %w", hashErr)
	}

	txErr := v.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[VerificationRepository](tx, uow.RepositoryName(repoargs.VerificationRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if err := repo.DeleteAllByEmail(c, email); err != nil {
			return err //nolint:wrapcheck
		}
		_, err := repo.Create(c, repoargs.CreateVerificationCode{
			Email:     email,
			CodeHash:  hash,
			ExpiresAt: v.now().Add(v.ttl),
		})
		return err //nolint:wrapcheck
	})
	if txErr != nil {
		return fmt.Errorf("storing verification code: %w", txErr)
	}

	body := fmt.Sprintf("Your verification code: %s. It expires in %s.", code, v.ttl)
	if err := v.mailer.Send(ctx, email, verificationMailSubject, body); err != nil {
		return fmt.Errorf("%w: sending mail: %s", domain.ErrEmailVerifyFail, err.Error())
	}
	return nil
}

// Confirm проверяет последний выданный код. Неверный, просроченный или отсутствующий код -
// domain.ErrEmailVerifyFail. Подтвержденный код удаляется.
//
// Алгоритм работы:
//  1. Находит последний код и отклоняет просроченный или исчерпавший попытки.
//  2. При несовпадении атомарно увеличивает счетчик попыток.
//     Исчерпав maxAttempts, удаляет все коды email, дальше нужен новый SendCode.
//  3. При совпадении удаляет все коды email.
func (v *VerificationService) Confirm(ctx context.Context, email, code string) error {
	stored, err := v.repo.FindLatestByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("%w: no code issued", domain.ErrEmailVerifyFail)
		}
		return fmt.Errorf("finding verification code: %w", err)
	}
	if !v.now().Before(stored.ExpiresAt) {
		return fmt.Errorf("%w: code expired", domain.ErrEmailVerifyFail)
	}
	if stored.Attempts >= v.maxAttempts {
		return fmt.Errorf("%w: too many attempts", domain.ErrEmailVerifyFail)
	}
	if !v.hasher.Compare(code, stored.CodeHash) {
		attempts, incErr := v.repo.IncrementAttempts(ctx, stored.ID)
		if incErr != nil {
			return fmt.Errorf("counting verification attempt: %w", incErr)
		}
		if attempts >= v.maxAttempts {
			if delErr := v.repo.DeleteAllByEmail(ctx, email); delErr != nil {
				return fmt.Errorf("deleting verification codes: %w", delErr)
			}
			return fmt.Errorf("%w: too many attempts", domain.ErrEmailVerifyFail)
		}
		return fmt.Errorf("%w: code mismatch", domain.ErrEmailVerifyFail)
	}
	if delErr := v.repo.DeleteAllByEmail(ctx, email); delErr != nil {
		return fmt.Errorf("deleting verification codes: %w", delErr)
	}
	return nil
}

func generateCode() (string, error) {
	limit := big.NewInt(1)
	for range verificationCodeDigits {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return fmt.Sprintf("%0*d", verificationCodeDigits, n), nil
}
