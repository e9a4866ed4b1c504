package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/fsdevblog/flashboard/internal/domain"
	"github.com/fsdevblog/flashboard/internal/repository/repoargs"
	"github.com/fsdevblog/flashboard/pkg/uow"
)

// StockLedger единственная точка изменения остатков. Работает в рамках транзакции, из которой создан:
// блокировки, взятые LockAndRead, держатся до коммита этой транзакции.
type StockLedger struct {
	products ProductRepository
}

func NewStockLedger(tx uow.TX) (*StockLedger, error) {
	products, err := uow.GetAs[ProductRepository](tx, uow.RepositoryName(repoargs.ProductRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &StockLedger{products: products}, nil
}

// LockAndRead блокирует строку товара и возвращает актуальный остаток. Отсутствие товара - domain.ErrProductNotFound.
func (s *StockLedger) LockAndRead(ctx context.Context, productID int64) (*domain.Product, error) {
	product, err := s.products.LockAndRead(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %d: %w", productID, domain.ErrProductNotFound)
		}
		return nil, fmt.Errorf("lock product %d: %w", productID, err)
	}
	return product, nil
}

// Decrement списывает qty единиц. Остаток никогда не уходит в минус: при нехватке возвращается
// ошибка, совместимая с domain.ErrLackOfStock.
func (s *StockLedger) Decrement(ctx context.Context, productID, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("decrement product %d by %d: %w", productID, qty, domain.ErrInvalidOrder)
	}
	if err := s.products.Decrement(ctx, productID, qty); err != nil {
		if errors.Is(err, domain.ErrCheckViolation) {
			return fmt.Errorf("decrement product %d: %w", productID, domain.ErrLackOfStock)
		}
		return err //nolint:wrapcheck
	}
	return nil
}

func (s *StockLedger) Restock(ctx context.Context, productID, qty int64) error {
	if qty <= 0 {
		return nil
	}
	return s.products.Restock(ctx, productID, qty) //nolint:wrapcheck
}

// RestockLines возвращает на склад позиции заказа в порядке возрастания product id, в том же порядке,
// в котором их блокирует валидатор.
func (s *StockLedger) RestockLines(ctx context.Context, lines []domain.OrderedLine) error {
	sorted := make([]domain.OrderedLine, len(lines))
	copy(sorted, lines)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ProductID < sorted[j].ProductID })

	for _, line := range sorted {
		if err := s.Restock(ctx, line.ProductID, line.Quantity); err != nil {
			return fmt.Errorf("restock product %d: %w", line.ProductID, err)
		}
	}
	return nil
}
