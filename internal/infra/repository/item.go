package repository

import (
	"context"

	"ezrent/internal/domain/item"
	"ezrent/internal/infra"
	"ezrent/internal/infra/repository/converter"
	sqlc "ezrent/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ItemWriteQueries interface {
	CreateItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateItemParams) error
	DecrementItemQuantity(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	IncrementItemQuantity(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type ItemRepository struct {
	queries ItemWriteQueries
}

func NewItemRepository(queries ItemWriteQueries) *ItemRepository {
	return &ItemRepository{queries: queries}
}

func (r *ItemRepository) Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) error {
	if err := r.queries.CreateItem(ctx, tx, converter.ItemToCreateParams(it)); err != nil {
		return infra.WrapRepoErr("failed to create item", err)
	}
	return nil
}

// DecrementQuantity relies on the WHERE quantity > 0 guard: zero affected rows
// means the item was already out of stock when the row lock was taken.
func (r *ItemRepository) DecrementQuantity(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) (bool, error) {
	n, err := r.queries.DecrementItemQuantity(ctx, tx, itemID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement item quantity", err)
	}
	return n == 1, nil
}

func (r *ItemRepository) IncrementQuantity(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) error {
	n, err := r.queries.IncrementItemQuantity(ctx, tx, itemID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment item quantity", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
