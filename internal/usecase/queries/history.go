package queries

import (
	"context"

	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type HistoryReadStore interface {
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*HistoryView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*HistoryView, error)
}

// HistoryQueries returns closed bookings newest first. No rows is an empty slice, not an error.
type HistoryQueries interface {
	ListByCustomer(ctx context.Context, actor shared.Actor, customerID uuid.UUID) ([]*HistoryView, error)
	ListByOwner(ctx context.Context, actor shared.Actor, ownerID uuid.UUID) ([]*HistoryView, error)
}

type historyQueriesImpl struct {
	store HistoryReadStore
}

func NewHistoryQueries(store HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store}
}

func (q *historyQueriesImpl) ListByCustomer(ctx context.Context, actor shared.Actor, customerID uuid.UUID) ([]*HistoryView, error) {
	if actor.UserID != customerID {
		return nil, ErrAccessDenied
	}
	rows, err := q.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}

func (q *historyQueriesImpl) ListByOwner(ctx context.Context, actor shared.Actor, ownerID uuid.UUID) ([]*HistoryView, error) {
	if actor.UserID != ownerID {
		return nil, ErrAccessDenied
	}
	rows, err := q.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return nonNil(rows), nil
}

func nonNil[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}
	return rows
}
