package queries

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ezrent/internal/infra"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"

	"github.com/google/uuid"
)

type ItemFilter struct {
	Category string
	OwnerID  *uuid.UUID
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	ListFirstPage(ctx context.Context, filter ItemFilter, limit int32) ([]*ItemView, error)
	ListKeyset(ctx context.Context, filter ItemFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*ItemView, error)
}

// ItemCache is a read-through cache in front of ItemReadStore.FindByID.
type ItemCache interface {
	Get(ctx context.Context, id uuid.UUID) (*ItemView, bool, error)
	Set(ctx context.Context, v *ItemView) error
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context, filter ItemFilter, cursor *Cursor, limit int) ([]*ItemView, *Cursor, error)
}

type itemQueriesImpl struct {
	store   ItemReadStore
	cache   ItemCache
	metrics *metrics.Metrics
}

func NewItemQueries(store ItemReadStore, cache ItemCache, m *metrics.Metrics) ItemQueries {
	return &itemQueriesImpl{store: store, cache: cache, metrics: m}
}

// GetByID serves from cache when it can. Cache failures degrade to the database.
func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	cached, hit, err := q.cache.Get(ctx, id)
	if err != nil {
		slog.Warn("item cache read failed", "item_id", id, "error", err.Error())
		q.metrics.IncItemCache("error")
	} else if hit {
		q.metrics.IncItemCache("hit")
		return cached, nil
	} else {
		q.metrics.IncItemCache("miss")
	}

	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrItemNotFound)
		}
		return nil, err
	}
	if err = q.cache.Set(ctx, v); err != nil {
		slog.Warn("item cache write failed", "item_id", id, "error", err.Error())
	}
	return v, nil
}

func (q *itemQueriesImpl) List(ctx context.Context, filter ItemFilter, cursor *Cursor, limit int) ([]*ItemView, *Cursor, error) {
	filter.Category = strings.ToLower(strings.TrimSpace(filter.Category))
	limit = ValidateLimit(limit)
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	var rows []*ItemView
	if after == nil {
		rows, err = q.store.ListFirstPage(ctx, filter, int32(limit+1))
	} else {
		rows, err = q.store.ListKeyset(ctx, filter, after.CreatedAt, after.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(i *ItemView) (time.Time, uuid.UUID) { return i.CreatedAt, i.ID })
	return nonNil(rows), next, nil
}
