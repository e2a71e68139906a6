package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const itemKeyPrefix = "item:"

// ItemCache keeps item detail views in Redis. Entries are dropped whenever a
// booking changes the item's stock.
type ItemCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewItemCache(client redis.Cmdable, ttl time.Duration) *ItemCache {
	return &ItemCache{client: client, ttl: ttl}
}

func itemKey(id uuid.UUID) string {
	return itemKeyPrefix + id.String()
}

func (c *ItemCache) Get(ctx context.Context, id uuid.UUID) (*queries.ItemView, bool, error) {
	raw, err := c.client.Get(ctx, itemKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, errs.Wrap(err, "item cache get")
	}

	var v queries.ItemView
	if err := json.Unmarshal(raw, &v); err != nil {
		// a stale layout is treated as a miss and overwritten on the next Set
		return nil, false, nil
	}
	return &v, true, nil
}

func (c *ItemCache) Set(ctx context.Context, v *queries.ItemView) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "item cache encode")
	}
	if err := c.client.Set(ctx, itemKey(v.ID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "item cache set")
	}
	return nil
}

func (c *ItemCache) Invalidate(ctx context.Context, itemID uuid.UUID) error {
	if err := c.client.Del(ctx, itemKey(itemID)).Err(); err != nil {
		return errs.Wrap(err, "item cache invalidate")
	}
	return nil
}
