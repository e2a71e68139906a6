package queries

import (
	"context"
	"time"

	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	ListFirstPage(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*NotificationView, error)
	ListKeyset(ctx context.Context, recipientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
	ListUnreadFirst(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
}

type NotificationListOptions struct {
	// UnreadFirst sorts unread before read. Cursors are ignored in this mode and only the first page is returned.
	UnreadFirst bool
	Cursor      *Cursor
	Limit       int
}

type NotificationQueries interface {
	List(ctx context.Context, actor shared.Actor, opts NotificationListOptions) ([]*NotificationView, *Cursor, error)
	UnreadCount(ctx context.Context, actor shared.Actor) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, actor shared.Actor, opts NotificationListOptions) ([]*NotificationView, *Cursor, error) {
	limit := ValidateLimit(opts.Limit)

	if opts.UnreadFirst {
		rows, err := q.store.ListUnreadFirst(ctx, actor.UserID, int32(limit))
		if err != nil {
			return nil, nil, err
		}
		return nonNil(rows), nil, nil
	}

	after, err := decodeKeyset(opts.Cursor)
	if err != nil {
		return nil, nil, err
	}
	var rows []*NotificationView
	if after == nil {
		rows, err = q.store.ListFirstPage(ctx, actor.UserID, int32(limit+1))
	} else {
		rows, err = q.store.ListKeyset(ctx, actor.UserID, after.CreatedAt, after.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(n *NotificationView) (time.Time, uuid.UUID) { return n.CreatedAt, n.ID })
	return nonNil(rows), next, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, actor shared.Actor) (int64, error) {
	return q.store.CountUnread(ctx, actor.UserID)
}
