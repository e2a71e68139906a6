package readstore

import (
	"context"
	"encoding/json"
	"time"

	"ezrent/internal/infra"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationReadQueries interface {
	ListNotificationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsFirstPageParams) ([]sqlc.Notifications, error)
	ListNotificationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsKeysetParams) ([]sqlc.Notifications, error)
	ListNotificationsUnreadFirst(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsUnreadFirstParams) ([]sqlc.Notifications, error)
	CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationReadStore) ListFirstPage(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsFirstPage(ctx, r.db, sqlc.ListNotificationsFirstPageParams{
		RecipientID: recipientID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return toNotificationViews(rows)
}

func (r *NotificationReadStore) ListKeyset(ctx context.Context, recipientID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsKeyset(ctx, r.db, sqlc.ListNotificationsKeysetParams{
		RecipientID: recipientID,
		CreatedAt:   pgconv.TimeToPgtype(lastCreatedAt),
		ID:          lastID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return toNotificationViews(rows)
}

func (r *NotificationReadStore) ListUnreadFirst(ctx context.Context, recipientID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := r.queries.ListNotificationsUnreadFirst(ctx, r.db, sqlc.ListNotificationsUnreadFirstParams{
		RecipientID: recipientID,
		Limit:       limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return toNotificationViews(rows)
}

func (r *NotificationReadStore) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	n, err := r.queries.CountUnreadNotifications(ctx, r.db, recipientID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}

func toNotificationViews(rows []sqlc.Notifications) ([]*queries.NotificationView, error) {
	views := make([]*queries.NotificationView, len(rows))
	for i, row := range rows {
		v := &queries.NotificationView{
			ID:            row.ID,
			RecipientID:   row.RecipientID,
			RecipientRole: row.RecipientRole,
			BookingID:     row.BookingID,
			Read:          row.Read,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
		if err := json.Unmarshal(row.Payload, &v.Payload); err != nil {
			return nil, infra.WrapRepoErr("failed to decode notification payload", err)
		}
		views[i] = v
	}
	return views, nil
}
