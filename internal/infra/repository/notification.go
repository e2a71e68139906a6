package repository

import (
	"context"
	"time"

	"ezrent/internal/domain/notification"
	"ezrent/internal/infra"
	"ezrent/internal/infra/repository/converter"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationWriteQueries interface {
	CreateNotification(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationParams) error
	MarkNotificationRead(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationReadParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error {
	params, err := converter.NotificationToCreateParams(n)
	if err != nil {
		return infra.WrapRepoErr("failed to encode notification payload", err)
	}
	if err := r.queries.CreateNotification(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tx sqlc.DBTX, id, recipientID uuid.UUID) (bool, error) {
	n, err := r.queries.MarkNotificationRead(ctx, tx, sqlc.MarkNotificationReadParams{
		ID:          id,
		RecipientID: recipientID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark notification read", err)
	}
	return n == 1, nil
}

type NotificationJobWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) (uuid.UUID, error)
	UpdateNotificationJobStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateNotificationJobStatusParams) (int64, error)
}

type NotificationJobRepository struct {
	queries NotificationJobWriteQueries
}

func NewNotificationJobRepository(queries NotificationJobWriteQueries) *NotificationJobRepository {
	return &NotificationJobRepository{queries: queries}
}

func (r *NotificationJobRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
		Status:  "queued",
	}

	id, err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}

	return id, nil
}

func (r *NotificationJobRepository) UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	params := sqlc.UpdateNotificationJobStatusParams{
		ID:        jobID,
		Status:    status,
		LastError: pgconv.StringPtrToPgtype(lastError),
	}

	n, err := r.queries.UpdateNotificationJobStatus(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}

	return nil
}
