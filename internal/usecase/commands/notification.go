package commands

import (
	"context"

	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error
}

type notificationCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationCommands(uow shared.UnitOfWork) NotificationCommands {
	return &notificationCommandsImpl{uow: uow}
}

// MarkRead only touches the caller's own notifications. Someone else's id looks the same as a missing one.
func (uc *notificationCommandsImpl) MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, err := tx.Notifications().MarkRead(ctx, tx.DB(), notificationID, actor.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrNotificationNotFound
		}
		return nil
	})
}
