package commands

import (
	"context"

	"ezrent/internal/domain/message"
	"ezrent/internal/infra"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	RecipientID uuid.UUID
	BookingID   *uuid.UUID
	Body        string
}

type SendMessageResult struct {
	MessageID uuid.UUID
}

type MessageCommands interface {
	Send(ctx context.Context, actor shared.Actor, req SendMessageRequest) (*SendMessageResult, error)
}

type messageCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewMessageCommands(uow shared.UnitOfWork, clk clock.Clock) MessageCommands {
	return &messageCommandsImpl{uow: uow, clock: clk}
}

func (uc *messageCommandsImpl) Send(ctx context.Context, actor shared.Actor, req SendMessageRequest) (*SendMessageResult, error) {
	m, err := message.NewMessage(actor.UserID, req.RecipientID, req.BookingID, req.Body, uc.clock.Now())
	if err != nil {
		return nil, invalid(err)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, req.RecipientID); derr != nil {
			return notFoundAs(derr, ErrUserNotFound)
		}
		return tx.Messages().Create(ctx, tx.DB(), m)
	})
	if err != nil {
		// the only foreign key left unchecked above is the optional booking
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	return &SendMessageResult{MessageID: m.ID()}, nil
}
