package repository

import (
	"context"

	"ezrent/internal/domain/message"
	"ezrent/internal/infra"
	"ezrent/internal/infra/repository/converter"
	sqlc "ezrent/internal/infra/sqlc/generated"
)

type MessageWriteQueries interface {
	CreateMessage(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMessageParams) error
}

type MessageRepository struct {
	queries MessageWriteQueries
}

func NewMessageRepository(queries MessageWriteQueries) *MessageRepository {
	return &MessageRepository{queries: queries}
}

func (r *MessageRepository) Create(ctx context.Context, tx sqlc.DBTX, m *message.Message) error {
	if err := r.queries.CreateMessage(ctx, tx, converter.MessageToCreateParams(m)); err != nil {
		return infra.WrapRepoErr("failed to create message", err)
	}
	return nil
}
