package readstore

import (
	"context"
	"time"

	"ezrent/internal/infra"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type MessageReadQueries interface {
	ListConversationFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConversationFirstPageParams) ([]sqlc.Messages, error)
	ListConversationKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListConversationKeysetParams) ([]sqlc.Messages, error)
}

type MessageReadStore struct {
	queries MessageReadQueries
	db      sqlc.DBTX
}

func NewMessageReadStore(queries MessageReadQueries, db sqlc.DBTX) *MessageReadStore {
	return &MessageReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *MessageReadStore) ConversationFirstPage(ctx context.Context, userID, peerID uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListConversationFirstPage(ctx, r.db, sqlc.ListConversationFirstPageParams{
		UserID: userID,
		PeerID: peerID,
		Limit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversation", err)
	}
	return toMessageViews(rows), nil
}

func (r *MessageReadStore) ConversationKeyset(ctx context.Context, userID, peerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.MessageView, error) {
	rows, err := r.queries.ListConversationKeyset(ctx, r.db, sqlc.ListConversationKeysetParams{
		UserID:    userID,
		PeerID:    peerID,
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list conversation", err)
	}
	return toMessageViews(rows), nil
}

func toMessageViews(rows []sqlc.Messages) []*queries.MessageView {
	views := make([]*queries.MessageView, len(rows))
	for i, row := range rows {
		views[i] = &queries.MessageView{
			ID:          row.ID,
			SenderID:    row.SenderID,
			RecipientID: row.RecipientID,
			BookingID:   pgconv.UUIDPtrFromPgtype(row.BookingID),
			Body:        row.Body,
			CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views
}
