package queries

import (
	"context"
	"time"

	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type MessageReadStore interface {
	ConversationFirstPage(ctx context.Context, userID, peerID uuid.UUID, limit int32) ([]*MessageView, error)
	ConversationKeyset(ctx context.Context, userID, peerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*MessageView, error)
}

type MessageQueries interface {
	Conversation(ctx context.Context, actor shared.Actor, peerID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error)
}

type messageQueriesImpl struct {
	store MessageReadStore
}

func NewMessageQueries(store MessageReadStore) MessageQueries {
	return &messageQueriesImpl{store: store}
}

// Conversation returns messages exchanged between the caller and peer, newest first.
func (q *messageQueriesImpl) Conversation(ctx context.Context, actor shared.Actor, peerID uuid.UUID, cursor *Cursor, limit int) ([]*MessageView, *Cursor, error) {
	limit = ValidateLimit(limit)
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	var rows []*MessageView
	if after == nil {
		rows, err = q.store.ConversationFirstPage(ctx, actor.UserID, peerID, int32(limit+1))
	} else {
		rows, err = q.store.ConversationKeyset(ctx, actor.UserID, peerID, after.CreatedAt, after.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(m *MessageView) (time.Time, uuid.UUID) { return m.CreatedAt, m.ID })
	return nonNil(rows), next, nil
}
