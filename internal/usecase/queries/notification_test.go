//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ezrent/internal/domain/user"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"
	queriesmock "ezrent/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationQueries_List(t *testing.T) {
	ctx := context.Background()
	actor := shared.Actor{UserID: uuid.New(), Role: user.RoleOwner}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := func(n int) []*queries.NotificationView {
		out := make([]*queries.NotificationView, n)
		for i := range out {
			out[i] = &queries.NotificationView{ID: uuid.New(), RecipientID: actor.UserID, CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
		}
		return out
	}

	t.Run("unread first ignores the cursor and never pages", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockNotificationReadStore(ctrl)
		store.EXPECT().ListUnreadFirst(ctx, actor.UserID, int32(5)).Return(rows(5), nil)

		got, next, err := queries.NewNotificationQueries(store).List(ctx, actor, queries.NotificationListOptions{
			UnreadFirst: true,
			Cursor:      &queries.Cursor{After: "not-even-valid"},
			Limit:       5,
		})

		require.NoError(t, err)
		assert.Len(t, got, 5)
		assert.Nil(t, next)
	})

	t.Run("newest first with a next cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockNotificationReadStore(ctrl)
		page := rows(3)
		store.EXPECT().ListFirstPage(ctx, actor.UserID, int32(3)).Return(page, nil)

		got, next, err := queries.NewNotificationQueries(store).List(ctx, actor, queries.NotificationListOptions{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		assert.Equal(t, queries.EncodeAfterCursor(page[1].CreatedAt, page[1].ID), next.After)
	})

	t.Run("keyset page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockNotificationReadStore(ctrl)
		afterID := uuid.New()
		store.EXPECT().ListKeyset(ctx, actor.UserID, base, afterID, int32(queries.DefaultListLimit+1)).Return(nil, nil)

		got, next, err := queries.NewNotificationQueries(store).List(ctx, actor, queries.NotificationListOptions{
			Cursor: &queries.Cursor{After: queries.EncodeAfterCursor(base, afterID)},
		})

		require.NoError(t, err)
		assert.Equal(t, []*queries.NotificationView{}, got)
		assert.Nil(t, next)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := queriesmock.NewMockNotificationReadStore(ctrl)
		store.EXPECT().ListFirstPage(ctx, actor.UserID, gomock.Any()).Return(nil, errors.New("boom"))

		_, _, err := queries.NewNotificationQueries(store).List(ctx, actor, queries.NotificationListOptions{})

		assert.Error(t, err)
	})
}

func TestNotificationQueries_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	actor := shared.Actor{UserID: uuid.New(), Role: user.RoleCustomer}
	store := queriesmock.NewMockNotificationReadStore(ctrl)
	store.EXPECT().CountUnread(ctx, actor.UserID).Return(int64(4), nil)

	n, err := queries.NewNotificationQueries(store).UnreadCount(ctx, actor)

	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}
