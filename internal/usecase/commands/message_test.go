//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/commands"
	"ezrent/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageCommands_Send(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	owner := seedUser(store, "owner@example.com", user.RoleOwner)
	customer := seedUser(store, "customer@example.com", user.RoleCustomer)
	cmds := commands.NewMessageCommands(store, clock.NewMockClock(testNow))

	t.Run("stored for the recipient", func(t *testing.T) {
		res, err := cmds.Send(ctx, actorOf(customer), commands.SendMessageRequest{RecipientID: owner.ID, Body: "Is it free?"})
		require.NoError(t, err)

		msgs := store.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, res.MessageID, msgs[0].ID())
		assert.Equal(t, owner.ID, msgs[0].RecipientID())
	})

	testCases := []struct {
		name string
		req  commands.SendMessageRequest
		want error
	}{
		{"unknown recipient", commands.SendMessageRequest{RecipientID: uuid.New(), Body: "hi"}, commands.ErrUserNotFound},
		{"unknown booking", commands.SendMessageRequest{RecipientID: owner.ID, BookingID: ptrUUID(uuid.New()), Body: "hi"}, commands.ErrBookingNotFound},
		{"empty body", commands.SendMessageRequest{RecipientID: owner.ID, Body: "   "}, errs.ErrDomainValidation},
		{"too long", commands.SendMessageRequest{RecipientID: owner.ID, Body: strings.Repeat("a", 2001)}, errs.ErrDomainValidation},
		{"to self", commands.SendMessageRequest{RecipientID: customer.ID, Body: "hi"}, errs.ErrDomainValidation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cmds.Send(ctx, actorOf(customer), tc.req)
			assert.True(t, errs.Is(err, tc.want), "got %v", err)
		})
	}
}

func ptrUUID(id uuid.UUID) *uuid.UUID { return &id }
