//go:build unit

package notification_test

import (
	"testing"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/money"
	"ezrent/internal/domain/notification"
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldEmail(t *testing.T) {
	want := map[booking.Status]bool{
		booking.StatusPending:   true,
		booking.StatusApproved:  false,
		booking.StatusDeclined:  true,
		booking.StatusPaid:      true,
		booking.StatusCompleted: false,
		booking.StatusCancelled: false,
	}
	for status, expected := range want {
		assert.Equal(t, expected, notification.ShouldEmail(status), status)
	}
}

func TestNewForTransition(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	owner, customer := uuid.New(), uuid.New()
	period, err := booking.NewRentalPeriod(time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), time.Date(2026, 5, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	b, err := booking.NewBooking(clock.NewMockClock(now),
		booking.ItemSpec{ID: uuid.New(), OwnerID: owner, PricePerDay: money.FromCents(4000)},
		customer, period, booking.PaymentCash, nil, nil)
	require.NoError(t, err)

	n := notification.NewForTransition(b, "", booking.StatusPending, owner, user.RoleOwner,
		notification.ItemSnapshot{Title: "Camping tent", ImageURL: "https://img/tent"}, now)

	expected := notification.Payload{
		Product:     "Camping tent",
		Status:      "pending",
		PickUpDate:  period.Start(),
		ReturnDate:  period.End(),
		ItemImage:   "https://img/tent",
		TotalAmount: 8000,
		Message:     "New booking request for Camping tent",
	}
	if diff := cmp.Diff(expected, n.Payload()); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, owner, n.RecipientID())
	assert.Equal(t, b.ID(), n.BookingID())
	assert.False(t, n.IsRead())
}

func TestMarkRead(t *testing.T) {
	recipient := uuid.New()
	n := notification.Reconstruct(uuid.New(), recipient, user.RoleCustomer, uuid.New(), notification.Payload{}, false, time.Now())

	require.ErrorIs(t, n.MarkRead(uuid.New()), notification.ErrNotRecipient)
	assert.False(t, n.IsRead())

	require.NoError(t, n.MarkRead(recipient))
	assert.True(t, n.IsRead())

	require.NoError(t, n.MarkRead(recipient), "marking twice is a no-op")
}
