//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/notify"
	"ezrent/internal/usecase/shared"
	"ezrent/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	store      *memstore.Store
	mailer     *recordingMailer
	cache      *recordingCache
	metrics    *metrics.Metrics
	dispatcher *notify.Dispatcher
	cmds       commands.BookingCommands

	owner    shared.UserSnapshot
	customer shared.UserSnapshot
	item     shared.ItemSnapshot
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.store = memstore.New()
	s.mailer = &recordingMailer{}
	s.cache = &recordingCache{}
	s.metrics = metrics.New(prometheus.NewRegistry())
	clk := clock.NewMockClock(testNow)
	s.dispatcher = notify.NewDispatcher(s.store, s.mailer, stubRenderer{}, clk, s.metrics)
	s.cmds = commands.NewBookingCommands(s.store, s.dispatcher, s.cache, clk, s.metrics)

	s.owner = seedUser(s.store, "owner@example.com", user.RoleOwner)
	s.customer = seedUser(s.store, "customer@example.com", user.RoleCustomer)
	s.item = seedItem(s.store, s.owner.ID, 1)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.drain()
}

// drain waits for background email deliveries.
func (s *BookingCommandsTestSuite) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.Require().NoError(s.dispatcher.Shutdown(ctx))
}

func (s *BookingCommandsTestSuite) request() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID:        s.item.ID,
		StartDate:     time.Date(2026, 3, 25, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, 3, 27, 0, 0, 0, 0, time.UTC),
		PaymentMethod: "card",
	}
}

func (s *BookingCommandsTestSuite) book() uuid.UUID {
	res, err := s.cmds.CreateBooking(context.Background(), actorOf(s.customer), s.request())
	s.Require().NoError(err)
	s.Require().Equal(booking.StatusPending, res.Status)
	return res.BookingID
}

func (s *BookingCommandsTestSuite) move(id uuid.UUID, by shared.UserSnapshot, to string) error {
	_, err := s.cmds.UpdateStatus(context.Background(), actorOf(by), id, to)
	return err
}

func (s *BookingCommandsTestSuite) status(id uuid.UUID) booking.Status {
	b, ok := s.store.Booking(id)
	s.Require().True(ok)
	return b.Status
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	s.Run("reserves a unit, notifies the owner and emails after commit", func() {
		id := s.book()

		s.Equal(0, s.store.ItemQuantity(s.item.ID))
		s.Equal([]uuid.UUID{s.item.ID}, s.cache.Invalidated())

		notes := s.store.Notifications()
		s.Require().Len(notes, 1)
		s.Equal(s.owner.ID, notes[0].RecipientID())
		s.Equal(user.RoleOwner, notes[0].RecipientRole())
		s.Equal(id, notes[0].BookingID())
		s.Equal("pending", notes[0].Payload().Status)
		s.Equal(int64(7500), notes[0].Payload().TotalAmount)

		s.drain()
		sent := s.mailer.Sent()
		s.Require().Len(sent, 1)
		s.Equal("owner@example.com", sent[0].To)

		jobs := s.store.Jobs()
		s.Require().Len(jobs, 1)
		s.Equal("booking_pending", jobs[0].Topic)
		s.Equal(notify.JobStatusSent, jobs[0].Status)

		s.Equal(1.0, testutil.ToFloat64(s.metrics.BookingsCreated))
	})
}

func (s *BookingCommandsTestSuite) TestCreateBookingRejections() {
	ctx := context.Background()

	s.Run("out of stock", func() {
		s.book()

		other := seedUser(s.store, "other@example.com", user.RoleCustomer)
		_, err := s.cmds.CreateBooking(ctx, actorOf(other), s.request())
		s.True(errs.Is(err, commands.ErrItemUnavailable))
		s.Equal(1, s.store.BookingCount())
		s.Len(s.store.Notifications(), 1)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.BookingRejected.WithLabelValues("item_unavailable")))
	})

	testCases := []struct {
		name   string
		actor  func() shared.Actor
		mutate func(*commands.CreateBookingRequest)
		want   error
	}{
		{
			name:  "owners cannot book",
			actor: func() shared.Actor { return actorOf(s.owner) },
			want:  commands.ErrNotAuthorized,
		},
		{
			name:   "unknown item",
			mutate: func(r *commands.CreateBookingRequest) { r.ItemID = uuid.New() },
			want:   commands.ErrItemNotFound,
		},
		{
			name:   "start in the past",
			mutate: func(r *commands.CreateBookingRequest) { r.StartDate = testNow.AddDate(0, 0, -1) },
			want:   errs.ErrDomainValidation,
		},
		{
			name:   "end before start",
			mutate: func(r *commands.CreateBookingRequest) { r.EndDate = r.StartDate.AddDate(0, 0, -1) },
			want:   errs.ErrDomainValidation,
		},
		{
			name:   "period longer than a year",
			mutate: func(r *commands.CreateBookingRequest) { r.EndDate = r.StartDate.AddDate(1, 0, 0) },
			want:   errs.ErrDomainValidation,
		},
		{
			name:   "unknown payment method",
			mutate: func(r *commands.CreateBookingRequest) { r.PaymentMethod = "crypto" },
			want:   errs.ErrDomainValidation,
		},
		{
			name: "pickup outside the period",
			mutate: func(r *commands.CreateBookingRequest) {
				p := r.EndDate.AddDate(0, 0, 1)
				r.PickupDate = &p
			},
			want: errs.ErrDomainValidation,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			actor := actorOf(s.customer)
			if tc.actor != nil {
				actor = tc.actor()
			}
			req := s.request()
			if tc.mutate != nil {
				tc.mutate(&req)
			}

			_, err := s.cmds.CreateBooking(ctx, actor, req)
			s.True(errs.Is(err, tc.want), "got %v", err)
			s.Equal(1, s.store.ItemQuantity(s.item.ID))
			s.Zero(s.store.BookingCount())
		})
	}

	s.Run("a failing notification rolls the reservation back", func() {
		s.SetupTest()
		s.store.Fail(memstore.OpCreateNotification, errors.New("insert failed"))

		_, err := s.cmds.CreateBooking(ctx, actorOf(s.customer), s.request())
		s.Error(err)
		s.Equal(1, s.store.ItemQuantity(s.item.ID))
		s.Zero(s.store.BookingCount())
		s.Empty(s.store.Jobs())
	})
}

func (s *BookingCommandsTestSuite) TestLifecycle() {
	s.Run("pending to completed records history once", func() {
		id := s.book()

		s.Require().NoError(s.move(id, s.owner, "approved"))
		s.Require().NoError(s.move(id, s.customer, "paid"))
		res, err := s.cmds.UpdateStatus(context.Background(), actorOf(s.owner), id, "completed")
		s.Require().NoError(err)
		s.Equal(booking.StatusPaid, res.From)
		s.Equal(booking.StatusCompleted, res.To)

		s.Equal(booking.StatusCompleted, s.status(id))
		s.Equal(0, s.store.ItemQuantity(s.item.ID))

		entries := s.store.Histories()
		s.Require().Len(entries, 1)
		s.Equal(id, entries[0].BookingID())
		s.Equal("Camping tent", entries[0].Snapshot().ProductTitle)
		s.Equal(int64(7500), entries[0].Snapshot().TotalAmount.Cents())

		// created, paid -> owner; approved, completed -> customer
		var toOwner, toCustomer int
		for _, n := range s.store.Notifications() {
			switch n.RecipientID() {
			case s.owner.ID:
				toOwner++
			case s.customer.ID:
				toCustomer++
			}
		}
		s.Equal(2, toOwner)
		s.Equal(2, toCustomer)

		s.drain()
		// only pending and paid send email on this path
		s.Len(s.mailer.Sent(), 2)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.BookingTransitions.WithLabelValues("paid", "completed")))
	})

	s.Run("decline restores the unit and emails the customer", func() {
		s.SetupTest()
		id := s.book()

		s.Require().NoError(s.move(id, s.owner, "declined"))
		s.Equal(1, s.store.ItemQuantity(s.item.ID))
		s.Len(s.cache.Invalidated(), 2)
		s.Empty(s.store.Histories())

		s.drain()
		sent := s.mailer.Sent()
		s.Require().Len(sent, 2)
		s.Equal("customer@example.com", sent[1].To)
	})

	s.Run("another customer can book after the owner declines", func() {
		s.SetupTest()
		ctx := context.Background()
		id := s.book()
		second := seedUser(s.store, "second@example.com", user.RoleCustomer)

		_, err := s.cmds.CreateBooking(ctx, actorOf(second), s.request())
		s.Require().True(errs.Is(err, commands.ErrItemUnavailable), "got %v", err)

		s.Require().NoError(s.move(id, s.owner, "declined"))
		res, err := s.cmds.CreateBooking(ctx, actorOf(second), s.request())
		s.Require().NoError(err)
		s.Equal(booking.StatusPending, res.Status)
		s.NotEqual(id, res.BookingID)

		b, ok := s.store.Booking(res.BookingID)
		s.Require().True(ok)
		s.Equal(second.ID, b.CustomerID)
		s.Equal(0, s.store.ItemQuantity(s.item.ID))
		s.Equal(booking.StatusDeclined, s.status(id))
		s.Equal(2, s.store.BookingCount())
	})

	s.Run("cancel after approval restores the unit", func() {
		s.SetupTest()
		id := s.book()

		s.Require().NoError(s.move(id, s.owner, "approved"))
		s.Require().NoError(s.move(id, s.customer, "cancelled"))
		s.Equal(1, s.store.ItemQuantity(s.item.ID))
	})

	s.Run("terminal states reject further moves and restore only once", func() {
		s.SetupTest()
		id := s.book()

		s.Require().NoError(s.move(id, s.owner, "declined"))
		err := s.move(id, s.owner, "approved")
		s.True(errs.Is(err, commands.ErrInvalidTransition))
		err = s.move(id, s.customer, "cancelled")
		s.True(errs.Is(err, commands.ErrInvalidTransition))
		s.Equal(1, s.store.ItemQuantity(s.item.ID))
	})
}

func (s *BookingCommandsTestSuite) TestUpdateStatusRejections() {
	testCases := []struct {
		name string
		by   func() shared.UserSnapshot
		to   string
		want error
	}{
		{"customer cannot approve", func() shared.UserSnapshot { return s.customer }, "approved", commands.ErrNotAuthorized},
		{"owner cannot cancel", func() shared.UserSnapshot { return s.owner }, "cancelled", commands.ErrNotAuthorized},
		{"no edge from pending to paid", func() shared.UserSnapshot { return s.customer }, "paid", commands.ErrInvalidTransition},
		{"no edge from pending to completed", func() shared.UserSnapshot { return s.owner }, "completed", commands.ErrInvalidTransition},
		{"unknown status", func() shared.UserSnapshot { return s.owner }, "archived", errs.ErrDomainValidation},
		{
			name: "stranger",
			by: func() shared.UserSnapshot {
				return seedUser(s.store, "stranger@example.com", user.RoleOwner)
			},
			to:   "approved",
			want: commands.ErrNotAuthorized,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.SetupTest()
			id := s.book()

			err := s.move(id, tc.by(), tc.to)
			s.True(errs.Is(err, tc.want), "got %v", err)
			s.Equal(booking.StatusPending, s.status(id))
			s.Equal(0, s.store.ItemQuantity(s.item.ID))
		})
	}

	s.Run("missing booking", func() {
		s.SetupTest()
		err := s.move(uuid.New(), s.owner, "approved")
		s.True(errs.Is(err, commands.ErrBookingNotFound))
	})

	s.Run("failing history append keeps the booking paid", func() {
		s.SetupTest()
		id := s.book()
		s.Require().NoError(s.move(id, s.owner, "approved"))
		s.Require().NoError(s.move(id, s.customer, "paid"))

		s.store.Fail(memstore.OpAppendHistory, errors.New("insert failed"))
		s.Error(s.move(id, s.owner, "completed"))
		s.Equal(booking.StatusPaid, s.status(id))
		s.Empty(s.store.Histories())
	})
}
