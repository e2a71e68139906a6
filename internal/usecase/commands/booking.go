package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/history"
	"ezrent/internal/domain/notification"
	"ezrent/internal/domain/user"
	"ezrent/internal/pkg/clock"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"
	"ezrent/internal/usecase/notify"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ItemID        uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	PaymentMethod string
	PickupDate    *time.Time
	ReturnDate    *time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
	Status    booking.Status
}

type UpdateStatusResult struct {
	BookingID uuid.UUID
	From      booking.Status
	To        booking.Status
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, actor shared.Actor, req CreateBookingRequest) (*CreateBookingResult, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, newStatus string) (*UpdateStatusResult, error)
}

type bookingCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier Notifier
	cache    ItemCacheInvalidator
	clock    clock.Clock
	metrics  *metrics.Metrics
}

func NewBookingCommands(uow shared.UnitOfWork, notifier Notifier, cache ItemCacheInvalidator, clk clock.Clock, m *metrics.Metrics) BookingCommands {
	return &bookingCommandsImpl{
		uow:      uow,
		notifier: notifier,
		cache:    cache,
		clock:    clk,
		metrics:  m,
	}
}

func (uc *bookingCommandsImpl) CreateBooking(ctx context.Context, actor shared.Actor, req CreateBookingRequest) (*CreateBookingResult, error) {
	if actor.Role != user.RoleCustomer {
		return nil, errs.Wrap(ErrNotAuthorized, "only customers can book items")
	}
	method, err := booking.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, invalid(err)
	}
	period, err := booking.NewRentalPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, invalid(err)
	}

	var (
		created *booking.Booking
		out     *notify.Outbound
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, out = nil, nil

		it, derr := tx.Reads().ItemByID(ctx, req.ItemID)
		if derr != nil {
			return notFoundAs(derr, ErrItemNotFound)
		}

		spec := booking.ItemSpec{ID: it.ID, OwnerID: it.OwnerID, PricePerDay: it.PricePerDay}
		b, derr := booking.NewBooking(uc.clock, spec, actor.UserID, period, method, req.PickupDate, req.ReturnDate)
		if derr != nil {
			if errors.Is(derr, booking.ErrOwnItem) {
				return errs.Mark(derr, ErrNotAuthorized)
			}
			return invalid(derr)
		}

		ok, derr := tx.Items().DecrementQuantity(ctx, tx.DB(), it.ID)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrItemUnavailable
		}

		if derr = tx.Bookings().Create(ctx, tx.DB(), b); derr != nil {
			return derr
		}

		out, derr = uc.notifier.Notify(ctx, tx, notify.Event{
			Booking:       b,
			To:            booking.StatusPending,
			Recipient:     it.OwnerID,
			RecipientRole: user.RoleOwner,
			Item:          notification.ItemSnapshot{Title: it.Title, ImageURL: it.CoverImage},
		})
		if derr != nil {
			return derr
		}
		created = b
		return nil
	})
	if err != nil {
		uc.metrics.IncBookingRejected(rejectReason(err))
		return nil, err
	}

	uc.invalidateItem(ctx, req.ItemID)
	uc.notifier.Deliver(out)
	uc.metrics.IncBookingCreated()

	return &CreateBookingResult{BookingID: created.ID(), Status: created.Status()}, nil
}

func (uc *bookingCommandsImpl) UpdateStatus(ctx context.Context, actor shared.Actor, bookingID uuid.UUID, newStatus string) (*UpdateStatusResult, error) {
	to, err := booking.ParseStatus(newStatus)
	if err != nil {
		return nil, invalid(err)
	}

	var (
		change booking.Change
		itemID uuid.UUID
		out    *notify.Outbound
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		out = nil

		snap, derr := tx.Reads().BookingForUpdate(ctx, bookingID)
		if derr != nil {
			return notFoundAs(derr, ErrBookingNotFound)
		}
		b, derr := snap.ToDomain()
		if derr != nil {
			return derr
		}
		itemID = b.ItemID()

		now := uc.clock.Now()
		change, derr = b.Transition(actor.UserID, actor.Role, to, now)
		if derr != nil {
			return transitionErr(derr)
		}

		ok, derr := tx.Bookings().UpdateStatus(ctx, tx.DB(), b.ID(), change.From, change.To, now)
		if derr != nil {
			return derr
		}
		if !ok {
			return ErrInvalidTransition
		}

		if change.To.RestoresInventory() {
			if derr = tx.Items().IncrementQuantity(ctx, tx.DB(), b.ItemID()); derr != nil {
				return derr
			}
		}

		it, derr := tx.Reads().ItemByID(ctx, b.ItemID())
		if derr != nil {
			return notFoundAs(derr, ErrItemNotFound)
		}

		if change.To.RecordsHistory() {
			entry, herr := history.NewFromBooking(b, it.Title, now)
			if herr != nil {
				return herr
			}
			if herr = tx.Histories().Append(ctx, tx.DB(), entry); herr != nil {
				return herr
			}
		}

		recipient, role := b.Counterparty(actor.Role)
		out, derr = uc.notifier.Notify(ctx, tx, notify.Event{
			Booking:       b,
			From:          change.From,
			To:            change.To,
			Recipient:     recipient,
			RecipientRole: role,
			Item:          notification.ItemSnapshot{Title: it.Title, ImageURL: it.CoverImage},
		})
		return derr
	})
	if err != nil {
		uc.metrics.IncBookingRejected(rejectReason(err))
		return nil, err
	}

	if change.To.RestoresInventory() {
		uc.invalidateItem(ctx, itemID)
	}
	uc.notifier.Deliver(out)
	uc.metrics.IncTransition(change.From.String(), change.To.String())

	return &UpdateStatusResult{BookingID: bookingID, From: change.From, To: change.To}, nil
}

func (uc *bookingCommandsImpl) invalidateItem(ctx context.Context, itemID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, itemID); err != nil {
		slog.Warn("failed to invalidate item cache", "item_id", itemID, "error", err.Error())
	}
}

func transitionErr(err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	case errors.Is(err, booking.ErrNotAuthorized), errors.Is(err, booking.ErrNotParty):
		return errs.Mark(err, ErrNotAuthorized)
	case errors.Is(err, booking.ErrInvalidStatus):
		return invalid(err)
	default:
		return err
	}
}

func rejectReason(err error) string {
	switch {
	case errs.Is(err, ErrItemUnavailable):
		return "item_unavailable"
	case errs.Is(err, ErrInvalidTransition):
		return "invalid_transition"
	case errs.Is(err, ErrNotAuthorized):
		return "not_authorized"
	case errs.Is(err, ErrItemNotFound), errs.Is(err, ErrBookingNotFound):
		return "not_found"
	case errs.Is(err, errs.ErrDomainValidation):
		return "validation"
	default:
		return "error"
	}
}
