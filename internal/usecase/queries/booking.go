package queries

import (
	"context"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/user"
	"ezrent/internal/infra"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

// BookingFilter selects the caller's bookings from one side of the marketplace.
type BookingFilter struct {
	UserID uuid.UUID
	As     user.Role
	Status *booking.Status
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListFirstPage(ctx context.Context, filter BookingFilter, limit int32) ([]*BookingView, error)
	ListKeyset(ctx context.Context, filter BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, actor shared.Actor, as string, status string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// GetByID hides bookings the caller is not a party to behind ErrBookingNotFound.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*BookingView, error) {
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}
	if v.CustomerID != actor.UserID && v.OwnerID != actor.UserID {
		return nil, ErrBookingNotFound
	}
	withNextStatuses(v, actor)
	return v, nil
}

// List defaults `as` to the caller's role.
func (q *bookingQueriesImpl) List(ctx context.Context, actor shared.Actor, as string, status string, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	filter := BookingFilter{UserID: actor.UserID, As: actor.Role}
	if as != "" {
		role, err := user.NewRole(as)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidFilter)
		}
		filter.As = role
	}
	if status != "" {
		st, err := booking.ParseStatus(status)
		if err != nil {
			return nil, nil, errs.Mark(err, ErrInvalidFilter)
		}
		filter.Status = &st
	}

	limit = ValidateLimit(limit)
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	var rows []*BookingView
	if after == nil {
		rows, err = q.store.ListFirstPage(ctx, filter, int32(limit+1))
	} else {
		rows, err = q.store.ListKeyset(ctx, filter, after.CreatedAt, after.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := page(rows, limit, func(b *BookingView) (time.Time, uuid.UUID) { return b.CreatedAt, b.ID })
	for _, v := range rows {
		withNextStatuses(v, actor)
	}
	return nonNil(rows), next, nil
}

func withNextStatuses(v *BookingView, actor shared.Actor) {
	v.NextStatuses = []string{}
	isParty := (actor.Role == user.RoleOwner && v.OwnerID == actor.UserID) ||
		(actor.Role == user.RoleCustomer && v.CustomerID == actor.UserID)
	if !isParty {
		return
	}
	for _, s := range booking.NextStatuses(booking.Status(v.Status), actor.Role) {
		v.NextStatuses = append(v.NextStatuses, s.String())
	}
}
