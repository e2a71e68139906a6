package repository

import (
	"context"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/history"
	"ezrent/internal/infra"
	"ezrent/internal/infra/repository/converter"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
}

type BookingRepository struct {
	queries BookingWriteQueries
}

func NewBookingRepository(queries BookingWriteQueries) *BookingRepository {
	return &BookingRepository{queries: queries}
}

func (r *BookingRepository) Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, tx, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, from, to booking.Status, now time.Time) (bool, error) {
	n, err := r.queries.UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{
		ToStatus:   to.String(),
		UpdatedAt:  pgconv.TimeToPgtype(now),
		ID:         bookingID,
		FromStatus: from.String(),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return n == 1, nil
}

type HistoryWriteQueries interface {
	CreateHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHistoryParams) error
}

type HistoryRepository struct {
	queries HistoryWriteQueries
}

func NewHistoryRepository(queries HistoryWriteQueries) *HistoryRepository {
	return &HistoryRepository{queries: queries}
}

// Append fails with DUPLICATE_KEY if the booking already has a history row.
func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, e *history.Entry) error {
	if err := r.queries.CreateHistory(ctx, tx, converter.HistoryToCreateParams(e)); err != nil {
		return infra.WrapRepoErr("failed to append history", err)
	}
	return nil
}
