package readstore

import (
	"context"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/money"
	"ezrent/internal/domain/user"
	"ezrent/internal/infra"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDRow, error)
	FindBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.ListBookingsFirstPageRow, error)
	ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.ListBookingsKeysetRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.FindBookingByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return toBookingView(row), nil
}

// FindForUpdate must run inside a transaction; the row lock is held until it ends.
func (r *BookingReadStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	row, err := r.queries.FindBookingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return &shared.BookingSnapshot{
		ID:            row.ID,
		ItemID:        row.ItemID,
		CustomerID:    row.CustomerID,
		OwnerID:       row.OwnerID,
		Status:        booking.Status(row.Status),
		PricePerDay:   money.FromCents(row.PricePerDay),
		RentalStart:   pgconv.DateFromPgtype(row.RentalStart),
		RentalEnd:     pgconv.DateFromPgtype(row.RentalEnd),
		PaymentMethod: booking.PaymentMethod(row.PaymentMethod),
		PickupDate:    pgconv.DateFromPgtype(row.PickupDate),
		ReturnDate:    pgconv.DateFromPgtype(row.ReturnDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *BookingReadStore) ListFirstPage(ctx context.Context, filter queries.BookingFilter, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsFirstPage(ctx, r.db, sqlc.ListBookingsFirstPageParams{
		AsOwner: filter.As == user.RoleOwner,
		UserID:  filter.UserID,
		Status:  statusParam(filter.Status),
		Limit:   limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(sqlc.FindBookingByIDRow(row))
	}
	return views, nil
}

func (r *BookingReadStore) ListKeyset(ctx context.Context, filter queries.BookingFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingsKeyset(ctx, r.db, sqlc.ListBookingsKeysetParams{
		AsOwner:   filter.As == user.RoleOwner,
		UserID:    filter.UserID,
		Status:    statusParam(filter.Status),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	views := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		views[i] = toBookingView(sqlc.FindBookingByIDRow(row))
	}
	return views, nil
}

func statusParam(s *booking.Status) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s.String(), Valid: true}
}

func toBookingView(row sqlc.FindBookingByIDRow) *queries.BookingView {
	start := pgconv.DateFromPgtype(row.RentalStart)
	end := pgconv.DateFromPgtype(row.RentalEnd)

	// rows always satisfy the period CHECK, so the error branch only guards bad data
	days := 0
	if period, err := booking.NewRentalPeriod(start, end); err == nil {
		days = period.Days()
	}

	image := ""
	if len(row.ItemImageUrls) > 0 {
		image = row.ItemImageUrls[0]
	}

	return &queries.BookingView{
		ID:            row.ID,
		ItemID:        row.ItemID,
		ItemTitle:     row.ItemTitle,
		ItemImage:     image,
		CustomerID:    row.CustomerID,
		CustomerName:  row.CustomerName,
		OwnerID:       row.OwnerID,
		OwnerName:     row.OwnerName,
		Status:        row.Status,
		PricePerDay:   row.PricePerDay,
		RentalStart:   start,
		RentalEnd:     end,
		Days:          days,
		TotalAmount:   money.FromCents(row.PricePerDay).Mul(days).Cents(),
		PaymentMethod: row.PaymentMethod,
		PickupDate:    pgconv.DateFromPgtype(row.PickupDate),
		ReturnDate:    pgconv.DateFromPgtype(row.ReturnDate),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
