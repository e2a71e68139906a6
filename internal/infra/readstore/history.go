package readstore

import (
	"context"

	"ezrent/internal/infra"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type HistoryReadQueries interface {
	ListHistoriesByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Histories, error)
	ListHistoriesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Histories, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.HistoryView, error) {
	rows, err := r.queries.ListHistoriesByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer history", err)
	}
	return toHistoryViews(rows), nil
}

func (r *HistoryReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.HistoryView, error) {
	rows, err := r.queries.ListHistoriesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list owner history", err)
	}
	return toHistoryViews(rows), nil
}

func toHistoryViews(rows []sqlc.Histories) []*queries.HistoryView {
	views := make([]*queries.HistoryView, len(rows))
	for i, row := range rows {
		views[i] = &queries.HistoryView{
			ID:           row.ID,
			BookingID:    row.BookingID,
			CustomerID:   row.CustomerID,
			OwnerID:      row.OwnerID,
			ItemID:       row.ItemID,
			ProductTitle: row.ProductTitle,
			Status:       row.Status,
			RentalStart:  pgconv.DateFromPgtype(row.RentalStart),
			RentalEnd:    pgconv.DateFromPgtype(row.RentalEnd),
			PickupDate:   pgconv.DateFromPgtype(row.PickupDate),
			ReturnDate:   pgconv.DateFromPgtype(row.ReturnDate),
			PricePerDay:  row.PricePerDay,
			TotalAmount:  row.TotalAmount,
			CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return views
}
