package readstore

import (
	"context"
	"time"

	"ezrent/internal/infra"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ItemReadQueries interface {
	FindItemByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindItemByIDRow, error)
	ListItemsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsFirstPageParams) ([]sqlc.ListItemsFirstPageRow, error)
	ListItemsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListItemsKeysetParams) ([]sqlc.ListItemsKeysetRow, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	row, err := r.queries.FindItemByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return toItemView(row), nil
}

func (r *ItemReadStore) ListFirstPage(ctx context.Context, filter queries.ItemFilter, limit int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsFirstPage(ctx, r.db, sqlc.ListItemsFirstPageParams{
		Category: textParam(filter.Category),
		OwnerID:  pgconv.UUIDPtrToPgtype(filter.OwnerID),
		Limit:    limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	views := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		views[i] = toItemView(sqlc.FindItemByIDRow(row))
	}
	return views, nil
}

func (r *ItemReadStore) ListKeyset(ctx context.Context, filter queries.ItemFilter, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ItemView, error) {
	rows, err := r.queries.ListItemsKeyset(ctx, r.db, sqlc.ListItemsKeysetParams{
		Category:  textParam(filter.Category),
		OwnerID:   pgconv.UUIDPtrToPgtype(filter.OwnerID),
		CreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		ID:        lastID,
		Limit:     limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	views := make([]*queries.ItemView, len(rows))
	for i, row := range rows {
		views[i] = toItemView(sqlc.FindItemByIDRow(row))
	}
	return views, nil
}

// textParam maps "" to SQL NULL so the filter is skipped.
func textParam(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func toItemView(row sqlc.FindItemByIDRow) *queries.ItemView {
	images := row.ImageUrls
	if images == nil {
		images = []string{}
	}
	return &queries.ItemView{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		OwnerName:   row.OwnerName,
		Title:       row.Title,
		Description: row.Description,
		PricePerDay: row.PricePerDay,
		Category:    row.Category,
		Location:    row.Location,
		Quantity:    int(row.Quantity),
		ImageURLs:   images,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
