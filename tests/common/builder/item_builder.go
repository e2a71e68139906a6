//go:build unit || e2e

package builder

import (
	"time"

	"ezrent/internal/domain/item"
	"ezrent/internal/domain/money"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	OwnerName   string
	Title       string
	Description string
	PricePerDay int64
	Category    string
	Location    string
	Quantity    int
	ImageURLs   []string
	CreatedAt   time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          uuid.New(),
		OwnerID:     uuid.New(),
		OwnerName:   "Kofi Boateng",
		Title:       "Camping tent",
		Description: "Four person tent, waterproof",
		PricePerDay: 2500,
		Category:    "outdoor",
		Location:    "Accra",
		Quantity:    1,
		ImageURLs:   []string{"https://res.cloudinary.com/demo/image/upload/uploads/tent"},
		CreatedAt:   time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithQuantity(q int) *ItemBuilder {
	b.Quantity = q
	return b
}

func (b *ItemBuilder) WithPrice(cents int64) *ItemBuilder {
	b.PricePerDay = cents
	return b
}

func (b *ItemBuilder) Input() item.Input {
	return item.Input{
		Title:       b.Title,
		Description: b.Description,
		PricePerDay: b.PricePerDay,
		Category:    b.Category,
		Location:    b.Location,
		Quantity:    b.Quantity,
		ImageURLs:   b.ImageURLs,
	}
}

// BuildDomain keeps the builder's ID so tests can refer to it.
func (b *ItemBuilder) BuildDomain() *item.Item {
	return item.ReconstructItem(
		b.ID, b.OwnerID, b.Title, b.Description, money.FromCents(b.PricePerDay),
		b.Category, b.Location, b.Quantity, b.ImageURLs, b.CreatedAt, b.CreatedAt,
	)
}

func (b *ItemBuilder) BuildSnapshot() *shared.ItemSnapshot {
	cover := ""
	if len(b.ImageURLs) > 0 {
		cover = b.ImageURLs[0]
	}
	return &shared.ItemSnapshot{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Title:       b.Title,
		PricePerDay: money.FromCents(b.PricePerDay),
		Quantity:    b.Quantity,
		CoverImage:  cover,
	}
}

func (b *ItemBuilder) BuildInfra() sqlc.FindItemByIDRow {
	return sqlc.FindItemByIDRow{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		OwnerName:   b.OwnerName,
		Title:       b.Title,
		Description: b.Description,
		PricePerDay: b.PricePerDay,
		Category:    b.Category,
		Location:    b.Location,
		Quantity:    int32(b.Quantity), // #nosec G115 -- test data
		ImageUrls:   b.ImageURLs,
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:   pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *ItemBuilder) BuildReadModel() *queries.ItemView {
	return &queries.ItemView{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		OwnerName:   b.OwnerName,
		Title:       b.Title,
		Description: b.Description,
		PricePerDay: b.PricePerDay,
		Category:    b.Category,
		Location:    b.Location,
		Quantity:    b.Quantity,
		ImageURLs:   b.ImageURLs,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.CreatedAt,
	}
}
