package converter

import (
	"fmt"
	"math"

	"ezrent/internal/domain/item"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
)

func ItemToCreateParams(it *item.Item) sqlc.CreateItemParams {
	qty := it.Quantity()
	if qty > math.MaxInt32 {
		panic(fmt.Sprintf("item quantity out of int32 range: %d", qty))
	}

	images := it.ImageURLs()
	if images == nil {
		images = []string{}
	}

	return sqlc.CreateItemParams{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Title:       it.Title(),
		Description: it.Description(),
		PricePerDay: it.PricePerDay().Cents(),
		Category:    it.Category(),
		Location:    it.Location(),
		Quantity:    int32(qty), // #nosec G115 -- bounded above
		ImageUrls:   images,
		CreatedAt:   pgconv.TimeToPgtype(it.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(it.UpdatedAt()),
	}
}
