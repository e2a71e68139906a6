package response

import (
	"time"

	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PricePerDay int64     `json:"pricePerDay"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Quantity    int       `json:"quantity"`
	ImageURLs   []string  `json:"imageUrls"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	images := v.ImageURLs
	if images == nil {
		images = []string{}
	}
	return &ItemResponse{
		ID:          v.ID,
		OwnerID:     v.OwnerID,
		OwnerName:   v.OwnerName,
		Title:       v.Title,
		Description: v.Description,
		PricePerDay: v.PricePerDay,
		Category:    v.Category,
		Location:    v.Location,
		Quantity:    v.Quantity,
		ImageURLs:   images,
		CreatedAt:   v.CreatedAt,
	}
}

func FromItemViews(vs []*queries.ItemView) []*ItemResponse {
	out := make([]*ItemResponse, len(vs))
	for i, v := range vs {
		out[i] = FromItemView(v)
	}
	return out
}
