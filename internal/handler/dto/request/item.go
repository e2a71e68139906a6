package request

import "ezrent/internal/usecase/commands"

type CreateItemRequest struct {
	Title       string   `json:"title" binding:"required,max=120"`
	Description string   `json:"description" binding:"max=2000"`
	PricePerDay int64    `json:"pricePerDay" binding:"required,gt=0,lte=100000000"`
	Category    string   `json:"category" binding:"required,max=50"`
	Location    string   `json:"location" binding:"required,max=120"`
	Quantity    int      `json:"quantity" binding:"gte=0"`
	ImageURLs   []string `json:"imageUrls" binding:"max=5,dive,url"`
}

func (r CreateItemRequest) ToCommand() commands.CreateItemRequest {
	return commands.CreateItemRequest{
		Title:       r.Title,
		Description: r.Description,
		PricePerDay: r.PricePerDay,
		Category:    r.Category,
		Location:    r.Location,
		Quantity:    r.Quantity,
		ImageURLs:   r.ImageURLs,
	}
}
