package response

import (
	"time"

	"ezrent/internal/pkg/errs"
	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HistoryResponse struct {
	ID           uuid.UUID `json:"id"`
	BookingID    uuid.UUID `json:"bookingId"`
	CustomerID   uuid.UUID `json:"customerId"`
	OwnerID      uuid.UUID `json:"ownerId"`
	ItemID       uuid.UUID `json:"itemId"`
	ProductTitle string    `json:"productTitle"`
	Status       string    `json:"status"`
	RentalStart  time.Time `json:"rentalStart"`
	RentalEnd    time.Time `json:"rentalEnd"`
	PickupDate   time.Time `json:"pickupDate"`
	ReturnDate   time.Time `json:"returnDate"`
	PricePerDay  int64     `json:"pricePerDay"`
	TotalAmount  int64     `json:"totalAmount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromHistoryViews(vs []*queries.HistoryView) ([]HistoryResponse, error) {
	out := make([]HistoryResponse, len(vs))
	for i, v := range vs {
		if err := copier.Copy(&out[i], v); err != nil {
			return nil, errs.Wrap(err, "map history view")
		}
	}
	return out, nil
}
