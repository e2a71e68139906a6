package response

import (
	"time"

	"ezrent/internal/usecase/queries"

	"github.com/google/uuid"
)

// Date serializes as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format("2006-01-02") + `"`), nil
}

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	ItemID        uuid.UUID `json:"itemId"`
	ItemTitle     string    `json:"itemTitle"`
	ItemImage     string    `json:"itemImage,omitempty"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	OwnerID       uuid.UUID `json:"ownerId"`
	OwnerName     string    `json:"ownerName"`
	Status        string    `json:"status"`
	PricePerDay   int64     `json:"pricePerDay"`
	StartDate     Date      `json:"startDate"`
	EndDate       Date      `json:"endDate"`
	Days          int       `json:"days"`
	TotalAmount   int64     `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	PickupDate    Date      `json:"pickupDate"`
	ReturnDate    Date      `json:"returnDate"`
	NextStatuses  []string  `json:"nextStatuses"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type StatusChangeResponse struct {
	ID   uuid.UUID `json:"id"`
	From string    `json:"from"`
	To   string    `json:"to"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	next := v.NextStatuses
	if next == nil {
		next = []string{}
	}
	return &BookingResponse{
		ID:            v.ID,
		ItemID:        v.ItemID,
		ItemTitle:     v.ItemTitle,
		ItemImage:     v.ItemImage,
		CustomerID:    v.CustomerID,
		CustomerName:  v.CustomerName,
		OwnerID:       v.OwnerID,
		OwnerName:     v.OwnerName,
		Status:        v.Status,
		PricePerDay:   v.PricePerDay,
		StartDate:     Date(v.RentalStart),
		EndDate:       Date(v.RentalEnd),
		Days:          v.Days,
		TotalAmount:   v.TotalAmount,
		PaymentMethod: v.PaymentMethod,
		PickupDate:    Date(v.PickupDate),
		ReturnDate:    Date(v.ReturnDate),
		NextStatuses:  next,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromBookingViews(vs []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(vs))
	for i, v := range vs {
		out[i] = FromBookingView(v)
	}
	return out
}
