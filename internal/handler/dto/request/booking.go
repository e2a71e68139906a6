package request

import (
	"time"

	"ezrent/internal/usecase/commands"

	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

type CreateBookingRequest struct {
	ItemID        uuid.UUID `json:"itemId" binding:"required"`
	StartDate     string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate       string    `json:"endDate" binding:"required,datetime=2006-01-02"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,payment_method"`
	PickupDate    *string   `json:"pickupDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ReturnDate    *string   `json:"returnDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// ToCommand assumes binding already validated the date layout.
func (r CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		ItemID:        r.ItemID,
		StartDate:     parseDate(r.StartDate),
		EndDate:       parseDate(r.EndDate),
		PaymentMethod: r.PaymentMethod,
		PickupDate:    parseOptionalDate(r.PickupDate),
		ReturnDate:    parseOptionalDate(r.ReturnDate),
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,booking_status"`
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(DateLayout, s)
	return t
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := parseDate(*s)
	return &t
}
