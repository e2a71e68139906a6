package shared

import (
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/money"
	"ezrent/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller, built by middleware from validated token claims.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// Minimal snapshots for command read operations

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         user.Role
	PasswordHash string
	CreatedAt    time.Time
}

type ItemSnapshot struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	PricePerDay money.Money
	Quantity    int
	CoverImage  string
}

type BookingSnapshot struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	CustomerID    uuid.UUID
	OwnerID       uuid.UUID
	Status        booking.Status
	PricePerDay   money.Money
	RentalStart   time.Time
	RentalEnd     time.Time
	PaymentMethod booking.PaymentMethod
	PickupDate    time.Time
	ReturnDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ToDomain rebuilds the aggregate from a locked row.
func (s *BookingSnapshot) ToDomain() (*booking.Booking, error) {
	period, err := booking.NewRentalPeriod(s.RentalStart, s.RentalEnd)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		s.ID, s.ItemID, s.CustomerID, s.OwnerID,
		s.Status, s.PricePerDay, period, s.PaymentMethod,
		s.PickupDate, s.ReturnDate, s.CreatedAt, s.UpdatedAt,
	), nil
}
