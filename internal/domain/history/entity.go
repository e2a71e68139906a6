package history

import (
	"errors"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/money"

	"github.com/google/uuid"
)

var ErrBookingNotClosed = errors.New("history can only be recorded for a closed booking")

// Snapshot freezes what the booking looked like when it closed.
type Snapshot struct {
	ProductTitle string
	Status       booking.Status
	RentalStart  time.Time
	RentalEnd    time.Time
	PickupDate   time.Time
	ReturnDate   time.Time
	PricePerDay  money.Money
	TotalAmount  money.Money
}

// Entry is append-only; there are no setters.
type Entry struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	customerID uuid.UUID
	ownerID    uuid.UUID
	itemID     uuid.UUID
	snapshot   Snapshot
	createdAt  time.Time
}

func NewFromBooking(b *booking.Booking, productTitle string, now time.Time) (*Entry, error) {
	if !b.Status().IsTerminal() {
		return nil, ErrBookingNotClosed
	}
	return &Entry{
		id:         uuid.New(),
		bookingID:  b.ID(),
		customerID: b.CustomerID(),
		ownerID:    b.OwnerID(),
		itemID:     b.ItemID(),
		snapshot: Snapshot{
			ProductTitle: productTitle,
			Status:       b.Status(),
			RentalStart:  b.Period().Start(),
			RentalEnd:    b.Period().End(),
			PickupDate:   b.PickupDate(),
			ReturnDate:   b.ReturnDate(),
			PricePerDay:  b.PricePerDay(),
			TotalAmount:  b.TotalAmount(),
		},
		createdAt: now,
	}, nil
}

func (e *Entry) ID() uuid.UUID         { return e.id }
func (e *Entry) BookingID() uuid.UUID  { return e.bookingID }
func (e *Entry) CustomerID() uuid.UUID { return e.customerID }
func (e *Entry) OwnerID() uuid.UUID    { return e.ownerID }
func (e *Entry) ItemID() uuid.UUID     { return e.itemID }
func (e *Entry) Snapshot() Snapshot    { return e.snapshot }
func (e *Entry) CreatedAt() time.Time  { return e.createdAt }
