//go:build unit || e2e

package builder

import (
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/money"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/handler/dto/request"
	"ezrent/internal/pkg/pgconv"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	CustomerID    uuid.UUID
	OwnerID       uuid.UUID
	Status        booking.Status
	PricePerDay   int64
	RentalStart   time.Time
	RentalEnd     time.Time
	PaymentMethod booking.PaymentMethod
	CreatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		ItemID:        uuid.New(),
		CustomerID:    uuid.New(),
		OwnerID:       uuid.New(),
		Status:        booking.StatusPending,
		PricePerDay:   2500,
		RentalStart:   time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		RentalEnd:     time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
		PaymentMethod: booking.PaymentCard,
		CreatedAt:     time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithParties(customerID, ownerID uuid.UUID) *BookingBuilder {
	b.CustomerID = customerID
	b.OwnerID = ownerID
	return b
}

func (b *BookingBuilder) ForItem(it *ItemBuilder) *BookingBuilder {
	b.ItemID = it.ID
	b.OwnerID = it.OwnerID
	b.PricePerDay = it.PricePerDay
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	period, err := booking.NewRentalPeriod(b.RentalStart, b.RentalEnd)
	if err != nil {
		panic(err)
	}
	return booking.ReconstructBooking(
		b.ID, b.ItemID, b.CustomerID, b.OwnerID, b.Status, money.FromCents(b.PricePerDay),
		period, b.PaymentMethod, b.RentalStart, b.RentalEnd, b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:            b.ID,
		ItemID:        b.ItemID,
		CustomerID:    b.CustomerID,
		OwnerID:       b.OwnerID,
		Status:        b.Status,
		PricePerDay:   money.FromCents(b.PricePerDay),
		RentalStart:   b.RentalStart,
		RentalEnd:     b.RentalEnd,
		PaymentMethod: b.PaymentMethod,
		PickupDate:    b.RentalStart,
		ReturnDate:    b.RentalEnd,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:            b.ID,
		ItemID:        b.ItemID,
		CustomerID:    b.CustomerID,
		OwnerID:       b.OwnerID,
		Status:        b.Status.String(),
		PricePerDay:   b.PricePerDay,
		RentalStart:   pgconv.DateToPgtype(b.RentalStart),
		RentalEnd:     pgconv.DateToPgtype(b.RentalEnd),
		PaymentMethod: b.PaymentMethod.String(),
		PickupDate:    pgconv.DateToPgtype(b.RentalStart),
		ReturnDate:    pgconv.DateToPgtype(b.RentalEnd),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:     pgconv.TimeToPgtype(b.CreatedAt),
	}
}

func (b *BookingBuilder) BuildViewRow(itemTitle, customerName, ownerName string) sqlc.FindBookingByIDRow {
	row := b.BuildInfra()
	return sqlc.FindBookingByIDRow{
		ID:            row.ID,
		ItemID:        row.ItemID,
		ItemTitle:     itemTitle,
		ItemImageUrls: []string{},
		CustomerID:    row.CustomerID,
		CustomerName:  customerName,
		OwnerID:       row.OwnerID,
		OwnerName:     ownerName,
		Status:        row.Status,
		PricePerDay:   row.PricePerDay,
		RentalStart:   row.RentalStart,
		RentalEnd:     row.RentalEnd,
		PaymentMethod: row.PaymentMethod,
		PickupDate:    row.PickupDate,
		ReturnDate:    row.ReturnDate,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	days := int(b.RentalEnd.Sub(b.RentalStart).Hours()/24) + 1
	return &queries.BookingView{
		ID:            b.ID,
		ItemID:        b.ItemID,
		ItemTitle:     "Camping tent",
		CustomerID:    b.CustomerID,
		CustomerName:  "Ama Mensah",
		OwnerID:       b.OwnerID,
		OwnerName:     "Kofi Boateng",
		Status:        b.Status.String(),
		PricePerDay:   b.PricePerDay,
		RentalStart:   b.RentalStart,
		RentalEnd:     b.RentalEnd,
		Days:          days,
		TotalAmount:   b.PricePerDay * int64(days),
		PaymentMethod: b.PaymentMethod.String(),
		PickupDate:    b.RentalStart,
		ReturnDate:    b.RentalEnd,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
		NextStatuses:  []string{},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		ItemID:        b.ItemID,
		StartDate:     b.RentalStart.Format(request.DateLayout),
		EndDate:       b.RentalEnd.Format(request.DateLayout),
		PaymentMethod: b.PaymentMethod.String(),
	}
}
