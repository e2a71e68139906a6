package converter

import (
	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/history"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	period := b.Period()
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		ItemID:        b.ItemID(),
		CustomerID:    b.CustomerID(),
		OwnerID:       b.OwnerID(),
		Status:        b.Status().String(),
		PricePerDay:   b.PricePerDay().Cents(),
		RentalStart:   pgconv.DateToPgtype(period.Start()),
		RentalEnd:     pgconv.DateToPgtype(period.End()),
		PaymentMethod: b.PaymentMethod().String(),
		PickupDate:    pgconv.DateToPgtype(b.PickupDate()),
		ReturnDate:    pgconv.DateToPgtype(b.ReturnDate()),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func HistoryToCreateParams(e *history.Entry) sqlc.CreateHistoryParams {
	snap := e.Snapshot()
	return sqlc.CreateHistoryParams{
		ID:           e.ID(),
		BookingID:    e.BookingID(),
		CustomerID:   e.CustomerID(),
		OwnerID:      e.OwnerID(),
		ItemID:       e.ItemID(),
		ProductTitle: snap.ProductTitle,
		Status:       snap.Status.String(),
		RentalStart:  pgconv.DateToPgtype(snap.RentalStart),
		RentalEnd:    pgconv.DateToPgtype(snap.RentalEnd),
		PickupDate:   pgconv.DateToPgtype(snap.PickupDate),
		ReturnDate:   pgconv.DateToPgtype(snap.ReturnDate),
		PricePerDay:  snap.PricePerDay.Cents(),
		TotalAmount:  snap.TotalAmount.Cents(),
		CreatedAt:    pgconv.TimeToPgtype(e.CreatedAt()),
	}
}
