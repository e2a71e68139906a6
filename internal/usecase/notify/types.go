package notify

import (
	"context"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/money"
	"ezrent/internal/domain/notification"
	"ezrent/internal/domain/user"

	"github.com/google/uuid"
)

const (
	JobKindEmail = "email"

	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

// Email is the rendered message envelope. It is also the JSON payload of the queued job row.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Mailer interface {
	Send(ctx context.Context, msg Email) error
}

// BookingEmail is everything the booking template prints.
type BookingEmail struct {
	BookingID     string
	RecipientName string
	Headline      string
	Product       string
	Status        string
	PickupDate    time.Time
	ReturnDate    time.Time
	PaymentMethod string
	PricePerDay   money.Money
	Days          int
	Total         money.Money
	Commission    money.Money
	OwnerPayout   money.Money
}

type Renderer interface {
	RenderBooking(data BookingEmail) (subject, html string, err error)
}

// Event is one booking state change. From is empty when the booking was just created.
type Event struct {
	Booking       *booking.Booking
	From          booking.Status
	To            booking.Status
	Recipient     uuid.UUID
	RecipientRole user.Role
	Item          notification.ItemSnapshot
}

// Outbound is what Notify recorded inside a transaction; Deliver acts on it after commit.
// JobID is uuid.Nil when no email was queued.
type Outbound struct {
	NotificationID uuid.UUID
	JobID          uuid.UUID
	Email          Email
}

func (o *Outbound) HasEmail() bool {
	return o.JobID != uuid.Nil
}

func topic(to booking.Status) string {
	return "booking_" + to.String()
}
