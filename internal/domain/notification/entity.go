package notification

import (
	"errors"
	"fmt"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/user"

	"github.com/google/uuid"
)

var ErrNotRecipient = errors.New("notification belongs to another user")

// Payload is the display snapshot shown in the client's notification feed.
type Payload struct {
	Product     string    `json:"product"`
	Status      string    `json:"status"`
	FromStatus  string    `json:"fromStatus,omitempty"`
	PickUpDate  time.Time `json:"pickUpDate"`
	ReturnDate  time.Time `json:"returnDate"`
	ItemImage   string    `json:"itemImage,omitempty"`
	TotalAmount int64     `json:"totalAmount"`
	Message     string    `json:"message"`
}

type Notification struct {
	id            uuid.UUID
	recipientID   uuid.UUID
	recipientRole user.Role
	bookingID     uuid.UUID
	payload       Payload
	read          bool
	createdAt     time.Time
}

// ItemSnapshot is what the feed shows about the rented item.
type ItemSnapshot struct {
	Title    string
	ImageURL string
}

// NewForTransition addresses a notification about b entering `to` to the given recipient.
// from is empty for a newly created booking.
func NewForTransition(
	b *booking.Booking,
	from, to booking.Status,
	recipientID uuid.UUID,
	recipientRole user.Role,
	item ItemSnapshot,
	now time.Time,
) *Notification {
	return &Notification{
		id:            uuid.New(),
		recipientID:   recipientID,
		recipientRole: recipientRole,
		bookingID:     b.ID(),
		payload: Payload{
			Product:     item.Title,
			Status:      to.String(),
			FromStatus:  from.String(),
			PickUpDate:  b.PickupDate(),
			ReturnDate:  b.ReturnDate(),
			ItemImage:   item.ImageURL,
			TotalAmount: b.TotalAmount().Cents(),
			Message:     Headline(to, item.Title),
		},
		createdAt: now,
	}
}

func Reconstruct(id, recipientID uuid.UUID, role user.Role, bookingID uuid.UUID, payload Payload, read bool, createdAt time.Time) *Notification {
	return &Notification{
		id:            id,
		recipientID:   recipientID,
		recipientRole: role,
		bookingID:     bookingID,
		payload:       payload,
		read:          read,
		createdAt:     createdAt,
	}
}

// ShouldEmail lists the events important enough to also reach the recipient's inbox.
func ShouldEmail(to booking.Status) bool {
	switch to {
	case booking.StatusPending, booking.StatusPaid, booking.StatusDeclined:
		return true
	default:
		return false
	}
}

func Headline(to booking.Status, product string) string {
	switch to {
	case booking.StatusPending:
		return fmt.Sprintf("New booking request for %s", product)
	case booking.StatusApproved:
		return fmt.Sprintf("Your booking for %s was approved", product)
	case booking.StatusDeclined:
		return fmt.Sprintf("Your booking for %s was declined", product)
	case booking.StatusPaid:
		return fmt.Sprintf("Payment received for %s", product)
	case booking.StatusCompleted:
		return fmt.Sprintf("Rental of %s is complete", product)
	case booking.StatusCancelled:
		return fmt.Sprintf("Booking for %s was cancelled", product)
	default:
		return fmt.Sprintf("Booking for %s was updated", product)
	}
}

func (n *Notification) MarkRead(userID uuid.UUID) error {
	if userID != n.recipientID {
		return ErrNotRecipient
	}
	n.read = true
	return nil
}

func (n *Notification) ID() uuid.UUID            { return n.id }
func (n *Notification) RecipientID() uuid.UUID   { return n.recipientID }
func (n *Notification) RecipientRole() user.Role { return n.recipientRole }
func (n *Notification) BookingID() uuid.UUID     { return n.bookingID }
func (n *Notification) Payload() Payload         { return n.payload }
func (n *Notification) IsRead() bool             { return n.read }
func (n *Notification) CreatedAt() time.Time     { return n.createdAt }
