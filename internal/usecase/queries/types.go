package queries

import (
	"time"

	"ezrent/internal/domain/notification"

	"github.com/google/uuid"
)

// UserView is the public profile of an account. The password hash never leaves the write side.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemView is also the cached representation, hence the json tags.
type ItemView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PricePerDay int64     `json:"price_per_day"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Quantity    int       `json:"quantity"`
	ImageURLs   []string  `json:"image_urls"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BookingView struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	ItemTitle     string
	ItemImage     string
	CustomerID    uuid.UUID
	CustomerName  string
	OwnerID       uuid.UUID
	OwnerName     string
	Status        string
	PricePerDay   int64
	RentalStart   time.Time
	RentalEnd     time.Time
	Days          int
	TotalAmount   int64
	PaymentMethod string
	PickupDate    time.Time
	ReturnDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	// NextStatuses is filled per caller: the statuses the caller may move this booking to.
	NextStatuses []string
}

type HistoryView struct {
	ID           uuid.UUID
	BookingID    uuid.UUID
	CustomerID   uuid.UUID
	OwnerID      uuid.UUID
	ItemID       uuid.UUID
	ProductTitle string
	Status       string
	RentalStart  time.Time
	RentalEnd    time.Time
	PickupDate   time.Time
	ReturnDate   time.Time
	PricePerDay  int64
	TotalAmount  int64
	CreatedAt    time.Time
}

type NotificationView struct {
	ID            uuid.UUID
	RecipientID   uuid.UUID
	RecipientRole string
	BookingID     uuid.UUID
	Payload       notification.Payload
	Read          bool
	CreatedAt     time.Time
}

type MessageView struct {
	ID          uuid.UUID
	SenderID    uuid.UUID
	RecipientID uuid.UUID
	BookingID   *uuid.UUID
	Body        string
	CreatedAt   time.Time
}
