package shared

import (
	"context"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/history"
	"ezrent/internal/domain/item"
	"ezrent/internal/domain/message"
	"ezrent/internal/domain/notification"
	"ezrent/internal/domain/user"
	sqlc "ezrent/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Histories() HistoryRepository
	Notifications() NotificationRepository
	Jobs() NotificationJobRepository
	Messages() MessageRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	// BookingForUpdate locks the booking row until the surrounding transaction ends.
	BookingForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdatePassword(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}

type ItemRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, it *item.Item) error
	// DecrementQuantity takes one unit if any is left. ok is false when the item is out of stock.
	DecrementQuantity(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) (ok bool, err error)
	IncrementQuantity(ctx context.Context, tx sqlc.DBTX, itemID uuid.UUID) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	// UpdateStatus is a compare-and-set on the current status. ok is false if the row moved on.
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, bookingID uuid.UUID, from, to booking.Status, now time.Time) (ok bool, err error)
}

type HistoryRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, e *history.Entry) error
}

type NotificationRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, n *notification.Notification) error
	// MarkRead flips the read flag for the recipient's own notification. ok is false when no row matched.
	MarkRead(ctx context.Context, tx sqlc.DBTX, id, recipientID uuid.UUID) (ok bool, err error)
}

type NotificationJobRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	UpdateJobStatus(ctx context.Context, tx sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error
}

type MessageRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *message.Message) error
}
