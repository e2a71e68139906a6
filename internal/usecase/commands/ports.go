package commands

import (
	"context"
	"io"
	"time"

	"ezrent/internal/domain/user"
	"ezrent/internal/usecase/notify"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hashed, plain string) error
}

// Notifier is the transactional half (Notify) and the post-commit half (Deliver) of the
// notification dispatcher.
type Notifier interface {
	Notify(ctx context.Context, tx shared.Tx, ev notify.Event) (*notify.Outbound, error)
	Deliver(out *notify.Outbound)
}

type ItemCacheInvalidator interface {
	Invalidate(ctx context.Context, itemID uuid.UUID) error
}

// StoredFile is what the image host reports back for one object.
type StoredFile struct {
	URL      string
	PublicID string
	Bytes    int64
}

// FileStore puts objects under its configured folder; Delete takes the full public id
// (folder/filename).
type FileStore interface {
	Put(ctx context.Context, filename string, content io.Reader) (*StoredFile, error)
	Delete(ctx context.Context, publicID string) error
}
