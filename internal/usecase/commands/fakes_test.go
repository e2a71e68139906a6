//go:build unit

package commands_test

import (
	"context"
	"sync"
	"time"

	"ezrent/internal/domain/money"
	"ezrent/internal/domain/user"
	"ezrent/internal/usecase/commands"
	"ezrent/internal/usecase/notify"
	"ezrent/internal/usecase/shared"
	"ezrent/tests/common/memstore"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 3, 20, 10, 0, 0, 0, time.UTC)

type recordingMailer struct {
	mu   sync.Mutex
	sent []notify.Email
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg notify.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *recordingMailer) Sent() []notify.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.Email(nil), m.sent...)
}

type stubRenderer struct{}

func (stubRenderer) RenderBooking(data notify.BookingEmail) (string, string, error) {
	return data.Headline, "<p>" + data.Product + "</p>", nil
}

type recordingCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
}

func (c *recordingCache) Invalidate(_ context.Context, itemID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, itemID)
	return nil
}

func (c *recordingCache) Invalidated() []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uuid.UUID(nil), c.invalidated...)
}

type fakeTokens struct {
	err error
}

func (f fakeTokens) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "token-" + role.String() + "-" + userID.String(), nil
}

func (fakeTokens) TokenDuration() time.Duration { return time.Hour }

func seedUser(store *memstore.Store, email string, role user.Role) shared.UserSnapshot {
	u := shared.UserSnapshot{
		ID:        uuid.New(),
		Name:      "Test User",
		Email:     email,
		Role:      role,
		CreatedAt: testNow,
	}
	store.AddUser(u)
	return u
}

func seedItem(store *memstore.Store, ownerID uuid.UUID, quantity int) shared.ItemSnapshot {
	it := shared.ItemSnapshot{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Title:       "Camping tent",
		PricePerDay: money.FromCents(2500),
		Quantity:    quantity,
		CoverImage:  "https://img.test/tent",
	}
	store.AddItem(it)
	return it
}

func actorOf(u shared.UserSnapshot) shared.Actor {
	return shared.Actor{UserID: u.ID, Role: u.Role}
}

func mustUser(store *memstore.Store, res *commands.AuthResult) shared.UserSnapshot {
	u, ok := store.User(res.UserID)
	if !ok {
		panic("user not stored")
	}
	return u
}
