//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for command tests. A failing
// transaction leaves no trace, like the Postgres implementation.
package memstore

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"ezrent/internal/domain/booking"
	"ezrent/internal/domain/history"
	"ezrent/internal/domain/item"
	"ezrent/internal/domain/message"
	"ezrent/internal/domain/notification"
	"ezrent/internal/domain/user"
	"ezrent/internal/infra"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
)

// Operation names accepted by Fail.
const (
	OpCreateBooking      = "bookings.create"
	OpAppendHistory      = "histories.append"
	OpCreateNotification = "notifications.create"
	OpCreateJob          = "jobs.create"
	OpUpdateJob          = "jobs.update"
)

type Notification struct {
	*notification.Notification
	Read bool
}

type Job struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	LastError *string
	RunAt     time.Time
}

type state struct {
	users         map[uuid.UUID]shared.UserSnapshot
	items         map[uuid.UUID]shared.ItemSnapshot
	bookings      map[uuid.UUID]shared.BookingSnapshot
	histories     []*history.Entry
	notifications []Notification
	jobs          map[uuid.UUID]Job
	messages      []*message.Message
}

func (s state) clone() state {
	return state{
		users:         maps.Clone(s.users),
		items:         maps.Clone(s.items),
		bookings:      maps.Clone(s.bookings),
		histories:     slices.Clone(s.histories),
		notifications: slices.Clone(s.notifications),
		jobs:          maps.Clone(s.jobs),
		messages:      slices.Clone(s.messages),
	}
}

type Store struct {
	mu    sync.Mutex
	st    state
	fails map[string]error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		st: state{
			users:    map[uuid.UUID]shared.UserSnapshot{},
			items:    map[uuid.UUID]shared.ItemSnapshot{},
			bookings: map[uuid.UUID]shared.BookingSnapshot{},
			jobs:     map[uuid.UUID]Job{},
		},
		fails: map[string]error{},
	}
}

// Fail makes every later call of op return err until cleared with a nil err.
func (s *Store) Fail(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fails, op)
		return
	}
	s.fails[op] = err
}

// Within refuses to start on a done context, like pgxpool.BeginTx.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &tx{store: s, st: &work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return s.WithinReadOnly(ctx, fn)
}

func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{store: s}
}

// ---- seeding and inspection ----

func (s *Store) AddUser(u shared.UserSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.users[u.ID] = u
}

func (s *Store) AddItem(it shared.ItemSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.items[it.ID] = it
}

func (s *Store) AddBooking(b shared.BookingSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.bookings[b.ID] = b
}

func (s *Store) User(id uuid.UUID) (shared.UserSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.st.users[id]
	return u, ok
}

func (s *Store) ItemQuantity(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.items[id].Quantity
}

func (s *Store) Booking(id uuid.UUID) (shared.BookingSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.st.bookings[id]
	return b, ok
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.st.bookings)
}

func (s *Store) Histories() []*history.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.histories)
}

func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.notifications)
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Collect(maps.Values(s.st.jobs))
}

func (s *Store) Messages() []*message.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.messages)
}

// ---- transaction ----

type tx struct {
	store *Store
	st    *state
}

func (t *tx) fail(op string) error {
	return t.store.fails[op]
}

func (t *tx) Users() shared.UserRepository                 { return userRepo{t} }
func (t *tx) Items() shared.ItemRepository                 { return itemRepo{t} }
func (t *tx) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *tx) Histories() shared.HistoryRepository          { return historyRepo{t} }
func (t *tx) Notifications() shared.NotificationRepository { return notificationRepo{t} }
func (t *tx) Jobs() shared.NotificationJobRepository       { return jobRepo{t} }
func (t *tx) Messages() shared.MessageRepository           { return messageRepo{t} }
func (t *tx) Reads() shared.CommandReads                   { return reads{st: t.st} }
func (t *tx) DB() sqlc.DBTX                                { return nil }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type reads struct{ st *state }

func (r reads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return &u, nil
}

func (r reads) UserByEmail(_ context.Context, email string) (*shared.UserSnapshot, error) {
	for _, u := range r.st.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, notFound("user")
}

func (r reads) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	it, ok := r.st.items[id]
	if !ok {
		return nil, notFound("item")
	}
	return &it, nil
}

func (r reads) BookingForUpdate(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return &b, nil
}

type lockedReads struct{ store *Store }

func (r lockedReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reads{st: &r.store.st}.UserByID(ctx, id)
}

func (r lockedReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reads{st: &r.store.st}.UserByEmail(ctx, email)
}

func (r lockedReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reads{st: &r.store.st}.ItemByID(ctx, id)
}

func (r lockedReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return reads{st: &r.store.st}.BookingForUpdate(ctx, id)
}

type userRepo struct{ t *tx }

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	for _, existing := range r.t.st.users {
		if existing.Email == u.Email().Value() {
			return infra.WrapRepoErr("email already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.t.st.users[u.ID()] = shared.UserSnapshot{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		Role:         u.Role(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
	return nil
}

func (r userRepo) UpdatePassword(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	snap, ok := r.t.st.users[u.ID()]
	if !ok {
		return notFound("user")
	}
	snap.PasswordHash = u.PasswordHash()
	r.t.st.users[u.ID()] = snap
	return nil
}

type itemRepo struct{ t *tx }

func (r itemRepo) Create(_ context.Context, _ sqlc.DBTX, it *item.Item) error {
	r.t.st.items[it.ID()] = shared.ItemSnapshot{
		ID:          it.ID(),
		OwnerID:     it.OwnerID(),
		Title:       it.Title(),
		PricePerDay: it.PricePerDay(),
		Quantity:    it.Quantity(),
		CoverImage:  it.CoverImage(),
	}
	return nil
}

func (r itemRepo) DecrementQuantity(_ context.Context, _ sqlc.DBTX, itemID uuid.UUID) (bool, error) {
	it, ok := r.t.st.items[itemID]
	if !ok || it.Quantity <= 0 {
		return false, nil
	}
	it.Quantity--
	r.t.st.items[itemID] = it
	return true, nil
}

func (r itemRepo) IncrementQuantity(_ context.Context, _ sqlc.DBTX, itemID uuid.UUID) error {
	it, ok := r.t.st.items[itemID]
	if !ok {
		return notFound("item")
	}
	it.Quantity++
	r.t.st.items[itemID] = it
	return nil
}

type bookingRepo struct{ t *tx }

func (r bookingRepo) Create(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
	if err := r.t.fail(OpCreateBooking); err != nil {
		return err
	}
	r.t.st.bookings[b.ID()] = shared.BookingSnapshot{
		ID:            b.ID(),
		ItemID:        b.ItemID(),
		CustomerID:    b.CustomerID(),
		OwnerID:       b.OwnerID(),
		Status:        b.Status(),
		PricePerDay:   b.PricePerDay(),
		RentalStart:   b.Period().Start(),
		RentalEnd:     b.Period().End(),
		PaymentMethod: b.PaymentMethod(),
		PickupDate:    b.PickupDate(),
		ReturnDate:    b.ReturnDate(),
		CreatedAt:     b.CreatedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
	return nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, bookingID uuid.UUID, from, to booking.Status, now time.Time) (bool, error) {
	b, ok := r.t.st.bookings[bookingID]
	if !ok || b.Status != from {
		return false, nil
	}
	b.Status = to
	b.UpdatedAt = now
	r.t.st.bookings[bookingID] = b
	return true, nil
}

type historyRepo struct{ t *tx }

func (r historyRepo) Append(_ context.Context, _ sqlc.DBTX, e *history.Entry) error {
	if err := r.t.fail(OpAppendHistory); err != nil {
		return err
	}
	r.t.st.histories = append(r.t.st.histories, e)
	return nil
}

type notificationRepo struct{ t *tx }

func (r notificationRepo) Create(_ context.Context, _ sqlc.DBTX, n *notification.Notification) error {
	if err := r.t.fail(OpCreateNotification); err != nil {
		return err
	}
	r.t.st.notifications = append(r.t.st.notifications, Notification{Notification: n, Read: n.IsRead()})
	return nil
}

func (r notificationRepo) MarkRead(_ context.Context, _ sqlc.DBTX, id, recipientID uuid.UUID) (bool, error) {
	for i, n := range r.t.st.notifications {
		if n.ID() == id && n.RecipientID() == recipientID {
			r.t.st.notifications[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

type jobRepo struct{ t *tx }

func (r jobRepo) CreateJob(_ context.Context, _ sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	if err := r.t.fail(OpCreateJob); err != nil {
		return uuid.Nil, err
	}
	id := uuid.New()
	r.t.st.jobs[id] = Job{ID: id, Kind: kind, Topic: topic, Payload: payload, Status: "queued", RunAt: runAt}
	return id, nil
}

func (r jobRepo) UpdateJobStatus(_ context.Context, _ sqlc.DBTX, jobID uuid.UUID, status string, lastError *string) error {
	if err := r.t.fail(OpUpdateJob); err != nil {
		return err
	}
	j, ok := r.t.st.jobs[jobID]
	if !ok {
		return notFound("job")
	}
	j.Status = status
	j.LastError = lastError
	r.t.st.jobs[jobID] = j
	return nil
}

type messageRepo struct{ t *tx }

func (r messageRepo) Create(_ context.Context, _ sqlc.DBTX, m *message.Message) error {
	if id := m.BookingID(); id != nil {
		if _, ok := r.t.st.bookings[*id]; !ok {
			return infra.WrapRepoErr("message booking missing", nil, infra.KindForeignKeyViolated)
		}
	}
	r.t.st.messages = append(r.t.st.messages, m)
	return nil
}
