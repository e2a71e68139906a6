package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"ezrent/internal/domain/money"
	"ezrent/internal/domain/user"
	"ezrent/internal/infra/readstore"
	"ezrent/internal/infra/repository"
	sqlc "ezrent/internal/infra/sqlc/generated"
	"ezrent/internal/pkg/errs"
	"ezrent/internal/pkg/metrics"
	"ezrent/internal/usecase/queries"
	"ezrent/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool    *pgxpool.Pool
	q       *sqlc.Queries
	metrics *metrics.Metrics
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, m *metrics.Metrics) shared.UnitOfWork {
	return &PostgresUoW{
		pool:    pool,
		q:       q,
		metrics: m,
	}
}

// Within runs fn at READ COMMITTED. Booking writes rely on row locks
// (BookingForUpdate) and conditional updates rather than a stricter isolation level.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Each attempt rolls back explicitly; a deferred rollback would pile up across retries.
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)
		code := retryCode(err)
		u.metrics.IncTxRetry(code)

		slog.Warn("retrying booking transaction",
			"attempt", attempt+1,
			"pg_code", code,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

// isRetryableError covers the two failures concurrent stock decrements can hit:
// serialization conflicts and lock-order deadlocks between bookings of one item.
func isRetryableError(err error) bool {
	switch retryCode(err) {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

func retryCode(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}
	return pgErr.Code
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	userRepo         shared.UserRepository
	itemRepo         shared.ItemRepository
	bookingRepo      shared.BookingRepository
	historyRepo      shared.HistoryRepository
	notificationRepo shared.NotificationRepository
	jobRepo          shared.NotificationJobRepository
	messageRepo      shared.MessageRepository
	commandReads     shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Items() shared.ItemRepository {
	if t.itemRepo == nil {
		t.itemRepo = repository.NewItemRepository(t.uow.q)
	}
	return t.itemRepo
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}

func (t *pgTx) Histories() shared.HistoryRepository {
	if t.historyRepo == nil {
		t.historyRepo = repository.NewHistoryRepository(t.uow.q)
	}
	return t.historyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.uow.q)
	}
	return t.notificationRepo
}

func (t *pgTx) Jobs() shared.NotificationJobRepository {
	if t.jobRepo == nil {
		t.jobRepo = repository.NewNotificationJobRepository(t.uow.q)
	}
	return t.jobRepo
}

func (t *pgTx) Messages() shared.MessageRepository {
	if t.messageRepo == nil {
		t.messageRepo = repository.NewMessageRepository(t.uow.q)
	}
	return t.messageRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	userStore    *readstore.UserReadStore
	itemStore    *readstore.ItemReadStore
	bookingStore *readstore.BookingReadStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.uow.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	view, hash, err := r.users().FindCredentials(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserSnapshot(view, hash), nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	view, hash, err := r.users().FindCredentialsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return toUserSnapshot(view, hash), nil
}

func toUserSnapshot(view *queries.UserView, hash string) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           view.ID,
		Name:         view.Name,
		Email:        view.Email,
		Role:         user.Role(view.Role),
		PasswordHash: hash,
		CreatedAt:    view.CreatedAt,
	}
}

func (r *commandReads) ItemByID(ctx context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	if r.itemStore == nil {
		r.itemStore = readstore.NewItemReadStore(r.uow.q, r.dbtx)
	}

	it, err := r.itemStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ItemSnapshot{
		ID:          it.ID,
		OwnerID:     it.OwnerID,
		Title:       it.Title,
		PricePerDay: money.FromCents(it.PricePerDay),
		Quantity:    it.Quantity,
	}
	if len(it.ImageURLs) > 0 {
		snapshot.CoverImage = it.ImageURLs[0]
	}
	return snapshot, nil
}

func (r *commandReads) BookingForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if r.bookingStore == nil {
		r.bookingStore = readstore.NewBookingReadStore(r.uow.q, r.dbtx)
	}
	return r.bookingStore.FindForUpdate(ctx, id)
}
