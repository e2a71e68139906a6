//go:build unit

package readstore

import (
	"context"

	sqlc "ezrent/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

type MockBookingReadQueries struct {
	mock.Mock
}

func (m *MockBookingReadQueries) FindBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindBookingByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindBookingByIDRow), args.Error(1)
}

func (m *MockBookingReadQueries) FindBookingForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Bookings), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsFirstPageParams) ([]sqlc.ListBookingsFirstPageRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListBookingsFirstPageRow), args.Error(1)
}

func (m *MockBookingReadQueries) ListBookingsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsKeysetParams) ([]sqlc.ListBookingsKeysetRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.ListBookingsKeysetRow), args.Error(1)
}

type MockNotificationReadQueries struct {
	mock.Mock
}

func (m *MockNotificationReadQueries) ListNotificationsFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsFirstPageParams) ([]sqlc.Notifications, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Notifications), args.Error(1)
}

func (m *MockNotificationReadQueries) ListNotificationsKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsKeysetParams) ([]sqlc.Notifications, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Notifications), args.Error(1)
}

func (m *MockNotificationReadQueries) ListNotificationsUnreadFirst(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNotificationsUnreadFirstParams) ([]sqlc.Notifications, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).([]sqlc.Notifications), args.Error(1)
}

func (m *MockNotificationReadQueries) CountUnreadNotifications(ctx context.Context, db sqlc.DBTX, recipientID uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, recipientID)
	return args.Get(0).(int64), args.Error(1)
}

type MockHistoryReadQueries struct {
	mock.Mock
}

func (m *MockHistoryReadQueries) ListHistoriesByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.Histories, error) {
	args := m.Called(ctx, db, customerID)
	return args.Get(0).([]sqlc.Histories), args.Error(1)
}

func (m *MockHistoryReadQueries) ListHistoriesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Histories, error) {
	args := m.Called(ctx, db, ownerID)
	return args.Get(0).([]sqlc.Histories), args.Error(1)
}
