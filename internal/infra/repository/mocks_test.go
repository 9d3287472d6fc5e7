//go:build unit

package repository_test

import (
	"context"

	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/mock"
)

type MockWriteQueries struct {
	mock.Mock
}

func (m *MockWriteQueries) ConsumeUserAccess(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) AdjustUserAccesses(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustUserAccessesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) UpsertSlotIncrement(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSlotIncrementParams) (sqlc.Slots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockWriteQueries) DecrementSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementSlotParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) SetSlotDisabled(ctx context.Context, db sqlc.DBTX, arg sqlc.SetSlotDisabledParams) (sqlc.Slots, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Slots), args.Error(1)
}

func (m *MockWriteQueries) DeleteDisabledSlot(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, startsAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) DeleteSlotsBefore(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, startsAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWriteQueries) CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) (uuid.UUID, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockWriteQueries) DeleteUserBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteUserBookingParams) (pgtype.Timestamptz, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(pgtype.Timestamptz), args.Error(1)
}

func (m *MockWriteQueries) DeleteBooking(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.DeleteBookingRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.DeleteBookingRow), args.Error(1)
}

func (m *MockWriteQueries) DeleteMemberBookingsAt(ctx context.Context, db sqlc.DBTX, startsAt pgtype.Timestamptz) ([]sqlc.DeleteMemberBookingsAtRow, error) {
	args := m.Called(ctx, db, startsAt)
	return args.Get(0).([]sqlc.DeleteMemberBookingsAtRow), args.Error(1)
}

func (m *MockWriteQueries) CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) (sqlc.Events, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Events), args.Error(1)
}

func (m *MockWriteQueries) DeleteEventsBefore(ctx context.Context, db sqlc.DBTX, occurredAt pgtype.Timestamptz) (int64, error) {
	args := m.Called(ctx, db, occurredAt)
	return args.Get(0).(int64), args.Error(1)
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
