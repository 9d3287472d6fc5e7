//go:build unit

package repository_test

import (
	"context"
	"testing"

	"gym-booking/internal/infra"
	"gym-booking/internal/infra/repository"
	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserRepository_ConsumeAccess(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		rows       int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", rows: 1},
		{name: "no accesses left", rows: 0, expectKind: infra.KindConditionFailed},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			db := &mockDBTX{}
			q.On("ConsumeUserAccess", mock.Anything, db, userID).Return(tt.rows, tt.mockError)

			err := repository.NewUserRepository(q).ConsumeAccess(context.Background(), db, userID)

			if tt.expectKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] got %v", tt.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_AdjustAccesses(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		delta      int
		rows       int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "refund", delta: 1, rows: 1},
		{name: "bulk consume", delta: -3, rows: 1},
		{name: "unknown user", delta: 1, rows: 0, expectKind: infra.KindNotFound},
		{name: "database error", delta: 1, mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockWriteQueries)
			db := &mockDBTX{}
			q.On("AdjustUserAccesses", mock.Anything, db, sqlc.AdjustUserAccessesParams{
				Delta: int32(tt.delta),
				ID:    userID,
			}).Return(tt.rows, tt.mockError)

			err := repository.NewUserRepository(q).AdjustAccesses(context.Background(), db, userID, tt.delta)

			if tt.expectKind != "" {
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] got %v", tt.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}
