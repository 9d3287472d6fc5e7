package queries

import (
	"context"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/infra"
	"gym-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	return findUser(ctx, q.readStore, userID)
}

func findUser(ctx context.Context, store UserReadStore, userID uuid.UUID) (*UserView, error) {
	v, err := store.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return v, nil
}

// Domain rebuilds the eligibility-relevant part of the user aggregate.
func (v *UserView) Domain() *user.User {
	return user.ReconstructUser(
		v.ID,
		user.ReconstructEmail(v.Email),
		"",
		v.FirstName,
		v.LastName,
		user.Role(v.Role),
		user.SubType(v.SubType),
		int(v.RemainingAccesses),
		v.ExpiresAt,
		time.Time{},
		time.Time{},
	)
}
