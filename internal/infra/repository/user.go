package repository

import (
	"context"

	"gym-booking/internal/infra"
	sqlc "gym-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	ConsumeUserAccess(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	AdjustUserAccesses(ctx context.Context, db sqlc.DBTX, arg sqlc.AdjustUserAccessesParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{
		queries: queries,
	}
}

func (r *UserRepository) ConsumeAccess(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	n, err := r.queries.ConsumeUserAccess(ctx, tx, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to consume user access", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("no access left to consume", nil, infra.KindConditionFailed)
	}
	return nil
}

func (r *UserRepository) AdjustAccesses(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, delta int) error {
	n, err := r.queries.AdjustUserAccesses(ctx, tx, sqlc.AdjustUserAccessesParams{
		Delta: int32(delta), // #nosec G115 -- bounded by hourly range length
		ID:    userID,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to adjust user accesses", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
