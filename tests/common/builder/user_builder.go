//go:build unit || e2e

package builder

import (
	"time"

	"gym-booking/internal/domain/user"
	sqlc "gym-booking/internal/infra/sqlc/generated"
	"gym-booking/internal/usecase/queries"
	"gym-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	Role              string
	SubType           string
	RemainingAccesses int
	ExpiresAt         time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:                uuid.New(),
		Email:             "test@example.com",
		PasswordHash:      "hashed_password",
		FirstName:         "Mario",
		LastName:          "Rossi",
		Role:              "USER",
		SubType:           "SHARED",
		RemainingAccesses: 10,
		ExpiresAt:         time.Now().AddDate(0, 3, 0),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	subType, err := user.NewSubType(u.SubType)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, u.FirstName, u.LastName, role, subType, u.RemainingAccesses, u.ExpiresAt), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:                u.ID,
		Email:             u.Email,
		PasswordHash:      u.PasswordHash,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Role:              u.Role,
		SubType:           u.SubType,
		RemainingAccesses: int32(u.RemainingAccesses),
		ExpiresAt:         pgtype.Timestamptz{Time: u.ExpiresAt, Valid: true},
		CreatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:         pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Role:              u.Role,
		SubType:           u.SubType,
		RemainingAccesses: int32(u.RemainingAccesses),
		ExpiresAt:         u.ExpiresAt,
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Role:              user.Role(u.Role),
		SubType:           user.SubType(u.SubType),
		RemainingAccesses: u.RemainingAccesses,
		ExpiresAt:         u.ExpiresAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithSubType(subType string) *UserBuilder {
	u.SubType = subType
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithAccesses(n int) *UserBuilder {
	u.RemainingAccesses = n
	return u
}

func (u *UserBuilder) WithExpiresAt(t time.Time) *UserBuilder {
	u.ExpiresAt = t
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Role = "ADMIN"
	return u
}

func (u *UserBuilder) AsSingle() *UserBuilder {
	u.SubType = "SINGLE"
	return u
}
