package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoAccessesLeft      = errors.New("no accesses left on subscription")
	ErrSubscriptionExpired = errors.New("subscription expired")
)

type User struct {
	id                uuid.UUID
	email             Email
	passwordHash      string
	firstName         string
	lastName          string
	role              Role
	subType           SubType
	remainingAccesses int
	expiresAt         time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewUser(email Email, passwordHash, firstName, lastName string, role Role, subType SubType, accesses int, expiresAt time.Time) *User {
	return &User{
		id:                uuid.New(),
		email:             email,
		passwordHash:      passwordHash,
		firstName:         strings.TrimSpace(firstName),
		lastName:          strings.TrimSpace(lastName),
		role:              role,
		subType:           subType,
		remainingAccesses: accesses,
		expiresAt:         expiresAt,
	}
}

func ReconstructUser(
	id uuid.UUID,
	email Email,
	passwordHash, firstName, lastName string,
	role Role,
	subType SubType,
	remainingAccesses int,
	expiresAt, createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:                id,
		email:             email,
		passwordHash:      passwordHash,
		firstName:         firstName,
		lastName:          lastName,
		role:              role,
		subType:           subType,
		remainingAccesses: remainingAccesses,
		expiresAt:         expiresAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) PasswordHash() string   { return u.passwordHash }
func (u *User) FirstName() string      { return u.firstName }
func (u *User) LastName() string       { return u.lastName }
func (u *User) Role() Role             { return u.role }
func (u *User) SubType() SubType       { return u.subType }
func (u *User) RemainingAccesses() int { return u.remainingAccesses }
func (u *User) ExpiresAt() time.Time   { return u.expiresAt }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
func (u *User) UpdatedAt() time.Time   { return u.updatedAt }

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

// CanBook requires at least one access left and an expiry strictly after now.
func (u *User) CanBook(now time.Time) error {
	if u.remainingAccesses <= 0 {
		return ErrNoAccessesLeft
	}
	if !now.Before(u.expiresAt) {
		return ErrSubscriptionExpired
	}
	return nil
}
