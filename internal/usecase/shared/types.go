package shared

import (
	"time"

	"gym-booking/internal/domain/user"

	"github.com/google/uuid"
)

// UserSnapshot is the write-side view of a user, independent of the read models.
type UserSnapshot struct {
	ID                uuid.UUID
	Email             string
	FirstName         string
	LastName          string
	Role              user.Role
	SubType           user.SubType
	RemainingAccesses int
	ExpiresAt         time.Time
}

func (s *UserSnapshot) Domain() *user.User {
	return user.ReconstructUser(
		s.ID,
		user.ReconstructEmail(s.Email),
		"",
		s.FirstName,
		s.LastName,
		s.Role,
		s.SubType,
		s.RemainingAccesses,
		s.ExpiresAt,
		time.Time{},
		time.Time{},
	)
}

type DeletedBooking struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	StartsAt time.Time
}
