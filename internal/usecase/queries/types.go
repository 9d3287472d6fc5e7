package queries

import (
	"time"

	"github.com/google/uuid"
)

// UserView represents read-optimized user data with subscription info
type UserView struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Role              string    `json:"role"`
	SubType           string    `json:"sub_type"`
	RemainingAccesses int32     `json:"remaining_accesses"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// BookingView is one of the caller's own bookings
type BookingView struct {
	ID        uuid.UUID `json:"id"`
	StartsAt  time.Time `json:"starts_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IntervalBookingView is a booking joined with its user and slot, for the admin calendar
type IntervalBookingView struct {
	ID           uuid.UUID `json:"id"`
	StartsAt     time.Time `json:"starts_at"`
	UserID       uuid.UUID `json:"user_id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	SubType      string    `json:"sub_type"`
	PeopleCount  int32     `json:"people_count"`
	SlotDisabled bool      `json:"slot_disabled"`
}

// ReminderView is an upcoming booking with the contact data needed to remind its owner
type ReminderView struct {
	BookingID uuid.UUID
	StartsAt  time.Time
	UserID    uuid.UUID
	Email     string
	FirstName string
	LastName  string
}

// EventView is an audit event joined with the user's name
type EventView struct {
	ID         uuid.UUID `json:"id"`
	Type       string    `json:"type"`
	StartsAt   time.Time `json:"starts_at"`
	UserID     uuid.UUID `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ExclusionFilter selects the slots that must not be offered to a user inside [From, To).
type ExclusionFilter struct {
	UserID    uuid.UUID
	Threshold int
	From      time.Time
	To        time.Time
}

// IntervalFilter selects bookings with From <= starts_at <= To.
type IntervalFilter struct {
	From   time.Time
	To     time.Time
	UserID *uuid.UUID
}
