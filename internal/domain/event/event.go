package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeCreated Type = "CREATED"
	TypeDeleted Type = "DELETED"

	// Slot toggles are recorded against the admin who flipped the flag.
	TypeSlotDisabled Type = "SLOT_DISABLED"
	TypeSlotEnabled  Type = "SLOT_ENABLED"
)

// Event is an append-only audit record of a booking or slot change.
type Event struct {
	id         uuid.UUID
	typ        Type
	startsAt   time.Time
	userID     uuid.UUID
	occurredAt time.Time
}

func NewEvent(typ Type, startsAt time.Time, userID uuid.UUID, now time.Time) *Event {
	return &Event{
		id:         uuid.New(),
		typ:        typ,
		startsAt:   startsAt,
		userID:     userID,
		occurredAt: now,
	}
}

func ReconstructEvent(id uuid.UUID, typ Type, startsAt time.Time, userID uuid.UUID, occurredAt time.Time) *Event {
	return &Event{id: id, typ: typ, startsAt: startsAt, userID: userID, occurredAt: occurredAt}
}

func (e *Event) ID() uuid.UUID         { return e.id }
func (e *Event) Type() Type            { return e.typ }
func (e *Event) StartsAt() time.Time   { return e.startsAt }
func (e *Event) UserID() uuid.UUID     { return e.userID }
func (e *Event) OccurredAt() time.Time { return e.occurredAt }

// SlotToggle returns the audit type for setting a slot's disabled flag.
func SlotToggle(disabled bool) Type {
	if disabled {
		return TypeSlotDisabled
	}
	return TypeSlotEnabled
}

// Channel event name used by the live feed.
func (t Type) BroadcastName() string {
	if t == TypeDeleted {
		return "deleted"
	}
	return "created"
}
