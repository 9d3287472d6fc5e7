package slot

import (
	"errors"
	"time"

	"gym-booking/internal/domain/user"
)

// Capacity is the number of occupancy units a slot holds.
const Capacity = 2

var (
	ErrSlotDisabled = errors.New("slot is disabled")
	ErrSlotFull     = errors.New("slot has no room left")
)

type State string

const (
	StateEmpty             State = "EMPTY"
	StatePartiallyOccupied State = "PARTIALLY_OCCUPIED"
	StateFull              State = "FULL"
	StateDisabled          State = "DISABLED"
)

// OccupancyWeight is how many units a booking of the given subscription consumes.
// A SINGLE booking takes the whole slot.
func OccupancyWeight(st user.SubType) int {
	if st == user.SubTypeSingle {
		return Capacity
	}
	return 1
}

// Threshold is the people count at which a slot stops being offered to st.
func Threshold(st user.SubType) int {
	return Capacity - OccupancyWeight(st) + 1
}

type Slot struct {
	startsAt    time.Time
	peopleCount int
	disabled    bool
}

// Empty is the implicit state of a slot that has no row yet.
func Empty(startsAt time.Time) *Slot {
	return &Slot{startsAt: startsAt}
}

func Reconstruct(startsAt time.Time, peopleCount int, disabled bool) *Slot {
	if peopleCount < 0 {
		peopleCount = 0
	}
	return &Slot{startsAt: startsAt, peopleCount: peopleCount, disabled: disabled}
}

func (s *Slot) StartsAt() time.Time { return s.startsAt }
func (s *Slot) PeopleCount() int    { return s.peopleCount }
func (s *Slot) Disabled() bool      { return s.disabled }

func (s *Slot) State() State {
	switch {
	case s.disabled:
		return StateDisabled
	case s.peopleCount == 0:
		return StateEmpty
	case s.peopleCount >= Capacity:
		return StateFull
	default:
		return StatePartiallyOccupied
	}
}

// CanAccept checks whether a booking of st still fits.
func (s *Slot) CanAccept(st user.SubType) error {
	if s.disabled {
		return ErrSlotDisabled
	}
	if s.peopleCount+OccupancyWeight(st) > Capacity {
		return ErrSlotFull
	}
	return nil
}
