package response

import (
	"time"

	"gym-booking/internal/domain/slot"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"
)

type AvailableSlotsResponse struct {
	Slots []time.Time `json:"slots"`
}

type BookingResponse struct {
	ID        string    `json:"id"`
	StartsAt  time.Time `json:"starts_at"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		res[i] = &BookingResponse{
			ID:        v.ID.String(),
			StartsAt:  v.StartsAt,
			CreatedAt: v.CreatedAt,
		}
	}
	return res
}

func FromBookingResult(r *commands.BookingResult) *BookingResponse {
	return &BookingResponse{
		ID:       r.ID.String(),
		StartsAt: r.StartsAt,
	}
}

type DeleteBookingResponse struct {
	Refunded bool `json:"refunded"`
}

type AdminBookingResponse struct {
	ID          string    `json:"id"`
	StartsAt    time.Time `json:"starts_at"`
	UserID      string    `json:"user_id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	SubType     string    `json:"sub_type"`
	PeopleCount int32     `json:"people_count"`
	Disabled    bool      `json:"disabled"`
}

func FromIntervalViews(views []*queries.IntervalBookingView) []*AdminBookingResponse {
	res := make([]*AdminBookingResponse, len(views))
	for i, v := range views {
		res[i] = &AdminBookingResponse{
			ID:          v.ID.String(),
			StartsAt:    v.StartsAt,
			UserID:      v.UserID.String(),
			Email:       v.Email,
			FirstName:   v.FirstName,
			LastName:    v.LastName,
			SubType:     v.SubType,
			PeopleCount: v.PeopleCount,
			Disabled:    v.SlotDisabled,
		}
	}
	return res
}

type AdminCreateResponse struct {
	BookingIDs []string    `json:"booking_ids"`
	StartsAt   []time.Time `json:"starts_at"`
}

func FromAdminCreateResult(r *commands.AdminCreateResult) *AdminCreateResponse {
	ids := make([]string, len(r.BookingIDs))
	for i, id := range r.BookingIDs {
		ids[i] = id.String()
	}
	return &AdminCreateResponse{BookingIDs: ids, StartsAt: r.StartsAt}
}

type SlotResponse struct {
	StartsAt    time.Time `json:"starts_at"`
	PeopleCount int       `json:"people_count"`
	Disabled    bool      `json:"disabled"`
	State       string    `json:"state"`
}

func FromSlot(s *slot.Slot) *SlotResponse {
	return &SlotResponse{
		StartsAt:    s.StartsAt(),
		PeopleCount: s.PeopleCount(),
		Disabled:    s.Disabled(),
		State:       string(s.State()),
	}
}

// SlotToggleResponse is the slot after a toggle plus the member bookings it cancelled.
type SlotToggleResponse struct {
	SlotResponse
	Cancelled int `json:"cancelled"`
}

func FromSlotToggle(r *commands.SlotToggleResult) *SlotToggleResponse {
	return &SlotToggleResponse{SlotResponse: *FromSlot(r.Slot), Cancelled: r.Cancelled}
}
