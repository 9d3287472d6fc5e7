package response

import (
	"time"

	"gym-booking/internal/usecase/queries"
)

type EventResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	StartsAt   time.Time `json:"starts_at"`
	UserID     string    `json:"user_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	OccurredAt time.Time `json:"occurred_at"`
}

func FromEventViews(views []*queries.EventView) []*EventResponse {
	res := make([]*EventResponse, len(views))
	for i, v := range views {
		res[i] = &EventResponse{
			ID:         v.ID.String(),
			Type:       v.Type,
			StartsAt:   v.StartsAt,
			UserID:     v.UserID.String(),
			FirstName:  v.FirstName,
			LastName:   v.LastName,
			OccurredAt: v.OccurredAt,
		}
	}
	return res
}
