package response

import (
	"time"

	"gym-booking/internal/usecase/queries"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Role              string    `json:"role"`
	SubType           string    `json:"sub_type"`
	RemainingAccesses int32     `json:"remaining_accesses"`
	ExpiresAt         time.Time `json:"expires_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:                v.ID.String(),
		Email:             v.Email,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		Role:              v.Role,
		SubType:           v.SubType,
		RemainingAccesses: v.RemainingAccesses,
		ExpiresAt:         v.ExpiresAt,
	}
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}
