package request

import (
	"time"

	"gym-booking/internal/domain/user"

	"github.com/google/uuid"
)

type AdminCreateBookingRequest struct {
	From    time.Time  `json:"from" binding:"required"`
	To      time.Time  `json:"to" binding:"required"`
	UserID  *uuid.UUID `json:"user_id"`
	SubType *string    `json:"sub_type" binding:"omitempty,oneof=SHARED SINGLE"`
	Disable bool       `json:"disable"`
}

func (r *AdminCreateBookingRequest) GetSubType() (*user.SubType, error) {
	return optionalSubType(r.SubType)
}

type AdminDeleteBookingRequest struct {
	StartsAt     time.Time  `json:"starts_at" binding:"required"`
	RefundAccess bool       `json:"refund_access"`
	IsDisabled   bool       `json:"is_disabled"`
	UserID       *uuid.UUID `json:"user_id"`
	UserSubType  *string    `json:"user_sub_type" binding:"omitempty,oneof=SHARED SINGLE"`
}

func (r *AdminDeleteBookingRequest) GetUserSubType() (*user.SubType, error) {
	return optionalSubType(r.UserSubType)
}

type SetSlotDisabledRequest struct {
	Disabled       *bool `json:"disabled" binding:"required"`
	CancelBookings bool  `json:"cancel_bookings"`
}

func optionalSubType(s *string) (*user.SubType, error) {
	if s == nil {
		return nil, nil
	}
	st, err := user.NewSubType(*s)
	if err != nil {
		return nil, err
	}
	return &st, nil
}
