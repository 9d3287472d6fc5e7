package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StartsAt time.Time `json:"starts_at" binding:"required"`
}

type DeleteBookingQuery struct {
	StartsAt time.Time `form:"startsAt" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

type IntervalQuery struct {
	From   time.Time  `form:"from" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	To     time.Time  `form:"to" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	UserID *uuid.UUID `form:"user_id"`
}
