package httperr

import (
	"net/http"

	"gym-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, status, err, "", msg, detail)
}

var publicErrors = []struct {
	target error
	code   string
}{
	{errs.ErrSubscriptionInactive, "SUBSCRIPTION_INACTIVE"},
	{errs.ErrInvalidCredentials, "INVALID_CREDENTIALS"},
	{errs.ErrForbidden, "FORBIDDEN"},
	{errs.ErrSlotDisabled, "SLOT_DISABLED"},
	{errs.ErrInvalidTimeRange, "INVALID_TIME_RANGE"},
	{errs.ErrSlotNotBookable, "SLOT_NOT_BOOKABLE"},
	{errs.ErrSlotNotDisabled, "SLOT_NOT_DISABLED"},
	{errs.ErrSlotFull, "SLOT_FULL"},
	{errs.ErrDuplicateBooking, "DUPLICATE_BOOKING"},
	{errs.ErrSlotHasBookings, "SLOT_HAS_BOOKINGS"},
	{errs.ErrBookingNotFound, "BOOKING_NOT_FOUND"},
	{errs.ErrUserNotFound, "USER_NOT_FOUND"},
}

var kindStatus = map[errs.Kind]int{
	errs.KindUnauthorized: http.StatusUnauthorized,
	errs.KindBadRequest:   http.StatusBadRequest,
	errs.KindConflict:     http.StatusConflict,
	errs.KindNotFound:     http.StatusNotFound,
}

// AbortWithDomainError translates a usecase error into its HTTP status.
// Unclassified errors become a bare 500 so store details never leak.
func AbortWithDomainError(c *gin.Context, err error) {
	status, ok := kindStatus[errs.KindOf(err)]
	if !ok {
		abort(c, http.StatusInternalServerError, err, "INTERNAL", "Internal server error", nil)
		return
	}

	for _, pe := range publicErrors {
		if errs.Is(err, pe.target) {
			abort(c, status, err, pe.code, pe.target.Error(), nil)
			return
		}
	}
	abort(c, status, err, "", http.StatusText(status), nil)
}

func abort(c *gin.Context, status int, err error, code, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
