package errs

// Domain-specific sentinel errors shared by the booking engine and its transports
var (
	// UNAUTHORIZED
	ErrSubscriptionInactive = New("subscription expired or no accesses left")
	ErrForbidden            = New("operation not allowed for role")
	ErrInvalidCredentials   = New("invalid credentials")

	// BAD_REQUEST
	ErrSlotDisabled     = New("slot is disabled")
	ErrInvalidTimeRange = New("invalid time range")
	ErrSlotNotBookable  = New("slot is outside bookable hours")
	ErrSlotNotDisabled  = New("slot is not disabled")

	// CONFLICT
	ErrSlotFull         = New("slot capacity exceeded")
	ErrDuplicateBooking = New("slot already booked by user")
	ErrSlotHasBookings  = New("slot still has member bookings")

	// NOT_FOUND
	ErrBookingNotFound = New("booking not found")
	ErrUserNotFound    = New("user not found")

	// INTERNAL
	ErrDatabaseOperationFailed = New("database operation failed")
)

type Kind string

const (
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindBadRequest   Kind = "BAD_REQUEST"
	KindConflict     Kind = "CONFLICT"
	KindNotFound     Kind = "NOT_FOUND"
	KindInternal     Kind = "INTERNAL"
)

var kindTable = []struct {
	kind     Kind
	sentinel error
}{
	{KindUnauthorized, ErrSubscriptionInactive},
	{KindUnauthorized, ErrForbidden},
	{KindUnauthorized, ErrInvalidCredentials},
	{KindBadRequest, ErrSlotDisabled},
	{KindBadRequest, ErrInvalidTimeRange},
	{KindBadRequest, ErrSlotNotBookable},
	{KindBadRequest, ErrSlotNotDisabled},
	{KindConflict, ErrSlotFull},
	{KindConflict, ErrDuplicateBooking},
	{KindConflict, ErrSlotHasBookings},
	{KindNotFound, ErrBookingNotFound},
	{KindNotFound, ErrUserNotFound},
}

// KindOf classifies err into the booking error taxonomy. Anything unknown is INTERNAL.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	for _, k := range kindTable {
		if Is(err, k.sentinel) {
			return k.kind
		}
	}
	return KindInternal
}
