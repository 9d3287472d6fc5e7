//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/pkg/ptr"
	"gym-booking/tests/common/authtest"
	"gym-booking/tests/common/dbtest"
	"gym-booking/tests/common/httptest"
	"gym-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL  = "/api/bookings"
	availableURL = "/api/bookings/available"
	currentURL   = "/api/bookings/current"
	adminURL     = "/api/admin"
)

type bookingSuite struct {
	e2e.SharedSuite
	slot time.Time
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	// Monday 09:00 of the following week
	s.slot = time.Date(2024, time.March, 4, 9, 0, 0, 0, s.Now().Location())
}

func (s *bookingSuite) member(email, subType string) (uuid.UUID, string) {
	return authtest.CreateAndLogin(s.T(), s.DB, s.Router, dbtest.UserFixture{
		Email:     email,
		SubType:   subType,
		ExpiresAt: s.Now().AddDate(0, 3, 0),
	})
}

func (s *bookingSuite) admin() string {
	_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, dbtest.UserFixture{
		Email: "admin@example.com",
		Role:  "ADMIN",
	})
	return token
}

func (s *bookingSuite) book(token string, startsAt time.Time) *resdto.BookingResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
		request.CreateBookingRequest{StartsAt: startsAt}, token)
	var res resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *bookingSuite) disableURL() string {
	return fmt.Sprintf("%s/slots/%s/disabled", adminURL, s.slot.Format(time.RFC3339))
}

func deleteURL(id string, startsAt time.Time) string {
	return fmt.Sprintf("%s/%s?%s", bookingsURL, id, url.Values{"startsAt": {startsAt.Format(time.RFC3339)}}.Encode())
}

func containsInstant(slots []time.Time, want time.Time) bool {
	for _, t := range slots {
		if t.Equal(want) {
			return true
		}
	}
	return false
}

func (s *bookingSuite) TestBookAndCancel() {
	s.Run("booking consumes an access and cancelling early refunds it", func() {
		t := s.T()
		userID, token := s.member("anna@example.com", "SHARED")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availableURL, nil, token)
		var available resdto.AvailableSlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &available)
		require.True(t, containsInstant(available.Slots, s.slot), "slot should be offered before booking")

		created := s.book(token, s.slot)
		require.True(t, created.StartsAt.Equal(s.slot))
		require.Equal(t, 9, dbtest.RemainingAccesses(t, s.DB, userID))
		require.Equal(t, 1, dbtest.PeopleCount(t, s.DB, s.slot))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, currentURL, nil, token)
		var current []resdto.BookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &current)
		require.Len(t, current, 1)
		require.Equal(t, created.ID, current[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, deleteURL(created.ID, s.slot), nil, token)
		var deleted resdto.DeleteBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &deleted)
		require.True(t, deleted.Refunded)
		require.Equal(t, 10, dbtest.RemainingAccesses(t, s.DB, userID))
		require.Equal(t, 0, dbtest.PeopleCount(t, s.DB, s.slot))
	})

	s.Run("cancelling within three hours keeps the access", func() {
		t := s.T()
		userID, token := s.member("anna@example.com", "SHARED")
		created := s.book(token, s.slot)

		// the earlier token has lapsed by then
		s.Clock.Set(s.slot.Add(-2 * time.Hour))
		token = authtest.LoginUser(t, s.Router, "anna@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, deleteURL(created.ID, s.slot), nil, token)
		var deleted resdto.DeleteBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &deleted)
		require.False(t, deleted.Refunded)
		require.Equal(t, 9, dbtest.RemainingAccesses(t, s.DB, userID))
	})

	s.Run("someone else's booking is not found", func() {
		t := s.T()
		_, owner := s.member("anna@example.com", "SHARED")
		_, other := s.member("luca@example.com", "SHARED")
		created := s.book(owner, s.slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, deleteURL(created.ID, s.slot), nil, other)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
		require.Equal(t, 1, dbtest.PeopleCount(t, s.DB, s.slot))
	})
}

func (s *bookingSuite) TestOccupancy() {
	s.Run("the same member cannot book a slot twice", func() {
		t := s.T()
		userID, token := s.member("anna@example.com", "SHARED")
		s.book(token, s.slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Contains(t, w.Body.String(), "DUPLICATE_BOOKING")
		require.Equal(t, 9, dbtest.RemainingAccesses(t, s.DB, userID))
		require.Equal(t, 1, dbtest.PeopleCount(t, s.DB, s.slot))
	})

	s.Run("two shared members fill a slot", func() {
		t := s.T()
		_, first := s.member("anna@example.com", "SHARED")
		_, second := s.member("luca@example.com", "SHARED")
		_, third := s.member("sara@example.com", "SHARED")

		s.book(first, s.slot)
		s.book(second, s.slot)
		require.Equal(t, 2, dbtest.PeopleCount(t, s.DB, s.slot))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, availableURL, nil, third)
		var available resdto.AvailableSlotsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &available)
		require.False(t, containsInstant(available.Slots, s.slot))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, third)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Contains(t, w.Body.String(), "SLOT_FULL")
	})

	s.Run("a single subscription needs an empty slot", func() {
		t := s.T()
		_, shared := s.member("anna@example.com", "SHARED")
		_, single := s.member("marco@example.com", "SINGLE")

		s.book(shared, s.slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, single)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Contains(t, w.Body.String(), "SLOT_FULL")
	})

	s.Run("an expired subscription cannot book", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, dbtest.UserFixture{
			Email:     "old@example.com",
			ExpiresAt: s.Now().Add(-time.Hour),
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "")
		require.Equal(t, -1, dbtest.PeopleCount(t, s.DB, s.slot))
	})
}

func (s *bookingSuite) TestAdmin() {
	s.Run("disabling a slot blocks member bookings", func() {
		t := s.T()
		admin := s.admin()
		_, token := s.member("anna@example.com", "SHARED")

		path := fmt.Sprintf("%s/slots/%s/disabled", adminURL, s.slot.Format(time.RFC3339))
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, path,
			request.SetSlotDisabledRequest{Disabled: ptr.To(true)}, admin)
		var slotRes resdto.SlotResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &slotRes)
		require.True(t, slotRes.Disabled)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Contains(t, w.Body.String(), "SLOT_DISABLED")
	})

	s.Run("admin books a range for a member and lists it", func() {
		t := s.T()
		admin := s.admin()
		userID, _ := s.member("anna@example.com", "SHARED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adminURL+"/bookings",
			request.AdminCreateBookingRequest{From: s.slot, To: s.slot.Add(2 * time.Hour), UserID: &userID}, admin)
		var created resdto.AdminCreateResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Len(t, created.BookingIDs, 2)
		require.Equal(t, 8, dbtest.RemainingAccesses(t, s.DB, userID))

		query := url.Values{
			"from": {s.slot.Format(time.RFC3339)},
			"to":   {s.slot.Add(time.Hour).Format(time.RFC3339)},
		}.Encode()
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/bookings?"+query, nil, admin)
		var listed []resdto.AdminBookingResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &listed)
		require.Len(t, listed, 2)
		require.Equal(t, userID.String(), listed[0].UserID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, adminURL+"/events/latest", nil, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("admin cancellation refunds the member", func() {
		t := s.T()
		admin := s.admin()
		userID, token := s.member("anna@example.com", "SHARED")
		created := s.book(token, s.slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/bookings/"+created.ID,
			request.AdminDeleteBookingRequest{StartsAt: s.slot, RefundAccess: true, UserID: &userID}, admin)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, 10, dbtest.RemainingAccesses(t, s.DB, userID))
		require.Equal(t, 0, dbtest.PeopleCount(t, s.DB, s.slot))
	})
}

func (s *bookingSuite) TestRejectedCreateLeavesNoTrace() {
	type snapshot struct {
		accesses, people, events int
	}
	take := func(userID uuid.UUID) snapshot {
		return snapshot{
			accesses: dbtest.RemainingAccesses(s.T(), s.DB, userID),
			people:   dbtest.PeopleCount(s.T(), s.DB, s.slot),
			events:   dbtest.EventCount(s.T(), s.DB),
		}
	}

	s.Run("duplicate booking rolls back the consumed access", func() {
		t := s.T()
		userID, token := s.member("anna@example.com", "SHARED")
		s.book(token, s.slot)
		before := take(userID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Contains(t, w.Body.String(), "DUPLICATE_BOOKING")

		require.Equal(t, before, take(userID))
	})

	s.Run("full slot leaves the ledger untouched", func() {
		t := s.T()
		_, shared := s.member("anna@example.com", "SHARED")
		singleID, single := s.member("marco@example.com", "SINGLE")
		s.book(shared, s.slot)
		before := take(singleID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, single)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")

		require.Equal(t, before, take(singleID))
	})

	s.Run("disabled slot leaves the ledger untouched", func() {
		t := s.T()
		admin := s.admin()
		userID, token := s.member("anna@example.com", "SHARED")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, s.disableURL(),
			request.SetSlotDisabledRequest{Disabled: ptr.To(true)}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		before := take(userID)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, bookingsURL,
			request.CreateBookingRequest{StartsAt: s.slot}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		require.Equal(t, before, take(userID))
	})
}

func (s *bookingSuite) TestDisableWithBookings() {
	s.Run("disabling a booked slot needs confirmation", func() {
		t := s.T()
		admin := s.admin()
		userID, token := s.member("anna@example.com", "SHARED")
		s.book(token, s.slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, s.disableURL(),
			request.SetSlotDisabledRequest{Disabled: ptr.To(true)}, admin)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Contains(t, w.Body.String(), "SLOT_HAS_BOOKINGS")
		require.Equal(t, 9, dbtest.RemainingAccesses(t, s.DB, userID))
		require.Equal(t, 1, dbtest.PeopleCount(t, s.DB, s.slot))
		require.Zero(t, dbtest.EventCount(t, s.DB, "SLOT_DISABLED"))
	})

	s.Run("confirmed disable cancels and refunds members", func() {
		t := s.T()
		admin := s.admin()
		annaID, anna := s.member("anna@example.com", "SHARED")
		luigiID, luigi := s.member("luigi@example.com", "SHARED")
		s.book(anna, s.slot)
		s.book(luigi, s.slot)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, s.disableURL(),
			request.SetSlotDisabledRequest{Disabled: ptr.To(true), CancelBookings: true}, admin)
		var res resdto.SlotToggleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 2, res.Cancelled)
		require.True(t, res.Disabled)

		require.Equal(t, 10, dbtest.RemainingAccesses(t, s.DB, annaID))
		require.Equal(t, 10, dbtest.RemainingAccesses(t, s.DB, luigiID))
		require.Equal(t, 0, dbtest.PeopleCount(t, s.DB, s.slot))
		require.Equal(t, 2, dbtest.EventCount(t, s.DB, "DELETED"))
		require.Equal(t, 1, dbtest.EventCount(t, s.DB, "SLOT_DISABLED"))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, s.disableURL(),
			request.SetSlotDisabledRequest{Disabled: ptr.To(false)}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 1, dbtest.EventCount(t, s.DB, "SLOT_ENABLED"))
	})

	s.Run("only a disabled slot without members can be removed", func() {
		t := s.T()
		admin := s.admin()
		_, token := s.member("anna@example.com", "SHARED")
		s.book(token, s.slot)

		removeSlot := func() *nethttptest.ResponseRecorder {
			return httptest.PerformRequest(t, s.Router, http.MethodDelete, adminURL+"/bookings/"+uuid.NewString(),
				request.AdminDeleteBookingRequest{StartsAt: s.slot, IsDisabled: true}, admin)
		}

		w := removeSlot()
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Contains(t, w.Body.String(), "SLOT_NOT_DISABLED")
		require.Equal(t, 1, dbtest.PeopleCount(t, s.DB, s.slot))

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, s.disableURL(),
			request.SetSlotDisabledRequest{Disabled: ptr.To(true), CancelBookings: true}, admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = removeSlot()
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.Equal(t, -1, dbtest.PeopleCount(t, s.DB, s.slot))
	})
}
