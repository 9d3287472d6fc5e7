package api

import (
	"net/http"
	"time"

	reqdto "gym-booking/internal/handler/dto/request"
	resdto "gym-booking/internal/handler/dto/response"
	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/pkg/ptr"
	"gym-booking/internal/usecase/commands"
	"gym-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	adminCommands  commands.AdminBookingCommands
	bookingQueries queries.BookingQueries
	eventQueries   queries.EventQueries
}

func NewAdminHandler(
	adminCommands commands.AdminBookingCommands,
	bookingQueries queries.BookingQueries,
	eventQueries queries.EventQueries,
) *AdminHandler {
	return &AdminHandler{
		adminCommands:  adminCommands,
		bookingQueries: bookingQueries,
		eventQueries:   eventQueries,
	}
}

// @Summary List bookings in an interval
// @Description Bookings with from <= starts_at <= to, joined with their users and slots
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Param from query string true "Interval start (RFC3339)"
// @Param to query string true "Interval end (RFC3339)"
// @Param user_id query string false "Restrict to one user"
// @Success 200 {array} resdto.AdminBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/bookings [get]
func (h *AdminHandler) ListByInterval(c *gin.Context) {
	var query reqdto.IntervalQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid interval parameters", nil)
		return
	}

	views, err := h.bookingQueries.GetByInterval(c.Request.Context(), queries.IntervalFilter{
		From:   query.From,
		To:     query.To,
		UserID: query.UserID,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntervalViews(views))
}

// @Summary Create bookings as admin
// @Description Book every hour of [from, to) for a user, or disable those slots
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.AdminCreateBookingRequest true "Admin booking request"
// @Success 201 {object} resdto.AdminCreateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/bookings [post]
func (h *AdminHandler) Create(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	subType, err := req.GetSubType()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sub_type", nil)
		return
	}

	result, err := h.adminCommands.AdminCreate(c.Request.Context(), adminID, commands.AdminCreateInput{
		From:    req.From,
		To:      req.To,
		UserID:  req.UserID,
		SubType: subType,
		Disable: req.Disable,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAdminCreateResult(result))
}

// @Summary Delete booking as admin
// @Description Delete any booking, optionally refunding its owner, or remove a disabled slot
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "Booking ID"
// @Param request body reqdto.AdminDeleteBookingRequest true "Admin delete request"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/bookings/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req reqdto.AdminDeleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	// Disabled placeholders have no booking row, so any id is accepted for them.
	var bookingID uuid.UUID
	if !req.IsDisabled {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
			return
		}
		bookingID = id
	}

	subType, err := req.GetUserSubType()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user_sub_type", nil)
		return
	}

	err = h.adminCommands.AdminDelete(c.Request.Context(), adminID, commands.AdminDeleteInput{
		BookingID:    bookingID,
		StartsAt:     req.StartsAt,
		RefundAccess: req.RefundAccess,
		IsDisabled:   req.IsDisabled,
		UserID:       req.UserID,
		UserSubType:  subType,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Enable or disable a slot
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param startsAt path string true "Slot start (RFC3339)"
// @Param request body reqdto.SetSlotDisabledRequest true "Disabled flag"
// @Success 200 {object} resdto.SlotToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/slots/{startsAt}/disabled [put]
func (h *AdminHandler) SetSlotDisabled(c *gin.Context) {
	adminID, ok := requireUserID(c)
	if !ok {
		return
	}

	startsAt, err := time.Parse(time.RFC3339, c.Param("startsAt"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid startsAt format", nil)
		return
	}

	var req reqdto.SetSlotDisabledRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	res, err := h.adminCommands.SetSlotDisabled(c.Request.Context(), adminID, commands.SlotToggleInput{
		StartsAt:       startsAt,
		Disabled:       ptr.Deref(req.Disabled),
		CancelBookings: req.CancelBookings,
	})
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotToggle(res))
}

// @Summary Latest booking events
// @Description Audit events since the start of the current week
// @Tags admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.EventResponse
// @Router /api/admin/events/latest [get]
func (h *AdminHandler) LatestEvents(c *gin.Context) {
	views, err := h.eventQueries.GetLatest(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromEventViews(views))
}
