package api

import (
	"net/http"

	reqdto "badminton-club/internal/handler/dto/request"
	resdto "badminton-club/internal/handler/dto/response"
	"badminton-club/internal/handler/httperr"
	"badminton-club/internal/handler/middleware"
	"badminton-club/internal/pkg/errs"
	"badminton-club/internal/usecase/commands"
	"badminton-club/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgSlotTaken = "Court is already booked for this time slot"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a court for a time slot on one date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortBindError(c, err)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidBookingRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		case errs.Is(err, commands.ErrCourtNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found or inactive", nil)
		case errs.Is(err, commands.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusBadRequest, err, msgSlotTaken, nil)
		case errs.Is(err, commands.ErrAdmissionContention):
			httperr.AbortWithError(c, http.StatusConflict, err, "Court schedule is busy, please retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Check availability
// @Description Report whether a slot on a court is free
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param courtId query string true "Court ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param startTime query string true "Start time (HH:MM)"
// @Param endTime query string true "End time (HH:MM)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/availability [get]
func (h *BookingHandler) Availability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortBindError(c, err)
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), q)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidBookingWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		case errs.Is(err, queries.ErrCourtNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found or inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary List my bookings
// @Description List the authenticated member's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a booking owned by the caller (admins see all)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	caller, ok := middleware.GetCaller(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), caller, id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
