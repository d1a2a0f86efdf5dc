package api

import (
	"net/http"
	"time"

	reqdto "mynbala-backend/internal/handler/dto/request"
	resdto "mynbala-backend/internal/handler/dto/response"
	"mynbala-backend/internal/handler/httperr"
	"mynbala-backend/internal/handler/middleware"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/usecase/cabinbooking"

	"github.com/gin-gonic/gin"
)

type CabinHandler struct {
	uc  cabinbooking.UseCase
	loc *time.Location
}

// NewCabinHandler parses visit dates in loc, the park's local time zone.
func NewCabinHandler(uc cabinbooking.UseCase, loc *time.Location) *CabinHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &CabinHandler{uc: uc, loc: loc}
}

// @Summary List cabins of a branch
// @Tags cabins
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {array} resdto.CabinResponse
// @Failure 500 {object} httperr.Response
// @Router /branches/{id}/cabins [get]
func (h *CabinHandler) ListByBranch(c *gin.Context) {
	cabins, err := h.uc.Cabins(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusFor(err), err, "Failed to load cabins", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCabins(cabins))
}

// @Summary Cabin availability
// @Description Hourly grid 10:00-21:00 for a date. With start and duration a price quote is included.
// @Tags cabins
// @Produce json
// @Param id path string true "Cabin ID"
// @Param date query string true "Visit date (YYYY-MM-DD)"
// @Param start query int false "Start hour"
// @Param duration query int false "Duration in hours (1-4)"
// @Success 200 {object} resdto.CabinQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cabins/{id}/slots [get]
func (h *CabinHandler) Slots(c *gin.Context) {
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	date, err := q.ParseDate(h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	if q.Start != nil && q.Duration != nil {
		quote, err := h.uc.Quote(c.Request.Context(), c.Param("id"), date, *q.Start, *q.Duration)
		if err != nil {
			httperr.AbortWithError(c, httperr.StatusFor(err), err, cabinErrMessage(err), nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromQuote(quote))
		return
	}

	grid, err := h.uc.Grid(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusFor(err), err, cabinErrMessage(err), nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGridView(grid))
}

// @Summary Book a cabin
// @Tags cabins
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cabin ID"
// @Param request body reqdto.CreateCabinBookingRequest true "Booking request"
// @Success 201 {object} resdto.CabinBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /cabins/{id}/bookings [post]
func (h *CabinHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoUser, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateCabinBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams(userID, c.Param("id"), h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	booking, err := h.uc.Book(c.Request.Context(), params)
	if err != nil {
		httperr.AbortWithError(c, httperr.StatusFor(err), err, cabinErrMessage(err), nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(booking))
}

func cabinErrMessage(err error) string {
	switch {
	case errs.IsAny(err, cabinbooking.ErrCabinNotFound):
		return "Cabin not found"
	case errs.IsAny(err, cabinbooking.ErrInvalidDate):
		return "Visit date is in the past"
	case errs.IsAny(err, cabinbooking.ErrInvalidDuration):
		return "Duration must be between 1 and 4 hours"
	case errs.IsAny(err, cabinbooking.ErrInvalidGuests):
		return "Too many guests for this cabin"
	case errs.IsAny(err, cabinbooking.ErrSlotUnavailable):
		return "This hour is already booked"
	case errs.IsAny(err, cabinbooking.ErrSlotConflict):
		return "Selected time overlaps a booking or closing time"
	case errs.IsAny(err, cabinbooking.ErrUnauthenticated):
		return "Unauthorized"
	}
	return "Cabin booking failed"
}
