package handlers

import (
	"fmt"
	"net/http"
	"time"

	"sessionplanner/models"
	"sessionplanner/services/booking"
	"sessionplanner/services/calendar"
	"sessionplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// Book handles POST /api/book.
func (h *BookingHandler) Book(c *gin.Context) {
	logger := getLogger(c, h.Logger)

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	conf, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, conf)
}

// Calendar handles GET /api/ics/:bookingId and serves the group as an .ics attachment.
func (h *BookingHandler) Calendar(c *gin.Context) {
	group, err := h.Service.GetBookingGroup(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondServiceError(c, getLogger(c, h.Logger), err)
		return
	}

	ics := calendar.Generate(group.GroupID, group.Sessions, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, calendar.Filename(group.GroupID)))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

// ListUserBookings handles GET /api/bookings/:userId.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	rows, err := h.Service.ListUserBookings(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondServiceError(c, getLogger(c, h.Logger), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": rows, "count": len(rows)})
}
