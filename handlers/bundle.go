// File: handlers/bundle.go
package handlers

import (
	sessionRepo "sessionplanner/database/repository/session"
	"sessionplanner/services/booking"
	"sessionplanner/services/recommendation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Recommendation endpoints
	RecommendHandler         gin.HandlerFunc
	GetRecommendationHandler gin.HandlerFunc

	// Booking endpoints
	BookHandler         gin.HandlerFunc
	CalendarHandler     gin.HandlerFunc
	UserBookingsHandler gin.HandlerFunc

	// System endpoints
	HealthHandler        gin.HandlerFunc
	DebugSessionsHandler gin.HandlerFunc
}

// NewHandlerBundle wires services into their gin handlers.
func NewHandlerBundle(
	recSvc recommendation.RecommendationService,
	bookSvc booking.BookingService,
	sessions sessionRepo.SessionRepository,
	logger *zap.Logger,
) *HandlerBundle {
	rec := &RecommendationHandler{Service: recSvc, Logger: logger}
	book := &BookingHandler{Service: bookSvc, Logger: logger}
	sys := &SystemHandler{Sessions: sessions, Logger: logger}

	return &HandlerBundle{
		RecommendHandler:         rec.Recommend,
		GetRecommendationHandler: rec.GetRecommendation,
		BookHandler:              book.Book,
		CalendarHandler:          book.Calendar,
		UserBookingsHandler:      book.ListUserBookings,
		HealthHandler:            sys.Health,
		DebugSessionsHandler:     sys.DebugSessions,
	}
}
