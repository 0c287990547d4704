package booking

import (
	"context"
	"time"

	bookingRepo "sessionplanner/database/repository/booking"
	sessionRepo "sessionplanner/database/repository/session"
	"sessionplanner/models"
	"sessionplanner/services/tasks"

	"go.uber.org/zap"
)

// BookingService books a set of sessions as one group and reads groups back.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
	GetBookingGroup(ctx context.Context, groupID string) (*models.BookingGroup, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.UserBooking, error)
}

// DefaultBookingService implements BookingService. Reminders is optional.
type DefaultBookingService struct {
	Sessions  sessionRepo.SessionRepository
	Bookings  bookingRepo.BookingRepository
	Reminders tasks.ReminderScheduler
	Logger    *zap.Logger
	// BaseURL prefixes the icsUrl in confirmations; empty keeps it relative.
	BaseURL string

	Now   func() time.Time
	NewID func() string
}
