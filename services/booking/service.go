// File: services/booking/service.go
package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"sessionplanner/models"
	"sessionplanner/services"
	"sessionplanner/services/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Book validates availability and time conflicts for the requested sessions,
// then persists one booking row per session under a new group id.
// Nothing is written when any check fails.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	ids := uniqueIDs(req.SessionIDs)
	if len(ids) == 0 {
		return nil, services.NewValidationError("Session IDs are required")
	}
	logger := s.logger()

	sessions, err := s.fetchSessions(ctx, ids)
	if err != nil {
		logger.Error("Failed to fetch sessions for booking", zap.Strings("sessionIds", ids), zap.Error(err))
		return nil, services.NewUpstreamError("Failed to fetch sessions", err)
	}
	if len(sessions) == 0 {
		return nil, services.NewNotFoundError("Sessions not found")
	}

	if unavailable := unavailableSessions(sessions); len(unavailable) > 0 {
		logger.Info("Booking rejected, sessions full", zap.Strings("unavailable", unavailable))
		return nil, services.NewUnavailableError(unavailable)
	}
	if conflicts := conflictingPairs(sessions); len(conflicts) > 0 {
		logger.Info("Booking rejected, time conflicts", zap.Int("pairs", len(conflicts)))
		return nil, services.NewTimeConflictError(conflicts)
	}

	groupID := s.newID()
	bookedAt := s.now().UTC()
	rows := make([]models.Booking, len(sessions))
	for i, sess := range sessions {
		rows[i] = models.Booking{
			ID:          s.newID(),
			GroupID:     groupID,
			SessionID:   sess.ID,
			RequestID:   req.RequestID,
			UserDetails: req.UserDetails,
			Status:      models.BookingStatusConfirmed,
			BookedAt:    bookedAt,
		}
	}
	if err := s.Bookings.InsertMany(ctx, rows); err != nil {
		logger.Error("Failed to create booking", zap.String("bookingId", groupID), zap.Error(err))
		return nil, services.NewUpstreamError("Failed to create booking", err)
	}

	// Enrolment is not tied to the availability check above; two concurrent
	// bookings for the last seat can both succeed.
	s.incrementEnrolled(ctx, sessions, logger)

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminders(ctx, groupID, sessions, req.UserDetails); err != nil {
			logger.Warn("Failed to schedule session reminders", zap.String("bookingId", groupID), zap.Error(err))
		}
	}

	logger.Info("Booking confirmed", zap.String("bookingId", groupID), zap.Int("sessions", len(sessions)))
	return s.confirmation(groupID, sessions), nil
}

// GetBookingGroup loads the rows of a booking group and their sessions.
func (s *DefaultBookingService) GetBookingGroup(ctx context.Context, groupID string) (*models.BookingGroup, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, services.NewValidationError("Booking ID is required")
	}

	rows, err := s.Bookings.FindByGroupID(ctx, groupID)
	if err != nil {
		return nil, services.NewUpstreamError("Failed to fetch booking", err)
	}
	if len(rows) == 0 {
		return nil, services.NewNotFoundError("Booking not found")
	}

	ids := make([]string, len(rows))
	for i, b := range rows {
		ids[i] = b.SessionID
	}
	sessions, err := s.fetchSessions(ctx, ids)
	if err != nil {
		return nil, services.NewUpstreamError("Failed to fetch sessions", err)
	}
	if len(sessions) == 0 {
		return nil, services.NewNotFoundError("Sessions not found")
	}

	return &models.BookingGroup{GroupID: groupID, Bookings: rows, Sessions: sessions}, nil
}

// ListUserBookings returns bookings whose user details carry the given user_id,
// newest first, each joined with its session details.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.UserBooking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, services.NewValidationError("User ID is required")
	}
	rows, err := s.Bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, services.NewUpstreamError("Failed to fetch bookings", err)
	}
	out := make([]models.UserBooking, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.SessionID]; !ok {
			seen[row.SessionID] = struct{}{}
			ids = append(ids, row.SessionID)
		}
	}
	sessions, err := s.Sessions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, services.NewUpstreamError("Failed to fetch bookings", err)
	}
	byID := make(map[string]models.Session, len(sessions))
	for _, sess := range sessions {
		byID[sess.ID] = sess
	}

	for _, row := range rows {
		ub := models.UserBooking{Booking: row}
		if sess, ok := byID[row.SessionID]; ok {
			ub.Session = summarize(sess)
		} else {
			s.logger().Debug("Booked session no longer exists", zap.String("sessionId", row.SessionID))
		}
		out = append(out, ub)
	}
	return out, nil
}

func summarize(s models.Session) *models.SessionSummary {
	return &models.SessionSummary{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Date:        s.Date,
		Time:        s.Time,
		Duration:    s.Duration,
		Instructor:  s.Instructor,
		Category:    s.Category,
		Subcategory: s.Subcategory,
		Location:    s.Location,
	}
}

// fetchSessions returns the found sessions in the order of ids.
func (s *DefaultBookingService) fetchSessions(ctx context.Context, ids []string) ([]models.Session, error) {
	found, err := s.Sessions.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Session, len(found))
	for _, sess := range found {
		byID[sess.ID] = sess
	}
	ordered := make([]models.Session, 0, len(found))
	for _, id := range ids {
		if sess, ok := byID[id]; ok {
			ordered = append(ordered, sess)
		}
	}
	return ordered, nil
}

func (s *DefaultBookingService) incrementEnrolled(ctx context.Context, sessions []models.Session, logger *zap.Logger) {
	var wg sync.WaitGroup
	for _, sess := range sessions {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if err := s.Sessions.IncrementEnrolled(ctx, id, 1); err != nil {
				logger.Error("Failed to increment enrolled count", zap.String("sessionId", id), zap.Error(err))
			}
		}(sess.ID)
	}
	wg.Wait()
}

func (s *DefaultBookingService) confirmation(groupID string, sessions []models.Session) *models.BookingConfirmation {
	conf := &models.BookingConfirmation{
		BookingID:  groupID,
		SessionIDs: make([]string, len(sessions)),
		Status:     models.BookingStatusConfirmed,
		ICSURL:     strings.TrimRight(s.BaseURL, "/") + "/api/ics/" + groupID,
		Sessions:   make([]models.BookedSession, len(sessions)),
	}
	for i, sess := range sessions {
		start, end := matching.SessionWindow(sess)
		conf.SessionIDs[i] = sess.ID
		conf.Sessions[i] = models.BookedSession{ID: sess.ID, Title: sess.Title, Start: start, End: end}
	}
	return conf
}

func unavailableSessions(sessions []models.Session) []string {
	var ids []string
	for _, sess := range sessions {
		if sess.IsFull() {
			ids = append(ids, sess.ID)
		}
	}
	return ids
}

// conflictingPairs checks every pair of requested sessions for overlap.
func conflictingPairs(sessions []models.Session) [][2]string {
	var pairs [][2]string
	for i := 0; i < len(sessions); i++ {
		for j := i + 1; j < len(sessions); j++ {
			if matching.SessionsOverlap(sessions[i], sessions[j]) {
				pairs = append(pairs, [2]string{sessions[i].ID, sessions[j].ID})
			}
		}
	}
	return pairs
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *DefaultBookingService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultBookingService) newID() string {
	if s.NewID == nil {
		return uuid.New().String()
	}
	return s.NewID()
}
