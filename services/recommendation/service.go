// File: services/recommendation/service.go
package recommendation

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"
	"time"

	sessionRepo "sessionplanner/database/repository/session"
	"sessionplanner/models"
	"sessionplanner/services"
	"sessionplanner/services/matching"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	fallbackTopK       = 8
	relevanceFloor     = 0.5
	maxCandidates      = 16
	prefLookaheadDays  = 7
	dateLayout         = "2006-01-02"
	msgNoSessions      = "No sessions available. Please populate the database with session data."
	msgNoRelevantMatch = "No sessions matched your preferences. Try broadening your focus areas."
)

// Recommend routes, fetches, scores, filters and arranges sessions for one request.
func (s *DefaultRecommendationService) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	industry := strings.TrimSpace(req.Industry)
	if industry == "" {
		return nil, services.NewValidationError("Industry is required")
	}
	topK := s.defaultTopK()
	if req.TopK != nil {
		if *req.TopK <= 0 {
			return nil, services.NewValidationError("topK must be a positive integer")
		}
		topK = *req.TopK
	}
	avoidGaps := true
	if req.AvoidGaps != nil {
		avoidGaps = *req.AvoidGaps
	}
	timePref, err := normalizeWindow(req.TimePref)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		Industry: industry,
		Focus:    normalizeFocus(req.Focus),
		TimePref: timePref,
	}
	category := matching.RouteCategory(profile.Industry, profile.Focus)
	logger := s.logger().With(zap.String("industry", industry), zap.String("category", category))

	sessions, err := s.fetchCandidates(ctx, category, timePref, topK, logger)
	if err != nil {
		return nil, err
	}

	resp := &models.RecommendationResponse{
		RequestID: s.newID(),
		Category:  category,
		Items:     []models.RecommendedItem{},
		Metadata:  models.RecommendationMetadata{CategoryUsed: category},
	}
	if len(sessions) == 0 {
		logger.Info("No sessions available for recommendation")
		resp.Metadata.Message = msgNoSessions
		s.saveSnapshot(ctx, resp, logger)
		return resp, nil
	}

	available := make([]models.Session, 0, len(sessions))
	for _, sess := range sessions {
		if !sess.IsFull() {
			available = append(available, sess)
		}
	}

	var relevant []models.ScoredSession
	for _, sess := range available {
		score := matching.ScoreSession(sess, profile)
		if score > relevanceFloor {
			relevant = append(relevant, models.ScoredSession{Session: sess, Score: score})
		}
	}
	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Score > relevant[j].Score
	})
	top := relevant[:min(len(relevant), 2*topK, maxCandidates)]

	final := arrangeWithFallback(top, topK, avoidGaps)

	llmOptimized := false
	if req.UseLLM && len(final) > 1 && s.Reorderer != nil {
		reordered, err := s.Reorderer.Reorder(ctx, final, profile)
		if err != nil {
			logger.Warn("AI reorder failed, keeping deterministic order", zap.Error(err))
		} else {
			final = reordered
			llmOptimized = true
		}
	}

	for _, sess := range final {
		resp.Items = append(resp.Items, toItem(sess))
	}
	resp.Metadata = models.RecommendationMetadata{
		TotalAnalyzed: len(available),
		TopCandidates: len(top),
		FinalCount:    len(final),
		CategoryUsed:  category,
		LLMOptimized:  llmOptimized,
	}
	if len(final) == 0 {
		resp.Metadata.Message = msgNoRelevantMatch
	}

	logger.Info("Recommendation computed",
		zap.String("requestId", resp.RequestID),
		zap.Int("analyzed", len(available)),
		zap.Int("candidates", len(top)),
		zap.Int("final", len(final)),
	)
	s.saveSnapshot(ctx, resp, logger)
	return resp, nil
}

// GetSnapshot returns a previously computed response by requestId.
func (s *DefaultRecommendationService) GetSnapshot(ctx context.Context, requestID string) (*models.RecommendationResponse, error) {
	if s.Snapshots == nil {
		return nil, services.NewNotFoundError("Recommendation not found")
	}
	resp, err := s.Snapshots.Get(ctx, requestID)
	if errors.Is(err, ErrSnapshotNotFound) {
		return nil, services.NewNotFoundError("Recommendation not found")
	}
	if err != nil {
		return nil, services.NewUpstreamError("Failed to load recommendation", err)
	}
	return resp, nil
}

// arrangeWithFallback arranges the candidates and truncates to topK. When the
// arrangement drops too much it returns the top candidates by score instead.
func arrangeWithFallback(top []models.ScoredSession, topK int, avoidGaps bool) []models.ScoredSession {
	arranged := matching.ArrangeGreedy(top, avoidGaps)
	final := arranged[:min(len(arranged), topK)]

	if float64(len(final)) < math.Min(float64(topK), float64(len(top))/2) {
		return top[:min(len(top), topK)]
	}
	return final
}

// fetchCandidates queries the category within the date window. An empty
// category result falls back to at most topK upcoming sessions of any
// category, ignoring the time preference.
func (s *DefaultRecommendationService) fetchCandidates(ctx context.Context, category string, pref *models.TimeWindow, topK int, logger *zap.Logger) ([]models.Session, error) {
	q := candidateQuery(category, pref, s.now())
	sessions, err := s.Sessions.FindCandidates(ctx, q)
	if err != nil {
		logger.Error("Failed to fetch candidate sessions", zap.Error(err))
		return nil, services.NewUpstreamError("Failed to fetch sessions", err)
	}
	if len(sessions) > 0 || q.Category == "" {
		return sessions, nil
	}

	broad, err := s.Sessions.FindCandidates(ctx, sessionRepo.CandidateQuery{
		FromDate: s.now().UTC().Format(dateLayout),
		Limit:    int64(topK),
	})
	if err != nil {
		logger.Warn("Broad candidate fetch failed", zap.Error(err))
		return nil, nil
	}
	broad = broad[:min(len(broad), topK)]
	logger.Debug("Category fetch empty, using broad fetch", zap.Int("sessions", len(broad)))
	return broad, nil
}

// candidateQuery filters to future dates and, with a time preference, to the
// preference start through a week past its end.
func candidateQuery(category string, pref *models.TimeWindow, now time.Time) sessionRepo.CandidateQuery {
	q := sessionRepo.CandidateQuery{FromDate: now.UTC().Format(dateLayout)}
	if category != matching.CategoryGeneral {
		q.Category = category
	}
	if pref != nil {
		if from := pref.Start.UTC().Format(dateLayout); from > q.FromDate {
			q.FromDate = from
		}
		q.ToDate = pref.End.UTC().AddDate(0, 0, prefLookaheadDays).Format(dateLayout)
	}
	return q
}

func normalizeFocus(focus []string) []string {
	out := make([]string, 0, len(focus))
	for _, f := range focus {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func normalizeWindow(w *models.TimeWindow) (*models.TimeWindow, error) {
	if w == nil || w.Start.IsZero() || w.End.IsZero() {
		return nil, nil
	}
	if !w.End.After(w.Start) {
		return nil, services.NewValidationError("timePref.end must be after timePref.start")
	}
	return w, nil
}

func toItem(s models.ScoredSession) models.RecommendedItem {
	start, end := matching.SessionWindow(s.Session)
	tags := s.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.RecommendedItem{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Start:       start,
		End:         end,
		Room:        s.Location,
		Instructor:  s.Instructor,
		Score:       s.Score,
		Tags:        tags,
	}
}

func (s *DefaultRecommendationService) saveSnapshot(ctx context.Context, resp *models.RecommendationResponse, logger *zap.Logger) {
	if s.Snapshots == nil {
		return
	}
	if err := s.Snapshots.Save(ctx, resp); err != nil {
		logger.Warn("Failed to store recommendation snapshot", zap.String("requestId", resp.RequestID), zap.Error(err))
	}
}

func (s *DefaultRecommendationService) defaultTopK() int {
	if s.DefaultTopK > 0 {
		return s.DefaultTopK
	}
	return fallbackTopK
}

func (s *DefaultRecommendationService) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

func (s *DefaultRecommendationService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func (s *DefaultRecommendationService) newID() string {
	if s.NewID == nil {
		return uuid.New().String()
	}
	return s.NewID()
}
