package recommendation

import (
	"context"
	"time"

	sessionRepo "sessionplanner/database/repository/session"
	"sessionplanner/models"
	ai "sessionplanner/services/intelligence"

	"go.uber.org/zap"
)

// RecommendationService ranks and arranges sessions for an attendee profile.
type RecommendationService interface {
	Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error)
	GetSnapshot(ctx context.Context, requestID string) (*models.RecommendationResponse, error)
}

// DefaultRecommendationService implements RecommendationService.
// Reorderer and Snapshots are optional.
type DefaultRecommendationService struct {
	Sessions    sessionRepo.SessionRepository
	Reorderer   ai.Reorderer
	Snapshots   SnapshotStore
	Logger      *zap.Logger
	DefaultTopK int

	Now   func() time.Time
	NewID func() string
}
