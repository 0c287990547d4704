// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"

	"sessionplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CandidateQuery narrows the recommendation candidate fetch.
// Dates are "YYYY-MM-DD"; an empty Category or ToDate is not filtered on.
// A zero Limit returns every match.
type CandidateQuery struct {
	Category string
	FromDate string
	ToDate   string
	Limit    int64
}

type SessionRepository interface {
	FindCandidates(ctx context.Context, q CandidateQuery) ([]models.Session, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Session, error)
	IncrementEnrolled(ctx context.Context, sessionID string, delta int) error
	Sample(ctx context.Context, limit int64) ([]models.Session, error)
	EnsureIndexes() error
}

type mongoSessionRepo struct {
	coll *mongo.Collection
}

// NewMongoSessionRepo constructs a SessionRepository on the "sessions" collection.
func NewMongoSessionRepo(db *mongo.Database) SessionRepository {
	return &mongoSessionRepo{
		coll: db.Collection("sessions"),
	}
}
