// File: database/repository/session/crud.go
package sessionRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IncrementEnrolled bumps the enrolled counter. It does not re-check capacity.
func (r *mongoSessionRepo) IncrementEnrolled(ctx context.Context, sessionID string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": sessionID},
		bson.M{"$inc": bson.M{"enrolled": delta}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
