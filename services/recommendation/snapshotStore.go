// File: services/recommendation/snapshotStore.go
package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"sessionplanner/models"
	"sessionplanner/utils"

	"github.com/go-redis/redis/v8"
)

var ErrSnapshotNotFound = errors.New("recommendation snapshot not found")

// SnapshotStore keeps recent recommendation responses addressable by requestId.
type SnapshotStore interface {
	Save(ctx context.Context, resp *models.RecommendationResponse) error
	Get(ctx context.Context, requestID string) (*models.RecommendationResponse, error)
}

type RedisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotStore(client *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{client: client, ttl: ttl}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, resp *models.RecommendationResponse) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, utils.SnapshotCachePrefix+resp.RequestID, b, s.ttl).Err()
}

func (s *RedisSnapshotStore) Get(ctx context.Context, requestID string) (*models.RecommendationResponse, error) {
	data, err := s.client.Get(ctx, utils.SnapshotCachePrefix+requestID).Result()
	if err == redis.Nil {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, err
	}
	var resp models.RecommendationResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
