package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// ProgressCache handles Redis operations for pipeline progress so
// status polling does not hit MongoDB on every request.
type ProgressCache interface {
	Get(ctx context.Context, sessionID string) (*model.GenerationProgress, error)
	Set(ctx context.Context, progress *model.GenerationProgress) error
	Delete(ctx context.Context, sessionID string) error
}

type progressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProgressCache creates a new progress cache.
func NewProgressCache(client *redis.Client) ProgressCache {
	return &progressCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *progressCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s:progress", sessionID)
}

func (c *progressCache) Get(ctx context.Context, sessionID string) (*model.GenerationProgress, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var progress model.GenerationProgress
	if err := json.Unmarshal([]byte(data), &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

func (c *progressCache) Set(ctx context.Context, progress *model.GenerationProgress) error {
	data, err := json.Marshal(progress)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(progress.SessionID), data, c.ttl).Err()
}

func (c *progressCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
