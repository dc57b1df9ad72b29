package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Yngie-C/personal-branding-report-sub001/internal/model"
)

// AnalysisCache handles Redis operations for assembled analyses keyed
// by session.
type AnalysisCache interface {
	Get(ctx context.Context, sessionID string) (*model.BriefAnalysis, error)
	Set(ctx context.Context, analysis *model.BriefAnalysis) error
	Delete(ctx context.Context, sessionID string) error
}

type analysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAnalysisCache creates a new analysis cache.
func NewAnalysisCache(client *redis.Client) AnalysisCache {
	return &analysisCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

func (c *analysisCache) key(sessionID string) string {
	return fmt.Sprintf("session:%s:analysis", sessionID)
}

func (c *analysisCache) Get(ctx context.Context, sessionID string) (*model.BriefAnalysis, error) {
	data, err := c.client.Get(ctx, c.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analysis model.BriefAnalysis
	if err := json.Unmarshal([]byte(data), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *analysisCache) Set(ctx context.Context, analysis *model.BriefAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(analysis.SessionID), data, c.ttl).Err()
}

func (c *analysisCache) Delete(ctx context.Context, sessionID string) error {
	return c.client.Del(ctx, c.key(sessionID)).Err()
}
