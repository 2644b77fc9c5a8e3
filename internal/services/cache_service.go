package services

import (
	"context"
	"encoding/json"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/models"
	"github.com/freightlink/profile-api/internal/observability"
	"github.com/redis/go-redis/v9"
)

// CacheService caches canonical driver profiles in Redis. Writes to the
// store always invalidate; reads repopulate on miss.
type CacheService struct{}

// NewCacheService creates a new cache service
func NewCacheService() *CacheService {
	return &CacheService{}
}

func profileCacheKey(driverID string) string {
	return "driver:profile:" + driverID
}

// GetProfile returns the cached canonical profile, or nil on miss
func (s *CacheService) GetProfile(ctx context.Context, driverID string) (*models.DriverProfile, error) {
	data, err := config.Redis.Get(ctx, profileCacheKey(driverID)).Result()
	if err == redis.Nil {
		observability.CacheHits.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile models.DriverProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		// A corrupt cache entry is treated as a miss; the store is the
		// source of truth.
		observability.CacheHits.WithLabelValues("corrupt").Inc()
		return nil, nil
	}

	observability.CacheHits.WithLabelValues("hit").Inc()
	return &profile, nil
}

// SetProfile stores the canonical profile with the configured TTL
func (s *CacheService) SetProfile(ctx context.Context, profile *models.DriverProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return config.Redis.Set(ctx, profileCacheKey(profile.DriverID), data, config.AppConfig.RedisTTL).Err()
}

// InvalidateProfile drops the cached profile after a write
func (s *CacheService) InvalidateProfile(ctx context.Context, driverID string) error {
	return config.Redis.Del(ctx, profileCacheKey(driverID)).Err()
}
