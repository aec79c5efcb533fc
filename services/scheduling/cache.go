package scheduling

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"mindloo/models"
	"mindloo/utils"
)

// Read caching for the availability/unavailability GET endpoints. The booking
// path never reads through the cache: conflict checks must see the store as
// it is under the therapist lock. A nil Cache disables everything here.

const (
	availabilityCachePrefix   = "availability:"
	unavailabilityCachePrefix = "unavailability:"
)

// WithCache attaches a redis client used to cache schedule reads.
func (s *DefaultSchedulingService) WithCache(client *redis.Client, ttl time.Duration) *DefaultSchedulingService {
	s.Cache = client
	s.CacheTTL = ttl
	return s
}

func (s *DefaultSchedulingService) cacheGet(ctx context.Context, key string, out any) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		utils.GetLogger().Warn("dropping unreadable cache entry", zap.String("key", key), zap.Error(err))
		s.Cache.Del(ctx, key)
		return false
	}
	return true
}

func (s *DefaultSchedulingService) cacheSet(ctx context.Context, key string, doc any) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, s.CacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache schedule read", zap.String("key", key), zap.Error(err))
	}
}

func (s *DefaultSchedulingService) invalidateAvailability(ctx context.Context, therapistID string) {
	if s.Cache != nil {
		s.Cache.Del(ctx, availabilityCachePrefix+therapistID)
	}
}

func (s *DefaultSchedulingService) invalidateUnavailability(ctx context.Context, therapistID string) {
	if s.Cache != nil {
		s.Cache.Del(ctx, unavailabilityCachePrefix+therapistID)
	}
}

func (s *DefaultSchedulingService) cachedAvailability(ctx context.Context, therapistID string) *models.TherapistAvailability {
	var doc models.TherapistAvailability
	if s.cacheGet(ctx, availabilityCachePrefix+therapistID, &doc) {
		return &doc
	}
	return nil
}

func (s *DefaultSchedulingService) cachedUnavailability(ctx context.Context, therapistID string) *models.TherapistUnavailability {
	var doc models.TherapistUnavailability
	if s.cacheGet(ctx, unavailabilityCachePrefix+therapistID, &doc) {
		return &doc
	}
	return nil
}
