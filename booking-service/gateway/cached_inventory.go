package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stagepass/booking-system/booking-service/domain"
)

const performanceCacheTTL = 5 * time.Minute

var _ domain.InventoryGateway = (*CachedInventoryGateway)(nil)

// CachedInventoryGateway wraps an InventoryGateway with a Redis
// read-through cache for performance lookups. Performance price and title
// change rarely; reservation calls always hit the upstream.
type CachedInventoryGateway struct {
	inner  domain.InventoryGateway
	cache  *redis.Client
	logger *logrus.Logger
}

// NewCachedInventoryGateway creates a new CachedInventoryGateway
func NewCachedInventoryGateway(inner domain.InventoryGateway, cache *redis.Client, logger *logrus.Logger) *CachedInventoryGateway {
	return &CachedInventoryGateway{inner: inner, cache: cache, logger: logger}
}

// GetPerformance returns the cached performance when present, falling back
// to the upstream service. Cache failures degrade to the upstream call.
func (g *CachedInventoryGateway) GetPerformance(ctx context.Context, performanceID int64, token string) (*domain.Performance, error) {
	key := performanceCacheKey(performanceID)

	cached, err := g.cache.Get(ctx, key).Result()
	if err == nil {
		var performance domain.Performance
		if err := json.Unmarshal([]byte(cached), &performance); err == nil {
			return &performance, nil
		}
	} else if err != redis.Nil {
		g.logger.WithError(err).Warn("performance cache read failed")
	}

	performance, err := g.inner.GetPerformance(ctx, performanceID, token)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(performance); err == nil {
		if err := g.cache.Set(ctx, key, encoded, performanceCacheTTL).Err(); err != nil {
			g.logger.WithError(err).Warn("performance cache write failed")
		}
	}

	return performance, nil
}

// Reserve delegates to the upstream inventory service
func (g *CachedInventoryGateway) Reserve(ctx context.Context, performanceID int64, seatCount int, token string) (*domain.Reservation, error) {
	return g.inner.Reserve(ctx, performanceID, seatCount, token)
}

// Confirm delegates to the upstream inventory service
func (g *CachedInventoryGateway) Confirm(ctx context.Context, performanceID, reservationID int64, token string) error {
	return g.inner.Confirm(ctx, performanceID, reservationID, token)
}

// Cancel delegates to the upstream inventory service
func (g *CachedInventoryGateway) Cancel(ctx context.Context, performanceID, reservationID int64, token string) error {
	return g.inner.Cancel(ctx, performanceID, reservationID, token)
}

// Refund delegates to the upstream inventory service
func (g *CachedInventoryGateway) Refund(ctx context.Context, performanceID, reservationID int64, token string) error {
	return g.inner.Refund(ctx, performanceID, reservationID, token)
}

func performanceCacheKey(performanceID int64) string {
	return fmt.Sprintf("performance:%d", performanceID)
}
