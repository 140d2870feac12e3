package routing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"transtour/internal/domain/models"
)

const routeCacheTTL = time.Hour

// RouteCache keeps resolved route results in Redis so repeated quote requests
// for the same waypoints skip the external provider. Cache failures are never
// surfaced; a broken cache just means more provider calls.
type RouteCache struct {
	client *redis.Client
}

func NewRouteCache(addr string) *RouteCache {
	if strings.TrimSpace(addr) == "" {
		return nil
	}
	return &RouteCache{client: redis.NewClient(&redis.Options{Addr: addr})}
}

func (c *RouteCache) Get(ctx context.Context, waypoints []models.Coordinate) (Result, bool) {
	if c == nil || c.client == nil {
		return Result{}, false
	}
	val, err := c.client.Get(ctx, routeCacheKey(waypoints)).Result()
	if err != nil {
		return Result{}, false
	}
	var out Result
	if _, err := fmt.Sscanf(val, "%f|%f", &out.DistanceMeters, &out.DurationSeconds); err != nil {
		return Result{}, false
	}
	return out, true
}

func (c *RouteCache) Set(ctx context.Context, waypoints []models.Coordinate, res Result) {
	if c == nil || c.client == nil {
		return
	}
	val := fmt.Sprintf("%f|%f", res.DistanceMeters, res.DurationSeconds)
	_ = c.client.Set(ctx, routeCacheKey(waypoints), val, routeCacheTTL).Err()
}

// routeCacheKey rounds coordinates to 5 decimals (~1 m) so map-picker jitter
// still hits the cache.
func routeCacheKey(waypoints []models.Coordinate) string {
	var b strings.Builder
	b.WriteString("route:")
	for i, w := range waypoints {
		if i > 0 {
			b.WriteByte(';')
		}
		fmt.Fprintf(&b, "%.5f,%.5f", w.Lat, w.Lng)
	}
	return b.String()
}
