package routing

import (
	"context"
	"log"
	"time"

	"transtour/internal/domain/models"
	"transtour/internal/pricing"
)

// fallbackSecondsPerKm estimates duration at ~50 km/h average.
const fallbackSecondsPerKm = 120.0

const defaultProviderTimeout = 5 * time.Second

// Aggregator computes the distance of one trip-day's waypoint list. The
// provider gets a single bounded attempt; any failure falls back to a
// great-circle estimate and is never surfaced to the caller.
type Aggregator struct {
	Provider Provider
	Cache    *RouteCache
	Timeout  time.Duration
}

func NewAggregator(provider Provider, cache *RouteCache) *Aggregator {
	return &Aggregator{Provider: provider, Cache: cache, Timeout: defaultProviderTimeout}
}

// RouteDistance returns total distance and duration for the ordered waypoints.
// Fewer than two waypoints yields a zero result.
func (a *Aggregator) RouteDistance(ctx context.Context, waypoints []models.Coordinate) Result {
	if len(waypoints) < 2 {
		return Result{}
	}

	if res, ok := a.Cache.Get(ctx, waypoints); ok {
		return res
	}

	if a.Provider != nil {
		timeout := a.Timeout
		if timeout <= 0 {
			timeout = defaultProviderTimeout
		}
		provCtx, cancel := context.WithTimeout(ctx, timeout)
		res, err := a.Provider.Route(provCtx, waypoints)
		cancel()
		if err == nil {
			a.Cache.Set(ctx, waypoints, res)
			return res
		}
		log.Printf("[ROUTING] provider gagal, pakai estimasi haversine: %v", err)
	}

	return haversineEstimate(waypoints)
}

// haversineEstimate sums consecutive-pair great-circle distances.
func haversineEstimate(waypoints []models.Coordinate) Result {
	var km float64
	for i := 0; i < len(waypoints)-1; i++ {
		km += pricing.HaversineKm(waypoints[i], waypoints[i+1])
	}
	return Result{
		DistanceMeters:  km * 1000,
		DurationSeconds: km * fallbackSecondsPerKm,
	}
}
