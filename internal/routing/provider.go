// Package routing resolves road-network distances for ordered waypoint lists,
// falling back to great-circle estimates when the external provider fails.
package routing

import (
	"context"

	"transtour/internal/domain/models"
)

// Result is a route's total distance and travel duration.
type Result struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Provider is the contract for an external routing backend. Implementations
// must honor the waypoint order exactly as given: trip order reflects user
// intent, not shortest path.
type Provider interface {
	Route(ctx context.Context, waypoints []models.Coordinate) (Result, error)
}
