package routing

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"transtour/internal/domain/models"
)

// GoogleProvider resolves routes with the Google Maps Directions API.
type GoogleProvider struct {
	client *maps.Client
}

// NewGoogleProvider creates a provider with the given API key.
func NewGoogleProvider(apiKey string) (*GoogleProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleProvider{client: client}, nil
}

// Route requests driving directions from the first to the last waypoint with
// the intermediate stops as fixed via-points. Waypoint optimization stays off
// so the returned legs follow the submitted order. Distance and duration are
// summed over every leg.
func (p *GoogleProvider) Route(ctx context.Context, waypoints []models.Coordinate) (Result, error) {
	if len(waypoints) < 2 {
		return Result{}, nil
	}

	via := make([]string, 0, len(waypoints)-2)
	for _, w := range waypoints[1 : len(waypoints)-1] {
		via = append(via, formatLatLng(w))
	}

	r := &maps.DirectionsRequest{
		Origin:      formatLatLng(waypoints[0]),
		Destination: formatLatLng(waypoints[len(waypoints)-1]),
		Waypoints:   via,
		Optimize:    false,
		Mode:        maps.TravelModeDriving,
		Region:      "ID", // bias results to Indonesia
	}

	routes, _, err := p.client.Directions(ctx, r)
	if err != nil {
		return Result{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return Result{}, fmt.Errorf("no route found")
	}

	var out Result
	for _, leg := range routes[0].Legs {
		out.DistanceMeters += float64(leg.Distance.Meters)
		out.DurationSeconds += leg.Duration.Seconds()
	}
	return out, nil
}

func formatLatLng(c models.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}
