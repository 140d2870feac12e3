package routing

import (
	"context"
	"errors"
	"testing"

	"transtour/internal/domain/models"
)

type stubProvider struct {
	res   Result
	err   error
	calls int
}

func (p *stubProvider) Route(ctx context.Context, waypoints []models.Coordinate) (Result, error) {
	p.calls++
	return p.res, p.err
}

var (
	wpJakarta = models.Coordinate{Lat: -6.2088, Lng: 106.8456}
	wpBandung = models.Coordinate{Lat: -6.9175, Lng: 107.6191}
)

func TestRouteDistanceUsesProviderResult(t *testing.T) {
	prov := &stubProvider{res: Result{DistanceMeters: 151000, DurationSeconds: 9000}}
	agg := NewAggregator(prov, nil)

	got := agg.RouteDistance(context.Background(), []models.Coordinate{wpJakarta, wpBandung})
	if got != prov.res {
		t.Fatalf("hasil provider tidak diteruskan: %+v", got)
	}
	if prov.calls != 1 {
		t.Fatalf("provider dipanggil %d kali, want 1", prov.calls)
	}
}

func TestRouteDistanceFallsBackOnProviderError(t *testing.T) {
	prov := &stubProvider{err: errors.New("over query limit")}
	agg := NewAggregator(prov, nil)

	got := agg.RouteDistance(context.Background(), []models.Coordinate{wpJakarta, wpBandung})
	if got.DistanceMeters <= 0 {
		t.Fatalf("fallback haversine harus positif untuk titik berbeda, got %f", got.DistanceMeters)
	}
	// Garis lurus Jakarta-Bandung sekitar 116 km.
	if got.DistanceMeters < 110_000 || got.DistanceMeters > 125_000 {
		t.Fatalf("estimasi fallback di luar rentang wajar: %f m", got.DistanceMeters)
	}
	if got.DurationSeconds <= 0 {
		t.Fatalf("durasi fallback harus positif, got %f", got.DurationSeconds)
	}
	if prov.calls != 1 {
		t.Fatalf("provider harus dicoba tepat sekali, got %d", prov.calls)
	}
}

func TestRouteDistanceWithoutProvider(t *testing.T) {
	agg := NewAggregator(nil, nil)

	got := agg.RouteDistance(context.Background(), []models.Coordinate{wpJakarta, wpBandung})
	if got.DistanceMeters <= 0 {
		t.Fatalf("tanpa provider harus tetap menghasilkan estimasi, got %f", got.DistanceMeters)
	}
}

func TestRouteDistanceTooFewWaypoints(t *testing.T) {
	prov := &stubProvider{res: Result{DistanceMeters: 1}}
	agg := NewAggregator(prov, nil)

	if got := agg.RouteDistance(context.Background(), []models.Coordinate{wpJakarta}); got != (Result{}) {
		t.Fatalf("satu waypoint seharusnya hasil nol, got %+v", got)
	}
	if got := agg.RouteDistance(context.Background(), nil); got != (Result{}) {
		t.Fatalf("tanpa waypoint seharusnya hasil nol, got %+v", got)
	}
	if prov.calls != 0 {
		t.Fatalf("provider tidak boleh dipanggil untuk <2 waypoint")
	}
}
