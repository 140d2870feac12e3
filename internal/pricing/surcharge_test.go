package pricing

import (
	"math"
	"testing"

	"transtour/internal/domain/models"
)

func TestSurchargeForGapThresholds(t *testing.T) {
	cases := []struct {
		gapKm float64
		want  int64
	}{
		{0, 0},
		{49.9, 0},
		{50, 0},
		{50.1, 50000},
		{60, 50000},
		{60.1, 100000},
		{65, 100000},
		{70, 100000},
		{70.1, 150000},
		{math.NaN(), 0},
	}
	for _, c := range cases {
		if got := surchargeForGap(c.gapKm); got != c.want {
			t.Fatalf("surchargeForGap(%v) = %d, want %d", c.gapKm, got, c.want)
		}
	}
}

func TestInterTripChargesAdjacentDaysOnly(t *testing.T) {
	// Hari 1 berakhir di Jakarta, hari 2 mulai di Bandung (>50 km): kena biaya.
	// Hari 2 berakhir dan hari 3 mulai di titik yang sama: gratis.
	trips := []models.Trip{
		{
			DepartureDate: "2026-10-01",
			Destinations: []models.Destination{
				{Address: "Monas", Coordinate: coordJakarta},
			},
		},
		{
			DepartureDate: "2026-10-02",
			Destinations: []models.Destination{
				{Address: "Gedung Sate", Coordinate: coordBandung},
			},
		},
		{
			DepartureDate: "2026-10-03",
			Destinations: []models.Destination{
				{Address: "Braga", Coordinate: coordBandung},
			},
		},
	}

	gap := HaversineKm(coordJakarta, coordBandung)
	want := surchargeForGap(gap)
	if want <= 0 {
		t.Fatalf("Jakarta-Bandung seharusnya melebihi radius gratis (gap %f km)", gap)
	}

	if got := InterTripCharges(trips); got != want {
		t.Fatalf("InterTripCharges = %d, want %d", got, want)
	}
}

func TestInterTripChargesOrdersByDate(t *testing.T) {
	early := models.Trip{
		DepartureDate: "2026-10-01",
		Destinations:  []models.Destination{{Address: "Monas", Coordinate: coordJakarta}},
	}
	late := models.Trip{
		DepartureDate: "2026-10-02",
		Destinations:  []models.Destination{{Address: "Gedung Sate", Coordinate: coordBandung}},
	}

	a := InterTripCharges([]models.Trip{early, late})
	b := InterTripCharges([]models.Trip{late, early})
	if a != b {
		t.Fatalf("urutan input mempengaruhi hasil: %d vs %d", a, b)
	}
}

func TestInterTripChargesSkipsEmptyTrips(t *testing.T) {
	trips := []models.Trip{
		{DepartureDate: "2026-10-01", Destinations: []models.Destination{{Address: "Monas", Coordinate: coordJakarta}}},
		{DepartureDate: "2026-10-02"},
	}
	if got := InterTripCharges(trips); got != 0 {
		t.Fatalf("trip kosong seharusnya dilewati, got %d", got)
	}

	if got := InterTripCharges(nil); got != 0 {
		t.Fatalf("tanpa trip seharusnya 0, got %d", got)
	}
}
