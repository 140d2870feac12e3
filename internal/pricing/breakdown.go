package pricing

import (
	"sort"

	"transtour/internal/domain/models"
)

// TripDistance is the per-day distance entry of a breakdown.
type TripDistance struct {
	Date           string  `json:"date"`
	DistanceMeters float64 `json:"distance_meters"`
}

// PriceBreakdown is the result of a full price calculation. All amounts are
// whole Rupiah and TotalPrice = BasePrice + InterTripCharges exactly.
type PriceBreakdown struct {
	BasePrice        int64          `json:"base_price"`
	InterTripCharges int64          `json:"inter_trip_charges"`
	TotalPrice       int64          `json:"total_price"`
	PerTripDistances []TripDistance `json:"per_trip_distances"`
}

// CalculateTotalPrice prices a whole multi-day order. The tariff bills the
// aggregate distance across all trip-days, not per-day; the per-trip entries
// are informational great-circle sums so client and server render the same
// breakdown.
func CalculateTotalPrice(className string, totalDistanceKm float64, vehicleCount int, trips []models.Trip) PriceBreakdown {
	basePrice := TariffBasePrice(className, totalDistanceKm, vehicleCount)
	interTrip := InterTripCharges(trips)

	ordered := make([]models.Trip, len(trips))
	copy(ordered, trips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DepartureDate < ordered[j].DepartureDate
	})

	perTrip := make([]TripDistance, 0, len(ordered))
	for _, trip := range ordered {
		perTrip = append(perTrip, TripDistance{
			Date:           trip.DepartureDate,
			DistanceMeters: tripHaversineMeters(trip),
		})
	}

	return PriceBreakdown{
		BasePrice:        basePrice,
		InterTripCharges: interTrip,
		TotalPrice:       basePrice + interTrip,
		PerTripDistances: perTrip,
	}
}

// tripHaversineMeters sums consecutive-leg great-circle distances of one day.
func tripHaversineMeters(trip models.Trip) float64 {
	var km float64
	for i := 0; i < len(trip.Destinations)-1; i++ {
		km += HaversineKm(trip.Destinations[i].Coordinate, trip.Destinations[i+1].Coordinate)
	}
	return km * 1000
}
