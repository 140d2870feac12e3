package pricing

import (
	"math"
	"sort"

	"transtour/internal/domain/models"
)

// Inter-trip surcharge parameters: repositioning the fleet between
// non-contiguous trip-days is free within 50 km, then Rp50.000 per started
// 10 km beyond that.
const (
	FreeRadiusKm        = 50.0
	SurchargeStepKm     = 10.0
	SurchargePerStepIDR = 50_000
)

// InterTripCharges sums the repositioning surcharge over adjacent trip-day
// pairs, taken in ascending date order. The gap is the great-circle distance
// from the last destination of the earlier day to the first destination of
// the later day. Days without destinations are skipped silently.
func InterTripCharges(trips []models.Trip) int64 {
	if len(trips) < 2 {
		return 0
	}

	ordered := make([]models.Trip, len(trips))
	copy(ordered, trips)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].DepartureDate < ordered[j].DepartureDate
	})

	var total int64
	for i := 0; i < len(ordered)-1; i++ {
		from := ordered[i].Last()
		to := ordered[i+1].First()
		if from == nil || to == nil {
			continue
		}

		total += surchargeForGap(HaversineKm(from.Coordinate, to.Coordinate))
	}
	return total
}

func surchargeForGap(gapKm float64) int64 {
	if math.IsNaN(gapKm) || gapKm <= FreeRadiusKm {
		return 0
	}
	steps := math.Ceil((gapKm - FreeRadiusKm) / SurchargeStepKm)
	return int64(steps) * SurchargePerStepIDR
}
