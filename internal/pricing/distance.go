package pricing

import (
	"math"

	"transtour/internal/domain"
)

// Distance sanity bounds in kilometres. The upper bound is country-scale and
// catches obviously corrupt geocoding (antipodal point bugs) before pricing.
const (
	MinDistanceKm = 0.1
	MaxDistanceKm = 2000.0
)

// ValidateDistance is a coarse sanity filter, independent of the tolerance
// cross-check in the validation gate.
func ValidateDistance(distanceKm float64) error {
	switch {
	case math.IsNaN(distanceKm):
		return domain.ValidationError{Field: "distance", Msg: "jarak bukan angka"}
	case distanceKm < 0:
		return domain.ValidationError{Field: "distance", Msg: "jarak tidak boleh negatif"}
	case distanceKm < MinDistanceKm:
		return domain.ValidationError{Field: "distance", Msg: "jarak terlalu pendek (minimal 0.1 km)"}
	case distanceKm > MaxDistanceKm:
		return domain.ValidationError{Field: "distance", Msg: "jarak melebihi batas wajar (2000 km)"}
	}
	return nil
}
