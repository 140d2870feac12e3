// Package pricing holds the pure pricing and validation core for transport
// orders. Everything here is deterministic: the same inputs always produce the
// same breakdown, which lets the client wizard and the server-side gate run
// the exact same figures.
package pricing

import (
	"math"

	"transtour/internal/domain/models"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees. NaN or out-of-range inputs propagate
// as NaN; callers guard via ValidateDistance.
func HaversineKm(a, b models.Coordinate) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
