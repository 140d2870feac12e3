package models

// VehicleType mirrors the vehicle_types table (tariff profile + kapasitas).
type VehicleType struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	SeatCapacity int    `json:"seat_capacity"`
	PricePerKm   int64  `json:"price_per_km"`
	ImageURL     string `json:"image_url,omitempty"`
}
