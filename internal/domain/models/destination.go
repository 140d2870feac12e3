package models

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Destination is a single stop inside a trip-day. Sequence is dense and
// zero-based after normalization, unique across the whole order.
type Destination struct {
	ID               int64      `json:"id,omitempty"`
	Address          string     `json:"address"`
	Coordinate       Coordinate `json:"coordinate"`
	ArrivalTime      string     `json:"arrival_time,omitempty"` // HH:MM, optional
	IsPickupLocation bool       `json:"is_pickup_location"`
	Sequence         int        `json:"sequence"`
	DepartureDate    string     `json:"departure_date"` // YYYY-MM-DD
	DepartureTime    string     `json:"departure_time,omitempty"`
}

// Trip groups the destinations of one departure date, ordered by sequence.
type Trip struct {
	DepartureDate string        `json:"departure_date"`
	StartTime     string        `json:"start_time,omitempty"`
	Destinations  []Destination `json:"destinations"`
}

// First returns the lowest-sequence destination of the trip, nil when empty.
func (t Trip) First() *Destination {
	if len(t.Destinations) == 0 {
		return nil
	}
	return &t.Destinations[0]
}

// Last returns the highest-sequence destination of the trip, nil when empty.
func (t Trip) Last() *Destination {
	if len(t.Destinations) == 0 {
		return nil
	}
	return &t.Destinations[len(t.Destinations)-1]
}
