package models

// Order types. PACKAGE orders reference a tour package; TRANSPORT orders carry
// a transportation record plus its destinations.
const (
	OrderTypeTransport = "TRANSPORT"
	OrderTypePackage   = "PACKAGE"
)

type Order struct {
	ID              int64  `json:"id"`
	OrderType       string `json:"order_type"`
	FullName        string `json:"full_name"`
	PhoneNumber     string `json:"phone_number"`
	Email           string `json:"email"`
	TotalPassengers int    `json:"total_passengers"`
	Note            string `json:"note,omitempty"`
	TotalPrice      int64  `json:"total_price"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at,omitempty"`
}

// Transportation is the TRANSPORT-specific part of an order.
type Transportation struct {
	ID                  int64         `json:"id"`
	OrderID             int64         `json:"order_id"`
	VehicleTypeID       int64         `json:"vehicle_type_id"`
	VehicleCount        int           `json:"vehicle_count"`
	RoundTrip           bool          `json:"round_trip"`
	TotalDistanceMeters float64       `json:"total_distance_meters"`
	BasePrice           int64         `json:"base_price"`
	InterTripCharges    int64         `json:"inter_trip_charges"`
	Destinations        []Destination `json:"destinations,omitempty"`
}

// PackageOrder is the PACKAGE-specific part of an order.
type PackageOrder struct {
	ID            int64  `json:"id"`
	OrderID       int64  `json:"order_id"`
	TourPackageID int64  `json:"tour_package_id"`
	DepartureDate string `json:"departure_date"`
	Participants  int    `json:"participants"`
}
