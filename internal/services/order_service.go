package services

import (
	"context"
	"math"

	"transtour/internal/domain"
	"transtour/internal/domain/models"
	"transtour/internal/pricing"
	"transtour/internal/repositories"
	"transtour/internal/routing"
	"transtour/internal/utils"
)

const defaultTolerancePercent = 10.0

// OrderService owns order creation: it rebuilds the submitted trip plan,
// recomputes distance and price server-side, cross-checks the client figures,
// and only then persists. The client numbers themselves are never stored.
type OrderService struct {
	VehicleTypes repositories.VehicleTypeRepository
	Packages     repositories.TourPackageRepository
	Orders       repositories.OrderRepository
	Routes       *routing.Aggregator

	// TolerancePercent is the allowed drift between client and server
	// figures; zero means the default 10%.
	TolerancePercent float64

	// DefaultOffsetDays feeds the reconstruction default date.
	DefaultOffsetDays int

	RequestID string
}

// TransportOrderRequest is the decoded transport order form.
type TransportOrderRequest struct {
	FullName        string
	PhoneNumber     string
	Email           string
	TotalPassengers int
	Note            string

	VehicleTypeID int64
	VehicleCount  int
	RoundTrip     bool

	// Client-submitted figures, validated against the server's own.
	ClientDistanceMeters float64
	ClientPrice          int64

	Destinations []DestinationInput
}

// PackageOrderRequest is the decoded tour-package order payload.
type PackageOrderRequest struct {
	FullName      string `json:"fullName"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	Note          string `json:"note"`
	TourPackageID int64  `json:"tourPackageId"`
	DepartureDate string `json:"departureDate"`
	Participants  int    `json:"participants"`
}

// ValidatedTransportData carries the server-computed figures that get
// persisted instead of the client's.
type ValidatedTransportData struct {
	DistanceMeters   float64
	Price            int64
	BasePrice        int64
	InterTripCharges int64
	Breakdown        pricing.PriceBreakdown
	Trips            []models.Trip
}

func (s OrderService) tolerance() float64 {
	if s.TolerancePercent > 0 {
		return s.TolerancePercent
	}
	return defaultTolerancePercent
}

func (s OrderService) reconstructConfig() ReconstructConfig {
	return ReconstructConfig{DefaultOffsetDays: s.DefaultOffsetDays}
}

// ValidateTransportPricing is the server-side gate. It recomputes route
// distance per trip-day (road network with great-circle fallback), prices the
// whole order, and rejects when the client figures drift beyond tolerance.
func (s OrderService) ValidateTransportPricing(ctx context.Context, dests []models.Destination, vehicleTypeID int64, vehicleCount int, clientDistanceMeters float64, clientPrice int64) (ValidatedTransportData, error) {
	vt, err := s.VehicleTypes.GetByID(vehicleTypeID)
	if err != nil {
		return ValidatedTransportData{}, err
	}

	trips := GroupTrips(dests)

	var actualMeters float64
	for _, trip := range trips {
		waypoints := tripWaypoints(trip)
		// Hari dengan kurang dari 2 titik terpetakan tidak dihitung.
		if len(waypoints) < 2 {
			continue
		}
		res := s.Routes.RouteDistance(ctx, waypoints)
		actualMeters += res.DistanceMeters
	}

	breakdown := pricing.CalculateTotalPrice(vt.Name, actualMeters/1000, vehicleCount, trips)

	tol := s.tolerance() / 100

	if float64(abs64(breakdown.TotalPrice-clientPrice)) > tol*float64(breakdown.TotalPrice) {
		utils.LogEvent(s.RequestID, "order", "validate_price",
			"harga client di luar toleransi: server="+utils.FormatRupiah(breakdown.TotalPrice)+" client="+utils.FormatRupiah(clientPrice))
		return ValidatedTransportData{}, domain.PriceValidationError{Expected: breakdown.TotalPrice, Received: clientPrice}
	}

	if math.Abs(actualMeters-clientDistanceMeters) > tol*actualMeters {
		return ValidatedTransportData{}, domain.DistanceValidationError{ExpectedMeters: actualMeters, ReceivedMeters: clientDistanceMeters}
	}

	return ValidatedTransportData{
		DistanceMeters:   actualMeters,
		Price:            breakdown.TotalPrice,
		BasePrice:        breakdown.BasePrice,
		InterTripCharges: breakdown.InterTripCharges,
		Breakdown:        breakdown,
		Trips:            trips,
	}, nil
}

// CreateTransportOrder normalizes the submitted destinations, runs the
// validation gate, and persists order + transportation + destinations +
// payment atomically.
func (s OrderService) CreateTransportOrder(ctx context.Context, req TransportOrderRequest) (repositories.OrderDetail, error) {
	if utils.TrimOrEmpty(req.FullName) == "" {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "fullName", Msg: "wajib diisi"}
	}
	if utils.TrimOrEmpty(req.PhoneNumber) == "" {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "phoneNumber", Msg: "wajib diisi"}
	}
	if req.VehicleCount < 1 {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "vehicleCount", Msg: "minimal 1 kendaraan"}
	}

	dests := NormalizeDestinations(req.Destinations, s.reconstructConfig())
	if len(dests) == 0 {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "destinations", Msg: "tidak ada destinasi yang valid"}
	}

	validated, err := s.ValidateTransportPricing(ctx, dests, req.VehicleTypeID, req.VehicleCount, req.ClientDistanceMeters, req.ClientPrice)
	if err != nil {
		return repositories.OrderDetail{}, err
	}

	order := models.Order{
		OrderType:       models.OrderTypeTransport,
		FullName:        utils.TrimOrEmpty(req.FullName),
		PhoneNumber:     utils.NormalizePhone(req.PhoneNumber),
		Email:           utils.TrimOrEmpty(req.Email),
		TotalPassengers: req.TotalPassengers,
		Note:            utils.TrimOrEmpty(req.Note),
		TotalPrice:      validated.Price,
		Status:          "Menunggu Pembayaran",
	}
	tr := models.Transportation{
		VehicleTypeID:       req.VehicleTypeID,
		VehicleCount:        req.VehicleCount,
		RoundTrip:           req.RoundTrip,
		TotalDistanceMeters: validated.DistanceMeters,
		BasePrice:           validated.BasePrice,
		InterTripCharges:    validated.InterTripCharges,
		Destinations:        dests,
	}
	payment := models.Payment{
		Amount: validated.Price,
		Status: models.PaymentStatusPending,
	}

	detail, err := s.Orders.CreateTransportOrder(ctx, order, tr, payment)
	if err != nil {
		return repositories.OrderDetail{}, err
	}

	utils.LogEvent(s.RequestID, "order", "create_transport",
		"order dibuat, total="+utils.FormatRupiah(validated.Price))
	return detail, nil
}

// CreatePackageOrder books a tour package; the price is whatever the package
// costs times participants, never a client-submitted number.
func (s OrderService) CreatePackageOrder(ctx context.Context, req PackageOrderRequest) (repositories.OrderDetail, error) {
	if utils.TrimOrEmpty(req.FullName) == "" {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "fullName", Msg: "wajib diisi"}
	}
	if utils.TrimOrEmpty(req.PhoneNumber) == "" {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "phoneNumber", Msg: "wajib diisi"}
	}
	if req.Participants < 1 {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "participants", Msg: "minimal 1 peserta"}
	}
	if _, err := utils.ParseDate(req.DepartureDate); err != nil {
		return repositories.OrderDetail{}, domain.ValidationError{Field: "departureDate", Msg: "format tanggal harus YYYY-MM-DD"}
	}

	pkg, err := s.Packages.GetByID(req.TourPackageID)
	if err != nil {
		return repositories.OrderDetail{}, err
	}

	total := pkg.Price * int64(req.Participants)
	order := models.Order{
		OrderType:       models.OrderTypePackage,
		FullName:        utils.TrimOrEmpty(req.FullName),
		PhoneNumber:     utils.NormalizePhone(req.PhoneNumber),
		Email:           utils.TrimOrEmpty(req.Email),
		TotalPassengers: req.Participants,
		Note:            utils.TrimOrEmpty(req.Note),
		TotalPrice:      total,
		Status:          "Menunggu Pembayaran",
	}
	po := models.PackageOrder{
		TourPackageID: pkg.ID,
		DepartureDate: req.DepartureDate,
		Participants:  req.Participants,
	}
	payment := models.Payment{
		Amount: total,
		Status: models.PaymentStatusPending,
	}

	return s.Orders.CreatePackageOrder(ctx, order, po, payment)
}

// QuoteResult is the shared pricing output the order wizard renders; the gate
// later recomputes the exact same figures.
type QuoteResult struct {
	VehicleType     models.VehicleType     `json:"vehicle_type"`
	DistanceMeters  float64                `json:"distance_meters"`
	DurationSeconds float64                `json:"duration_seconds"`
	Breakdown       pricing.PriceBreakdown `json:"breakdown"`
	Trips           []models.Trip          `json:"trips"`
}

// Quote prices a draft trip plan without persisting anything.
func (s OrderService) Quote(ctx context.Context, vehicleTypeID int64, vehicleCount int, inputs []DestinationInput) (QuoteResult, error) {
	vt, err := s.VehicleTypes.GetByID(vehicleTypeID)
	if err != nil {
		return QuoteResult{}, err
	}
	if vehicleCount < 1 {
		vehicleCount = 1
	}

	dests := NormalizeDestinations(inputs, s.reconstructConfig())
	if len(dests) == 0 {
		return QuoteResult{}, domain.ValidationError{Field: "destinations", Msg: "tidak ada destinasi yang valid"}
	}

	trips := GroupTrips(dests)
	var meters, seconds float64
	for _, trip := range trips {
		waypoints := tripWaypoints(trip)
		if len(waypoints) < 2 {
			continue
		}
		res := s.Routes.RouteDistance(ctx, waypoints)
		meters += res.DistanceMeters
		seconds += res.DurationSeconds
	}

	breakdown := pricing.CalculateTotalPrice(vt.Name, meters/1000, vehicleCount, trips)

	return QuoteResult{
		VehicleType:     vt,
		DistanceMeters:  meters,
		DurationSeconds: seconds,
		Breakdown:       breakdown,
		Trips:           trips,
	}, nil
}

// tripWaypoints picks the coordinates of destinations that actually resolved
// on the map; rows left at the zero coordinate are not routable.
func tripWaypoints(trip models.Trip) []models.Coordinate {
	out := make([]models.Coordinate, 0, len(trip.Destinations))
	for _, d := range trip.Destinations {
		if d.Coordinate.Lat == 0 && d.Coordinate.Lng == 0 {
			continue
		}
		out = append(out, d.Coordinate)
	}
	return out
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
