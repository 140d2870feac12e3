package services

import (
	"context"
	"testing"

	"transtour/internal/domain"
	"transtour/internal/domain/models"
	"transtour/internal/repositories"
	"transtour/internal/routing"

	"github.com/DATA-DOG/go-sqlmock"
)

type fixedRouter struct {
	meters float64
}

func (p fixedRouter) Route(ctx context.Context, waypoints []models.Coordinate) (routing.Result, error) {
	return routing.Result{DistanceMeters: p.meters, DurationSeconds: p.meters / 10}, nil
}

func singleDayDestinations() []models.Destination {
	return []models.Destination{
		{Address: "Monas", Coordinate: models.Coordinate{Lat: -6.1754, Lng: 106.8272}, Sequence: 0, DepartureDate: "2026-10-01", IsPickupLocation: true},
		{Address: "Ancol", Coordinate: models.Coordinate{Lat: -6.1223, Lng: 106.8317}, Sequence: 1, DepartureDate: "2026-10-01"},
	}
}

func expectVehicleAngkot(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT id, name, seat_capacity, price_per_km").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "seat_capacity", "price_per_km", "image_url"}).
			AddRow(1, "Angkot", 12, 4100, ""))
}

// Angkot, satu hari, 20 km, 2 kendaraan: (150000 + 4100*20) * 1.2 * 2 = 556800.
const angkotTwoVehicles20Km = int64(556800)

func newGateService(vehicles repositories.VehicleTypeRepository, meters float64) OrderService {
	return OrderService{
		VehicleTypes: vehicles,
		Routes:       routing.NewAggregator(fixedRouter{meters: meters}, nil),
	}
}

func TestValidateTransportPricingAccepts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	expectVehicleAngkot(mock)

	svc := newGateService(repositories.VehicleTypeRepository{DB: db}, 20_000)

	got, err := svc.ValidateTransportPricing(context.Background(), singleDayDestinations(), 1, 2, 20_000, angkotTwoVehicles20Km)
	if err != nil {
		t.Fatalf("gate menolak angka yang persis sama: %v", err)
	}
	if got.Price != angkotTwoVehicles20Km {
		t.Fatalf("harga server salah: got %d want %d", got.Price, angkotTwoVehicles20Km)
	}
	if got.DistanceMeters != 20_000 {
		t.Fatalf("jarak server salah: got %f", got.DistanceMeters)
	}
	if got.InterTripCharges != 0 {
		t.Fatalf("satu hari seharusnya tanpa biaya antar-trip: %d", got.InterTripCharges)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestValidateTransportPricingToleranceBoundary(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)
	expectVehicleAngkot(mock)
	expectVehicleAngkot(mock)

	svc := newGateService(repositories.VehicleTypeRepository{DB: db}, 20_000)

	serverPrice := float64(angkotTwoVehicles20Km)

	// 9.9% di bawah toleransi 10%: lolos.
	within := int64(serverPrice * 1.099)
	if _, err := svc.ValidateTransportPricing(context.Background(), singleDayDestinations(), 1, 2, 20_000, within); err != nil {
		t.Fatalf("selisih 9.9%% harus lolos: %v", err)
	}

	// 11% di atas toleransi: ditolak dengan error harga bertipe.
	beyond := int64(serverPrice * 1.11)
	_, err = svc.ValidateTransportPricing(context.Background(), singleDayDestinations(), 1, 2, 20_000, beyond)
	if !domain.IsPriceValidation(err) {
		t.Fatalf("selisih 11%% harus PriceValidationError, got %v", err)
	}
}

func TestValidateTransportPricingDistanceMismatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	expectVehicleAngkot(mock)

	svc := newGateService(repositories.VehicleTypeRepository{DB: db}, 20_000)

	// Harga cocok, tapi klien mengaku 25 km: selisih jarak 25% ditolak.
	_, err = svc.ValidateTransportPricing(context.Background(), singleDayDestinations(), 1, 2, 25_000, angkotTwoVehicles20Km)
	if !domain.IsDistanceValidation(err) {
		t.Fatalf("selisih jarak 25%% harus DistanceValidationError, got %v", err)
	}
}

func TestValidateTransportPricingVehicleNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.ExpectQuery("SELECT id, name, seat_capacity, price_per_km").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "seat_capacity", "price_per_km", "image_url"}))

	svc := newGateService(repositories.VehicleTypeRepository{DB: db}, 20_000)

	_, err = svc.ValidateTransportPricing(context.Background(), singleDayDestinations(), 99, 1, 0, 0)
	if !domain.IsNotFound(err) {
		t.Fatalf("kendaraan tidak ada harus NotFoundError, got %v", err)
	}
}

func TestCreateTransportOrderRequiresValidDestinations(t *testing.T) {
	svc := OrderService{}

	req := TransportOrderRequest{
		FullName:     "Budi",
		PhoneNumber:  "0811",
		VehicleCount: 1,
		Destinations: []DestinationInput{dest("   ", "", 0)},
	}
	_, err := svc.CreateTransportOrder(context.Background(), req)
	if !domain.IsValidation(err) {
		t.Fatalf("tanpa destinasi valid harus ValidationError, got %v", err)
	}

	req.Destinations = nil
	if _, err := svc.CreateTransportOrder(context.Background(), req); !domain.IsValidation(err) {
		t.Fatalf("destinasi kosong harus ValidationError, got %v", err)
	}
}

func TestCreateTransportOrderPersistsServerFigures(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	expectVehicleAngkot(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO transportations").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec("INSERT INTO destinations").
		WillReturnResult(sqlmock.NewResult(30, 1))
	mock.ExpectExec("INSERT INTO destinations").
		WillReturnResult(sqlmock.NewResult(31, 1))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(40, 1))
	mock.ExpectCommit()

	svc := OrderService{
		VehicleTypes: repositories.VehicleTypeRepository{DB: db},
		Orders:       repositories.OrderRepository{DB: db},
		Routes:       routing.NewAggregator(fixedRouter{meters: 20_000}, nil),
	}

	inputs := make([]DestinationInput, 0, 2)
	for _, d := range singleDayDestinations() {
		inputs = append(inputs, DestinationInput{Destination: d})
	}

	// Harga klien sedikit meleset tapi masih dalam toleransi; yang tersimpan
	// tetap angka server.
	req := TransportOrderRequest{
		FullName:             "Budi Santoso",
		PhoneNumber:          "0811222333",
		VehicleTypeID:        1,
		VehicleCount:         2,
		ClientDistanceMeters: 20_500,
		ClientPrice:          angkotTwoVehicles20Km + 9_000,
		Destinations:         inputs,
	}

	detail, err := svc.CreateTransportOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("create transport order error: %v", err)
	}
	if detail.Order.TotalPrice != angkotTwoVehicles20Km {
		t.Fatalf("harga tersimpan harus angka server: got %d want %d", detail.Order.TotalPrice, angkotTwoVehicles20Km)
	}
	if detail.Transportation == nil || detail.Transportation.TotalDistanceMeters != 20_000 {
		t.Fatalf("jarak tersimpan harus angka server: %+v", detail.Transportation)
	}
	if detail.Payment == nil || detail.Payment.Status != models.PaymentStatusPending {
		t.Fatalf("pembayaran awal harus menunggu validasi: %+v", detail.Payment)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
