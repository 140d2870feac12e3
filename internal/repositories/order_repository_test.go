package repositories

import (
	"context"
	"errors"
	"testing"

	"transtour/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreatePackageOrderAtomic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO package_orders").
		WillReturnResult(sqlmock.NewResult(20, 1))
	mock.ExpectExec("INSERT INTO payments").
		WillReturnResult(sqlmock.NewResult(30, 1))
	mock.ExpectCommit()

	repo := OrderRepository{DB: db}
	order := models.Order{OrderType: models.OrderTypePackage, FullName: "Budi", TotalPrice: 2_500_000}
	po := models.PackageOrder{TourPackageID: 3, DepartureDate: "2026-10-01", Participants: 5}
	pay := models.Payment{Amount: 2_500_000, Status: models.PaymentStatusPending}

	detail, err := repo.CreatePackageOrder(context.Background(), order, po, pay)
	if err != nil {
		t.Fatalf("create package order error: %v", err)
	}
	if detail.Order.ID != 10 {
		t.Fatalf("order id tidak terisi: %+v", detail.Order)
	}
	if detail.PackageOrder == nil || detail.PackageOrder.ID != 20 || detail.PackageOrder.OrderID != 10 {
		t.Fatalf("package order tidak tertaut: %+v", detail.PackageOrder)
	}
	if detail.Payment == nil || detail.Payment.OrderID != 10 {
		t.Fatalf("payment tidak tertaut: %+v", detail.Payment)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateTransportOrderRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO transportations").
		WillReturnError(errors.New("kolom tidak dikenal"))
	mock.ExpectRollback()

	repo := OrderRepository{DB: db}
	tr := models.Transportation{VehicleTypeID: 1, VehicleCount: 1}

	_, err = repo.CreateTransportOrder(context.Background(), models.Order{FullName: "Budi"}, tr, models.Payment{})
	if err == nil {
		t.Fatalf("insert gagal harus mengembalikan error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
