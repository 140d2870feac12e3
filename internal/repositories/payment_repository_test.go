package repositories

import (
	"testing"

	"transtour/internal/domain"
	"transtour/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func paymentRows(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "order_id", "amount", "method", "status"}).
		AddRow(1, 10, 556800, "transfer", status)
}

func TestPaymentConfirmUpdatesPaymentAndOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, order_id, amount").
		WithArgs(int64(1)).
		WillReturnRows(paymentRows(models.PaymentStatusPending))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE payments SET status").
		WithArgs(models.PaymentStatusConfirmed, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := PaymentRepository{DB: db}
	if err := repo.Confirm(1); err != nil {
		t.Fatalf("confirm error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPaymentConfirmTwiceIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, order_id, amount").
		WithArgs(int64(1)).
		WillReturnRows(paymentRows(models.PaymentStatusConfirmed))

	repo := PaymentRepository{DB: db}
	if err := repo.Confirm(1); !domain.IsConflict(err) {
		t.Fatalf("pembayaran Lunas harus ConflictError, got %v", err)
	}
}

func TestPaymentGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, order_id, amount").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "amount", "method", "status"}))

	repo := PaymentRepository{DB: db}
	if _, err := repo.GetByID(404); !domain.IsNotFound(err) {
		t.Fatalf("payment hilang harus NotFoundError, got %v", err)
	}
}
