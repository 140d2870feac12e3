package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "transtour/internal/config"
	"transtour/internal/domain"
	"transtour/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns payments, optionally filtered by status.
func (r PaymentRepository) List(status string) ([]models.Payment, error) {
	query := `
		SELECT id, order_id, amount, COALESCE(method, ''), status
		FROM payments
	`
	args := []any{}
	if status = strings.TrimSpace(status); status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Payment{}
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	var p models.Payment
	err := r.db().QueryRow(`
		SELECT id, order_id, amount, COALESCE(method, ''), status
		FROM payments WHERE id = ?
	`, id).Scan(&p.ID, &p.OrderID, &p.Amount, &p.Method, &p.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
		}
		return models.Payment{}, domain.InternalError{Err: err}
	}
	return p, nil
}

// Confirm marks a payment Lunas and moves the parent order along.
func (r PaymentRepository) Confirm(id int64) error {
	pay, err := r.GetByID(id)
	if err != nil {
		return err
	}
	if pay.Status == models.PaymentStatusConfirmed {
		return domain.ConflictError{Resource: "payment", Msg: "sudah divalidasi"}
	}

	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`UPDATE payments SET status = ? WHERE id = ?`, models.PaymentStatusConfirmed, id); err != nil {
		return domain.InternalError{Err: err}
	}
	if _, err := tx.Exec(`UPDATE orders SET status = 'Dikonfirmasi' WHERE id = ?`, pay.OrderID); err != nil {
		return domain.InternalError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
