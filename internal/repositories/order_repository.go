package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "transtour/internal/config"
	"transtour/internal/domain"
	"transtour/internal/domain/models"
)

type OrderRepository struct {
	DB *sql.DB
}

func (r OrderRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// OrderDetail bundles an order with its type-specific records.
type OrderDetail struct {
	Order          models.Order           `json:"order"`
	Transportation *models.Transportation `json:"transportation,omitempty"`
	PackageOrder   *models.PackageOrder   `json:"package_order,omitempty"`
	Payment        *models.Payment        `json:"payment,omitempty"`
}

// CreateTransportOrder persists order + transportation + destinations +
// payment in one transaction. Any error rolls the whole thing back; no
// partial order is ever visible.
func (r OrderRepository) CreateTransportOrder(ctx context.Context, order models.Order, tr models.Transportation, payment models.Payment) (OrderDetail, error) {
	db := r.db()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_type, full_name, phone_number, email, total_passengers, note, total_price, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, order.OrderType, order.FullName, order.PhoneNumber, order.Email, order.TotalPassengers, order.Note, order.TotalPrice, order.Status)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	order.ID = orderID

	res, err = tx.ExecContext(ctx, `
		INSERT INTO transportations (order_id, vehicle_type_id, vehicle_count, round_trip, total_distance_meters, base_price, inter_trip_charges)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, orderID, tr.VehicleTypeID, tr.VehicleCount, tr.RoundTrip, tr.TotalDistanceMeters, tr.BasePrice, tr.InterTripCharges)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	trID, err := res.LastInsertId()
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	tr.ID = trID
	tr.OrderID = orderID

	for _, d := range tr.Destinations {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO destinations (transportation_id, address, lat, lng, arrival_time, is_pickup_location, sequence, departure_date, departure_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, trID, d.Address, d.Coordinate.Lat, d.Coordinate.Lng, nullIfEmpty(d.ArrivalTime), d.IsPickupLocation, d.Sequence, d.DepartureDate, nullIfEmpty(d.DepartureTime)); err != nil {
			return OrderDetail{}, domain.InternalError{Err: err}
		}
	}

	res, err = tx.ExecContext(ctx, `
		INSERT INTO payments (order_id, amount, method, status)
		VALUES (?, ?, ?, ?)
	`, orderID, payment.Amount, payment.Method, payment.Status)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	payID, err := res.LastInsertId()
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	payment.ID = payID
	payment.OrderID = orderID

	if err := tx.Commit(); err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}

	return OrderDetail{Order: order, Transportation: &tr, Payment: &payment}, nil
}

// CreatePackageOrder persists order + package order + payment atomically.
func (r OrderRepository) CreatePackageOrder(ctx context.Context, order models.Order, po models.PackageOrder, payment models.Payment) (OrderDetail, error) {
	db := r.db()
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO orders (order_type, full_name, phone_number, email, total_passengers, note, total_price, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
	`, order.OrderType, order.FullName, order.PhoneNumber, order.Email, order.TotalPassengers, order.Note, order.TotalPrice, order.Status)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	orderID, err := res.LastInsertId()
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	order.ID = orderID

	res, err = tx.ExecContext(ctx, `
		INSERT INTO package_orders (order_id, tour_package_id, departure_date, participants)
		VALUES (?, ?, ?, ?)
	`, orderID, po.TourPackageID, po.DepartureDate, po.Participants)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	poID, err := res.LastInsertId()
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	po.ID = poID
	po.OrderID = orderID

	res, err = tx.ExecContext(ctx, `
		INSERT INTO payments (order_id, amount, method, status)
		VALUES (?, ?, ?, ?)
	`, orderID, payment.Amount, payment.Method, payment.Status)
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	payID, err := res.LastInsertId()
	if err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}
	payment.ID = payID
	payment.OrderID = orderID

	if err := tx.Commit(); err != nil {
		return OrderDetail{}, domain.InternalError{Err: err}
	}

	return OrderDetail{Order: order, PackageOrder: &po, Payment: &payment}, nil
}

// List returns orders newest-first with optional name/phone search.
func (r OrderRepository) List(q string, page, limit int) ([]models.Order, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}

	query := `
		SELECT id, order_type, full_name, phone_number, COALESCE(email, ''), total_passengers, COALESCE(note, ''), total_price, status,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM orders
	`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += " WHERE (full_name LIKE ? OR phone_number LIKE ?)"
		like := "%" + q + "%"
		args = append(args, like, like)
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.OrderType, &o.FullName, &o.PhoneNumber, &o.Email, &o.TotalPassengers, &o.Note, &o.TotalPrice, &o.Status, &o.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// GetByID loads an order plus its transportation/package and payment records.
func (r OrderRepository) GetByID(id int64) (OrderDetail, error) {
	if id <= 0 {
		return OrderDetail{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	db := r.db()

	var detail OrderDetail
	err := db.QueryRow(`
		SELECT id, order_type, full_name, phone_number, COALESCE(email, ''), total_passengers, COALESCE(note, ''), total_price, status,
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM orders WHERE id = ?
	`, id).Scan(&detail.Order.ID, &detail.Order.OrderType, &detail.Order.FullName, &detail.Order.PhoneNumber,
		&detail.Order.Email, &detail.Order.TotalPassengers, &detail.Order.Note, &detail.Order.TotalPrice,
		&detail.Order.Status, &detail.Order.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderDetail{}, domain.NotFoundError{Resource: "order", Err: err}
		}
		return OrderDetail{}, domain.InternalError{Err: err}
	}

	if detail.Order.OrderType == models.OrderTypeTransport {
		tr, err := r.loadTransportation(id)
		if err == nil {
			detail.Transportation = &tr
		} else if !domain.IsNotFound(err) {
			return OrderDetail{}, err
		}
	} else {
		var po models.PackageOrder
		err := db.QueryRow(`
			SELECT id, order_id, tour_package_id, departure_date, participants
			FROM package_orders WHERE order_id = ?
		`, id).Scan(&po.ID, &po.OrderID, &po.TourPackageID, &po.DepartureDate, &po.Participants)
		if err == nil {
			detail.PackageOrder = &po
		} else if !errors.Is(err, sql.ErrNoRows) {
			return OrderDetail{}, domain.InternalError{Err: err}
		}
	}

	var pay models.Payment
	err = db.QueryRow(`
		SELECT id, order_id, amount, COALESCE(method, ''), status
		FROM payments WHERE order_id = ? ORDER BY id DESC LIMIT 1
	`, id).Scan(&pay.ID, &pay.OrderID, &pay.Amount, &pay.Method, &pay.Status)
	if err == nil {
		detail.Payment = &pay
	} else if !errors.Is(err, sql.ErrNoRows) {
		return OrderDetail{}, domain.InternalError{Err: err}
	}

	return detail, nil
}

func (r OrderRepository) loadTransportation(orderID int64) (models.Transportation, error) {
	db := r.db()

	var tr models.Transportation
	err := db.QueryRow(`
		SELECT id, order_id, vehicle_type_id, vehicle_count, round_trip, total_distance_meters, base_price, inter_trip_charges
		FROM transportations WHERE order_id = ?
	`, orderID).Scan(&tr.ID, &tr.OrderID, &tr.VehicleTypeID, &tr.VehicleCount, &tr.RoundTrip,
		&tr.TotalDistanceMeters, &tr.BasePrice, &tr.InterTripCharges)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Transportation{}, domain.NotFoundError{Resource: "transportation", Err: err}
		}
		return models.Transportation{}, domain.InternalError{Err: err}
	}

	rows, err := db.Query(`
		SELECT address, lat, lng, COALESCE(arrival_time, ''), is_pickup_location, sequence, departure_date, COALESCE(departure_time, '')
		FROM destinations WHERE transportation_id = ? ORDER BY sequence
	`, tr.ID)
	if err != nil {
		return models.Transportation{}, domain.InternalError{Err: err}
	}
	defer rows.Close()

	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.Address, &d.Coordinate.Lat, &d.Coordinate.Lng, &d.ArrivalTime, &d.IsPickupLocation, &d.Sequence, &d.DepartureDate, &d.DepartureTime); err != nil {
			return models.Transportation{}, domain.InternalError{Err: err}
		}
		tr.Destinations = append(tr.Destinations, d)
	}
	return tr, rows.Err()
}
