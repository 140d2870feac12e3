package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "transtour/internal/config"
	intdb "transtour/internal/db"
	"transtour/internal/domain"
	"transtour/internal/domain/models"
)

type VehicleTypeRepository struct {
	DB *sql.DB
}

func (r VehicleTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetByID fetches one vehicle type; missing id is a NotFoundError.
func (r VehicleTypeRepository) GetByID(id int64) (models.VehicleType, error) {
	if id <= 0 {
		return models.VehicleType{}, domain.ValidationError{Field: "vehicle_type_id", Msg: "id tidak valid"}
	}

	var vt models.VehicleType
	var image sql.NullString
	err := r.db().QueryRow(`
		SELECT id, name, seat_capacity, price_per_km, COALESCE(image_url, '')
		FROM vehicle_types
		WHERE id = ?
	`, id).Scan(&vt.ID, &vt.Name, &vt.SeatCapacity, &vt.PricePerKm, &image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VehicleType{}, domain.NotFoundError{Resource: "vehicle type", Err: err}
		}
		return models.VehicleType{}, domain.InternalError{Err: err}
	}
	if image.Valid {
		vt.ImageURL = image.String
	}
	return vt, nil
}

// List returns vehicle types filtered by an optional name fragment.
func (r VehicleTypeRepository) List(q string) ([]models.VehicleType, error) {
	query := `
		SELECT id, name, seat_capacity, price_per_km, COALESCE(image_url, '')
		FROM vehicle_types
	`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += " WHERE name LIKE ?"
		args = append(args, "%"+q+"%")
	}
	query += " ORDER BY id"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.VehicleType{}
	for rows.Next() {
		var vt models.VehicleType
		if err := rows.Scan(&vt.ID, &vt.Name, &vt.SeatCapacity, &vt.PricePerKm, &vt.ImageURL); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, vt)
	}
	return list, rows.Err()
}

func (r VehicleTypeRepository) Create(vt models.VehicleType) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicle_types (name, seat_capacity, price_per_km, image_url)
		VALUES (?, ?, ?, ?)
	`, vt.Name, vt.SeatCapacity, vt.PricePerKm, nullIfEmpty(vt.ImageURL))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r VehicleTypeRepository) Update(id int64, vt models.VehicleType) error {
	res, err := r.db().Exec(`
		UPDATE vehicle_types
		SET name = ?, seat_capacity = ?, price_per_km = ?, image_url = ?
		WHERE id = ?
	`, vt.Name, vt.SeatCapacity, vt.PricePerKm, nullIfEmpty(vt.ImageURL), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "vehicle type"}
	}
	return nil
}

func (r VehicleTypeRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicle_types WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "vehicle type"}
	}
	return nil
}

func nullIfEmpty(s string) any {
	return intdb.NullIfEmpty(strings.TrimSpace(s))
}
