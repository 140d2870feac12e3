package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "transtour/internal/config"
	"transtour/internal/domain"
	"transtour/internal/domain/models"
)

type TourPackageRepository struct {
	DB *sql.DB
}

func (r TourPackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TourPackageRepository) GetByID(id int64) (models.TourPackage, error) {
	if id <= 0 {
		return models.TourPackage{}, domain.ValidationError{Field: "tour_package_id", Msg: "id tidak valid"}
	}

	var p models.TourPackage
	err := r.db().QueryRow(`
		SELECT id, name, COALESCE(description, ''), price, duration_days, COALESCE(image_url, '')
		FROM tour_packages WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DurationDays, &p.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TourPackage{}, domain.NotFoundError{Resource: "tour package", Err: err}
		}
		return models.TourPackage{}, domain.InternalError{Err: err}
	}
	return p, nil
}

func (r TourPackageRepository) List(q string) ([]models.TourPackage, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, duration_days, COALESCE(image_url, '')
		FROM tour_packages
	`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += " WHERE name LIKE ?"
		args = append(args, "%"+q+"%")
	}
	query += " ORDER BY id DESC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.TourPackage{}
	for rows.Next() {
		var p models.TourPackage
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.DurationDays, &p.ImageURL); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r TourPackageRepository) Create(p models.TourPackage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO tour_packages (name, description, price, duration_days, image_url)
		VALUES (?, ?, ?, ?, ?)
	`, p.Name, nullIfEmpty(p.Description), p.Price, p.DurationDays, nullIfEmpty(p.ImageURL))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r TourPackageRepository) Update(id int64, p models.TourPackage) error {
	res, err := r.db().Exec(`
		UPDATE tour_packages
		SET name = ?, description = ?, price = ?, duration_days = ?, image_url = ?
		WHERE id = ?
	`, p.Name, nullIfEmpty(p.Description), p.Price, p.DurationDays, nullIfEmpty(p.ImageURL), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "tour package"}
	}
	return nil
}

func (r TourPackageRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM tour_packages WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "tour package"}
	}
	return nil
}
