package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "transtour/internal/config"
	"transtour/internal/domain"
	"transtour/internal/domain/models"
)

type ArticleRepository struct {
	DB *sql.DB
}

func (r ArticleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ArticleRepository) GetByID(id int64) (models.Article, error) {
	if id <= 0 {
		return models.Article{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}

	var a models.Article
	err := r.db().QueryRow(`
		SELECT id, title, slug, COALESCE(content, ''), COALESCE(author, ''),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM articles WHERE id = ?
	`, id).Scan(&a.ID, &a.Title, &a.Slug, &a.Content, &a.Author, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Article{}, domain.NotFoundError{Resource: "article", Err: err}
		}
		return models.Article{}, domain.InternalError{Err: err}
	}
	return a, nil
}

// List omits content so admin tables stay light.
func (r ArticleRepository) List(q string, page, limit int) ([]models.Article, error) {
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
		SELECT id, title, slug, COALESCE(author, ''),
		       DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s')
		FROM articles
	`
	args := []any{}
	if q = strings.TrimSpace(q); q != "" {
		query += " WHERE title LIKE ?"
		args = append(args, "%"+q+"%")
	}
	query += " ORDER BY id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, (page-1)*limit)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	list := []models.Article{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Author, &a.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r ArticleRepository) Create(a models.Article) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO articles (title, slug, content, author, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`, a.Title, a.Slug, a.Content, nullIfEmpty(a.Author))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ArticleRepository) Update(id int64, a models.Article) error {
	res, err := r.db().Exec(`
		UPDATE articles SET title = ?, slug = ?, content = ?, author = ? WHERE id = ?
	`, a.Title, a.Slug, a.Content, nullIfEmpty(a.Author), id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "article"}
	}
	return nil
}

func (r ArticleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: "article"}
	}
	return nil
}
