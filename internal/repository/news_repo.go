package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/mispadamapur/school-api/internal/models"
)

// NewsRepository provides data access methods for news articles.
type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

const newsColumns = `id, title, content, excerpt, author, category,
	is_published, image_url, created_at`

// List returns news articles, newest first. publishedOnly restricts the
// result to published articles for the public site; the admin manager
// sees everything.
func (r *NewsRepository) List(publishedOnly bool) ([]*models.News, error) {
	items := []*models.News{}
	if publishedOnly {
		err := r.db.Select(&items, `
			SELECT `+newsColumns+`
			FROM news
			WHERE is_published = TRUE
			ORDER BY created_at DESC
		`)
		return items, err
	}
	err := r.db.Select(&items, `
		SELECT `+newsColumns+`
		FROM news
		ORDER BY created_at DESC
	`)
	return items, err
}

func (r *NewsRepository) Create(n *models.News) error {
	query := `
		INSERT INTO news (title, content, excerpt, author, category, is_published, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query,
		n.Title, n.Content, n.Excerpt, n.Author, n.Category, n.IsPublished, n.ImageURL,
	).Scan(&n.ID, &n.CreatedAt)
}

func (r *NewsRepository) Update(n *models.News) error {
	res, err := r.db.Exec(`
		UPDATE news
		SET title = $2, content = $3, excerpt = $4, author = $5,
			category = $6, is_published = $7, image_url = $8
		WHERE id = $1
	`, n.ID, n.Title, n.Content, n.Excerpt, n.Author, n.Category, n.IsPublished, n.ImageURL)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *NewsRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
