package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/mispadamapur/school-api/internal/models"
)

// GalleryRepository provides data access methods for gallery items.
type GalleryRepository struct {
	db *sqlx.DB
}

func NewGalleryRepository(db *sqlx.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) List() ([]*models.GalleryItem, error) {
	items := []*models.GalleryItem{}
	err := r.db.Select(&items, `
		SELECT id, title, description, image_url, category, created_at
		FROM gallery
		ORDER BY created_at DESC
	`)
	return items, err
}

func (r *GalleryRepository) Create(g *models.GalleryItem) error {
	query := `
		INSERT INTO gallery (title, description, image_url, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, g.Title, g.Description, g.ImageURL, g.Category).
		Scan(&g.ID, &g.CreatedAt)
}

func (r *GalleryRepository) Update(g *models.GalleryItem) error {
	res, err := r.db.Exec(`
		UPDATE gallery
		SET title = $2, description = $3, image_url = $4, category = $5
		WHERE id = $1
	`, g.ID, g.Title, g.Description, g.ImageURL, g.Category)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *GalleryRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
