package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/mispadamapur/school-api/internal/models"
)

// EventRepository provides data access methods for school events.
type EventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, event_date, event_time, location,
	category, is_upcoming, image_url, created_at`

// List returns all events, most recent event date first.
func (r *EventRepository) List() ([]*models.Event, error) {
	events := []*models.Event{}
	err := r.db.Select(&events, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY event_date DESC
	`)
	return events, err
}

func (r *EventRepository) Create(e *models.Event) error {
	query := `
		INSERT INTO events (title, description, event_date, event_time, location,
			category, is_upcoming, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query,
		e.Title, e.Description, e.EventDate, e.EventTime, e.Location,
		e.Category, e.IsUpcoming, e.ImageURL,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *EventRepository) Update(e *models.Event) error {
	res, err := r.db.Exec(`
		UPDATE events
		SET title = $2, description = $3, event_date = $4, event_time = $5,
			location = $6, category = $7, is_upcoming = $8, image_url = $9
		WHERE id = $1
	`, e.ID, e.Title, e.Description, e.EventDate, e.EventTime,
		e.Location, e.Category, e.IsUpcoming, e.ImageURL)
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

func (r *EventRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM events WHERE id = $1`, id)
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

// Count returns the number of events, used by the admin dashboard.
func (r *EventRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM events`)
	return n, err
}
