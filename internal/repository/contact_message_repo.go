package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/mispadamapur/school-api/internal/models"
)

// ContactMessageRepository provides data access methods for contact messages.
type ContactMessageRepository struct {
	db *sqlx.DB
}

func NewContactMessageRepository(db *sqlx.DB) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func (r *ContactMessageRepository) List() ([]*models.ContactMessage, error) {
	msgs := []*models.ContactMessage{}
	err := r.db.Select(&msgs, `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`)
	return msgs, err
}

func (r *ContactMessageRepository) Create(msg *models.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`
	return r.db.QueryRow(query, msg.Name, msg.Email, msg.Subject, msg.Message).
		Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
}

// MarkRead flags one message as read. Returns sql.ErrNoRows when absent.
func (r *ContactMessageRepository) MarkRead(id int64) error {
	res, err := r.db.Exec(`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
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

func (r *ContactMessageRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
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

// CountUnread returns the number of unread messages for the dashboard.
func (r *ContactMessageRepository) CountUnread() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`)
	return n, err
}
