package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/mispadamapur/school-api/internal/models"
)

// ApplicationRepository provides data access methods for the admissions table.
type ApplicationRepository struct {
	db *sqlx.DB
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, student_name, date_of_birth, gender, class_applying,
	father_name, mother_name, parent_phone, parent_email, address,
	previous_school, message, status, created_at, updated_at`

// List returns all applications, newest first. An empty status returns
// everything; otherwise the list is filtered to that status.
func (r *ApplicationRepository) List(status models.ApplicationStatus) ([]*models.Application, error) {
	apps := []*models.Application{}
	if status == "" {
		err := r.db.Select(&apps, `
			SELECT `+applicationColumns+`
			FROM admissions
			ORDER BY created_at DESC
		`)
		return apps, err
	}
	err := r.db.Select(&apps, `
		SELECT `+applicationColumns+`
		FROM admissions
		WHERE status = $1
		ORDER BY created_at DESC
	`, status)
	return apps, err
}

// GetByID returns a single application or sql.ErrNoRows.
func (r *ApplicationRepository) GetByID(id int64) (*models.Application, error) {
	var app models.Application
	err := r.db.Get(&app, `
		SELECT `+applicationColumns+`
		FROM admissions
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create inserts a new application and fills in the generated id, status
// and timestamps.
func (r *ApplicationRepository) Create(app *models.Application) error {
	query := `
		INSERT INTO admissions (student_name, date_of_birth, gender, class_applying,
			father_name, mother_name, parent_phone, parent_email, address,
			previous_school, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, status, created_at, updated_at
	`
	return r.db.QueryRow(query,
		app.StudentName, app.DateOfBirth, app.Gender, app.ClassApplying,
		app.ParentName, app.MotherName, app.ParentPhone, app.ParentEmail,
		app.Address, app.PreviousSchool, app.Message,
	).Scan(&app.ID, &app.Status, &app.CreatedAt, &app.UpdatedAt)
}

// UpdateStatus sets the status of one application and refreshes
// updated_at, returning the updated row or sql.ErrNoRows.
func (r *ApplicationRepository) UpdateStatus(id int64, status models.ApplicationStatus) (*models.Application, error) {
	var app models.Application
	err := r.db.Get(&app, `
		UPDATE admissions
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+applicationColumns+`
	`, id, status)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Delete removes one application. Returns sql.ErrNoRows when no row matched.
func (r *ApplicationRepository) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM admissions WHERE id = $1`, id)
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

// DeleteAll clears the admissions table.
func (r *ApplicationRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM admissions`)
	return err
}

// CountByStatus returns application counts keyed by status, used by the
// admin dashboard.
func (r *ApplicationRepository) CountByStatus() (map[models.ApplicationStatus]int, error) {
	rows, err := r.db.Query(`SELECT status, COUNT(*) FROM admissions GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[models.ApplicationStatus]int)
	for rows.Next() {
		var status models.ApplicationStatus
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}
