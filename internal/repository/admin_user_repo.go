package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/mispadamapur/school-api/internal/models"
)

// AdminUserRepository provides data access methods for admin accounts.
type AdminUserRepository struct {
	db *sqlx.DB
}

func NewAdminUserRepository(db *sqlx.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.Get(&user, `
		SELECT id, email, password_hash, full_name, created_at
		FROM admin_users
		WHERE email = $1
	`, email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AdminUserRepository) Create(user *models.AdminUser) error {
	query := `
		INSERT INTO admin_users (email, password_hash, full_name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRow(query, user.Email, user.PasswordHash, user.FullName).
		Scan(&user.ID, &user.CreatedAt)
}

// Count returns the number of admin accounts, used to decide whether the
// seed admin must be created.
func (r *AdminUserRepository) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM admin_users`)
	return n, err
}
