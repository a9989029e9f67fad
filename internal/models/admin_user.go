package models

import "time"

// AdminUser represents an admin account for the back-office panel.
type AdminUser struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
