package models

import "time"

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Application is a single admission application submitted through the
// public admissions form. Mother name, gender, previous school and the
// free-text message are optional on the form.
type Application struct {
	ID             int64             `db:"id" json:"id"`
	StudentName    string            `db:"student_name" json:"studentName"`
	DateOfBirth    string            `db:"date_of_birth" json:"dateOfBirth"`
	Gender         *string           `db:"gender" json:"gender,omitempty"`
	ClassApplying  string            `db:"class_applying" json:"classApplying"`
	ParentName     string            `db:"father_name" json:"parentName"`
	MotherName     *string           `db:"mother_name" json:"motherName,omitempty"`
	ParentPhone    string            `db:"parent_phone" json:"parentPhone"`
	ParentEmail    string            `db:"parent_email" json:"parentEmail"`
	Address        *string           `db:"address" json:"address,omitempty"`
	PreviousSchool *string           `db:"previous_school" json:"previousSchool,omitempty"`
	Message        *string           `db:"message" json:"message,omitempty"`
	Status         ApplicationStatus `db:"status" json:"status"`
	CreatedAt      time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updatedAt"`
}
