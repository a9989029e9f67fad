package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/utils"
)

func validContactRequest() *ContactRequest {
	return &ContactRequest{
		Name:    "Priya Sharma",
		Email:   "priya@example.com",
		Subject: "Admission enquiry",
		Message: "When does the session start?",
	}
}

func TestContactService_Submit_Validation(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewContactService(repository.NewContactMessageRepository(db))

	cases := []struct {
		field string
		blank func(*ContactRequest)
	}{
		{"name", func(r *ContactRequest) { r.Name = "" }},
		{"email", func(r *ContactRequest) { r.Email = "" }},
		{"subject", func(r *ContactRequest) { r.Subject = "" }},
		{"message", func(r *ContactRequest) { r.Message = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validContactRequest()
			tc.blank(req)

			_, err := svc.Submit(req)
			require.Error(t, err)
			assert.Equal(t, tc.field+" is required", err.Error())
		})
	}
}

func TestContactService_Submit_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewContactService(repository.NewContactMessageRepository(db))

	mock.ExpectQuery("INSERT INTO contact_messages").
		WithArgs("Priya Sharma", "priya@example.com", "Admission enquiry", "When does the session start?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_read", "created_at"}).AddRow(7, false, time.Now()))

	id, err := svc.Submit(validContactRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactService_MarkRead_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewContactService(repository.NewContactMessageRepository(db))

	mock.ExpectExec("UPDATE contact_messages").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, svc.MarkRead(99), utils.ErrNotFound)
}

func TestContactService_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewContactService(repository.NewContactMessageRepository(db))

	mock.ExpectExec("DELETE FROM contact_messages").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, svc.Delete(99), utils.ErrNotFound)
}
