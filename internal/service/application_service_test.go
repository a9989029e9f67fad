package service

import (
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mispadamapur/school-api/internal/models"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/utils"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var appColumns = []string{
	"id", "student_name", "date_of_birth", "gender", "class_applying",
	"father_name", "mother_name", "parent_phone", "parent_email", "address",
	"previous_school", "message", "status", "created_at", "updated_at",
}

func validIntake() *IntakeRequest {
	return &IntakeRequest{
		StudentName:   "Asha",
		DateOfBirth:   "2015-04-01",
		ClassApplying: "II",
		ParentName:    "Rao",
		ParentPhone:   "9990001111",
		ParentEmail:   "rao@example.com",
	}
}

func TestApplicationService_Submit_Validation(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	// Each case blanks one required field; the rejection must name it.
	cases := []struct {
		field string
		mut   func(*IntakeRequest)
	}{
		{"studentName", func(r *IntakeRequest) { r.StudentName = "" }},
		{"dateOfBirth", func(r *IntakeRequest) { r.DateOfBirth = "" }},
		{"classApplying", func(r *IntakeRequest) { r.ClassApplying = "" }},
		{"parentName", func(r *IntakeRequest) { r.ParentName = "" }},
		{"parentPhone", func(r *IntakeRequest) { r.ParentPhone = "" }},
		{"parentEmail", func(r *IntakeRequest) { r.ParentEmail = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validIntake()
			tc.mut(req)

			_, err := svc.Submit(req)
			require.Error(t, err)
			assert.Equal(t, tc.field+" is required", err.Error())
		})
	}
}

func TestApplicationService_Submit_FirstMissingFieldWins(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	req := validIntake()
	req.StudentName = ""
	req.ParentEmail = ""

	_, err := svc.Submit(req)
	require.Error(t, err)
	assert.Equal(t, "studentName is required", err.Error())
}

func TestApplicationService_Submit_Success(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	now := time.Now()
	mock.ExpectQuery("INSERT INTO admissions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at", "updated_at"}).
			AddRow(101, "pending", now, now))

	id, err := svc.Submit(validIntake())
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	// No query expectation: an invalid status must never reach the store.
	_, err := svc.UpdateStatus(1, "archived")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationService_UpdateStatus_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	mock.ExpectQuery("UPDATE admissions").
		WillReturnError(assert.AnError)

	_, err := svc.UpdateStatus(99, "approved")
	assert.Error(t, err)
}

func TestApplicationService_List_RejectsUnknownFilter(t *testing.T) {
	db, _ := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	_, err := svc.List("bogus")
	assert.ErrorIs(t, err, utils.ErrInvalidStatus)
}

func TestApplicationService_ExportCSV(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	created := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	addr := `12 "A" Lane`

	t.Run("RowFidelity", func(t *testing.T) {
		rows := sqlmock.NewRows(appColumns).
			AddRow(1, "Asha", "2015-04-01", nil, "II", "Rao", nil, "9990001111", "rao@example.com", addr, nil, nil, "pending", created, created)

		mock.ExpectQuery("SELECT (.+) FROM admissions ORDER BY created_at DESC").
			WillReturnRows(rows)

		out, err := svc.ExportCSV()
		require.NoError(t, err)

		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "id,studentName,dob,classApplying,parentName,parentPhone,parentEmail,address,message,createdAt", lines[0])
		// Quotes in the address are doubled; the absent message renders empty.
		assert.Equal(t, `"1","Asha","2015-04-01","II","Rao","9990001111","rao@example.com","12 ""A"" Lane","","2026-03-09T10:00:00Z"`, lines[1])
	})

	t.Run("HeaderOnlyWhenEmpty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM admissions ORDER BY created_at DESC").
			WillReturnRows(sqlmock.NewRows(appColumns))

		out, err := svc.ExportCSV()
		require.NoError(t, err)
		assert.Equal(t, "id,studentName,dob,classApplying,parentName,parentPhone,parentEmail,address,message,createdAt", out)
	})
}

func TestApplicationService_Delete_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewApplicationService(repository.NewApplicationRepository(db))

	mock.ExpectExec("DELETE FROM admissions WHERE id = \\$1").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := svc.Delete(5)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestApplicationService_List_StatusValues(t *testing.T) {
	assert.True(t, models.ValidStatus(models.StatusPending))
	assert.True(t, models.ValidStatus(models.StatusApproved))
	assert.True(t, models.ValidStatus(models.StatusRejected))
	assert.False(t, models.ValidStatus("archived"))
	assert.False(t, models.ValidStatus(""))
}
