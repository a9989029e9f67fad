package service

import (
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mispadamapur/school-api/internal/models"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/utils"
)

// ApplicationService handles the admissions intake and admin lifecycle.
type ApplicationService struct {
	appRepo *repository.ApplicationRepository
}

func NewApplicationService(appRepo *repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{appRepo: appRepo}
}

// IntakeRequest is the public admissions form payload.
type IntakeRequest struct {
	StudentName    string  `json:"studentName"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Gender         *string `json:"gender"`
	ClassApplying  string  `json:"classApplying"`
	ParentName     string  `json:"parentName"`
	MotherName     *string `json:"motherName"`
	ParentPhone    string  `json:"parentPhone"`
	ParentEmail    string  `json:"parentEmail"`
	Address        *string `json:"address"`
	PreviousSchool *string `json:"previousSchool"`
	Message        *string `json:"message"`
}

// requiredIntakeFields lists the required fields in the order they are
// checked, so a rejection always names the first missing field.
var requiredIntakeFields = []struct {
	name  string
	value func(*IntakeRequest) string
}{
	{"studentName", func(r *IntakeRequest) string { return r.StudentName }},
	{"dateOfBirth", func(r *IntakeRequest) string { return r.DateOfBirth }},
	{"classApplying", func(r *IntakeRequest) string { return r.ClassApplying }},
	{"parentName", func(r *IntakeRequest) string { return r.ParentName }},
	{"parentPhone", func(r *IntakeRequest) string { return r.ParentPhone }},
	{"parentEmail", func(r *IntakeRequest) string { return r.ParentEmail }},
}

// Submit validates an intake payload and persists a new pending
// application, returning its id. Repeated identical submissions are all
// persisted; deduplication is up to the admissions office.
func (s *ApplicationService) Submit(req *IntakeRequest) (int64, error) {
	for _, f := range requiredIntakeFields {
		if f.value(req) == "" {
			return 0, &utils.ValidationError{Field: f.name}
		}
	}

	app := &models.Application{
		StudentName:    req.StudentName,
		DateOfBirth:    req.DateOfBirth,
		Gender:         req.Gender,
		ClassApplying:  req.ClassApplying,
		ParentName:     req.ParentName,
		MotherName:     req.MotherName,
		ParentPhone:    req.ParentPhone,
		ParentEmail:    req.ParentEmail,
		Address:        req.Address,
		PreviousSchool: req.PreviousSchool,
		Message:        req.Message,
	}
	if err := s.appRepo.Create(app); err != nil {
		log.Error().Err(err).Msg("Failed to save application")
		return 0, err
	}

	log.Info().Int64("id", app.ID).Str("class", app.ClassApplying).Msg("Application submitted")
	return app.ID, nil
}

// List returns applications for the admin panel, optionally filtered by
// status. An unknown status filter is rejected.
func (s *ApplicationService) List(status string) ([]*models.Application, error) {
	if status != "" && !models.ValidStatus(models.ApplicationStatus(status)) {
		return nil, utils.ErrInvalidStatus
	}
	return s.appRepo.List(models.ApplicationStatus(status))
}

// UpdateStatus applies a reviewed status to one application.
func (s *ApplicationService) UpdateStatus(id int64, status string) (*models.Application, error) {
	st := models.ApplicationStatus(status)
	if !models.ValidStatus(st) {
		return nil, utils.ErrInvalidStatus
	}

	app, err := s.appRepo.UpdateStatus(id, st)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

// Delete removes one application by id.
func (s *ApplicationService) Delete(id int64) error {
	err := s.appRepo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

// DeleteAll clears every application. There is no undo.
func (s *ApplicationService) DeleteAll() error {
	return s.appRepo.DeleteAll()
}

// exportColumns is the fixed CSV column order the admin panel's
// spreadsheet import expects.
var exportColumns = []string{
	"id", "studentName", "dob", "classApplying", "parentName",
	"parentPhone", "parentEmail", "address", "message", "createdAt",
}

// ExportCSV renders all applications as CSV. Absent optional fields
// render as empty strings.
func (s *ApplicationService) ExportCSV() (string, error) {
	apps, err := s.appRepo.List("")
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.StudentName,
			a.DateOfBirth,
			a.ClassApplying,
			a.ParentName,
			a.ParentPhone,
			a.ParentEmail,
			strOrEmpty(a.Address),
			strOrEmpty(a.Message),
			a.CreatedAt.Format(time.RFC3339),
		})
	}
	return utils.WriteCSV(exportColumns, rows), nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
