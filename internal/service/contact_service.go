package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/mispadamapur/school-api/internal/models"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/utils"
)

// ContactService handles the public contact form and the admin inbox.
type ContactService struct {
	msgRepo *repository.ContactMessageRepository
}

func NewContactService(msgRepo *repository.ContactMessageRepository) *ContactService {
	return &ContactService{msgRepo: msgRepo}
}

// ContactRequest is the public contact form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

var requiredContactFields = []struct {
	name  string
	value func(*ContactRequest) string
}{
	{"name", func(r *ContactRequest) string { return r.Name }},
	{"email", func(r *ContactRequest) string { return r.Email }},
	{"subject", func(r *ContactRequest) string { return r.Subject }},
	{"message", func(r *ContactRequest) string { return r.Message }},
}

// Submit validates and stores a contact message, returning its id.
func (s *ContactService) Submit(req *ContactRequest) (int64, error) {
	for _, f := range requiredContactFields {
		if f.value(req) == "" {
			return 0, &utils.ValidationError{Field: f.name}
		}
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.msgRepo.Create(msg); err != nil {
		log.Error().Err(err).Msg("Failed to save contact message")
		return 0, err
	}
	return msg.ID, nil
}

func (s *ContactService) List() ([]*models.ContactMessage, error) {
	return s.msgRepo.List()
}

func (s *ContactService) MarkRead(id int64) error {
	err := s.msgRepo.MarkRead(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}

func (s *ContactService) Delete(id int64) error {
	err := s.msgRepo.Delete(id)
	if errors.Is(err, sql.ErrNoRows) {
		return utils.ErrNotFound
	}
	return err
}
