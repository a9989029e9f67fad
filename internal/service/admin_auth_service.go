package service

import (
	"database/sql"
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/mispadamapur/school-api/internal/models"
	"github.com/mispadamapur/school-api/internal/repository"
	"github.com/mispadamapur/school-api/internal/utils"
)

// AdminAuthService handles admin signup, login, and seed bootstrap.
type AdminAuthService struct {
	adminRepo *repository.AdminUserRepository
}

func NewAdminAuthService(adminRepo *repository.AdminUserRepository) *AdminAuthService {
	return &AdminAuthService{adminRepo: adminRepo}
}

// Login verifies credentials and returns a signed token plus the account.
// Lookup failures and password mismatches both map to ErrInvalidCredentials
// so the response never reveals which part was wrong.
func (s *AdminAuthService) Login(email, password string) (string, *models.AdminUser, error) {
	user, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("email", email).Msg("Failed to look up admin user")
		}
		return "", nil, utils.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("email", email).Msg("Admin login successful")
	return token, user, nil
}

// Signup creates a new admin account. The password must be at least six
// characters and the email must not already be registered.
func (s *AdminAuthService) Signup(fullName, email, password string) (*models.AdminUser, error) {
	if len(password) < 6 {
		return nil, utils.ErrPasswordTooShort
	}

	if existing, _ := s.adminRepo.GetByEmail(email); existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.AdminUser{
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     fullName,
	}
	if err := s.adminRepo.Create(user); err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("Admin account created")
	return user, nil
}

// EnsureSeedAdmin creates the configured seed account when no admin users
// exist yet, so a fresh deployment can log in.
func (s *AdminAuthService) EnsureSeedAdmin(fullName, email, password string) error {
	n, err := s.adminRepo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if _, err := s.Signup(fullName, email, password); err != nil {
		return err
	}
	log.Warn().Str("email", email).Msg("Seed admin created from configuration; override ADMIN_EMAIL and ADMIN_PASSWORD before going live")
	return nil
}
