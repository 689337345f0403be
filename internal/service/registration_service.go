package service

import (
	"context"
	"errors"
	"time"

	"github.com/iqoooow/TERRA-ACADEMY/internal/auth"
	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
	"github.com/iqoooow/TERRA-ACADEMY/internal/repository"
	apperrors "github.com/iqoooow/TERRA-ACADEMY/pkg/util"
)

// RegistrationInput is a candidate account as submitted by the client.
type RegistrationInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	PasswordConfirm string
	Phone           string
	BirthDate       *time.Time
	Role            domain.Role
}

// RegistrationService validates candidate accounts and creates them in
// pending status.
type RegistrationService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewRegistrationService builds the service.
func NewRegistrationService(users repository.UserRepository, bcryptCost int) *RegistrationService {
	return &RegistrationService{users: users, bcryptCost: bcryptCost}
}

// Register creates a new account awaiting owner review. The stored status is
// always pending regardless of caller input, and the role defaults to student
// when unspecified.
func (s *RegistrationService) Register(ctx context.Context, in RegistrationInput) (*domain.User, error) {
	if in.Password != in.PasswordConfirm {
		return nil, apperrors.NewValidationError("Passwords do not match.", map[string]any{"field": "password"})
	}

	role := in.Role
	if role == "" {
		role = domain.RoleStudent
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("Invalid role.", map[string]any{"field": "role"})
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     in.Email,
		Email:        in.Email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		BirthDate:    in.BirthDate,
		Role:         role,
		Status:       domain.StatusPending,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperrors.NewValidationError("A user with this email already exists.", map[string]any{"field": "email"})
		}
		return nil, err
	}
	return user, nil
}
