package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iqoooow/TERRA-ACADEMY/internal/auth"
	"github.com/iqoooow/TERRA-ACADEMY/internal/domain"
	"github.com/iqoooow/TERRA-ACADEMY/internal/repository"
	apperrors "github.com/iqoooow/TERRA-ACADEMY/pkg/util"
)

// Status-gated login detail messages.
const (
	msgInvalidCredentials = "invalid credentials"
	msgApprovalPending    = "Cannot log in until approved by admin."
	msgRejected           = "Application was rejected."
)

// AuthService verifies credentials and issues the access/refresh pair, but
// only for approved accounts.
type AuthService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	tokenMgr *auth.TokenManager
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, tokenMgr *auth.TokenManager) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokenMgr: tokenMgr}
}

// Login authenticates by email and password. Unknown email and wrong password
// answer with the same detail so the caller learns nothing about which failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, auth.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, auth.TokenPair{}, apperrors.NewUnauthorized(msgInvalidCredentials)
		}
		return nil, auth.TokenPair{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, auth.TokenPair{}, apperrors.NewUnauthorized(msgInvalidCredentials)
	}

	if err := checkApproved(user); err != nil {
		return nil, auth.TokenPair{}, err
	}

	pair, err := s.tokenMgr.GeneratePair(user)
	if err != nil {
		return nil, auth.TokenPair{}, err
	}
	if err := s.sessions.Save(ctx, pair.RefreshID, user.ID, time.Until(pair.RefreshExpiresAt)); err != nil {
		return nil, auth.TokenPair{}, err
	}
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a new access token. The token
// must carry a session still present in the store, and the account must still
// be approved.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.tokenMgr.ParseRefresh(refreshToken)
	if err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
	}

	userID, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if err == repository.ErrSessionNotFound {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
		}
		return "", time.Time{}, err
	}
	if userID != claims.UserID {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", time.Time{}, apperrors.NewUnauthorized("invalid refresh token")
		}
		return "", time.Time{}, err
	}
	if err := checkApproved(user); err != nil {
		return "", time.Time{}, err
	}

	return s.tokenMgr.GenerateAccess(user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func checkApproved(user *domain.User) error {
	switch user.Status {
	case domain.StatusPending:
		return apperrors.NewUnauthorized(msgApprovalPending)
	case domain.StatusRejected:
		return apperrors.NewUnauthorized(msgRejected)
	}
	return nil
}
