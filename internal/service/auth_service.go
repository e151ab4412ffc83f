package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/aidrp-service/internal/auth"
	"github.com/spec-kit/aidrp-service/internal/config"
	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/repository"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// AuthService coordinates registration and login flows.
type AuthService struct {
	users    repository.UserRepository
	tokenMgr *auth.TokenManager
	hasher   *auth.PasswordHasher
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:    users,
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		hasher:   auth.NewPasswordHasher(cfg.Auth.BcryptCost),
	}
}

// Register creates a new account. An empty role falls back to the default;
// unknown roles are rejected before anything is persisted.
func (s *AuthService) Register(ctx context.Context, name, email, password, rawRole string) (*domain.User, error) {
	role := domain.DefaultRole
	if rawRole != "" {
		parsed, err := domain.ParseRole(rawRole)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		role = parsed
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.NewDuplicateEmail()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates an account and issues a bearer token. Unknown email
// and wrong password produce the same error so accounts cannot be
// enumerated.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if !user.Active {
		return nil, "", time.Time{}, apperrors.NewForbidden("account suspended")
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, user.PasswordHash) {
		return apperrors.NewInvalidCredentials()
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// Logout is a no-op: tokens are stateless and simply discarded client-side.
func (s *AuthService) Logout(_ context.Context, _ string) error {
	return nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
