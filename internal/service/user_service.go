package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/aidrp-service/internal/auth"
	"github.com/spec-kit/aidrp-service/internal/config"
	"github.com/spec-kit/aidrp-service/internal/domain"
	"github.com/spec-kit/aidrp-service/internal/repository"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

// UserUpdateInput carries a partial admin update. Nil fields are left
// untouched; a non-nil Password triggers the only re-hash path outside of
// ChangePassword.
type UserUpdateInput struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
	Active   *bool
}

// UserService implements admin-side account management.
type UserService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, users repository.UserRepository) *UserService {
	return &UserService{
		users:  users,
		hasher: auth.NewPasswordHasher(cfg.Auth.BcryptCost),
	}
}

// List returns accounts ordered newest first.
func (s *UserService) List(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.users.List(ctx, limit, offset)
}

// Get fetches a single account.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to an account.
func (s *UserService) Update(ctx context.Context, id string, input UserUpdateInput) (*domain.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error(), nil)
		}
		user.Role = role
	}
	if input.Password != nil {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Active != nil {
		user.Active = *input.Active
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account. Outstanding tokens for the account die at
// their next lookup.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", nil)
		}
		return err
	}
	return nil
}
