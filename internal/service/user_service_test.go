package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/aidrp-service/internal/domain"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUserUpdatePartial(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	authSvc := NewAuthService(testConfig(), repo)
	svc := NewUserService(testConfig(), repo)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Jamie", "jamie@example.com", "pw", "")
	require.NoError(t, err)
	originalHash := user.PasswordHash

	updated, err := svc.Update(ctx, user.ID, UserUpdateInput{
		Name: strPtr("Jamie Q"),
		Role: strPtr("ANALYST"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Jamie Q", updated.Name)
	assert.Equal(t, domain.RoleAnalyst, updated.Role)
	// Untouched fields survive the partial update.
	assert.Equal(t, "jamie@example.com", updated.Email)
	assert.Equal(t, originalHash, updated.PasswordHash)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	authSvc := NewAuthService(testConfig(), repo)
	svc := NewUserService(testConfig(), repo)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Jamie", "jamie@example.com", "old-pw", "")
	require.NoError(t, err)

	_, err = svc.Update(ctx, user.ID, UserUpdateInput{Password: strPtr("new-pw")})
	require.NoError(t, err)

	_, _, _, err = authSvc.Login(ctx, "jamie@example.com", "new-pw")
	require.NoError(t, err)
}

func TestUserUpdateRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	authSvc := NewAuthService(testConfig(), repo)
	svc := NewUserService(testConfig(), repo)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Jamie", "jamie@example.com", "pw", "")
	require.NoError(t, err)

	_, err = svc.Update(ctx, user.ID, UserUpdateInput{Role: strPtr("OVERLORD")})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestUserSuspendBlocksLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	authSvc := NewAuthService(testConfig(), repo)
	svc := NewUserService(testConfig(), repo)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Jamie", "jamie@example.com", "pw", "")
	require.NoError(t, err)

	_, err = svc.Update(ctx, user.ID, UserUpdateInput{Active: boolPtr(false)})
	require.NoError(t, err)

	_, _, _, err = authSvc.Login(ctx, "jamie@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestUserDelete(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	authSvc := NewAuthService(testConfig(), repo)
	svc := NewUserService(testConfig(), repo)
	ctx := context.Background()

	user, err := authSvc.Register(ctx, "Jamie", "jamie@example.com", "pw", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, user.ID))

	err = svc.Delete(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	_, err = svc.Get(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
