package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/aidrp-service/internal/config"
	"github.com/spec-kit/aidrp-service/internal/domain"
	apperrors "github.com/spec-kit/aidrp-service/pkg/util/errorutil"
)

type fakeUserRepo struct {
	seq   int
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.NewDuplicateEmail()
		}
	}
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *user
	return &clone, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.users, id)
	return nil
}

func testConfig() config.Config {
	return config.Config{Auth: config.AuthConfig{
		JWTSecret:             "unit-test-secret",
		AccessTokenTTLMinutes: 60,
		BcryptCost:            bcrypt.MinCost,
	}}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jamie", "jamie@example.com", "pw12345", "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultRole, user.Role)
	assert.True(t, user.Active)
	assert.NotEqual(t, "pw12345", user.PasswordHash)

	logged, token, expiresAt, err := svc.Login(ctx, "jamie@example.com", "pw12345")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	subject, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "jamie@example.com", subject)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(testConfig(), newFakeUserRepo())
	_, err := svc.Register(context.Background(), "X", "x@example.com", "pw", "SUPERUSER")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "First", "dupe@example.com", "pw", "")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Second", "dupe@example.com", "pw", "")
	require.Error(t, err)
	assert.Equal(t, "DUPLICATE_EMAIL", apperrors.ToDomainError(err).Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jamie", "jamie@example.com", "correct-pw", "")
	require.NoError(t, err)

	_, _, _, unknownErr := svc.Login(ctx, "nobody@example.com", "whatever")
	_, _, _, wrongErr := svc.Login(ctx, "jamie@example.com", "wrong-pw")

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	// Unknown account and wrong password must be indistinguishable.
	assert.Equal(t, apperrors.ToDomainError(unknownErr).Message, apperrors.ToDomainError(wrongErr).Message)
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(unknownErr).Code)
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(wrongErr).Code)
}

func TestLoginSuspendedAccount(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jamie", "jamie@example.com", "pw", "")
	require.NoError(t, err)

	user.Active = false
	require.NoError(t, repo.Update(ctx, user))

	_, _, _, err = svc.Login(ctx, "jamie@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperrors.ToDomainError(err).Code)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(testConfig(), repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Jamie", "jamie@example.com", "old-pw", "")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong-pw", "new-pw")
	require.Error(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", apperrors.ToDomainError(err).Code)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "old-pw", "new-pw"))

	_, _, _, err = svc.Login(ctx, "jamie@example.com", "old-pw")
	require.Error(t, err)
	_, _, _, err = svc.Login(ctx, "jamie@example.com", "new-pw")
	require.NoError(t, err)
}
