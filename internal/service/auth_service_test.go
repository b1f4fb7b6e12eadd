package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/campus-tools/timetable-api/internal/models"
	appErrors "github.com/campus-tools/timetable-api/pkg/errors"
)

type userRepoStub struct {
	user      *models.User
	lastLogin *time.Time
}

func (s *userRepoStub) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, sql.ErrNoRows
	}
	return s.user, nil
}

func (s *userRepoStub) UpdateLastLogin(ctx context.Context, id string, ts time.Time) error {
	s.lastLogin = &ts
	return nil
}

func newAuthService(repo authUserRepository) *AuthService {
	return NewAuthService(repo, validator.New(), nil, AuthConfig{
		Secret:     "test_secret",
		Expiration: time.Hour,
		Issuer:     "timetable-api",
	})
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "user-1",
		Email:        "owner@example.com",
		PasswordHash: string(hash),
		FullName:     "Timetable Owner",
		Active:       true,
	}
}

func TestAuthServiceLoginAndValidate(t *testing.T) {
	repo := &userRepoStub{user: testUser(t, "s3cret")}
	svc := newAuthService(repo)

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "owner@example.com", Password: "s3cret"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.NotNil(t, repo.lastLogin)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc := newAuthService(&userRepoStub{user: testUser(t, "s3cret")})
	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "owner@example.com", Password: "nope"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc := newAuthService(&userRepoStub{})
	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	user := testUser(t, "s3cret")
	user.Active = false
	svc := newAuthService(&userRepoStub{user: user})
	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "owner@example.com", Password: "s3cret"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenGarbage(t *testing.T) {
	svc := newAuthService(&userRepoStub{})
	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
