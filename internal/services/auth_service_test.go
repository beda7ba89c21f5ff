package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/token"
)

func newAuthService(users *fakeUserStore) *AuthService {
	return NewAuthService(users, token.NewIssuer("test-secret", time.Hour))
}

func TestRegister_NormalizesEmailAndIssuesToken(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	resp, err := svc.Register(&dto.RegisterRequest{
		Name:     "  Al  ",
		Email:    "AL@X.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	assert.Equal(t, "registered", resp.Message)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Al", resp.User.Name)
	assert.Equal(t, "al@x.com", resp.User.Email)
	require.Len(t, users.users, 1)
	assert.NotEqual(t, "secret1", users.users[0].PasswordHash)
}

func TestRegister_Validation(t *testing.T) {
	svc := newAuthService(&fakeUserStore{})

	_, err := svc.Register(&dto.RegisterRequest{Name: "", Email: "a@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(&dto.RegisterRequest{Name: "Al", Email: "a@x.com", Password: "short"})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
}

func TestRegister_DuplicateEmailRegardlessOfCase(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Al", Email: "AL@X.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(&dto.RegisterRequest{Name: "Al2", Email: "al@x.com", Password: "secret2"})
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, users.users, 1)
}

func TestLogin_SameUserAfterRegister(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	reg, err := svc.Register(&dto.RegisterRequest{Name: "Al", Email: "AL@X.com", Password: "secret1"})
	require.NoError(t, err)

	login, err := svc.Login(&dto.LoginRequest{Email: "al@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "logged in", login.Message)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestLogin_Failures(t *testing.T) {
	users := &fakeUserStore{}
	svc := newAuthService(users)

	_, err := svc.Register(&dto.RegisterRequest{Name: "Al", Email: "al@x.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Login(&dto.LoginRequest{Email: "", Password: "secret1"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "al@x.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&dto.LoginRequest{Email: "unknown@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
