package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stayfinder/stayfinder-api/internal/dto"
	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/password"
	"github.com/stayfinder/stayfinder-api/internal/store"
	"github.com/stayfinder/stayfinder-api/internal/token"
)

var (
	ErrMissingFields      = errors.New("name, email, password are required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users  store.UserStore
	issuer *token.Issuer
}

func NewAuthService(users store.UserStore, issuer *token.Issuer) *AuthService {
	return &AuthService{users: users, issuer: issuer}
}

func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" || email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           "u_" + uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(&user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.authResponse("registered", &user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse("logged in", user)
}

func (s *AuthService) authResponse(message string, user *models.User) (*dto.AuthResponse, error) {
	tok, err := s.issuer.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &dto.AuthResponse{
		Message: message,
		Token:   tok,
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
