package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/repository"
	"github.com/sandeepkv93/lost-and-found-backend/internal/security"
)

type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AuthService struct {
	users  repository.UserRepository
	hasher *security.PasswordHasher
	tokens *security.JWTManager
}

func NewAuthService(users repository.UserRepository, hasher *security.PasswordHasher, tokens *security.JWTManager) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := repository.NormalizeEmail(in.Email)
	displayName := strings.TrimSpace(in.DisplayName)
	if email == "" || strings.TrimSpace(in.Password) == "" || displayName == "" {
		return nil, validationError("email, password and displayName are required")
	}

	hash, err := s.hasher.Hash(ctx, in.Password)
	if err != nil {
		if errors.Is(err, security.ErrPasswordTooLong) {
			return nil, validationError("password must be at most 72 bytes")
		}
		return nil, storeError("hash password", err)
	}

	user := &domain.User{Email: email, PasswordHash: hash, DisplayName: displayName}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, conflictError("email already registered")
		}
		return nil, storeError("create user", err)
	}
	return user, nil
}

// Login verifies the credentials and mints an access token. It never writes.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	email := repository.NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, validationError("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, notFoundError("user not found")
		}
		return nil, storeError("find user", err)
	}

	ok, err := s.hasher.Verify(ctx, user.PasswordHash, in.Password)
	if err != nil {
		return nil, storeError("verify password", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.SignAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, storeError("sign token", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}
