package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/lost-and-found-backend/internal/domain"
	"github.com/sandeepkv93/lost-and-found-backend/internal/repository"
	repogomock "github.com/sandeepkv93/lost-and-found-backend/internal/repository/gomock"
	"github.com/sandeepkv93/lost-and-found-backend/internal/security"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "abcdefghijklmnopqrstuvwxyz123456"

// memoryUserRepo enforces email uniqueness the way the database index does.
type memoryUserRepo struct {
	byEmail map[string]domain.User
	nextID  uint
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: map[string]domain.User{}, nextID: 1}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[repository.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	cp := u
	return &cp, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *domain.User) error {
	user.Email = repository.NormalizeEmail(user.Email)
	if _, ok := r.byEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	r.byEmail[user.Email] = *user
	return nil
}

type authFixture struct {
	users  *memoryUserRepo
	tokens *security.JWTManager
	auth   *AuthService
}

func newAuthFixture() *authFixture {
	users := newMemoryUserRepo()
	tokens := security.NewJWTManager("lost-and-found", testJWTSecret, 2*time.Hour)
	return &authFixture{
		users:  users,
		tokens: tokens,
		auth:   NewAuthService(users, security.NewPasswordHasher(bcrypt.MinCost, 2), tokens),
	}
}

func TestAuthServiceRegisterThenLogin(t *testing.T) {
	fx := newAuthFixture()
	ctx := context.Background()

	user, err := fx.auth.Register(ctx, RegisterInput{Email: "a@b.com", Password: "secret1", DisplayName: "Ana"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == 0 || user.Email != "a@b.com" || user.DisplayName != "Ana" {
		t.Fatalf("unexpected user: %+v", user)
	}
	stored := fx.users.byEmail["a@b.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "secret1" {
		t.Fatalf("expected hashed password, got %q", stored.PasswordHash)
	}

	res, err := fx.auth.Login(ctx, LoginInput{Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := fx.tokens.ParseAccessToken(res.Token)
	if err != nil {
		t.Fatalf("parse issued token: %v", err)
	}
	if claims.Email != "a@b.com" || claims.UserID != user.ID {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if !res.ExpiresAt.Equal(claims.ExpiresAt.Time) {
		t.Fatalf("expected result expiry %v to match token %v", res.ExpiresAt, claims.ExpiresAt.Time)
	}
}

func TestAuthServiceRegisterMatrix(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		fx := newAuthFixture()
		for _, in := range []RegisterInput{
			{Email: "", Password: "pw", DisplayName: "A"},
			{Email: "a@b.com", Password: "   ", DisplayName: "A"},
			{Email: "a@b.com", Password: "pw", DisplayName: "  "},
		} {
			_, err := fx.auth.Register(context.Background(), in)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation for %+v, got %v", in, err)
			}
		}
	})

	t.Run("duplicate email keeps existing record", func(t *testing.T) {
		fx := newAuthFixture()
		ctx := context.Background()
		if _, err := fx.auth.Register(ctx, RegisterInput{Email: "dupe@example.com", Password: "first", DisplayName: "First"}); err != nil {
			t.Fatalf("register first: %v", err)
		}
		before := fx.users.byEmail["dupe@example.com"]

		_, err := fx.auth.Register(ctx, RegisterInput{Email: "Dupe@Example.com", Password: "second", DisplayName: "Second"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
		after := fx.users.byEmail["dupe@example.com"]
		if after != before {
			t.Fatalf("existing record mutated: before=%+v after=%+v", before, after)
		}
	})

	t.Run("password longer than bcrypt limit", func(t *testing.T) {
		fx := newAuthFixture()
		_, err := fx.auth.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: strings.Repeat("x", 80), DisplayName: "A"})
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("store failure is generic to clients", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repogomock.NewMockUserRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused to 10.0.0.5"))
		auth := NewAuthService(repo, security.NewPasswordHasher(bcrypt.MinCost, 1), security.NewJWTManager("", testJWTSecret, time.Hour))

		_, err := auth.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "pw", DisplayName: "A"})
		if !errors.Is(err, ErrStore) {
			t.Fatalf("expected ErrStore, got %v", err)
		}
		if !strings.Contains(err.Error(), "connection refused") {
			t.Fatalf("expected underlying cause for logs, got %v", err)
		}
		if msg := PublicMessage(err); msg != "internal error" {
			t.Fatalf("expected generic public message, got %q", msg)
		}
	})
}

func TestAuthServiceLoginMatrix(t *testing.T) {
	fx := newAuthFixture()
	ctx := context.Background()
	if _, err := fx.auth.Register(ctx, RegisterInput{Email: "a@b.com", Password: "secret1", DisplayName: "Ana"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	cases := []struct {
		name string
		in   LoginInput
		want error
	}{
		{"missing email", LoginInput{Password: "secret1"}, ErrValidation},
		{"missing password", LoginInput{Email: "a@b.com"}, ErrValidation},
		{"unknown email", LoginInput{Email: "nobody@b.com", Password: "secret1"}, ErrNotFound},
		{"wrong password", LoginInput{Email: "a@b.com", Password: "secret2"}, ErrInvalidCredentials},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := fx.auth.Login(ctx, tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if res != nil {
				t.Fatalf("expected no token, got %+v", res)
			}
		})
	}

	t.Run("wrong password message", func(t *testing.T) {
		_, err := fx.auth.Login(ctx, LoginInput{Email: "a@b.com", Password: "nope"})
		if PublicMessage(err) != "incorrect credentials" {
			t.Fatalf("unexpected message %q", PublicMessage(err))
		}
	})

	t.Run("email lookup is case insensitive", func(t *testing.T) {
		if _, err := fx.auth.Login(ctx, LoginInput{Email: "  A@B.COM ", Password: "secret1"}); err != nil {
			t.Fatalf("login: %v", err)
		}
	})
}

func TestAuthServiceLoginDoesNotWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockUserRepository(ctrl)
	hasher := security.NewPasswordHasher(bcrypt.MinCost, 1)
	hash, err := hasher.Hash(context.Background(), "secret1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	repo.EXPECT().FindByEmail(gomock.Any(), "a@b.com").Return(&domain.User{ID: 3, Email: "a@b.com", PasswordHash: hash}, nil)
	// Create is never expected; gomock fails the test on any unexpected call.

	auth := NewAuthService(repo, hasher, security.NewJWTManager("", testJWTSecret, time.Hour))
	if _, err := auth.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestAuthServiceLoginStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repogomock.NewMockUserRepository(ctrl)
	repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	auth := NewAuthService(repo, security.NewPasswordHasher(bcrypt.MinCost, 1), security.NewJWTManager("", testJWTSecret, time.Hour))
	_, err := auth.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "x"})
	if !errors.Is(err, ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
}
