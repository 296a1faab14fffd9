package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// AuthService implements credential verification and registration.
type AuthService struct {
	users ports.UserRepository
}

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate looks up the user by exact email match and verifies the
// password against the stored bcrypt hash.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

// Register creates a new user. The same path serves self sign-up and
// admin-initiated employee creation; the latter forces the employee role
// before calling. Duplicate emails are rejected without mutating state —
// the unique index on email backstops the read-then-create race.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := in.Role
	if role == "" {
		role = domain.RoleEmployee
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        in.Email,
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.users.Create(ctx, user)
}
