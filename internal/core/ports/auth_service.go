package ports

import (
	"context"

	"github.com/reviewhub/review-system/internal/core/domain"
)

// RegisterInput carries the sign-up form fields. Admin-initiated employee
// creation uses the same shape with the role forced to employee.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            domain.Role
}

// AuthService verifies credentials and registers new users.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
}
