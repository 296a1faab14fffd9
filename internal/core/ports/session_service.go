package ports

import (
	"context"

	"github.com/reviewhub/review-system/internal/core/domain"
)

// SessionService maps an authenticated user to a durable token and back.
// The store remains the source of truth: Resolve re-reads the user on
// every call, so a deleted user invalidates the session immediately.
type SessionService interface {
	Issue(user *domain.User) (string, error)
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
