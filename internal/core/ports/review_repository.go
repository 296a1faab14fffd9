package ports

import (
	"context"

	"github.com/reviewhub/review-system/internal/core/domain"
)

// ReviewRepository defines the persistence interface for review records.
// The two delete operations back the cascade that runs when a user is
// removed: one sweep per reference role.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]domain.Review, error)
	DeleteByRecipient(ctx context.Context, recipientID string) (int64, error)
	DeleteByReviewer(ctx context.Context, reviewerID string) (int64, error)
}
