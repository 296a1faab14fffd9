package ports

import (
	"context"

	"github.com/reviewhub/review-system/internal/core/domain"
)

// SubmitReviewInput carries a single piece of feedback from reviewer to
// recipient.
type SubmitReviewInput struct {
	RecipientID string
	ReviewerID  string
	Feedback    string
}

// ReviewService creates reviews and lists a user's incoming feedback.
type ReviewService interface {
	Submit(ctx context.Context, in SubmitReviewInput) (*domain.Review, error)
	ListForRecipient(ctx context.Context, recipientID string) ([]domain.ReviewWithReviewer, error)
}
