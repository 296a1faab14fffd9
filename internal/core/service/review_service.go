package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// ReviewService implements review submission and retrieval.
type ReviewService struct {
	users   ports.UserRepository
	reviews ports.ReviewRepository
}

func NewReviewService(users ports.UserRepository, reviews ports.ReviewRepository) *ReviewService {
	return &ReviewService{users: users, reviews: reviews}
}

// Submit attaches feedback from reviewer to recipient. Both referenced
// users must exist at creation time.
func (s *ReviewService) Submit(ctx context.Context, in ports.SubmitReviewInput) (*domain.Review, error) {
	if strings.TrimSpace(in.Feedback) == "" {
		return nil, domain.ErrEmptyFeedback
	}

	if _, err := s.users.FindByID(ctx, in.RecipientID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, in.ReviewerID); err != nil {
		return nil, err
	}

	review := &domain.Review{
		RecipientID: in.RecipientID,
		ReviewerID:  in.ReviewerID,
		Feedback:    in.Feedback,
		CreatedAt:   time.Now().UTC(),
	}

	return s.reviews.Create(ctx, review)
}

// ListForRecipient returns the reviews received by a user, each expanded
// with the reviewer's identity. Dangling reviewer references are skipped.
func (s *ReviewService) ListForRecipient(ctx context.Context, recipientID string) ([]domain.ReviewWithReviewer, error) {
	received, err := s.reviews.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, err
	}

	expanded := make([]domain.ReviewWithReviewer, 0, len(received))
	for _, review := range received {
		reviewer, err := s.users.FindByID(ctx, review.ReviewerID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		expanded = append(expanded, domain.ReviewWithReviewer{Review: review, Reviewer: reviewer})
	}
	return expanded, nil
}
