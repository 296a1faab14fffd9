package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// EmployeeService implements the admin-facing management operations.
type EmployeeService struct {
	users   ports.UserRepository
	reviews ports.ReviewRepository
	log     zerolog.Logger
}

func NewEmployeeService(users ports.UserRepository, reviews ports.ReviewRepository, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{users: users, reviews: reviews, log: log}
}

// GetEmployee fetches an employee together with the reviews received,
// each expanded with the reviewer's identity.
func (s *EmployeeService) GetEmployee(ctx context.Context, id string) (*ports.EmployeeDetail, error) {
	employee, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	received, err := s.reviews.ListByRecipient(ctx, id)
	if err != nil {
		return nil, err
	}

	expanded := make([]domain.ReviewWithReviewer, 0, len(received))
	for _, review := range received {
		reviewer, err := s.users.FindByID(ctx, review.ReviewerID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				// cascade delete should make this unreachable; tolerate
				// a dangling reference rather than failing the page
				s.log.Warn().
					Str("review_id", review.ID).
					Str("reviewer_id", review.ReviewerID).
					Msg("review references missing reviewer")
				continue
			}
			return nil, err
		}
		expanded = append(expanded, domain.ReviewWithReviewer{Review: review, Reviewer: reviewer})
	}

	return &ports.EmployeeDetail{Employee: employee, Reviews: expanded}, nil
}

// ListEmployees returns every user record.
func (s *EmployeeService) ListEmployees(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateEmployee overwrites the username and role of an existing
// employee. A missing target leaves the store unchanged.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id string, in ports.UpdateEmployeeInput) (*domain.User, error) {
	if !in.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	employee, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	employee.Username = in.Username
	employee.Role = in.Role
	employee.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee removes the user and every review naming it, in either
// role. The three deletes are independent operations with no surrounding
// transaction: a failure partway leaves prior steps committed. The
// partial result is returned alongside the error so callers can log the
// extent of the cascade.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id string) (ports.CascadeResult, error) {
	var result ports.CascadeResult

	asRecipient, err := s.reviews.DeleteByRecipient(ctx, id)
	result.ReviewsAsRecipient = asRecipient
	if err != nil {
		return result, err
	}

	asReviewer, err := s.reviews.DeleteByReviewer(ctx, id)
	result.ReviewsAsReviewer = asReviewer
	if err != nil {
		return result, err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return result, err
	}

	s.log.Info().
		Str("user_id", id).
		Int64("reviews_as_recipient", asRecipient).
		Int64("reviews_as_reviewer", asReviewer).
		Msg("employee and associated reviews deleted")

	return result, nil
}
