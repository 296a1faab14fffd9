package ports

import (
	"context"

	"github.com/reviewhub/review-system/internal/core/domain"
)

// UpdateEmployeeInput carries the editable employee fields. Email and
// password are never overwritten through this path.
type UpdateEmployeeInput struct {
	Username string
	Role     domain.Role
}

// EmployeeDetail is an employee together with the reviews received,
// each expanded with the reviewer's identity.
type EmployeeDetail struct {
	Employee *domain.User
	Reviews  []domain.ReviewWithReviewer
}

// CascadeResult reports what a delete removed. The review sweeps run as
// independent operations; a partial result is possible when a later step
// fails (see DeleteEmployee).
type CascadeResult struct {
	ReviewsAsRecipient int64
	ReviewsAsReviewer  int64
}

// EmployeeService exposes the management operations available to admins.
type EmployeeService interface {
	GetEmployee(ctx context.Context, id string) (*EmployeeDetail, error)
	ListEmployees(ctx context.Context) ([]domain.User, error)
	UpdateEmployee(ctx context.Context, id string, in UpdateEmployeeInput) (*domain.User, error)
	DeleteEmployee(ctx context.Context, id string) (CascadeResult, error)
}
