package domain

import "time"

// Review is free-text feedback one user leaves for another. Reviews are
// immutable once created; they disappear only when the cascade delete of a
// referenced user removes them.
type Review struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	ReviewerID  string    `json:"reviewer_id"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}

// ReviewWithReviewer pairs a review with the resolved reviewer identity,
// used when rendering an employee's incoming feedback.
type ReviewWithReviewer struct {
	Review
	Reviewer *User `json:"reviewer"`
}
