package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/reviewhub/review-system/internal/api/metrics"
	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/ports"
)

// ReviewHandler serves review submission. The reviewer is always the
// signed-in user; the recipient comes from the form.
type ReviewHandler struct {
	Base
	reviews ports.ReviewService
}

func NewReviewHandler(base Base, reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{Base: base, reviews: reviews}
}

// Create handles POST /reviews.
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		h.flash(c, ports.FlashError, "Couldn't submit feedback")
		return redirectBack(c)
	}
	if err := c.Validate(&req); err != nil {
		h.flash(c, ports.FlashError, err.Error())
		return redirectBack(c)
	}

	reviewer := currentUser(c)
	_, err := h.reviews.Submit(c.Request().Context(), ports.SubmitReviewInput{
		RecipientID: req.RecipientID,
		ReviewerID:  reviewer.ID,
		Feedback:    req.Feedback,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.flash(c, ports.FlashError, "Employee does not exist!")
		case errors.Is(err, domain.ErrEmptyFeedback):
			h.flash(c, ports.FlashError, "Feedback must not be empty")
		default:
			h.log.Error().Err(err).Str("recipient_id", req.RecipientID).Msg("failed to submit feedback")
			h.flash(c, ports.FlashError, "Couldn't submit feedback")
		}
		return redirectBack(c)
	}

	metrics.ReviewsCreatedTotal.Inc()
	h.flash(c, ports.FlashSuccess, "Feedback submitted!")
	return redirectBack(c)
}
