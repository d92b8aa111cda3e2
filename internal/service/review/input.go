package review

import (
	"errors"
	"strings"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// CreateReviewInput holds a new review of a title.
type CreateReviewInput struct {
	TitleID int64
	Text    string
	Score   int
}

// Validate checks all fields and collects all errors.
func (i CreateReviewInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	errs = appendScoreError(errs, i.Score)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateReviewInput holds a partial review update. The title and author never change.
type UpdateReviewInput struct {
	TitleID  int64
	ReviewID int64
	Text     *string
	Score    *int
}

// Validate checks all fields and collects all errors.
func (i UpdateReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "may not be blank"})
	}
	if i.Score != nil {
		errs = appendScoreError(errs, *i.Score)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func appendScoreError(errs []domain.FieldError, score int) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(domain.ValidateScore(score), &ve) {
		return append(errs, ve.Errors...)
	}
	return errs
}

// CreateCommentInput holds a new comment on a review.
type CreateCommentInput struct {
	TitleID  int64
	ReviewID int64
	Text     string
}

// Validate checks all fields.
func (i CreateCommentInput) Validate() error {
	if strings.TrimSpace(i.Text) == "" {
		return domain.NewValidationError("text", "required")
	}
	return nil
}

// UpdateCommentInput holds a comment text change.
type UpdateCommentInput struct {
	TitleID   int64
	ReviewID  int64
	CommentID int64
	Text      *string
}

// Validate checks all fields.
func (i UpdateCommentInput) Validate() error {
	if i.Text != nil && strings.TrimSpace(*i.Text) == "" {
		return domain.NewValidationError("text", "may not be blank")
	}
	return nil
}
