package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 10
)

// ValidateScore rejects scores outside [MinScore, MaxScore].
func ValidateScore(score int) error {
	if score < MinScore || score > MaxScore {
		return NewValidationError("score", fmt.Sprintf("must be an integer from %d to %d", MinScore, MaxScore))
	}
	return nil
}

// Review is a user's scored opinion of a title. One per (title, author).
type Review struct {
	ID       int64
	TitleID  int64
	AuthorID uuid.UUID
	// Author is the author's username, filled on read.
	Author  string
	Text    string
	Score   int
	PubDate time.Time
}

// Comment is a reply to a review.
type Comment struct {
	ID       int64
	ReviewID int64
	AuthorID uuid.UUID
	Author   string
	Text     string
	PubDate  time.Time
}
