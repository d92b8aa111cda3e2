// Package review manages reviews of titles and the comments on them.
// Every review mutation recomputes the title rating in the same transaction.
package review

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/rating"
)

type titleRepo interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type reviewRepo interface {
	List(ctx context.Context, titleID int64, page domain.PageRequest) (domain.Page[domain.Review], error)
	Get(ctx context.Context, titleID, id int64) (*domain.Review, error)
	ExistsByAuthor(ctx context.Context, titleID int64, authorID uuid.UUID) (bool, error)
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	Update(ctx context.Context, id int64, text *string, score *int) error
	Delete(ctx context.Context, id int64) error
}

type commentRepo interface {
	List(ctx context.Context, reviewID int64, page domain.PageRequest) (domain.Page[domain.Comment], error)
	Get(ctx context.Context, reviewID, id int64) (*domain.Comment, error)
	Create(ctx context.Context, c domain.Comment) (*domain.Comment, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Delete(ctx context.Context, id int64) error
}

type ratingAggregator interface {
	Recompute(ctx context.Context, titleID int64, trigger rating.Trigger) (*float64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tune the service.
type Options struct {
	// RecomputeOnDelete refreshes the title rating after a review is deleted.
	RecomputeOnDelete bool
}

// Service provides review and comment operations.
type Service struct {
	titles   titleRepo
	reviews  reviewRepo
	comments commentRepo
	rating   ratingAggregator
	tx       txManager
	opts     Options
	log      *slog.Logger
}

// NewService creates a new review service.
func NewService(
	logger *slog.Logger,
	titles titleRepo,
	reviews reviewRepo,
	comments commentRepo,
	rating ratingAggregator,
	tx txManager,
	opts Options,
) *Service {
	return &Service{
		titles:   titles,
		reviews:  reviews,
		comments: comments,
		rating:   rating,
		tx:       tx,
		opts:     opts,
		log:      logger.With("service", "review"),
	}
}

// errDuplicateReview is returned when the author already reviewed the title.
var errDuplicateReview = domain.NewValidationError(domain.NonFieldErrors, "you have already reviewed this title")
