// Package user implements user administration and the self-service profile.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/rating"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, search string, page domain.PageRequest) (domain.Page[domain.User], error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.UserUpdate) (*domain.User, error)
	SetSuperuser(ctx context.Context, id uuid.UUID, superuser bool) error
	Delete(ctx context.Context, id uuid.UUID) error
	ReviewedTitleIDs(ctx context.Context, id uuid.UUID) ([]int64, error)
}

type ratingAggregator interface {
	Recompute(ctx context.Context, titleID int64, trigger rating.Trigger) (*float64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tune the service.
type Options struct {
	// RecomputeOnDelete refreshes the ratings of titles a deleted user reviewed.
	RecomputeOnDelete bool
}

// Service implements user operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	rating ratingAggregator
	tx     txManager
	opts   Options
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	rating ratingAggregator,
	tx txManager,
	opts Options,
) *Service {
	return &Service{
		log:    logger.With("service", "user"),
		users:  users,
		rating: rating,
		tx:     tx,
		opts:   opts,
	}
}
