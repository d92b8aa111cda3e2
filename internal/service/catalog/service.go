// Package catalog manages categories, genres and titles.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

type categoryRepo interface {
	List(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Category], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type genreRepo interface {
	List(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Genre], error)
	GetBySlug(ctx context.Context, slug string) (*domain.Genre, error)
	Create(ctx context.Context, g domain.Genre) (*domain.Genre, error)
	DeleteBySlug(ctx context.Context, slug string) error
}

type titleRepo interface {
	List(ctx context.Context, f domain.TitleFilter, page domain.PageRequest) (domain.Page[domain.Title], error)
	GetByID(ctx context.Context, id int64) (*domain.Title, error)
	Create(ctx context.Context, t domain.Title) (int64, error)
	Update(ctx context.Context, id int64, u domain.TitleUpdate) error
	Delete(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides catalog operations. Permission checks use the actor
// stored in the context.
type Service struct {
	categories categoryRepo
	genres     genreRepo
	titles     titleRepo
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new catalog service.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	genres genreRepo,
	titles titleRepo,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		genres:     genres,
		titles:     titles,
		tx:         tx,
		log:        logger.With("service", "catalog"),
		now:        time.Now,
	}
}
