package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yamdb-backend/internal/access"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

// ListCategories returns a page of categories, optionally filtered by exact name.
func (s *Service) ListCategories(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Category], error) {
	if err := access.Taxonomy(ctxutil.ActorFromCtx(ctx), access.ActionList); err != nil {
		return domain.Page[domain.Category]{}, err
	}
	res, err := s.categories.List(ctx, strings.TrimSpace(name), page)
	if err != nil {
		return domain.Page[domain.Category]{}, fmt.Errorf("catalog.ListCategories: %w", err)
	}
	return res, nil
}

// CreateCategory creates a category. A taken slug is a validation error.
func (s *Service) CreateCategory(ctx context.Context, input CreateTaxonInput) (*domain.Category, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Taxonomy(actor, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.categories.Create(ctx, domain.Category{Name: strings.TrimSpace(input.Name), Slug: input.Slug})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", "category with this slug already exists")
		}
		return nil, fmt.Errorf("catalog.CreateCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("slug", c.Slug),
		slog.String("user_id", actor.UserID.String()),
	)
	return c, nil
}

// DeleteCategory removes a category. Its titles stay, without a category.
func (s *Service) DeleteCategory(ctx context.Context, slug string) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Taxonomy(actor, access.ActionDelete); err != nil {
		return err
	}
	if err := s.categories.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("catalog.DeleteCategory: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("slug", slug),
		slog.String("user_id", actor.UserID.String()),
	)
	return nil
}

// ListGenres returns a page of genres, optionally filtered by exact name.
func (s *Service) ListGenres(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Genre], error) {
	if err := access.Taxonomy(ctxutil.ActorFromCtx(ctx), access.ActionList); err != nil {
		return domain.Page[domain.Genre]{}, err
	}
	res, err := s.genres.List(ctx, strings.TrimSpace(name), page)
	if err != nil {
		return domain.Page[domain.Genre]{}, fmt.Errorf("catalog.ListGenres: %w", err)
	}
	return res, nil
}

// CreateGenre creates a genre. A taken slug is a validation error.
func (s *Service) CreateGenre(ctx context.Context, input CreateTaxonInput) (*domain.Genre, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Taxonomy(actor, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.genres.Create(ctx, domain.Genre{Name: strings.TrimSpace(input.Name), Slug: input.Slug})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", "genre with this slug already exists")
		}
		return nil, fmt.Errorf("catalog.CreateGenre: %w", err)
	}

	s.log.InfoContext(ctx, "genre created",
		slog.String("slug", g.Slug),
		slog.String("user_id", actor.UserID.String()),
	)
	return g, nil
}

// DeleteGenre removes a genre and its title links.
func (s *Service) DeleteGenre(ctx context.Context, slug string) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Taxonomy(actor, access.ActionDelete); err != nil {
		return err
	}
	if err := s.genres.DeleteBySlug(ctx, slug); err != nil {
		return fmt.Errorf("catalog.DeleteGenre: %w", err)
	}

	s.log.InfoContext(ctx, "genre deleted",
		slog.String("slug", slug),
		slog.String("user_id", actor.UserID.String()),
	)
	return nil
}
