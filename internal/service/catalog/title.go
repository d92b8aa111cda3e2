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

// ListTitles returns a filtered page of titles ordered by id.
func (s *Service) ListTitles(ctx context.Context, f domain.TitleFilter, page domain.PageRequest) (domain.Page[domain.Title], error) {
	if err := access.Titles(ctxutil.ActorFromCtx(ctx), access.ActionList); err != nil {
		return domain.Page[domain.Title]{}, err
	}
	f.Name = strings.TrimSpace(f.Name)
	res, err := s.titles.List(ctx, f, page)
	if err != nil {
		return domain.Page[domain.Title]{}, fmt.Errorf("catalog.ListTitles: %w", err)
	}
	return res, nil
}

// GetTitle returns a title with its category, genres and rating.
func (s *Service) GetTitle(ctx context.Context, id int64) (*domain.Title, error) {
	if err := access.Titles(ctxutil.ActorFromCtx(ctx), access.ActionRetrieve); err != nil {
		return nil, err
	}
	t, err := s.titles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetTitle: %w", err)
	}
	return t, nil
}

// CreateTitle creates a title. Unknown category or genre slugs are validation errors.
func (s *Service) CreateTitle(ctx context.Context, input CreateTitleInput) (*domain.Title, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Titles(actor, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := input.Validate(s.now().Year()); err != nil {
		return nil, err
	}

	var created *domain.Title
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t := domain.Title{
			Name:        strings.TrimSpace(input.Name),
			Year:        input.Year,
			Description: input.Description,
		}
		if input.CategorySlug != nil && *input.CategorySlug != "" {
			c, err := s.resolveCategory(txCtx, *input.CategorySlug)
			if err != nil {
				return err
			}
			t.Category = c
		}
		genres, err := s.resolveGenres(txCtx, input.GenreSlugs)
		if err != nil {
			return err
		}
		t.Genres = genres

		id, err := s.titles.Create(txCtx, t)
		if err != nil {
			return fmt.Errorf("create title: %w", err)
		}
		created, err = s.titles.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("reload title: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateTitle: %w", err)
	}

	s.log.InfoContext(ctx, "title created",
		slog.Int64("title_id", created.ID),
		slog.String("user_id", actor.UserID.String()),
	)
	return created, nil
}

// UpdateTitle applies a partial update. The rating cannot be set.
func (s *Service) UpdateTitle(ctx context.Context, input UpdateTitleInput) (*domain.Title, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Titles(actor, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := input.Validate(s.now().Year()); err != nil {
		return nil, err
	}

	var updated *domain.Title
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		upd := domain.TitleUpdate{
			Year:        input.Year,
			Description: input.Description,
		}
		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			upd.Name = &name
		}
		if input.CategorySlug != nil {
			upd.SetCategory = true
			if *input.CategorySlug != "" {
				c, err := s.resolveCategory(txCtx, *input.CategorySlug)
				if err != nil {
					return err
				}
				upd.CategoryID = &c.ID
			}
		}
		if input.GenreSlugs != nil {
			genres, err := s.resolveGenres(txCtx, *input.GenreSlugs)
			if err != nil {
				return err
			}
			upd.GenreIDs = make([]int64, len(genres))
			for i, g := range genres {
				upd.GenreIDs[i] = g.ID
			}
		}

		if err := s.titles.Update(txCtx, input.ID, upd); err != nil {
			return fmt.Errorf("update title: %w", err)
		}
		var err error
		updated, err = s.titles.GetByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("reload title: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.UpdateTitle: %w", err)
	}

	s.log.InfoContext(ctx, "title updated",
		slog.Int64("title_id", input.ID),
		slog.String("user_id", actor.UserID.String()),
	)
	return updated, nil
}

// DeleteTitle removes a title with its reviews and comments.
func (s *Service) DeleteTitle(ctx context.Context, id int64) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Titles(actor, access.ActionDelete); err != nil {
		return err
	}
	if err := s.titles.Delete(ctx, id); err != nil {
		return fmt.Errorf("catalog.DeleteTitle: %w", err)
	}

	s.log.InfoContext(ctx, "title deleted",
		slog.Int64("title_id", id),
		slog.String("user_id", actor.UserID.String()),
	)
	return nil
}

func (s *Service) resolveCategory(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := s.categories.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("category", fmt.Sprintf("category with slug %q does not exist", slug))
		}
		return nil, fmt.Errorf("resolve category: %w", err)
	}
	return c, nil
}

// resolveGenres looks up genres by slug, dropping duplicates and keeping order.
func (s *Service) resolveGenres(ctx context.Context, slugs []string) ([]domain.Genre, error) {
	seen := make(map[string]struct{}, len(slugs))
	genres := make([]domain.Genre, 0, len(slugs))
	var errs []domain.FieldError
	for _, slug := range slugs {
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}

		g, err := s.genres.GetBySlug(ctx, slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				errs = append(errs, domain.FieldError{Field: "genre", Message: fmt.Sprintf("genre with slug %q does not exist", slug)})
				continue
			}
			return nil, fmt.Errorf("resolve genre: %w", err)
		}
		genres = append(genres, *g)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return genres, nil
}
