package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yamdb-backend/internal/access"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/rating"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

// ListReviews returns a page of the title's reviews.
func (s *Service) ListReviews(ctx context.Context, titleID int64, page domain.PageRequest) (domain.Page[domain.Review], error) {
	if err := access.Discussion(ctxutil.ActorFromCtx(ctx), access.ActionList); err != nil {
		return domain.Page[domain.Review]{}, err
	}
	if err := s.requireTitle(ctx, titleID); err != nil {
		return domain.Page[domain.Review]{}, fmt.Errorf("review.ListReviews: %w", err)
	}
	res, err := s.reviews.List(ctx, titleID, page)
	if err != nil {
		return domain.Page[domain.Review]{}, fmt.Errorf("review.ListReviews: %w", err)
	}
	return res, nil
}

// GetReview returns one review of the title.
func (s *Service) GetReview(ctx context.Context, titleID, reviewID int64) (*domain.Review, error) {
	if err := access.Discussion(ctxutil.ActorFromCtx(ctx), access.ActionRetrieve); err != nil {
		return nil, err
	}
	rv, err := s.reviews.Get(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("review.GetReview: %w", err)
	}
	return rv, nil
}

// CreateReview stores the actor's review of a title and recomputes its rating.
// A second review of the same title by the same author is a validation error.
func (s *Service) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Discussion(actor, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Review
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.requireTitle(txCtx, input.TitleID); err != nil {
			return err
		}

		dup, err := s.reviews.ExistsByAuthor(txCtx, input.TitleID, actor.UserID)
		if err != nil {
			return fmt.Errorf("check duplicate: %w", err)
		}
		if dup {
			return errDuplicateReview
		}

		created, err = s.reviews.Create(txCtx, domain.Review{
			TitleID:  input.TitleID,
			AuthorID: actor.UserID,
			Text:     strings.TrimSpace(input.Text),
			Score:    input.Score,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return errDuplicateReview
			}
			return fmt.Errorf("create review: %w", err)
		}

		if _, err := s.rating.Recompute(txCtx, input.TitleID, rating.TriggerCreate); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review.CreateReview: %w", err)
	}
	created.Author = actor.Username

	s.log.InfoContext(ctx, "review created",
		slog.Int64("title_id", input.TitleID),
		slog.Int64("review_id", created.ID),
		slog.String("user_id", actor.UserID.String()),
		slog.Int("score", created.Score),
	)
	return created, nil
}

// UpdateReview changes the text or score of a review and recomputes the title
// rating. Only the author, a moderator or an admin may update it.
func (s *Service) UpdateReview(ctx context.Context, input UpdateReviewInput) (*domain.Review, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Discussion(actor, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Review
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rv, err := s.reviews.Get(txCtx, input.TitleID, input.ReviewID)
		if err != nil {
			return fmt.Errorf("get review: %w", err)
		}
		if err := access.DiscussionObject(actor, access.ActionUpdate, rv.AuthorID); err != nil {
			return err
		}

		var text *string
		if input.Text != nil {
			t := strings.TrimSpace(*input.Text)
			text = &t
		}
		if err := s.reviews.Update(txCtx, rv.ID, text, input.Score); err != nil {
			return fmt.Errorf("update review: %w", err)
		}
		if _, err := s.rating.Recompute(txCtx, input.TitleID, rating.TriggerUpdate); err != nil {
			return err
		}

		updated, err = s.reviews.Get(txCtx, input.TitleID, input.ReviewID)
		if err != nil {
			return fmt.Errorf("reload review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review.UpdateReview: %w", err)
	}

	s.log.InfoContext(ctx, "review updated",
		slog.Int64("title_id", input.TitleID),
		slog.Int64("review_id", input.ReviewID),
		slog.String("user_id", actor.UserID.String()),
	)
	return updated, nil
}

// DeleteReview removes a review with its comments. The title rating is
// recomputed when the service is configured to do so.
func (s *Service) DeleteReview(ctx context.Context, titleID, reviewID int64) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Discussion(actor, access.ActionDelete); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rv, err := s.reviews.Get(txCtx, titleID, reviewID)
		if err != nil {
			return fmt.Errorf("get review: %w", err)
		}
		if err := access.DiscussionObject(actor, access.ActionDelete, rv.AuthorID); err != nil {
			return err
		}
		if err := s.reviews.Delete(txCtx, rv.ID); err != nil {
			return fmt.Errorf("delete review: %w", err)
		}
		if s.opts.RecomputeOnDelete {
			if _, err := s.rating.Recompute(txCtx, titleID, rating.TriggerDelete); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("review.DeleteReview: %w", err)
	}

	s.log.InfoContext(ctx, "review deleted",
		slog.Int64("title_id", titleID),
		slog.Int64("review_id", reviewID),
		slog.String("user_id", actor.UserID.String()),
	)
	return nil
}

func (s *Service) requireTitle(ctx context.Context, titleID int64) error {
	ok, err := s.titles.Exists(ctx, titleID)
	if err != nil {
		return fmt.Errorf("check title: %w", err)
	}
	if !ok {
		return fmt.Errorf("title %d: %w", titleID, domain.ErrNotFound)
	}
	return nil
}
