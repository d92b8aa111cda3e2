package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yamdb-backend/internal/access"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

// requireReview checks that the review exists and belongs to the title in the path.
func (s *Service) requireReview(ctx context.Context, titleID, reviewID int64) error {
	if _, err := s.reviews.Get(ctx, titleID, reviewID); err != nil {
		return fmt.Errorf("get review: %w", err)
	}
	return nil
}

// ListComments returns a page of the review's comments in creation order.
func (s *Service) ListComments(ctx context.Context, titleID, reviewID int64, page domain.PageRequest) (domain.Page[domain.Comment], error) {
	if err := access.Discussion(ctxutil.ActorFromCtx(ctx), access.ActionList); err != nil {
		return domain.Page[domain.Comment]{}, err
	}
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("review.ListComments: %w", err)
	}
	res, err := s.comments.List(ctx, reviewID, page)
	if err != nil {
		return domain.Page[domain.Comment]{}, fmt.Errorf("review.ListComments: %w", err)
	}
	return res, nil
}

// GetComment returns one comment of the review.
func (s *Service) GetComment(ctx context.Context, titleID, reviewID, commentID int64) (*domain.Comment, error) {
	if err := access.Discussion(ctxutil.ActorFromCtx(ctx), access.ActionRetrieve); err != nil {
		return nil, err
	}
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return nil, fmt.Errorf("review.GetComment: %w", err)
	}
	c, err := s.comments.Get(ctx, reviewID, commentID)
	if err != nil {
		return nil, fmt.Errorf("review.GetComment: %w", err)
	}
	return c, nil
}

// CreateComment adds the actor's comment to a review.
func (s *Service) CreateComment(ctx context.Context, input CreateCommentInput) (*domain.Comment, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Discussion(actor, access.ActionCreate); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireReview(ctx, input.TitleID, input.ReviewID); err != nil {
		return nil, fmt.Errorf("review.CreateComment: %w", err)
	}

	c, err := s.comments.Create(ctx, domain.Comment{
		ReviewID: input.ReviewID,
		AuthorID: actor.UserID,
		Text:     strings.TrimSpace(input.Text),
	})
	if err != nil {
		return nil, fmt.Errorf("review.CreateComment: %w", err)
	}
	c.Author = actor.Username

	s.log.InfoContext(ctx, "comment created",
		slog.Int64("review_id", input.ReviewID),
		slog.Int64("comment_id", c.ID),
		slog.String("user_id", actor.UserID.String()),
	)
	return c, nil
}

// UpdateComment changes the comment text. Only the author, a moderator or an
// admin may update it.
func (s *Service) UpdateComment(ctx context.Context, input UpdateCommentInput) (*domain.Comment, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Discussion(actor, access.ActionUpdate); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireReview(ctx, input.TitleID, input.ReviewID); err != nil {
		return nil, fmt.Errorf("review.UpdateComment: %w", err)
	}

	c, err := s.comments.Get(ctx, input.ReviewID, input.CommentID)
	if err != nil {
		return nil, fmt.Errorf("review.UpdateComment: %w", err)
	}
	if err := access.DiscussionObject(actor, access.ActionUpdate, c.AuthorID); err != nil {
		return nil, err
	}
	if input.Text == nil {
		return c, nil
	}

	text := strings.TrimSpace(*input.Text)
	if err := s.comments.UpdateText(ctx, c.ID, text); err != nil {
		return nil, fmt.Errorf("review.UpdateComment: %w", err)
	}
	c.Text = text

	s.log.InfoContext(ctx, "comment updated",
		slog.Int64("comment_id", c.ID),
		slog.String("user_id", actor.UserID.String()),
	)
	return c, nil
}

// DeleteComment removes a comment. Only the author, a moderator or an admin may delete it.
func (s *Service) DeleteComment(ctx context.Context, titleID, reviewID, commentID int64) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Discussion(actor, access.ActionDelete); err != nil {
		return err
	}
	if err := s.requireReview(ctx, titleID, reviewID); err != nil {
		return fmt.Errorf("review.DeleteComment: %w", err)
	}

	c, err := s.comments.Get(ctx, reviewID, commentID)
	if err != nil {
		return fmt.Errorf("review.DeleteComment: %w", err)
	}
	if err := access.DiscussionObject(actor, access.ActionDelete, c.AuthorID); err != nil {
		return err
	}
	if err := s.comments.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("review.DeleteComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment deleted",
		slog.Int64("comment_id", c.ID),
		slog.String("user_id", actor.UserID.String()),
	)
	return nil
}
