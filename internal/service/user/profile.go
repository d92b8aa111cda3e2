package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/access"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

// GetMe returns the authenticated user's own record.
func (s *Service) GetMe(ctx context.Context) (*domain.User, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Me(actor, access.ActionRetrieve); err != nil {
		return nil, err
	}
	u, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.GetMe: %w", err)
	}
	return u, nil
}

// UpdateMe applies a partial update to the authenticated user's own record.
// The role is ignored unless the user is an admin.
func (s *Service) UpdateMe(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Me(actor, access.ActionUpdate); err != nil {
		return nil, err
	}
	if !access.CanChangeOwnRole(actor) {
		input.Role = nil
	}

	self, err := s.users.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}
	updated, err := s.apply(ctx, self, input)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateMe: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", updated.ID.String()))
	return updated, nil
}
