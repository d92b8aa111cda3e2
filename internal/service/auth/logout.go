package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

// Logout revokes all refresh tokens of the authenticated user.
func (s *Service) Logout(ctx context.Context) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if !actor.IsAuthenticated() {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, actor.UserID); err != nil {
		return fmt.Errorf("auth.Logout: %w", err)
	}

	s.log.InfoContext(ctx, "user logged out", slog.String("user_id", actor.UserID.String()))
	return nil
}

// Authenticate resolves an access token to the actor it identifies. The role
// and superuser flag come from the stored user, so changes apply to tokens
// already issued. Any failure yields ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, token string) (domain.Actor, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Anonymous, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Anonymous, domain.ErrUnauthorized
		}
		return domain.Anonymous, fmt.Errorf("auth.Authenticate: %w", err)
	}
	return user.Actor(), nil
}

// CleanupExpiredTokens removes expired and revoked refresh tokens.
// Returns the number of tokens deleted. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (int, error) {
	count, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, fmt.Errorf("auth.CleanupExpiredTokens: %w", err)
	}

	if count > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens", slog.Int("count", count))
	}

	return count, nil
}
