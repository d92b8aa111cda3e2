package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/auth"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Refresh performs token rotation and returns a new token pair.
// A revoked, reused or expired token, or a deleted user, yields ErrUnauthorized.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*TokenPair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash := auth.HashToken(input.RefreshToken)

	var pair *TokenPair
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		token, err := s.tokens.GetByHash(txCtx, hash)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "refresh token reuse attempted")
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get token: %w", err)
		}

		if token.IsExpired(s.now()) {
			return domain.ErrUnauthorized
		}

		user, err := s.users.GetByID(txCtx, token.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.log.WarnContext(ctx, "refresh for deleted user",
					slog.String("user_id", token.UserID.String()))
				return domain.ErrUnauthorized
			}
			return fmt.Errorf("get user: %w", err)
		}

		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}

		pair, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}
	return pair, nil
}
