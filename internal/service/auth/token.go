package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// ExchangeCode trades a valid confirmation code for a token pair. The code is
// consumed: recording the login changes the state it was derived from.
// An unknown username yields domain.ErrNotFound, a bad code a validation error.
func (s *Service) ExchangeCode(ctx context.Context, input ExchangeInput) (*TokenPair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var pair *TokenPair
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.users.GetByUsername(txCtx, strings.TrimSpace(input.Username))
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}

		if !s.codes.Check(user, input.ConfirmationCode) {
			s.log.WarnContext(ctx, "invalid confirmation code", slog.String("user_id", user.ID.String()))
			return domain.NewValidationError("confirmation_code", "invalid or expired confirmation code")
		}

		user, err = s.users.TouchLastLogin(txCtx, user.ID, s.now())
		if err != nil {
			return fmt.Errorf("record login: %w", err)
		}

		pair, err = s.issueTokens(txCtx, user)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.ExchangeCode: %w", err)
	}

	s.log.InfoContext(ctx, "user confirmed", slog.String("user_id", pair.User.ID.String()))
	return pair, nil
}
