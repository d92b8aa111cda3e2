package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Signup registers the (username, email) pair if needed and mails a
// confirmation code to it. Repeating a signup with the same pair sends a new
// code. A username or email already bound to a different partner is rejected.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var user *domain.User
	created := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		byName, err := s.users.GetByUsername(txCtx, input.Username)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get by username: %w", err)
		}
		if byName != nil {
			if byName.Email != input.Email {
				return domain.NewValidationError("username", "a user with this username already exists")
			}
			user = byName
			return nil
		}

		if _, err := s.users.GetByEmail(txCtx, input.Email); err == nil {
			return domain.NewValidationError("email", "a user with this email already exists")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get by email: %w", err)
		}

		user, err = s.users.Create(txCtx, domain.User{
			Username: input.Username,
			Email:    input.Email,
			Role:     domain.UserRoleUser,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.NewValidationError(domain.NonFieldErrors, "a user with this username or email already exists")
			}
			return fmt.Errorf("create user: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	if err := s.sendCode(ctx, user); err != nil {
		return nil, fmt.Errorf("auth.Signup: %w", err)
	}

	s.log.InfoContext(ctx, "confirmation code sent",
		slog.String("user_id", user.ID.String()),
		slog.Bool("new_user", created),
	)
	return user, nil
}

func (s *Service) sendCode(ctx context.Context, user *domain.User) error {
	code := s.codes.Generate(user)
	msg := domain.EmailMessage{
		To:      user.Email,
		Subject: "YaMDb confirmation code",
		Body: fmt.Sprintf(
			"Hello, %s!\n\nYour confirmation code: %s\n\nExchange it for a token at /api/v1/auth/token/. The code works once and expires in %s.\n",
			user.Username, code, s.cfg.ConfirmationCodeTTL,
		),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation code: %w", err)
	}
	return nil
}
