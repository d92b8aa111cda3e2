package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Promote sets the role and, when superuser is non-nil, the superuser flag of
// a user. It performs no permission check and is meant for operator tooling
// run against the database directly.
func (s *Service) Promote(ctx context.Context, username string, role domain.UserRole, superuser *bool) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.NewValidationError("role", fmt.Sprintf("%q is not a valid choice", role))
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.users.GetByUsername(txCtx, username)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if superuser != nil {
			if err := s.users.SetSuperuser(txCtx, target.ID, *superuser); err != nil {
				return fmt.Errorf("set superuser: %w", err)
			}
		}
		updated, err = s.users.Update(txCtx, target.ID, domain.UserUpdate{Role: &role})
		if err != nil {
			return fmt.Errorf("set role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.Promote: %w", err)
	}

	s.log.InfoContext(ctx, "user promoted",
		slog.String("user_id", updated.ID.String()),
		slog.String("role", updated.Role.String()),
		slog.Bool("superuser", updated.IsSuperuser),
	)
	return updated, nil
}
