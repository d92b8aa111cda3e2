package user

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

// ListUsers returns a page of users ordered by username (admin only).
// A non-empty search matches the username exactly.
func (s *Service) ListUsers(ctx context.Context, search string, page domain.PageRequest) (domain.Page[domain.User], error) {
	if err := access.Users(ctxutil.ActorFromCtx(ctx), access.ActionList); err != nil {
		return domain.Page[domain.User]{}, err
	}
	res, err := s.users.List(ctx, strings.TrimSpace(search), page)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("user.ListUsers: %w", err)
	}
	return res, nil
}

// GetUser returns a user by username (admin only).
func (s *Service) GetUser(ctx context.Context, username string) (*domain.User, error) {
	if err := access.Users(ctxutil.ActorFromCtx(ctx), access.ActionRetrieve); err != nil {
		return nil, err
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.GetUser: %w", err)
	}
	return u, nil
}

// CreateUser creates a user directly, skipping signup (admin only).
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Users(actor, access.ActionCreate); err != nil {
		return nil, err
	}
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	role := domain.UserRoleUser
	if input.Role != "" {
		role = domain.UserRole(input.Role)
	}

	var created *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkUnique(txCtx, nil, &input.Username, &input.Email); err != nil {
			return err
		}
		var err error
		created, err = s.users.Create(txCtx, domain.User{
			Username:  input.Username,
			Email:     input.Email,
			Role:      role,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Bio:       input.Bio,
		})
		if err != nil {
			return mapUniqueRace(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
		slog.String("admin_id", actor.UserID.String()),
	)
	return created, nil
}

// UpdateUser applies a partial update to a user, including the role (admin only).
func (s *Service) UpdateUser(ctx context.Context, username string, input UpdateUserInput) (*domain.User, error) {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Users(actor, access.ActionUpdate); err != nil {
		return nil, err
	}

	target, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}
	updated, err := s.apply(ctx, target, input)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user updated",
		slog.String("user_id", updated.ID.String()),
		slog.String("role", updated.Role.String()),
		slog.String("admin_id", actor.UserID.String()),
	)
	return updated, nil
}

// DeleteUser removes a user with their reviews and comments (admin only).
// Ratings of the titles they reviewed are recomputed when configured.
func (s *Service) DeleteUser(ctx context.Context, username string) error {
	actor := ctxutil.ActorFromCtx(ctx)
	if err := access.Users(actor, access.ActionDelete); err != nil {
		return err
	}

	var deleted *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		target, err := s.users.GetByUsername(txCtx, username)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		titleIDs, err := s.users.ReviewedTitleIDs(txCtx, target.ID)
		if err != nil {
			return fmt.Errorf("reviewed titles: %w", err)
		}
		if err := s.users.Delete(txCtx, target.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if s.opts.RecomputeOnDelete {
			for _, id := range titleIDs {
				if _, err := s.rating.Recompute(txCtx, id, rating.TriggerUserDelete); err != nil {
					return err
				}
			}
		}
		deleted = target
		return nil
	})
	if err != nil {
		return fmt.Errorf("user.DeleteUser: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", deleted.ID.String()),
		slog.String("admin_id", actor.UserID.String()),
	)
	return nil
}

// apply validates and stores an update of target, keeping usernames and
// emails unique.
func (s *Service) apply(ctx context.Context, target *domain.User, input UpdateUserInput) (*domain.User, error) {
	input = input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkUnique(txCtx, target, input.Username, input.Email); err != nil {
			return err
		}
		var err error
		updated, err = s.users.Update(txCtx, target.ID, input.toUpdate())
		if err != nil {
			return mapUniqueRace(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// checkUnique rejects a username or email held by a user other than self.
// self is nil when creating.
func (s *Service) checkUnique(ctx context.Context, self *domain.User, username, email *string) error {
	var errs []domain.FieldError

	if username != nil {
		other, err := s.users.GetByUsername(ctx, *username)
		switch {
		case err == nil && (self == nil || other.ID != self.ID):
			errs = append(errs, domain.FieldError{Field: "username", Message: "a user with this username already exists"})
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("check username: %w", err)
		}
	}
	if email != nil {
		other, err := s.users.GetByEmail(ctx, *email)
		switch {
		case err == nil && (self == nil || other.ID != self.ID):
			errs = append(errs, domain.FieldError{Field: "email", Message: "a user with this email already exists"})
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("check email: %w", err)
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// mapUniqueRace turns a unique violation that slipped past checkUnique into a
// validation error.
func mapUniqueRace(err error) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return domain.NewValidationError(domain.NonFieldErrors, "a user with this username or email already exists")
	}
	return err
}
