// Package auth implements passwordless signup: a confirmation code is mailed
// to the user and exchanged for an access and refresh token pair.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/yamdb-backend/internal/auth"
	"github.com/heartmarshall/yamdb-backend/internal/config"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) (*domain.User, error)
}

type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, username, role string) (string, error)
	ValidateAccessToken(token string) (auth.AccessClaims, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

type codeGenerator interface {
	Generate(u *domain.User) string
	Check(u *domain.User, code string) bool
}

type mailer interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the signup and token flows.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenRepo
	tx     txManager
	jwt    jwtManager
	codes  codeGenerator
	mail   mailer
	cfg    config.AuthConfig
	now    func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	codes codeGenerator,
	mail mailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		tx:     tx,
		jwt:    jwt,
		codes:  codes,
		mail:   mail,
		cfg:    cfg,
		now:    time.Now,
	}
}

// issueTokens signs an access token for the user and stores the hash of a
// fresh refresh token.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(user.ID, user.Username, user.Role.String())
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &TokenPair{
		Access:  access,
		Refresh: rawRefresh,
		User:    user,
	}, nil
}
