package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/yamdb-backend/internal/adapter/mail"
	"github.com/heartmarshall/yamdb-backend/internal/adapter/postgres"
	categoryrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/category"
	commentrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/comment"
	genrerepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/genre"
	reviewrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/review"
	titlerepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/title"
	tokenrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/yamdb-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/yamdb-backend/internal/auth"
	"github.com/heartmarshall/yamdb-backend/internal/config"
	"github.com/heartmarshall/yamdb-backend/internal/metrics"
	authsvc "github.com/heartmarshall/yamdb-backend/internal/service/auth"
	"github.com/heartmarshall/yamdb-backend/internal/service/catalog"
	"github.com/heartmarshall/yamdb-backend/internal/service/rating"
	"github.com/heartmarshall/yamdb-backend/internal/service/review"
	"github.com/heartmarshall/yamdb-backend/internal/service/user"
	"github.com/heartmarshall/yamdb-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("mail_backend", cfg.Mail.Backend),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	handler, err := newHandler(cfg, pool, newMailSender(cfg.Mail, logger), logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

// newHandler wires repositories, services and handlers on top of pool.
// Outgoing mail goes through next guarded by a circuit breaker.
func newHandler(cfg *config.Config, pool *pgxpool.Pool, next mail.Sender, logger *slog.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	categories := categoryrepo.New(pool)
	genres := genrerepo.New(pool)
	titles := titlerepo.New(pool)
	reviews := reviewrepo.New(pool)
	comments := commentrepo.New(pool)

	keys, err := auth.DeriveKeys(cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("derive keys: %w", err)
	}
	jwtManager := auth.NewJWTManager(keys, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	codes := auth.NewConfirmation(keys, cfg.Auth.ConfirmationCodeTTL)

	sender := mail.NewBreakerSender(next, mail.BreakerConfig{
		Name:      "mail",
		Failures:  cfg.Mail.BreakerFailures,
		OpenDelay: cfg.Mail.BreakerOpenDelay,
	}, m, logger)

	aggregator := rating.NewAggregator(logger, reviews, titles, m)
	authService := authsvc.NewService(logger, users, tokens, txm, jwtManager, codes, sender, cfg.Auth)
	catalogService := catalog.NewService(logger, categories, genres, titles, txm)
	reviewService := review.NewService(logger, titles, reviews, comments, aggregator, txm,
		review.Options{RecomputeOnDelete: cfg.Rating.RecomputeOnDelete})
	userService := user.NewService(logger, users, aggregator, txm,
		user.Options{RecomputeOnDelete: cfg.Rating.RecomputeOnDelete})

	pages := rest.NewPaginator(cfg.API)
	return rest.NewRouter(
		rest.RouterConfig{
			API:           cfg.API,
			Authenticator: authService,
			Metrics:       m,
			Gatherer:      reg,
			Logger:        logger,
		},
		rest.Handlers{
			Auth:    rest.NewAuthHandler(authService, logger),
			Catalog: rest.NewCatalogHandler(catalogService, pages, logger),
			Review:  rest.NewReviewHandler(reviewService, pages, logger),
			User:    rest.NewUserHandler(userService, pages, logger),
			Health:  rest.NewHealthHandler(pool, sender, BuildVersion()),
		},
	), nil
}

// serve runs srv until ctx is cancelled, then drains in-flight requests
// within the configured shutdown timeout.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}

// newMailSender picks the configured mail backend.
func newMailSender(cfg config.MailConfig, logger *slog.Logger) mail.Sender {
	if cfg.Backend == config.MailBackendSMTP {
		return mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.From,
			StartTLS: cfg.SMTPStartTLS,
			Timeout:  cfg.Timeout,
		})
	}
	return mail.NewLogSender(logger)
}
