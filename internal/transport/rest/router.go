package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/yamdb-backend/internal/config"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/metrics"
	"github.com/heartmarshall/yamdb-backend/internal/transport/middleware"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/api/v1"

type authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

// Handlers bundles the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Auth    *AuthHandler
	Catalog *CatalogHandler
	Review  *ReviewHandler
	User    *UserHandler
	Health  *HealthHandler
}

// RouterConfig carries the non-handler dependencies of the router.
type RouterConfig struct {
	API           config.APIConfig
	Authenticator authenticator
	Metrics       *metrics.Metrics
	Gatherer      prometheus.Gatherer
	Logger        *slog.Logger
}

// NewRouter builds the HTTP handler: probes and /metrics at the root, the
// REST API under APIPrefix. Trailing slashes are optional on every route.
func NewRouter(cfg RouterConfig, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Use(middleware.Chain(
		middleware.RequestID,
		middleware.Logger(cfg.Logger),
		middleware.Recovery(cfg.Logger),
		middleware.Metrics(cfg.Metrics),
		middleware.CORS(cfg.API),
	))
	r.Use(chimw.StripSlashes)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{}))

	r.Route(APIPrefix, func(r chi.Router) {
		if cfg.API.RateLimitRequests > 0 {
			r.Use(middleware.RateLimit("api", cfg.API.RateLimitRequests, cfg.API.RateLimitWindow, cfg.Metrics))
		}
		r.Use(middleware.Auth(cfg.Authenticator, cfg.Logger))

		r.Route("/auth", func(r chi.Router) {
			if cfg.API.AuthRateLimitRequests > 0 {
				r.Use(middleware.RateLimit("auth", cfg.API.AuthRateLimitRequests, cfg.API.RateLimitWindow, cfg.Metrics))
			}
			r.Post("/signup", h.Auth.Signup)
			r.Post("/token", h.Auth.Token)
			r.Post("/token/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Catalog.ListCategories)
			r.Post("/", h.Catalog.CreateCategory)
			r.Delete("/{slug}", h.Catalog.DeleteCategory)
		})
		r.Route("/genres", func(r chi.Router) {
			r.Get("/", h.Catalog.ListGenres)
			r.Post("/", h.Catalog.CreateGenre)
			r.Delete("/{slug}", h.Catalog.DeleteGenre)
		})

		r.Route("/titles", func(r chi.Router) {
			r.Get("/", h.Catalog.ListTitles)
			r.Post("/", h.Catalog.CreateTitle)
			r.Route("/{title_id}", func(r chi.Router) {
				r.Get("/", h.Catalog.GetTitle)
				r.Patch("/", h.Catalog.UpdateTitle)
				r.Delete("/", h.Catalog.DeleteTitle)

				r.Route("/reviews", func(r chi.Router) {
					r.Get("/", h.Review.ListReviews)
					r.Post("/", h.Review.CreateReview)
					r.Route("/{review_id}", func(r chi.Router) {
						r.Get("/", h.Review.GetReview)
						r.Patch("/", h.Review.UpdateReview)
						r.Delete("/", h.Review.DeleteReview)

						r.Route("/comments", func(r chi.Router) {
							r.Get("/", h.Review.ListComments)
							r.Post("/", h.Review.CreateComment)
							r.Get("/{comment_id}", h.Review.GetComment)
							r.Patch("/{comment_id}", h.Review.UpdateComment)
							r.Delete("/{comment_id}", h.Review.DeleteComment)
						})
					})
				})
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.User.ListUsers)
			r.Post("/", h.User.CreateUser)
			r.Get("/me", h.User.GetMe)
			r.Patch("/me", h.User.UpdateMe)
			r.Delete("/me", methodNotAllowed)
			r.Get("/{username}", h.User.GetUser)
			r.Patch("/{username}", h.User.UpdateUser)
			r.Delete("/{username}", h.User.DeleteUser)
		})
	})

	return r
}
