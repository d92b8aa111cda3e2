package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/yamdb-backend/internal/config"
)

// CORS answers preflight requests and sets CORS headers for the configured
// origins using go-chi/cors.
func CORS(cfg config.APIConfig) Middleware {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         cfg.CORSMaxAge,
	})
}
