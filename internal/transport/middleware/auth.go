package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

type actorAuthenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Actor, error)
}

// Auth resolves a bearer token into the request's Actor. Requests without a
// bearer token continue as anonymous; a token that fails to authenticate is
// rejected with 401 so a client never silently loses its identity.
func Auth(authn actorAuthenticator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			actor, err := authn.Authenticate(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "bearer token rejected",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
				writeDetail(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			fillActorSlot(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithActor(r.Context(), actor)))
		})
	}
}

// bearerToken extracts the token of an "Authorization: Bearer <token>"
// header. Other schemes are ignored.
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
