package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

type actorSlotKey struct{}

// actorSlot lets Auth report the resolved actor back to Logger, which runs
// outside it and never sees the inner request context.
type actorSlot struct {
	actor domain.Actor
}

func withActorSlot(ctx context.Context) (context.Context, *actorSlot) {
	slot := &actorSlot{}
	return context.WithValue(ctx, actorSlotKey{}, slot), slot
}

func fillActorSlot(ctx context.Context, a domain.Actor) {
	if slot, ok := ctx.Value(actorSlotKey{}).(*actorSlot); ok {
		slot.actor = a
	}
}

// Logger emits one http.request record per request with method, path,
// status, duration, request id and, for authenticated requests, the user.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			ctx, slot := withActorSlot(r.Context())

			next.ServeHTTP(sw, r.WithContext(ctx))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Int("bytes", sw.bytes),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			}
			if slot.actor.IsAuthenticated() {
				attrs = append(attrs,
					slog.String("user_id", slot.actor.UserID.String()),
					slog.String("role", slot.actor.Role.String()),
				)
			}

			level := slog.LevelInfo
			if sw.status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "http.request", attrs...)
		})
	}
}

// statusWriter captures the response status and body size.
type statusWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.wroteHeader = true
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
