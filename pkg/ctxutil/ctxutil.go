package ctxutil

import (
	"context"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated actor in the context.
func WithActor(ctx context.Context, a domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// ActorFromCtx extracts the actor from the context.
// Returns domain.Anonymous if the value is missing or of the wrong type.
func ActorFromCtx(ctx context.Context) domain.Actor {
	a, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok {
		return domain.Anonymous
	}
	return a
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
