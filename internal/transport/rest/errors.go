package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/pkg/ctxutil"
)

// Response details for errors that carry no field information.
const (
	detailUnauthorized     = "Authentication credentials were not provided or are invalid."
	detailForbidden        = "You do not have permission to perform this action."
	detailNotFound         = "Not found."
	detailMethodNotAllowed = "Method not allowed."
	detailInternal         = "internal server error"
)

// writeError maps a service error onto an HTTP response. Unexpected errors
// are logged and answered with 500.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, fieldErrorsResponse{Errors: ve.Fields()})
	case errors.Is(err, errMalformedBody):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrConflict):
		writeDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
		writeDetail(w, http.StatusUnauthorized, detailUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		writeDetail(w, http.StatusForbidden, detailForbidden)
	case errors.Is(err, domain.ErrNotFound):
		writeDetail(w, http.StatusNotFound, detailNotFound)
	case errors.Is(err, domain.ErrMethodNotAllowed):
		writeDetail(w, http.StatusMethodNotAllowed, detailMethodNotAllowed)
	case errors.Is(err, context.Canceled):
		// Client went away; nobody reads the response.
		log.DebugContext(r.Context(), "request canceled", slog.String("path", r.URL.Path))
	default:
		log.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeDetail(w, http.StatusInternalServerError, detailInternal)
	}
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusNotFound, detailNotFound)
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeDetail(w, http.StatusMethodNotAllowed, detailMethodNotAllowed)
}
