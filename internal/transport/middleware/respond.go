package middleware

import (
	"net/http"

	"github.com/goccy/go-json"
)

// writeDetail writes the {"detail": ...} body used for non-field errors.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"detail": detail}) //nolint:errcheck
}
