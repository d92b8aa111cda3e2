package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

type detailResponse struct {
	Detail string `json:"detail"`
}

type fieldErrorsResponse struct {
	Errors map[string][]string `json:"errors"`
}

// errMalformedBody marks a request body that is not a JSON object of the
// expected shape.
var errMalformedBody = errors.New("malformed request body")

// decodeJSON reads a JSON request body into dst. An empty body decodes to the
// zero value so that missing fields are reported by validation instead.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case err == nil, errors.Is(err, io.EOF):
		return nil
	default:
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return fmt.Errorf("%w: body exceeds %d bytes", errMalformedBody, tooBig.Limit)
		}
		return fmt.Errorf("%w: %s", errMalformedBody, err.Error())
	}
}
