package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/heartmarshall/yamdb-backend/internal/metrics"
)

// RateLimit limits requests per client IP to requests per window using a
// sliding window counter. Rejections are counted under name.
func RateLimit(name string, requests int, window time.Duration, m *metrics.Metrics) Middleware {
	return httprate.Limit(requests, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			m.RateLimitHits.WithLabelValues(name).Inc()
			writeDetail(w, http.StatusTooManyRequests, "request was throttled")
		}),
	)
}
