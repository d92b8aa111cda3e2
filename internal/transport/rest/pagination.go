package rest

import (
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/heartmarshall/yamdb-backend/internal/config"
	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Paginator reads page-number pagination from the query string and renders
// the {count, next, previous, results} envelope.
type Paginator struct {
	defaultSize int
	maxSize     int
}

// NewPaginator creates a Paginator from the API config.
func NewPaginator(cfg config.APIConfig) Paginator {
	return Paginator{defaultSize: cfg.DefaultPageSize, maxSize: cfg.MaxPageSize}
}

// pageEnvelope is the paginated list body.
type pageEnvelope[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Request parses ?page and ?page_size. An unparsable page, or one whose
// offset would overflow, is reported with ok=false and answers 404 like any
// page past the end.
func (p Paginator) Request(r *http.Request) (domain.PageRequest, bool) {
	q := r.URL.Query()
	req := domain.PageRequest{Page: 1}
	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return req, false
		}
		req.Page = n
	}
	if v := q.Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			req.Size = n
		}
	}
	req = req.Normalize(p.defaultSize, p.maxSize)
	if req.Size > 0 && req.Page-1 > (math.MaxInt-req.Size)/req.Size {
		return req, false
	}
	return req, true
}

// inRange reports whether the requested page exists. The first page always
// exists, even when empty.
func inRange[T any](page domain.Page[T], req domain.PageRequest) bool {
	return req.Page == 1 || req.Offset() < page.Total
}

// writePage renders one page, mapping items with conv.
func writePage[T, R any](w http.ResponseWriter, r *http.Request, req domain.PageRequest, page domain.Page[T], conv func(T) R) {
	if !inRange(page, req) {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}

	results := make([]R, 0, len(page.Items))
	for _, it := range page.Items {
		results = append(results, conv(it))
	}

	env := pageEnvelope[R]{Count: page.Total, Results: results}
	if page.HasNext(req) {
		next := pageURL(r, req.Page+1)
		env.Next = &next
	}
	if req.Page > 1 {
		prev := pageURL(r, req.Page-1)
		env.Previous = &prev
	}
	writeJSON(w, http.StatusOK, env)
}

// pageURL rebuilds the absolute request URL pointing at page. The first page
// omits the page parameter.
func pageURL(r *http.Request, page int) string {
	u := url.URL{
		Scheme: requestScheme(r),
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.String()
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" || proto == "http" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
