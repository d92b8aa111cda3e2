package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/catalog"
)

// catalogService defines the minimal interface needed by CatalogHandler.
type catalogService interface {
	ListCategories(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Category], error)
	CreateCategory(ctx context.Context, input catalog.CreateTaxonInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	ListGenres(ctx context.Context, name string, page domain.PageRequest) (domain.Page[domain.Genre], error)
	CreateGenre(ctx context.Context, input catalog.CreateTaxonInput) (*domain.Genre, error)
	DeleteGenre(ctx context.Context, slug string) error
	ListTitles(ctx context.Context, f domain.TitleFilter, page domain.PageRequest) (domain.Page[domain.Title], error)
	GetTitle(ctx context.Context, id int64) (*domain.Title, error)
	CreateTitle(ctx context.Context, input catalog.CreateTitleInput) (*domain.Title, error)
	UpdateTitle(ctx context.Context, input catalog.UpdateTitleInput) (*domain.Title, error)
	DeleteTitle(ctx context.Context, id int64) error
}

// CatalogHandler serves categories, genres and titles.
type CatalogHandler struct {
	svc   catalogService
	pages Paginator
	log   *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalogService, pages Paginator, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{svc: svc, pages: pages, log: logger.With("handler", "catalog")}
}

type taxonRequest struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50"`
}

type createTitleRequest struct {
	Name        *string  `json:"name"        validate:"required"`
	Year        *int     `json:"year"        validate:"required"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

type updateTitleRequest struct {
	Name        *string        `json:"name"`
	Year        *int           `json:"year"`
	Description *string        `json:"description"`
	Category    nullableString `json:"category"`
	Genre       *[]string      `json:"genre"`
}

// ListCategories handles GET /categories. ?search matches the name exactly.
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	req, ok := h.pages.Request(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	page, err := h.svc.ListCategories(r.Context(), r.URL.Query().Get("search"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, r, req, page, toCategoryResponse)
}

// CreateCategory handles POST /categories.
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req taxonRequest
	if err := h.decodeTaxon(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	c, err := h.svc.CreateCategory(r.Context(), catalog.CreateTaxonInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// DeleteCategory handles DELETE /categories/{slug}.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCategory(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListGenres handles GET /genres. ?search matches the name exactly.
func (h *CatalogHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	req, ok := h.pages.Request(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	page, err := h.svc.ListGenres(r.Context(), r.URL.Query().Get("search"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, r, req, page, toGenreResponse)
}

// CreateGenre handles POST /genres.
func (h *CatalogHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var req taxonRequest
	if err := h.decodeTaxon(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	g, err := h.svc.CreateGenre(r.Context(), catalog.CreateTaxonInput{Name: req.Name, Slug: req.Slug})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGenreResponse(*g))
}

// DeleteGenre handles DELETE /genres/{slug}.
func (h *CatalogHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteGenre(r.Context(), chi.URLParam(r, "slug")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CatalogHandler) decodeTaxon(w http.ResponseWriter, r *http.Request, req *taxonRequest) error {
	if err := decodeJSON(w, r, req); err != nil {
		return err
	}
	return validateRequest(req)
}

// ListTitles handles GET /titles with the category, genre, name and year
// filters.
func (h *CatalogHandler) ListTitles(w http.ResponseWriter, r *http.Request) {
	req, ok := h.pages.Request(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	filter, err := titleFilterFromQuery(r)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	page, err := h.svc.ListTitles(r.Context(), filter, req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, r, req, page, toTitleResponse)
}

// GetTitle handles GET /titles/{title_id}.
func (h *CatalogHandler) GetTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "title_id")
	if !ok {
		return
	}
	t, err := h.svc.GetTitle(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTitleResponse(*t))
}

// CreateTitle handles POST /titles.
func (h *CatalogHandler) CreateTitle(w http.ResponseWriter, r *http.Request) {
	var req createTitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	t, err := h.svc.CreateTitle(r.Context(), catalog.CreateTitleInput{
		Name:         *req.Name,
		Year:         *req.Year,
		Description:  req.Description,
		CategorySlug: req.Category,
		GenreSlugs:   req.Genre,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTitleResponse(*t))
}

// UpdateTitle handles PATCH /titles/{title_id}. A null category detaches the
// title from its category.
func (h *CatalogHandler) UpdateTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "title_id")
	if !ok {
		return
	}
	var req updateTitleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	input := catalog.UpdateTitleInput{
		ID:          id,
		Name:        req.Name,
		Year:        req.Year,
		Description: req.Description,
		GenreSlugs:  req.Genre,
	}
	if req.Category.Set {
		slug := ""
		if req.Category.Value != nil {
			slug = *req.Category.Value
		}
		input.CategorySlug = &slug
	}

	t, err := h.svc.UpdateTitle(r.Context(), input)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toTitleResponse(*t))
}

// DeleteTitle handles DELETE /titles/{title_id}.
func (h *CatalogHandler) DeleteTitle(w http.ResponseWriter, r *http.Request) {
	id, ok := int64Param(w, r, "title_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteTitle(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func titleFilterFromQuery(r *http.Request) (domain.TitleFilter, error) {
	q := r.URL.Query()
	f := domain.TitleFilter{
		CategorySlug: q.Get("category"),
		GenreSlug:    q.Get("genre"),
		Name:         q.Get("name"),
	}
	if v := q.Get("year"); v != "" {
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return f, domain.NewValidationError("year", "Enter a number.")
		}
		year := int(n)
		f.Year = &year
	}
	return f, nil
}

// int64Param reads a positive integer URL parameter. Anything else cannot
// name an object and answers 404.
func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		notFound(w, r)
		return 0, false
	}
	return id, true
}
