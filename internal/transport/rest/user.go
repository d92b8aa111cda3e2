package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	ListUsers(ctx context.Context, search string, page domain.PageRequest) (domain.Page[domain.User], error)
	GetUser(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, username string, input user.UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, username string) error
	GetMe(ctx context.Context) (*domain.User, error)
	UpdateMe(ctx context.Context, input user.UpdateUserInput) (*domain.User, error)
}

// UserHandler serves user administration and the /users/me profile.
type UserHandler struct {
	svc   userService
	pages Paginator
	log   *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, pages Paginator, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, pages: pages, log: logger.With("handler", "user")}
}

type createUserRequest struct {
	Username  string `json:"username"   validate:"required,max=150"`
	Email     string `json:"email"      validate:"required,max=254,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name"  validate:"max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role"       validate:"omitempty,oneof=user moderator admin"`
}

type updateUserRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role"`
}

func (r updateUserRequest) toInput() user.UpdateUserInput {
	return user.UpdateUserInput{
		Username:  r.Username,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Bio:       r.Bio,
		Role:      r.Role,
	}
}

// ListUsers handles GET /users. ?search matches the username exactly.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req, ok := h.pages.Request(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	page, err := h.svc.ListUsers(r.Context(), r.URL.Query().Get("search"), req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, r, req, page, toUserResponse)
}

// GetUser handles GET /users/{username}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// CreateUser handles POST /users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Bio:       req.Bio,
		Role:      req.Role,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUserResponse(*u))
}

// UpdateUser handles PATCH /users/{username}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	u, err := h.svc.UpdateUser(r.Context(), chi.URLParam(r, "username"), req.toInput())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// DeleteUser handles DELETE /users/{username}.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteUser(r.Context(), chi.URLParam(r, "username")); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetMe(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}

// UpdateMe handles PATCH /users/me. The role is ignored for non-admins.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	u, err := h.svc.UpdateMe(r.Context(), req.toInput())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(*u))
}
