package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Signup(ctx context.Context, input auth.SignupInput) (*domain.User, error)
	ExchangeCode(ctx context.Context, input auth.ExchangeInput) (*auth.TokenPair, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.TokenPair, error)
	Logout(ctx context.Context) error
}

// AuthHandler serves the signup and token endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email"    validate:"required,max=254,email"`
}

type signupResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type tokenRequest struct {
	Username         string `json:"username"          validate:"required"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

type refreshRequest struct {
	Refresh string `json:"refresh" validate:"required"`
}

type tokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Signup handles POST /auth/signup: registers the user if needed and mails a
// confirmation code.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	u, err := h.svc.Signup(r.Context(), auth.SignupInput{Username: req.Username, Email: req.Email})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, signupResponse{Username: u.Username, Email: u.Email})
}

// Token handles POST /auth/token: exchanges a confirmation code for tokens.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	pair, err := h.svc.ExchangeCode(r.Context(), auth.ExchangeInput{
		Username:         req.Username,
		ConfirmationCode: req.ConfirmationCode,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Refresh handles POST /auth/token/refresh: rotates a refresh token.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	pair, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.Refresh})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Access: pair.Access, Refresh: pair.Refresh})
}

// Logout handles POST /auth/logout: revokes every refresh token of the
// authenticated user.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Logout(r.Context()); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
