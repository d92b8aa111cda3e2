package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	ListReviews(ctx context.Context, titleID int64, page domain.PageRequest) (domain.Page[domain.Review], error)
	GetReview(ctx context.Context, titleID, reviewID int64) (*domain.Review, error)
	CreateReview(ctx context.Context, input review.CreateReviewInput) (*domain.Review, error)
	UpdateReview(ctx context.Context, input review.UpdateReviewInput) (*domain.Review, error)
	DeleteReview(ctx context.Context, titleID, reviewID int64) error
	ListComments(ctx context.Context, titleID, reviewID int64, page domain.PageRequest) (domain.Page[domain.Comment], error)
	GetComment(ctx context.Context, titleID, reviewID, commentID int64) (*domain.Comment, error)
	CreateComment(ctx context.Context, input review.CreateCommentInput) (*domain.Comment, error)
	UpdateComment(ctx context.Context, input review.UpdateCommentInput) (*domain.Comment, error)
	DeleteComment(ctx context.Context, titleID, reviewID, commentID int64) error
}

// ReviewHandler serves reviews of a title and comments on a review.
type ReviewHandler struct {
	svc   reviewService
	pages Paginator
	log   *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, pages Paginator, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, pages: pages, log: logger.With("handler", "review")}
}

type createReviewRequest struct {
	Text  *string `json:"text"  validate:"required"`
	Score *int    `json:"score" validate:"required"`
}

type updateReviewRequest struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

type createCommentRequest struct {
	Text *string `json:"text" validate:"required"`
}

type updateCommentRequest struct {
	Text *string `json:"text"`
}

// ListReviews handles GET /titles/{title_id}/reviews.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	titleID, ok := int64Param(w, r, "title_id")
	if !ok {
		return
	}
	req, ok := h.pages.Request(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	page, err := h.svc.ListReviews(r.Context(), titleID, req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, r, req, page, toReviewResponse)
}

// GetReview handles GET /titles/{title_id}/reviews/{review_id}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewPath(w, r)
	if !ok {
		return
	}
	rv, err := h.svc.GetReview(r.Context(), titleID, reviewID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(*rv))
}

// CreateReview handles POST /titles/{title_id}/reviews.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	titleID, ok := int64Param(w, r, "title_id")
	if !ok {
		return
	}
	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rv, err := h.svc.CreateReview(r.Context(), review.CreateReviewInput{
		TitleID: titleID,
		Text:    *req.Text,
		Score:   *req.Score,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(*rv))
}

// UpdateReview handles PATCH /titles/{title_id}/reviews/{review_id}.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewPath(w, r)
	if !ok {
		return
	}
	var req updateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	rv, err := h.svc.UpdateReview(r.Context(), review.UpdateReviewInput{
		TitleID:  titleID,
		ReviewID: reviewID,
		Text:     req.Text,
		Score:    req.Score,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReviewResponse(*rv))
}

// DeleteReview handles DELETE /titles/{title_id}/reviews/{review_id}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteReview(r.Context(), titleID, reviewID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListComments handles GET /titles/{title_id}/reviews/{review_id}/comments.
func (h *ReviewHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewPath(w, r)
	if !ok {
		return
	}
	req, ok := h.pages.Request(r)
	if !ok {
		writeDetail(w, http.StatusNotFound, "Invalid page.")
		return
	}
	page, err := h.svc.ListComments(r.Context(), titleID, reviewID, req)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writePage(w, r, req, page, toCommentResponse)
}

// GetComment handles GET .../comments/{comment_id}.
func (h *ReviewHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetComment(r.Context(), titleID, reviewID, commentID)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// CreateComment handles POST .../comments.
func (h *ReviewHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, ok := reviewPath(w, r)
	if !ok {
		return
	}
	var req createCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	if err := validateRequest(req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateComment(r.Context(), review.CreateCommentInput{
		TitleID:  titleID,
		ReviewID: reviewID,
		Text:     *req.Text,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCommentResponse(*c))
}

// UpdateComment handles PATCH .../comments/{comment_id}.
func (h *ReviewHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}
	var req updateCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateComment(r.Context(), review.UpdateCommentInput{
		TitleID:   titleID,
		ReviewID:  reviewID,
		CommentID: commentID,
		Text:      req.Text,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toCommentResponse(*c))
}

// DeleteComment handles DELETE .../comments/{comment_id}.
func (h *ReviewHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	titleID, reviewID, commentID, ok := commentPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteComment(r.Context(), titleID, reviewID, commentID); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func reviewPath(w http.ResponseWriter, r *http.Request) (titleID, reviewID int64, ok bool) {
	if titleID, ok = int64Param(w, r, "title_id"); !ok {
		return 0, 0, false
	}
	if reviewID, ok = int64Param(w, r, "review_id"); !ok {
		return 0, 0, false
	}
	return titleID, reviewID, true
}

func commentPath(w http.ResponseWriter, r *http.Request) (titleID, reviewID, commentID int64, ok bool) {
	if titleID, reviewID, ok = reviewPath(w, r); !ok {
		return 0, 0, 0, false
	}
	if commentID, ok = int64Param(w, r, "comment_id"); !ok {
		return 0, 0, 0, false
	}
	return titleID, reviewID, commentID, true
}
