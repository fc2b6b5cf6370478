package post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialposts/internal/core/posts"
)

// CommentHandler handles comment requests
type CommentHandler struct {
	service posts.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service posts.Service) *CommentHandler {
	return &CommentHandler{
		service: service,
	}
}

// commentInput is the request body for adding a comment
type commentInput struct {
	Text string `json:"text"`
}

// HandleComment handles POST /api/posts/comment/{postID}
// Appends a comment to the post and returns the updated post. Comment
// text is intentionally unvalidated; an empty or missing text field is
// stored as an empty comment.
func (h *CommentHandler) HandleComment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	// Comments are short; 100KB is plenty
	r.Body = http.MaxBytesReader(w, r.Body, 100*1024)

	// An absent body counts as a missing text field, not a bad request
	var input commentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	updated, err := h.service.CommentOnPost(r.Context(), id, input.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
