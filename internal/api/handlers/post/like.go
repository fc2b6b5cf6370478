package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialposts/internal/core/posts"
)

// LikeHandler handles like requests
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{
		service: service,
	}
}

// HandleLike handles POST /api/posts/like/{postID}
// Increments the post's like counter and returns the updated post.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	updated, err := h.service.LikePost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}
