package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"socialposts/internal/core/posts"
)

// ListHandler handles post listing and single-post reads
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /api/posts
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListPosts(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, all)
}

// HandleGet handles GET /api/posts/{postID}
func (h *ListHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "postID")

	found, err := h.service.GetPost(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, found)
}
