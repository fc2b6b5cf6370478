package attachments

import (
	"errors"
	"io"
	"log"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"socialposts/internal/core/attachments"
)

// ServeHandler streams stored attachment blobs back to clients
type ServeHandler struct {
	store attachments.Store
}

// NewServeHandler creates a new attachment serve handler
func NewServeHandler(store attachments.Store) *ServeHandler {
	return &ServeHandler{
		store: store,
	}
}

// HandleServe handles GET /uploads/{reference}
// Serves the raw stored bytes with a content type inferred from the
// reference's extension.
func (h *ServeHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	blob, err := h.store.Open(r.Context(), reference)
	if errors.Is(err, attachments.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		slog.Error("[ATTACHMENT-SERVE] failed to open blob",
			"reference", reference, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer blob.Close()

	if contentType := mime.TypeByExtension(filepath.Ext(reference)); contentType != "" {
		w.Header().Set("Content-Type", contentType)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	if _, err := io.Copy(w, blob); err != nil {
		// Headers already sent, log only
		log.Printf("Failed to stream attachment %s: %v", reference, err)
	}
}
