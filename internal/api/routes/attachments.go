package routes

import (
	"github.com/go-chi/chi/v5"

	attachmentHandlers "socialposts/internal/api/handlers/attachments"
	"socialposts/internal/core/attachments"
)

// RegisterAttachmentRoutes registers the attachment retrieval endpoint
func RegisterAttachmentRoutes(r chi.Router, store attachments.Store) {
	serveHandler := attachmentHandlers.NewServeHandler(store)

	r.Get("/uploads/{reference}", serveHandler.HandleServe)
}
