package post

import (
	"errors"
	"io"
	"net/http"

	"socialposts/internal/core/posts"
)

// maxUploadSize bounds the whole multipart body: form fields plus one
// attached file. 10MB is generous for a single image or document.
const maxUploadSize = 10 * 1024 * 1024

// fileField is the multipart field name for the optional attachment;
// it also becomes the prefix of the stored blob's name.
const fileField = "file"

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{
		service: service,
	}
}

// HandleCreate handles POST /api/posts
// Accepts a multipart form with title, content, and an optional file.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// 1. Limit request body size before parsing the form
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	// 2. Parse multipart form
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 10MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"Expected a multipart form body")
		return
	}

	req := posts.CreatePostRequest{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}

	// 3. Read the optional attachment into memory
	file, header, err := r.FormFile(fileField)
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(file)
		if readErr != nil {
			writeError(w, http.StatusBadRequest, "InvalidRequest",
				"Failed to read uploaded file")
			return
		}
		req.Attachment = &posts.AttachmentUpload{
			Data:         data,
			OriginalName: header.Filename,
			FieldName:    fileField,
		}
	case errors.Is(err, http.ErrMissingFile):
		// No attachment, fine
	default:
		writeError(w, http.StatusBadRequest, "InvalidRequest",
			"Invalid file field")
		return
	}

	// 4. Create the post; validation errors come back as 400
	created, err := h.service.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}
