package attachments_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialposts/internal/api/routes"
	"socialposts/internal/core/attachments"
)

func newTestRouter(t *testing.T) (*chi.Mux, attachments.Store) {
	store, err := attachments.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	r := chi.NewRouter()
	routes.RegisterAttachmentRoutes(r, store)
	return r, store
}

func TestServeAttachment(t *testing.T) {
	router, store := newTestRouter(t)

	payload := []byte("raw image bytes")
	ref, err := store.Save(context.Background(), payload, "pic.png", "file")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+ref, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, payload, rec.Body.Bytes())
}

func TestServeAttachment_UnknownExtension(t *testing.T) {
	router, store := newTestRouter(t)

	ref, err := store.Save(context.Background(), []byte("bytes"), "data.unknownext", "file")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/uploads/"+ref, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
}

func TestServeAttachment_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/uploads/file-12345.png", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
