package attachments

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrNotFound is returned when no blob exists under the given reference
var ErrNotFound = errors.New("attachment not found")

// Store defines the interface for attachment blob storage.
// References returned by Save are stable strings that posts record
// verbatim and clients later present to Open.
type Store interface {
	// Save writes the blob under a derived, collision-resistant name and
	// returns that name as the reference
	Save(ctx context.Context, data []byte, originalName, fieldName string) (string, error)

	// Open returns a reader over the stored bytes for the exact
	// reference, or ErrNotFound
	Open(ctx context.Context, reference string) (io.ReadCloser, error)
}

// DiskStore implements Store on the local filesystem.
// Blobs live directly under root as {fieldName}-{unixMillis}{ext}.
// Two saves in the same millisecond under the same field name collide;
// that risk is accepted, matching the upload naming this service has
// always used.
type DiskStore struct {
	root string
}

// NewDiskStore creates a DiskStore rooted at root, creating the
// directory if it does not exist yet.
func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		return nil, errors.New("storage root cannot be empty")
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage root %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes data under {fieldName}-{unixMillis}{ext(originalName)}
// and returns the generated name.
func (s *DiskStore) Save(ctx context.Context, data []byte, originalName, fieldName string) (string, error) {
	if len(data) == 0 {
		return "", errors.New("data cannot be empty")
	}
	if fieldName == "" {
		return "", errors.New("fieldName cannot be empty")
	}

	name := fmt.Sprintf("%s-%d%s",
		makeNameSafe(fieldName),
		time.Now().UnixMilli(),
		makeNameSafe(filepath.Ext(originalName)))

	path := filepath.Join(s.root, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write attachment %s: %w", name, err)
	}

	return name, nil
}

// Open returns the stored bytes for an exact reference string.
func (s *DiskStore) Open(ctx context.Context, reference string) (io.ReadCloser, error) {
	safe := makeNameSafe(reference)
	if safe == "" || safe != reference {
		// A reference we never could have generated
		return nil, ErrNotFound
	}

	f, err := os.Open(filepath.Join(s.root, safe))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment %s: %w", reference, err)
	}
	return f, nil
}

// makeNameSafe sanitizes a filename component for use under the storage
// root. It removes characters that could be used for path traversal:
// path separators, traversal sequences, and null bytes.
func makeNameSafe(part string) string {
	s := strings.ReplaceAll(part, "/", "")
	s = strings.ReplaceAll(s, "\\", "")
	s = strings.ReplaceAll(s, "..", "")
	s = strings.ReplaceAll(s, "\x00", "")
	return s
}
