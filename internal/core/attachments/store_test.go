package attachments

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_SaveAndOpen(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	payload := []byte("some image bytes")
	ref, err := store.Save(ctx, payload, "holiday.png", "file")
	require.NoError(t, err)

	blob, err := store.Open(ctx, ref)
	require.NoError(t, err)
	defer blob.Close()

	roundTrip, err := io.ReadAll(blob)
	require.NoError(t, err)
	assert.Equal(t, payload, roundTrip)
}

func TestDiskStore_NamingScheme(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), []byte("x"), "report.pdf", "file")
	require.NoError(t, err)

	// fieldName + "-" + millisecond timestamp + original extension
	assert.Regexp(t, regexp.MustCompile(`^file-\d+\.pdf$`), ref)
}

func TestDiskStore_NoExtension(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	ref, err := store.Save(context.Background(), []byte("x"), "README", "file")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^file-\d+$`), ref)
}

func TestDiskStore_OpenUnknownReference(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Open(context.Background(), "file-12345.png")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDiskStore_OpenRejectsTraversal(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	require.NoError(t, err)

	// A file outside the root that a traversal reference would point at
	outside := filepath.Join(filepath.Dir(root), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0644))
	defer os.Remove(outside)

	for _, ref := range []string{
		"../secret.txt",
		"..\\secret.txt",
		fmt.Sprintf("..%csecret.txt", os.PathSeparator),
	} {
		_, err := store.Open(context.Background(), ref)
		assert.ErrorIs(t, err, ErrNotFound, "reference %q must not escape the root", ref)
	}
}

func TestDiskStore_SaveValidation(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Save(ctx, nil, "a.png", "file")
	assert.Error(t, err, "empty data rejected")

	_, err = store.Save(ctx, []byte("x"), "a.png", "")
	assert.Error(t, err, "empty field name rejected")
}

func TestNewDiskStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")

	_, statErr := os.Stat(root)
	require.True(t, os.IsNotExist(statErr))

	_, err := NewDiskStore(root)
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewDiskStore_EmptyRoot(t *testing.T) {
	_, err := NewDiskStore("")
	assert.Error(t, err)
}
