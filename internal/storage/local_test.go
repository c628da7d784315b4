package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := NewLocalStorage(Config{BasePath: t.TempDir(), BaseURL: "/api/v1/files"})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "documents/a.pdf", strings.NewReader("pdf-bytes"), "application/pdf"))

	exists, err := store.Exists(ctx, "documents/a.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	url, err := store.GetURL(ctx, "documents/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/files/documents/a.pdf", url)

	signed, err := store.GetSignedURL(ctx, "documents/a.pdf", 0)
	require.NoError(t, err)
	assert.Equal(t, url, signed)

	reader, err := store.Open(ctx, "documents/a.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, reader.Close())
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	_, err = store.Open(ctx, "documents/missing.pdf")
	assert.Error(t, err)

	require.NoError(t, store.Delete(ctx, "documents/a.pdf"))
	exists, err = store.Exists(ctx, "documents/a.pdf")
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting a missing object is not an error.
	assert.NoError(t, store.Delete(ctx, "documents/a.pdf"))
}
