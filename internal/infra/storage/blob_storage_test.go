package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func newBlobFileStorageForTest(t *testing.T) *blobFileStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "file://"+t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobFileStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.example.com",
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestBlobFileStorage_StoreRoundTrip(t *testing.T) {
	storage := newBlobFileStorageForTest(t)
	ctx := context.Background()

	url, err := storage.Store(ctx, "photo.JPG", "image/jpeg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	data, err := storage.bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestBuildObjectKey(t *testing.T) {
	key := buildObjectKey("garden photo.PNG")
	assert.True(t, strings.HasPrefix(key, "uploads/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	// Keys never reuse the original filename.
	assert.NotContains(t, key, "garden photo")

	// Extension-less filenames still get a key.
	assert.True(t, strings.HasPrefix(buildObjectKey("README"), "uploads/"))
}

func TestBuildObjectKey_Unique(t *testing.T) {
	assert.NotEqual(t, buildObjectKey("a.png"), buildObjectKey("a.png"))
}
