package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const testBaseURL = "https://cdn.example.com/photos"

func TestBlobStorage_UploadAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	storage := NewBlobStorage(bucket, testBaseURL+"/")

	url, err := storage.Upload(ctx, "restaurants/abc", "Front.JPG", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, testBaseURL+"/restaurants/abc/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	key := strings.TrimPrefix(url, testBaseURL+"/")
	content, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	require.NoError(t, storage.Delete(ctx, url))
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)

	// Deleting twice is not an error.
	assert.NoError(t, storage.Delete(ctx, url))
}

func TestBlobStorage_DeleteForeignURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	storage := NewBlobStorage(bucket, testBaseURL)

	err := storage.Delete(context.Background(), "https://elsewhere.example.com/x.png")

	assert.Error(t, err)
}
