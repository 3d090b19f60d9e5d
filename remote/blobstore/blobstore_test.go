package blobstore

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreUpload(t *testing.T) {
	store := NewMemoryStore("memory://blobs/")
	url, err := store.Upload(context.Background(), "music/audio/ave.mp3", strings.NewReader("ID3"), "audio/mpeg")
	require.NoError(t, err)
	assert.Equal(t, "memory://blobs/music/audio/ave.mp3", url)

	data, ok := store.Blob("music/audio/ave.mp3")
	require.True(t, ok)
	assert.Equal(t, "ID3", string(data))

	store.FailWith(errors.New("quota exceeded"))
	_, err = store.Upload(context.Background(), "music/audio/other.mp3", strings.NewReader(""), "")
	assert.EqualError(t, err, "quota exceeded")
	_, ok = store.Blob("music/audio/other.mp3")
	assert.False(t, ok)
}

func TestS3Url(t *testing.T) {
	store := &S3Store{cdnPrefix: "https://cdn.choir.org/"}
	assert.Equal(t, "https://cdn.choir.org/news_images/a.png", store.GetUrlFromKey("news_images/a.png"))
}

func TestResourceType(t *testing.T) {
	assert.Equal(t, "image", resourceType("image/png"))
	assert.Equal(t, "video", resourceType("audio/mpeg"))
	assert.Equal(t, "raw", resourceType("application/pdf"))
	assert.Equal(t, "auto", resourceType(""))
}
