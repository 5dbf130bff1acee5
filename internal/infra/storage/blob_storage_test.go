package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func createTestStorageService(t *testing.T) *blobStorageService {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return &blobStorageService{
		bucket:        bucket,
		publicBaseURL: "https://media.directorio.example.uy",
		logger:        slog.Default(),
	}
}

func TestBlobStorageService_Upload(t *testing.T) {
	service := createTestStorageService(t)
	ctx := context.Background()

	url, err := service.Upload(ctx, "residences", "fachada.jpg", "image/jpeg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.directorio.example.uy/residences/fachada.jpg", url)

	data, err := service.bucket.ReadAll(ctx, "residences/fachada.jpg")
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))
}

func TestBlobStorageService_Upload_TraversalFilename(t *testing.T) {
	service := createTestStorageService(t)
	ctx := context.Background()

	url, err := service.Upload(ctx, "residences", "../../etc/passwd", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, "https://media.directorio.example.uy/residences/passwd", url)
}

func TestBlobStorageService_Delete(t *testing.T) {
	service := createTestStorageService(t)
	ctx := context.Background()

	_, err := service.Upload(ctx, "news", "portada.png", "image/png", strings.NewReader("png bytes"))
	require.NoError(t, err)

	err = service.Delete(ctx, "news/portada.png")
	require.NoError(t, err)

	exists, err := service.bucket.Exists(ctx, "news/portada.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorageService_Delete_MissingObject(t *testing.T) {
	service := createTestStorageService(t)

	err := service.Delete(context.Background(), "news/missing.png")
	assert.Error(t, err)
}

func TestBuildObjectKey(t *testing.T) {
	tests := []struct {
		name     string
		folder   string
		filename string
		expected string
	}{
		{"Simple", "residences", "foto.jpg", "residences/foto.jpg"},
		{"Empty folder", "", "foto.jpg", "foto.jpg"},
		{"Folder with slashes", "/residences/", "foto.jpg", "residences/foto.jpg"},
		{"Traversal filename", "residences", "../../secret", "residences/secret"},
		{"Whitespace filename", "residences", "  foto.jpg", "residences/foto.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, buildObjectKey(tt.folder, tt.filename))
		})
	}
}
