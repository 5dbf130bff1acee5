// Package storage implements the media object store on top of gocloud.dev
// blob buckets, so local disk and GCS deployments share one code path.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"directorio/config"
	"directorio/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers registered by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobStorageService implements StorageService using a gocloud blob bucket.
type blobStorageService struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// StorageParams holds dependencies for StorageService, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStorageService opens the configured bucket and returns a StorageService.
func NewBlobStorageService(params StorageParams) (service.StorageService, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing storage bucket")

			return bucket.Close()
		},
	})

	params.Logger.Info("Storage bucket opened",
		slog.String("bucket_url", cfg.BucketURL),
	)

	return &blobStorageService{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload stores an object under folder/filename and returns its public URL.
func (s *blobStorageService) Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error) {
	key := buildObjectKey(folder, filename)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to open writer for %s", key)
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Close discards the partial write on error.
		writer.Close()

		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to finalize object %s", key)
	}

	s.logger.Info("Object uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// Delete removes an object by the key previously used to upload it.
func (s *blobStorageService) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %s", key)
	}

	return nil
}

// buildObjectKey joins folder and filename, flattening path traversal so a
// crafted filename cannot escape its folder.
func buildObjectKey(folder, filename string) string {
	folder = strings.Trim(folder, "/")
	filename = path.Base(strings.TrimSpace(filename))

	if folder == "" {
		return filename
	}

	return folder + "/" + filename
}
