package service

import (
	"context"
	"io"
)

// StorageService abstracts the media object store. The application only ever
// handles the returned public URL strings, never binary content.
type StorageService interface {
	// Upload stores an object under folder/filename and returns its public URL.
	Upload(ctx context.Context, folder, filename, contentType string, body io.Reader) (string, error)

	// Delete removes an object by the key previously used to upload it.
	Delete(ctx context.Context, key string) error
}
