package service

import (
	"context"
	"io"
)

// ImageStorage hosts uploaded images and serves them from public URLs.
type ImageStorage interface {
	// Upload stores the content under folder and returns its public URL.
	Upload(ctx context.Context, folder, filename, contentType string, content io.Reader) (string, error)

	// Delete removes the object previously returned by Upload.
	Delete(ctx context.Context, url string) error
}
