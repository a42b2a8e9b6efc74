// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"io"
)

// StoredImage describes an image persisted by an ImageStore.
type StoredImage struct {
	URL      string
	PublicID string
	Size     int64
}

// ImageStore persists item pictures. Stored content is kept as uploaded.
type ImageStore interface {
	// Put stores the content under key and returns where it can be fetched.
	Put(ctx context.Context, key string, r io.Reader, contentType string) (*StoredImage, error)

	// Delete removes a previously stored image. Deleting a missing key is not an error.
	Delete(ctx context.Context, publicID string) error
}
