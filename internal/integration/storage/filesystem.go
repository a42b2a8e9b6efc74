// Package storage implements adapter.ImageStore on the local filesystem and on S3.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// ErrInvalidKey is returned for keys that would escape the storage root.
var ErrInvalidKey = errors.New("invalid storage key")

// FileSystemImageStore writes images below a root directory and serves them
// under a public URL prefix.
type FileSystemImageStore struct {
	root      string
	publicURL string
}

var _ adapter.ImageStore = (*FileSystemImageStore)(nil)

// NewFileSystemImageStore creates the root directory if needed.
func NewFileSystemImageStore(root, publicURL string) (*FileSystemImageStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileSystemImageStore{
		root:      root,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Root returns the directory served under the public URL.
func (s *FileSystemImageStore) Root() string {
	return s.root
}

func (s *FileSystemImageStore) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if key == "" || filepath.IsAbs(clean) || clean == "." || strings.HasPrefix(clean, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.root, clean), nil
}

// Put stores the content of r under key.
func (s *FileSystemImageStore) Put(ctx context.Context, key string, r io.Reader, _ string) (*adapter.StoredImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create image file: %w", err)
	}
	size, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write image: %w", errors.Join(copyErr, closeErr))
	}

	return &adapter.StoredImage{
		URL:      s.publicURL + "/" + filepath.ToSlash(filepath.Clean(filepath.FromSlash(key))),
		PublicID: key,
		Size:     size,
	}, nil
}

// Delete removes a stored image. Missing files are not an error.
func (s *FileSystemImageStore) Delete(_ context.Context, publicID string) error {
	path, err := s.path(publicID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
