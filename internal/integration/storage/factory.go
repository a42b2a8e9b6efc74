package storage

import (
	"context"
	"fmt"

	"github.com/wardrobe-manager/backend/config"
	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// New opens the image store selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (adapter.ImageStore, error) {
	switch cfg.Driver {
	case config.StorageDriverFS, "":
		return NewFileSystemImageStore(cfg.Dir, cfg.PublicURL)
	case config.StorageDriverS3:
		return NewS3ImageStore(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
