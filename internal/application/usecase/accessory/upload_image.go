// Package accessory contains accessory use cases.
package accessory

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// UploadImageInput represents the input for setting the picture of an accessory.
type UploadImageInput struct {
	AccessoryID uuid.UUID
	UserID      uuid.UUID
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadImageOutput represents the output of an accessory image upload.
type UploadImageOutput struct {
	Accessory *entity.Accessory
}

// UploadImageUseCase stores the picture of an accessory, replacing any previous one.
type UploadImageUseCase struct {
	accessoryRepo adapter.AccessoryRepository
	imageStore    adapter.ImageStore
	cache         adapter.AnalyticsCache
}

// NewUploadImageUseCase creates a new UploadImageUseCase instance. cache may be nil.
func NewUploadImageUseCase(
	accessoryRepo adapter.AccessoryRepository,
	imageStore adapter.ImageStore,
	cache adapter.AnalyticsCache,
) *UploadImageUseCase {
	return &UploadImageUseCase{
		accessoryRepo: accessoryRepo,
		imageStore:    imageStore,
		cache:         cache,
	}
}

// Execute performs the upload.
func (uc *UploadImageUseCase) Execute(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	accessory, err := findOwnedAccessory(ctx, uc.accessoryRepo, input.AccessoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	ext, err := valueobject.ValidateImage(input.ContentType, input.Size)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("accessories/%s/%s%s", accessory.ID, uuid.New(), ext)
	stored, err := uc.imageStore.Put(ctx, key, input.Content, input.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}

	previous := accessory.Image
	accessory.Image = &entity.Image{URL: stored.URL, PublicID: stored.PublicID}
	accessory.UpdatedAt = time.Now().UTC()

	if err := uc.accessoryRepo.Update(ctx, accessory); err != nil {
		_ = uc.imageStore.Delete(ctx, stored.PublicID)
		return nil, fmt.Errorf("failed to update accessory: %w", err)
	}

	if previous != nil {
		if err := uc.imageStore.Delete(ctx, previous.PublicID); err != nil {
			slog.Warn("Failed to delete replaced accessory image", "public_id", previous.PublicID, "error", err)
		}
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &UploadImageOutput{
		Accessory: accessory,
	}, nil
}
