// Package clothing contains clothing item use cases.
package clothing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// ImageUpload is a single uploaded picture.
type ImageUpload struct {
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadImagesInput represents the input for attaching pictures to a clothing item.
type UploadImagesInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
	Images []ImageUpload
}

// UploadImagesOutput represents the output of an image upload.
type UploadImagesOutput struct {
	Item *entity.ClothingItem
}

// UploadImagesUseCase stores pictures of a clothing item.
type UploadImagesUseCase struct {
	clothingRepo adapter.ClothingRepository
	imageStore   adapter.ImageStore
	cache        adapter.AnalyticsCache
}

// NewUploadImagesUseCase creates a new UploadImagesUseCase instance. cache may be nil.
func NewUploadImagesUseCase(
	clothingRepo adapter.ClothingRepository,
	imageStore adapter.ImageStore,
	cache adapter.AnalyticsCache,
) *UploadImagesUseCase {
	return &UploadImagesUseCase{
		clothingRepo: clothingRepo,
		imageStore:   imageStore,
		cache:        cache,
	}
}

// Execute validates every upload before storing any of them.
func (uc *UploadImagesUseCase) Execute(ctx context.Context, input UploadImagesInput) (*UploadImagesOutput, error) {
	item, err := findOwnedItem(ctx, uc.clothingRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if len(input.Images) == 0 {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeMissingItemFields,
			"at least one image is required",
			domainerror.ErrMissingItemFields,
		)
	}

	if len(item.Images)+len(input.Images) > valueobject.MaxImagesPerClothing {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeTooManyImages,
			fmt.Sprintf("a clothing item can hold at most %d images", valueobject.MaxImagesPerClothing),
			domainerror.ErrTooManyImages,
		)
	}

	extensions := make([]string, len(input.Images))
	for i, upload := range input.Images {
		ext, err := valueobject.ValidateImage(upload.ContentType, upload.Size)
		if err != nil {
			return nil, err
		}
		extensions[i] = ext
	}

	stored := make([]entity.Image, 0, len(input.Images))
	for i, upload := range input.Images {
		key := fmt.Sprintf("clothes/%s/%s%s", item.ID, uuid.New(), extensions[i])
		img, err := uc.imageStore.Put(ctx, key, upload.Content, upload.ContentType)
		if err != nil {
			uc.rollback(ctx, stored)
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		stored = append(stored, entity.Image{URL: img.URL, PublicID: img.PublicID})
	}

	item.Images = append(item.Images, stored...)
	item.UpdatedAt = time.Now().UTC()

	if err := uc.clothingRepo.Update(ctx, item); err != nil {
		uc.rollback(ctx, stored)
		return nil, fmt.Errorf("failed to update clothing item: %w", err)
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &UploadImagesOutput{
		Item: item,
	}, nil
}

func (uc *UploadImagesUseCase) rollback(ctx context.Context, images []entity.Image) {
	for _, img := range images {
		if err := uc.imageStore.Delete(ctx, img.PublicID); err != nil {
			slog.Warn("Failed to remove orphaned image", "public_id", img.PublicID, "error", err)
		}
	}
}
