// Package clothing contains clothing item use cases.
package clothing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// DeleteClothingInput represents the input for clothing item deletion.
type DeleteClothingInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// DeleteClothingOutput represents the output of clothing item deletion.
type DeleteClothingOutput struct {
	Success bool
}

// DeleteClothingUseCase handles clothing item deletion logic.
type DeleteClothingUseCase struct {
	clothingRepo adapter.ClothingRepository
	imageStore   adapter.ImageStore
	cache        adapter.AnalyticsCache
}

// NewDeleteClothingUseCase creates a new DeleteClothingUseCase instance.
func NewDeleteClothingUseCase(
	clothingRepo adapter.ClothingRepository,
	imageStore adapter.ImageStore,
	cache adapter.AnalyticsCache,
) *DeleteClothingUseCase {
	return &DeleteClothingUseCase{
		clothingRepo: clothingRepo,
		imageStore:   imageStore,
		cache:        cache,
	}
}

// Execute performs the clothing item deletion.
func (uc *DeleteClothingUseCase) Execute(ctx context.Context, input DeleteClothingInput) (*DeleteClothingOutput, error) {
	item, err := findOwnedItem(ctx, uc.clothingRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.clothingRepo.Delete(ctx, item.ID); err != nil {
		return nil, fmt.Errorf("failed to delete clothing item: %w", err)
	}

	// Stored pictures are removed best effort
	if uc.imageStore != nil {
		for _, img := range item.Images {
			if err := uc.imageStore.Delete(ctx, img.PublicID); err != nil {
				slog.Warn("Failed to delete clothing image",
					"item_id", item.ID,
					"public_id", img.PublicID,
					"error", err,
				)
			}
		}
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &DeleteClothingOutput{
		Success: true,
	}, nil
}
