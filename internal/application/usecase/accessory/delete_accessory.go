// Package accessory contains accessory use cases.
package accessory

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// DeleteAccessoryInput represents the input for accessory deletion.
type DeleteAccessoryInput struct {
	AccessoryID uuid.UUID
	UserID      uuid.UUID
}

// DeleteAccessoryOutput represents the output of accessory deletion.
type DeleteAccessoryOutput struct {
	Success bool
}

// DeleteAccessoryUseCase handles accessory deletion logic.
type DeleteAccessoryUseCase struct {
	accessoryRepo adapter.AccessoryRepository
	imageStore    adapter.ImageStore
	cache         adapter.AnalyticsCache
}

// NewDeleteAccessoryUseCase creates a new DeleteAccessoryUseCase instance.
func NewDeleteAccessoryUseCase(
	accessoryRepo adapter.AccessoryRepository,
	imageStore adapter.ImageStore,
	cache adapter.AnalyticsCache,
) *DeleteAccessoryUseCase {
	return &DeleteAccessoryUseCase{
		accessoryRepo: accessoryRepo,
		imageStore:    imageStore,
		cache:         cache,
	}
}

// Execute performs the accessory deletion.
func (uc *DeleteAccessoryUseCase) Execute(ctx context.Context, input DeleteAccessoryInput) (*DeleteAccessoryOutput, error) {
	accessory, err := findOwnedAccessory(ctx, uc.accessoryRepo, input.AccessoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.accessoryRepo.Delete(ctx, accessory.ID); err != nil {
		return nil, fmt.Errorf("failed to delete accessory: %w", err)
	}

	if uc.imageStore != nil && accessory.Image != nil {
		if err := uc.imageStore.Delete(ctx, accessory.Image.PublicID); err != nil {
			slog.Warn("Failed to delete accessory image",
				"accessory_id", accessory.ID,
				"public_id", accessory.Image.PublicID,
				"error", err,
			)
		}
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &DeleteAccessoryOutput{
		Success: true,
	}, nil
}
