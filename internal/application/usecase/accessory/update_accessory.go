// Package accessory contains accessory use cases.
package accessory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// UpdateAccessoryInput represents the input for accessory update.
type UpdateAccessoryInput struct {
	AccessoryID    uuid.UUID
	UserID         uuid.UUID
	Name           *string            // Optional
	Color          *string            // Optional
	Type           *string            // Optional
	CompatibleWith []string           // Optional, nil keeps the current list
	Status         *entity.ItemStatus // Optional
}

// UpdateAccessoryOutput represents the output of accessory update.
type UpdateAccessoryOutput struct {
	Accessory *entity.Accessory
}

// UpdateAccessoryUseCase handles accessory update logic.
type UpdateAccessoryUseCase struct {
	accessoryRepo adapter.AccessoryRepository
	cache         adapter.AnalyticsCache
}

// NewUpdateAccessoryUseCase creates a new UpdateAccessoryUseCase instance.
func NewUpdateAccessoryUseCase(accessoryRepo adapter.AccessoryRepository, cache adapter.AnalyticsCache) *UpdateAccessoryUseCase {
	return &UpdateAccessoryUseCase{
		accessoryRepo: accessoryRepo,
		cache:         cache,
	}
}

// Execute performs the accessory update.
func (uc *UpdateAccessoryUseCase) Execute(ctx context.Context, input UpdateAccessoryInput) (*UpdateAccessoryOutput, error) {
	accessory, err := findOwnedAccessory(ctx, uc.accessoryRepo, input.AccessoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeMissingItemFields,
				"name cannot be empty",
				domainerror.ErrMissingItemFields,
			)
		}
		accessory.Name = name
	}

	if input.Color != nil {
		color := strings.TrimSpace(*input.Color)
		if color == "" {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeMissingItemFields,
				"color cannot be empty",
				domainerror.ErrMissingItemFields,
			)
		}
		accessory.Color = color
	}

	if input.Type != nil {
		accessory.Type = strings.TrimSpace(*input.Type)
	}

	if input.CompatibleWith != nil {
		compatibleWith, err := normalizeCompatibility(input.CompatibleWith)
		if err != nil {
			return nil, err
		}
		accessory.CompatibleWith = compatibleWith
	}

	if input.Status != nil {
		if *input.Status != entity.ItemStatusActive && *input.Status != entity.ItemStatusDonated {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeInvalidItemStatus,
				"status must be 'active' or 'donated'",
				domainerror.ErrInvalidItemStatus,
			)
		}
		accessory.Status = *input.Status
	}

	accessory.UpdatedAt = time.Now().UTC()

	if err := uc.accessoryRepo.Update(ctx, accessory); err != nil {
		return nil, fmt.Errorf("failed to update accessory: %w", err)
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &UpdateAccessoryOutput{
		Accessory: accessory,
	}, nil
}
