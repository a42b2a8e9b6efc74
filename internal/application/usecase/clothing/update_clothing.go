// Package clothing contains clothing item use cases.
package clothing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// UpdateClothingInput represents the input for clothing item update.
type UpdateClothingInput struct {
	ItemID   uuid.UUID
	UserID   uuid.UUID
	Name     *string                  // Optional
	Category *entity.ClothingCategory // Optional
	Color    *string                  // Optional
	Season   *string                  // Optional
	Occasion *string                  // Optional
	Status   *entity.ItemStatus       // Optional
}

// UpdateClothingOutput represents the output of clothing item update.
type UpdateClothingOutput struct {
	Item *entity.ClothingItem
}

// UpdateClothingUseCase handles clothing item update logic.
// Wear counters are owned by the usage tracker and cannot be edited here.
type UpdateClothingUseCase struct {
	clothingRepo adapter.ClothingRepository
	cache        adapter.AnalyticsCache
}

// NewUpdateClothingUseCase creates a new UpdateClothingUseCase instance.
func NewUpdateClothingUseCase(clothingRepo adapter.ClothingRepository, cache adapter.AnalyticsCache) *UpdateClothingUseCase {
	return &UpdateClothingUseCase{
		clothingRepo: clothingRepo,
		cache:        cache,
	}
}

// Execute performs the clothing item update.
func (uc *UpdateClothingUseCase) Execute(ctx context.Context, input UpdateClothingInput) (*UpdateClothingOutput, error) {
	item, err := findOwnedItem(ctx, uc.clothingRepo, input.ItemID, input.UserID)
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
		item.Name = name
	}

	if input.Category != nil {
		if !input.Category.IsValid() {
			return nil, invalidCategory()
		}
		item.Category = *input.Category
	}

	if input.Color != nil {
		item.Color = strings.TrimSpace(*input.Color)
	}

	if input.Season != nil {
		season := strings.ToLower(strings.TrimSpace(*input.Season))
		if !valueobject.IsValidSeasonTag(season) {
			return nil, invalidSeason()
		}
		item.Season = season
	}

	if input.Occasion != nil {
		item.Occasion = strings.TrimSpace(*input.Occasion)
	}

	if input.Status != nil {
		if *input.Status != entity.ItemStatusActive && *input.Status != entity.ItemStatusDonated {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeInvalidItemStatus,
				"status must be 'active' or 'donated'",
				domainerror.ErrInvalidItemStatus,
			)
		}
		item.Status = *input.Status
	}

	item.UpdatedAt = time.Now().UTC()

	if err := uc.clothingRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update clothing item: %w", err)
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &UpdateClothingOutput{
		Item: item,
	}, nil
}
