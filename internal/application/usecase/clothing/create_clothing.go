// Package clothing contains clothing item use cases.
package clothing

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// CreateClothingInput represents the input for clothing item creation.
type CreateClothingInput struct {
	UserID   uuid.UUID
	Name     string
	Category entity.ClothingCategory
	Color    string
	Season   string
	Occasion string
}

// CreateClothingOutput represents the output of clothing item creation.
type CreateClothingOutput struct {
	Item *entity.ClothingItem
}

// CreateClothingUseCase handles clothing item creation logic.
type CreateClothingUseCase struct {
	clothingRepo adapter.ClothingRepository
	cache        adapter.AnalyticsCache
}

// NewCreateClothingUseCase creates a new CreateClothingUseCase instance.
func NewCreateClothingUseCase(clothingRepo adapter.ClothingRepository, cache adapter.AnalyticsCache) *CreateClothingUseCase {
	return &CreateClothingUseCase{
		clothingRepo: clothingRepo,
		cache:        cache,
	}
}

// Execute performs the clothing item creation.
func (uc *CreateClothingUseCase) Execute(ctx context.Context, input CreateClothingInput) (*CreateClothingOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.Category == "" {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeMissingItemFields,
			"name and category are required",
			domainerror.ErrMissingItemFields,
		)
	}

	if !input.Category.IsValid() {
		return nil, invalidCategory()
	}

	season := strings.ToLower(strings.TrimSpace(input.Season))
	if !valueobject.IsValidSeasonTag(season) {
		return nil, invalidSeason()
	}

	item := entity.NewClothingItem(
		input.UserID,
		name,
		input.Category,
		strings.TrimSpace(input.Color),
		season,
		strings.TrimSpace(input.Occasion),
	)

	if err := uc.clothingRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create clothing item: %w", err)
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &CreateClothingOutput{
		Item: item,
	}, nil
}
