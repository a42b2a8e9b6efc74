// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// CreateOutfitInput represents the input for manual outfit creation.
type CreateOutfitInput struct {
	UserID           uuid.UUID
	Name             string
	ClothingItems    []uuid.UUID
	Accessories      []uuid.UUID
	WeatherCondition string
}

// CreateOutfitOutput represents the output of outfit creation.
type CreateOutfitOutput struct {
	Outfit *entity.Outfit
}

// CreateOutfitUseCase handles manual outfit composition.
// Manually composed outfits do not count as wear events.
type CreateOutfitUseCase struct {
	outfitRepo adapter.OutfitRepository
	items      itemResolver
	cache      adapter.AnalyticsCache
}

// NewCreateOutfitUseCase creates a new CreateOutfitUseCase instance. cache may be nil.
func NewCreateOutfitUseCase(
	outfitRepo adapter.OutfitRepository,
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
	cache adapter.AnalyticsCache,
) *CreateOutfitUseCase {
	return &CreateOutfitUseCase{
		outfitRepo: outfitRepo,
		items:      itemResolver{clothingRepo: clothingRepo, accessoryRepo: accessoryRepo},
		cache:      cache,
	}
}

// Execute performs the outfit creation.
func (uc *CreateOutfitUseCase) Execute(ctx context.Context, input CreateOutfitInput) (*CreateOutfitOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewOutfitError(
			domainerror.ErrCodeMissingOutfitFields,
			"outfit name is required",
			domainerror.ErrMissingOutfitFields,
		)
	}

	if err := uc.items.validate(ctx, input.UserID, input.ClothingItems, input.Accessories); err != nil {
		return nil, err
	}

	outfit := entity.NewOutfit(input.UserID, name, input.ClothingItems, input.Accessories, input.WeatherCondition, 0)

	if err := uc.outfitRepo.Create(ctx, outfit); err != nil {
		return nil, fmt.Errorf("failed to create outfit: %w", err)
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &CreateOutfitOutput{
		Outfit: outfit,
	}, nil
}
