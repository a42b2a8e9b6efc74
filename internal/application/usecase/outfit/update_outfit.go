// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

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

// UpdateOutfitInput represents the input for outfit update. Nil fields are left unchanged.
type UpdateOutfitInput struct {
	OutfitID         uuid.UUID
	UserID           uuid.UUID
	Name             *string
	ClothingItems    []uuid.UUID // Optional, nil keeps the current list
	Accessories      []uuid.UUID // Optional, nil keeps the current list
	WeatherCondition *string
}

// UpdateOutfitOutput represents the output of outfit update.
type UpdateOutfitOutput struct {
	Outfit *entity.Outfit
}

// UpdateOutfitUseCase replaces the provided fields of an outfit.
type UpdateOutfitUseCase struct {
	outfitRepo adapter.OutfitRepository
	items      itemResolver
}

// NewUpdateOutfitUseCase creates a new UpdateOutfitUseCase instance.
func NewUpdateOutfitUseCase(
	outfitRepo adapter.OutfitRepository,
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
) *UpdateOutfitUseCase {
	return &UpdateOutfitUseCase{
		outfitRepo: outfitRepo,
		items:      itemResolver{clothingRepo: clothingRepo, accessoryRepo: accessoryRepo},
	}
}

// Execute performs the outfit update. Wear counts are never touched.
func (uc *UpdateOutfitUseCase) Execute(ctx context.Context, input UpdateOutfitInput) (*UpdateOutfitOutput, error) {
	outfit, err := findOwnedOutfit(ctx, uc.outfitRepo, input.OutfitID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domainerror.NewOutfitError(
				domainerror.ErrCodeMissingOutfitFields,
				"outfit name cannot be empty",
				domainerror.ErrMissingOutfitFields,
			)
		}
		outfit.Name = name
	}

	if input.ClothingItems != nil || input.Accessories != nil {
		if err := uc.items.validate(ctx, input.UserID, input.ClothingItems, input.Accessories); err != nil {
			return nil, err
		}
	}
	if input.ClothingItems != nil {
		outfit.ClothingItems = input.ClothingItems
	}
	if input.Accessories != nil {
		outfit.Accessories = input.Accessories
	}

	if input.WeatherCondition != nil {
		outfit.WeatherCondition = *input.WeatherCondition
	}

	outfit.UpdatedAt = time.Now().UTC()

	if err := uc.outfitRepo.Update(ctx, outfit); err != nil {
		return nil, fmt.Errorf("failed to update outfit: %w", err)
	}

	return &UpdateOutfitOutput{
		Outfit: outfit,
	}, nil
}
