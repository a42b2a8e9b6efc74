// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// ListOutfitsInput represents the input for listing outfits.
type ListOutfitsInput struct {
	UserID uuid.UUID
}

// ListOutfitsOutput represents the output of listing outfits.
type ListOutfitsOutput struct {
	Outfits []*entity.OutfitWithItems
}

// ListOutfitsUseCase handles listing a user's outfits with their items.
type ListOutfitsUseCase struct {
	outfitRepo adapter.OutfitRepository
	items      itemResolver
}

// NewListOutfitsUseCase creates a new ListOutfitsUseCase instance.
func NewListOutfitsUseCase(
	outfitRepo adapter.OutfitRepository,
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
) *ListOutfitsUseCase {
	return &ListOutfitsUseCase{
		outfitRepo: outfitRepo,
		items:      itemResolver{clothingRepo: clothingRepo, accessoryRepo: accessoryRepo},
	}
}

// Execute lists the outfits.
func (uc *ListOutfitsUseCase) Execute(ctx context.Context, input ListOutfitsInput) (*ListOutfitsOutput, error) {
	outfits, err := uc.outfitRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list outfits: %w", err)
	}

	result := make([]*entity.OutfitWithItems, 0, len(outfits))
	for _, o := range outfits {
		withItems, err := uc.items.withItems(ctx, o)
		if err != nil {
			return nil, err
		}
		result = append(result, withItems)
	}

	return &ListOutfitsOutput{
		Outfits: result,
	}, nil
}
