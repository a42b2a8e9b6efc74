// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// GetOutfitInput represents the input for getting an outfit.
type GetOutfitInput struct {
	OutfitID uuid.UUID
	UserID   uuid.UUID
}

// GetOutfitOutput represents the output of getting an outfit.
type GetOutfitOutput struct {
	Outfit *entity.OutfitWithItems
}

// GetOutfitUseCase handles getting an outfit with its items.
type GetOutfitUseCase struct {
	outfitRepo adapter.OutfitRepository
	items      itemResolver
}

// NewGetOutfitUseCase creates a new GetOutfitUseCase instance.
func NewGetOutfitUseCase(
	outfitRepo adapter.OutfitRepository,
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
) *GetOutfitUseCase {
	return &GetOutfitUseCase{
		outfitRepo: outfitRepo,
		items:      itemResolver{clothingRepo: clothingRepo, accessoryRepo: accessoryRepo},
	}
}

// Execute performs the outfit retrieval.
func (uc *GetOutfitUseCase) Execute(ctx context.Context, input GetOutfitInput) (*GetOutfitOutput, error) {
	outfit, err := findOwnedOutfit(ctx, uc.outfitRepo, input.OutfitID, input.UserID)
	if err != nil {
		return nil, err
	}

	withItems, err := uc.items.withItems(ctx, outfit)
	if err != nil {
		return nil, err
	}

	return &GetOutfitOutput{
		Outfit: withItems,
	}, nil
}

// findOwnedOutfit loads an outfit and hides outfits of other users behind not found.
func findOwnedOutfit(ctx context.Context, repo adapter.OutfitRepository, outfitID, userID uuid.UUID) (*entity.Outfit, error) {
	outfit, err := repo.FindByID(ctx, outfitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrOutfitNotFound) {
			return nil, outfitNotFound()
		}
		return nil, fmt.Errorf("failed to find outfit: %w", err)
	}
	if outfit.UserID != userID {
		return nil, outfitNotFound()
	}
	return outfit, nil
}

func outfitNotFound() error {
	return domainerror.NewOutfitError(
		domainerror.ErrCodeOutfitNotFound,
		"outfit not found",
		domainerror.ErrOutfitNotFound,
	)
}
