// Package clothing contains clothing item use cases.
package clothing

import (
	"context"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// GetClothingInput represents the input for getting a clothing item.
type GetClothingInput struct {
	ItemID uuid.UUID
	UserID uuid.UUID
}

// GetClothingOutput represents the output of getting a clothing item.
type GetClothingOutput struct {
	Item *entity.ClothingItem
}

// GetClothingUseCase handles getting a single clothing item.
type GetClothingUseCase struct {
	clothingRepo adapter.ClothingRepository
}

// NewGetClothingUseCase creates a new GetClothingUseCase instance.
func NewGetClothingUseCase(clothingRepo adapter.ClothingRepository) *GetClothingUseCase {
	return &GetClothingUseCase{
		clothingRepo: clothingRepo,
	}
}

// Execute gets the clothing item.
func (uc *GetClothingUseCase) Execute(ctx context.Context, input GetClothingInput) (*GetClothingOutput, error) {
	item, err := findOwnedItem(ctx, uc.clothingRepo, input.ItemID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetClothingOutput{
		Item: item,
	}, nil
}
