// Package clothing contains clothing item use cases.
package clothing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// ListClothingInput represents the input for listing clothing items.
type ListClothingInput struct {
	UserID uuid.UUID
}

// ListClothingOutput represents the output of listing clothing items.
type ListClothingOutput struct {
	Items []*entity.ClothingItem
}

// ListClothingUseCase handles listing the clothing items of a user.
type ListClothingUseCase struct {
	clothingRepo adapter.ClothingRepository
}

// NewListClothingUseCase creates a new ListClothingUseCase instance.
func NewListClothingUseCase(clothingRepo adapter.ClothingRepository) *ListClothingUseCase {
	return &ListClothingUseCase{
		clothingRepo: clothingRepo,
	}
}

// Execute lists the clothing items, donated ones included.
func (uc *ListClothingUseCase) Execute(ctx context.Context, input ListClothingInput) (*ListClothingOutput, error) {
	items, err := uc.clothingRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clothing items: %w", err)
	}

	return &ListClothingOutput{
		Items: items,
	}, nil
}
