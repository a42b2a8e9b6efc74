// Package accessory contains accessory use cases.
package accessory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// ListAccessoriesInput represents the input for listing accessories.
type ListAccessoriesInput struct {
	UserID uuid.UUID
}

// ListAccessoriesOutput represents the output of listing accessories.
type ListAccessoriesOutput struct {
	Accessories []*entity.Accessory
}

// ListAccessoriesUseCase handles listing the accessories of a user.
type ListAccessoriesUseCase struct {
	accessoryRepo adapter.AccessoryRepository
}

// NewListAccessoriesUseCase creates a new ListAccessoriesUseCase instance.
func NewListAccessoriesUseCase(accessoryRepo adapter.AccessoryRepository) *ListAccessoriesUseCase {
	return &ListAccessoriesUseCase{
		accessoryRepo: accessoryRepo,
	}
}

// Execute lists the accessories.
func (uc *ListAccessoriesUseCase) Execute(ctx context.Context, input ListAccessoriesInput) (*ListAccessoriesOutput, error) {
	accessories, err := uc.accessoryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accessories: %w", err)
	}

	return &ListAccessoriesOutput{
		Accessories: accessories,
	}, nil
}
