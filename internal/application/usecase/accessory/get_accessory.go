// Package accessory contains accessory use cases.
package accessory

import (
	"context"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// GetAccessoryInput represents the input for getting an accessory.
type GetAccessoryInput struct {
	AccessoryID uuid.UUID
	UserID      uuid.UUID
}

// GetAccessoryOutput represents the output of getting an accessory.
type GetAccessoryOutput struct {
	Accessory *entity.Accessory
}

// GetAccessoryUseCase handles getting a single accessory.
type GetAccessoryUseCase struct {
	accessoryRepo adapter.AccessoryRepository
}

// NewGetAccessoryUseCase creates a new GetAccessoryUseCase instance.
func NewGetAccessoryUseCase(accessoryRepo adapter.AccessoryRepository) *GetAccessoryUseCase {
	return &GetAccessoryUseCase{
		accessoryRepo: accessoryRepo,
	}
}

// Execute gets the accessory.
func (uc *GetAccessoryUseCase) Execute(ctx context.Context, input GetAccessoryInput) (*GetAccessoryOutput, error) {
	accessory, err := findOwnedAccessory(ctx, uc.accessoryRepo, input.AccessoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetAccessoryOutput{
		Accessory: accessory,
	}, nil
}
