// Package accessory contains accessory use cases.
package accessory

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// CreateAccessoryInput represents the input for accessory creation.
type CreateAccessoryInput struct {
	UserID         uuid.UUID
	Name           string
	Color          string
	Type           string
	CompatibleWith []string
}

// CreateAccessoryOutput represents the output of accessory creation.
type CreateAccessoryOutput struct {
	Accessory *entity.Accessory
}

// CreateAccessoryUseCase handles accessory creation logic.
type CreateAccessoryUseCase struct {
	accessoryRepo adapter.AccessoryRepository
	cache         adapter.AnalyticsCache
}

// NewCreateAccessoryUseCase creates a new CreateAccessoryUseCase instance.
func NewCreateAccessoryUseCase(accessoryRepo adapter.AccessoryRepository, cache adapter.AnalyticsCache) *CreateAccessoryUseCase {
	return &CreateAccessoryUseCase{
		accessoryRepo: accessoryRepo,
		cache:         cache,
	}
}

// Execute performs the accessory creation.
func (uc *CreateAccessoryUseCase) Execute(ctx context.Context, input CreateAccessoryInput) (*CreateAccessoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	color := strings.TrimSpace(input.Color)
	if name == "" || color == "" {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeMissingItemFields,
			"name and color are required",
			domainerror.ErrMissingItemFields,
		)
	}

	compatibleWith, err := normalizeCompatibility(input.CompatibleWith)
	if err != nil {
		return nil, err
	}

	accessory := entity.NewAccessory(input.UserID, name, color, strings.TrimSpace(input.Type), compatibleWith)

	if err := uc.accessoryRepo.Create(ctx, accessory); err != nil {
		return nil, fmt.Errorf("failed to create accessory: %w", err)
	}

	adapter.InvalidateAnalytics(ctx, uc.cache, input.UserID)

	return &CreateAccessoryOutput{
		Accessory: accessory,
	}, nil
}
