// Package clothing contains clothing item use cases.
package clothing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// findOwnedItem loads a clothing item and checks that it belongs to the user.
func findOwnedItem(ctx context.Context, repo adapter.ClothingRepository, itemID, userID uuid.UUID) (*entity.ClothingItem, error) {
	item, err := repo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClothingItemNotFound) {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeClothingItemNotFound,
				"clothing item not found",
				domainerror.ErrClothingItemNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find clothing item: %w", err)
	}

	if item.UserID != userID {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeNotAuthorizedItem,
			"not authorized to access this clothing item",
			domainerror.ErrNotAuthorizedToAccessItem,
		)
	}

	return item, nil
}

func invalidCategory() error {
	return domainerror.NewWardrobeError(
		domainerror.ErrCodeInvalidClothingCategory,
		"category must be one of top, bottom, dress, outerwear, footwear, activewear, formal, other",
		domainerror.ErrInvalidClothingCategory,
	)
}

func invalidSeason() error {
	return domainerror.NewWardrobeError(
		domainerror.ErrCodeMissingItemFields,
		"season must be one of summer, winter, rainy, spring, autumn, all",
		domainerror.ErrMissingItemFields,
	)
}
