// Package accessory contains accessory use cases.
package accessory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// findOwnedAccessory loads an accessory and checks that it belongs to the user.
func findOwnedAccessory(ctx context.Context, repo adapter.AccessoryRepository, accessoryID, userID uuid.UUID) (*entity.Accessory, error) {
	accessory, err := repo.FindByID(ctx, accessoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccessoryNotFound) {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeAccessoryNotFound,
				"accessory not found",
				domainerror.ErrAccessoryNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find accessory: %w", err)
	}

	if accessory.UserID != userID {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeNotAuthorizedItem,
			"not authorized to access this accessory",
			domainerror.ErrNotAuthorizedToAccessItem,
		)
	}

	return accessory, nil
}

// normalizeCompatibility trims, lowercases and deduplicates compatible categories.
func normalizeCompatibility(categories []string) ([]string, error) {
	seen := make(map[string]bool, len(categories))
	result := make([]string, 0, len(categories))
	for _, c := range categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" || seen[c] {
			continue
		}
		if !entity.ClothingCategory(c).IsValid() {
			return nil, domainerror.NewWardrobeError(
				domainerror.ErrCodeInvalidClothingCategory,
				"compatibleWith contains an unknown clothing category: "+c,
				domainerror.ErrInvalidClothingCategory,
			)
		}
		seen[c] = true
		result = append(result, c)
	}
	return result, nil
}
