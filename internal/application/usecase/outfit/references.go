// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// itemResolver loads the items an outfit references.
type itemResolver struct {
	clothingRepo  adapter.ClothingRepository
	accessoryRepo adapter.AccessoryRepository
}

// validate checks that every referenced item exists and belongs to the user.
func (r itemResolver) validate(ctx context.Context, userID uuid.UUID, clothingIDs, accessoryIDs []uuid.UUID) error {
	clothes, accessories, err := r.resolve(ctx, clothingIDs, accessoryIDs)
	if err != nil {
		return err
	}

	owned := make(map[uuid.UUID]bool, len(clothes)+len(accessories))
	for _, c := range clothes {
		owned[c.ID] = c.UserID == userID
	}
	for _, a := range accessories {
		owned[a.ID] = a.UserID == userID
	}

	for _, id := range append(append([]uuid.UUID{}, clothingIDs...), accessoryIDs...) {
		if !owned[id] {
			return domainerror.NewOutfitError(
				domainerror.ErrCodeOutfitItemNotFound,
				"outfit references an unknown item: "+id.String(),
				domainerror.ErrOutfitItemNotFound,
			)
		}
	}
	return nil
}

// resolve loads the referenced items, keeping the order of the given IDs.
func (r itemResolver) resolve(ctx context.Context, clothingIDs, accessoryIDs []uuid.UUID) ([]*entity.ClothingItem, []*entity.Accessory, error) {
	clothes := []*entity.ClothingItem{}
	if len(clothingIDs) > 0 {
		found, err := r.clothingRepo.FindByIDs(ctx, clothingIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load outfit clothing: %w", err)
		}
		byID := make(map[uuid.UUID]*entity.ClothingItem, len(found))
		for _, c := range found {
			byID[c.ID] = c
		}
		for _, id := range clothingIDs {
			if c, ok := byID[id]; ok {
				clothes = append(clothes, c)
			}
		}
	}

	accessories := []*entity.Accessory{}
	if len(accessoryIDs) > 0 {
		found, err := r.accessoryRepo.FindByIDs(ctx, accessoryIDs)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load outfit accessories: %w", err)
		}
		byID := make(map[uuid.UUID]*entity.Accessory, len(found))
		for _, a := range found {
			byID[a.ID] = a
		}
		for _, id := range accessoryIDs {
			if a, ok := byID[id]; ok {
				accessories = append(accessories, a)
			}
		}
	}

	return clothes, accessories, nil
}

// withItems resolves the items of a single outfit.
func (r itemResolver) withItems(ctx context.Context, outfit *entity.Outfit) (*entity.OutfitWithItems, error) {
	clothes, accessories, err := r.resolve(ctx, outfit.ClothingItems, outfit.Accessories)
	if err != nil {
		return nil, err
	}
	return &entity.OutfitWithItems{
		Outfit:        outfit,
		ClothingItems: clothes,
		Accessories:   accessories,
	}, nil
}
