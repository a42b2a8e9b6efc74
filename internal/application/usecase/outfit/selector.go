// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// Selection is the set of items picked for a generated outfit.
type Selection struct {
	Top       *entity.ClothingItem
	Bottom    *entity.ClothingItem
	Accessory *entity.Accessory // nil when no compatible accessory exists
}

// ClothingIDs returns the selected clothing IDs, top first.
func (s *Selection) ClothingIDs() []uuid.UUID {
	return []uuid.UUID{s.Top.ID, s.Bottom.ID}
}

// AccessoryIDs returns the selected accessory IDs, empty when none was picked.
func (s *Selection) AccessoryIDs() []uuid.UUID {
	if s.Accessory == nil {
		return []uuid.UUID{}
	}
	return []uuid.UUID{s.Accessory.ID}
}

// Selector picks one top, one bottom and at most one compatible accessory.
type Selector struct {
	random adapter.RandomSource
}

// NewSelector creates a new Selector drawing indexes from random.
func NewSelector(random adapter.RandomSource) *Selector {
	return &Selector{
		random: random,
	}
}

// Select picks an outfit from already-eligible items.
// It fails with ErrInsufficientWardrobe when there is no top or no bottom.
func (s *Selector) Select(clothing []*entity.ClothingItem, accessories []*entity.Accessory) (*Selection, error) {
	var tops, bottoms []*entity.ClothingItem
	for _, item := range clothing {
		switch item.Category {
		case entity.ClothingCategoryTop:
			tops = append(tops, item)
		case entity.ClothingCategoryBottom:
			bottoms = append(bottoms, item)
		}
	}

	if len(tops) == 0 || len(bottoms) == 0 {
		return nil, domainerror.NewOutfitError(
			domainerror.ErrCodeInsufficientWardrobe,
			"not enough clothes to generate an outfit",
			domainerror.ErrInsufficientWardrobe,
		)
	}

	selection := &Selection{
		Top:    tops[s.random.Intn(len(tops))],
		Bottom: bottoms[s.random.Intn(len(bottoms))],
	}

	var compatible []*entity.Accessory
	for _, accessory := range accessories {
		if accessory.PairsWith(entity.ClothingCategoryTop) || accessory.PairsWith(entity.ClothingCategoryBottom) {
			compatible = append(compatible, accessory)
		}
	}
	if len(compatible) > 0 {
		selection.Accessory = compatible[s.random.Intn(len(compatible))]
	}

	return selection, nil
}
