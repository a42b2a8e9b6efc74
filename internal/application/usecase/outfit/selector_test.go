package outfit

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

func TestSelector_Select(t *testing.T) {
	userID := uuid.New()
	shirt := clothing(userID, "Shirt", entity.ClothingCategoryTop, "")
	blouse := clothing(userID, "Blouse", entity.ClothingCategoryTop, "")
	jeans := clothing(userID, "Jeans", entity.ClothingCategoryBottom, "")
	dress := clothing(userID, "Dress", entity.ClothingCategoryDress, "")
	belt := entity.NewAccessory(userID, "Belt", "brown", "belt", []string{"bottom"})
	hat := entity.NewAccessory(userID, "Hat", "black", "hat", []string{"dress"})

	t.Run("picks by random index", func(t *testing.T) {
		random := &sequenceRandom{picks: []int{1, 0, 0}}
		selection, err := NewSelector(random).Select(
			[]*entity.ClothingItem{shirt, dress, blouse, jeans},
			[]*entity.Accessory{hat, belt},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if selection.Top.ID != blouse.ID {
			t.Errorf("expected blouse as top, got %s", selection.Top.Name)
		}
		if selection.Bottom.ID != jeans.ID {
			t.Errorf("expected jeans as bottom, got %s", selection.Bottom.Name)
		}
		if selection.Accessory == nil || selection.Accessory.ID != belt.ID {
			t.Error("expected the belt to be paired")
		}
		if random.calls != 3 {
			t.Errorf("expected 3 random draws, got %d", random.calls)
		}
	})

	t.Run("no compatible accessory", func(t *testing.T) {
		random := &sequenceRandom{}
		selection, err := NewSelector(random).Select(
			[]*entity.ClothingItem{shirt, jeans},
			[]*entity.Accessory{hat},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if selection.Accessory != nil {
			t.Error("expected no accessory")
		}
		if len(selection.AccessoryIDs()) != 0 {
			t.Error("expected empty accessory IDs")
		}
		ids := selection.ClothingIDs()
		if len(ids) != 2 || ids[0] != shirt.ID || ids[1] != jeans.ID {
			t.Error("expected clothing IDs to be [top, bottom]")
		}
		if random.calls != 2 {
			t.Errorf("expected 2 random draws, got %d", random.calls)
		}
	})

	t.Run("missing bottom", func(t *testing.T) {
		_, err := NewSelector(&sequenceRandom{}).Select([]*entity.ClothingItem{shirt, dress}, nil)
		if !errors.Is(err, domainerror.ErrInsufficientWardrobe) {
			t.Fatalf("expected ErrInsufficientWardrobe, got %v", err)
		}
		var outfitErr *domainerror.OutfitError
		if !errors.As(err, &outfitErr) || outfitErr.Code != domainerror.ErrCodeInsufficientWardrobe {
			t.Errorf("expected code %s", domainerror.ErrCodeInsufficientWardrobe)
		}
	})

	t.Run("empty pool", func(t *testing.T) {
		_, err := NewSelector(&sequenceRandom{}).Select(nil, nil)
		if !errors.Is(err, domainerror.ErrInsufficientWardrobe) {
			t.Fatalf("expected ErrInsufficientWardrobe, got %v", err)
		}
	})
}
