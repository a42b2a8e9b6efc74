// Package donation contains the donation advice use case.
package donation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// SuggestDonationInput represents the input for a donation suggestion.
type SuggestDonationInput struct {
	UserID uuid.UUID
	ItemID uuid.UUID
	Kind   entity.ItemKind
}

// SuggestDonationOutput represents the donation advice for one item.
type SuggestDonationOutput struct {
	Suggested bool
	Message   string
	WearCount int
	LastWorn  *time.Time
}

// SuggestDonationUseCase advises whether a clothing item or accessory should be donated.
// It never changes the item.
type SuggestDonationUseCase struct {
	clothingRepo  adapter.ClothingRepository
	accessoryRepo adapter.AccessoryRepository
	clock         adapter.Clock
}

// NewSuggestDonationUseCase creates a new SuggestDonationUseCase instance.
func NewSuggestDonationUseCase(
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
	clock adapter.Clock,
) *SuggestDonationUseCase {
	return &SuggestDonationUseCase{
		clothingRepo:  clothingRepo,
		accessoryRepo: accessoryRepo,
		clock:         clock,
	}
}

// Execute evaluates the donation rule for the item.
func (uc *SuggestDonationUseCase) Execute(ctx context.Context, input SuggestDonationInput) (*SuggestDonationOutput, error) {
	var (
		ownerID   uuid.UUID
		wearCount int
		lastWorn  *time.Time
	)

	switch input.Kind {
	case entity.ItemKindClothing:
		item, err := uc.clothingRepo.FindByID(ctx, input.ItemID)
		if err != nil {
			return nil, notFound(err, domainerror.ErrClothingItemNotFound, domainerror.ErrCodeClothingItemNotFound)
		}
		ownerID, wearCount, lastWorn = item.UserID, item.WearCount, item.LastWorn
	case entity.ItemKindAccessory:
		accessory, err := uc.accessoryRepo.FindByID(ctx, input.ItemID)
		if err != nil {
			return nil, notFound(err, domainerror.ErrAccessoryNotFound, domainerror.ErrCodeAccessoryNotFound)
		}
		ownerID, wearCount, lastWorn = accessory.UserID, accessory.WearCount, accessory.LastWorn
	default:
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeInvalidItemKind,
			"item kind must be 'clothing' or 'accessory'",
			domainerror.ErrInvalidItemKind,
		)
	}

	if ownerID != input.UserID {
		return nil, domainerror.NewWardrobeError(
			domainerror.ErrCodeNotAuthorizedItem,
			"not authorized to access this item",
			domainerror.ErrNotAuthorizedToAccessItem,
		)
	}

	suggested := valueobject.SuggestDonation(wearCount, lastWorn, uc.clock.Now().UTC())
	message := notSuggestedMessage(input.Kind)
	if suggested {
		message = valueobject.DonationMessageSuggested
	}

	return &SuggestDonationOutput{
		Suggested: suggested,
		Message:   message,
		WearCount: wearCount,
		LastWorn:  lastWorn,
	}, nil
}

func notSuggestedMessage(kind entity.ItemKind) string {
	if kind == entity.ItemKindAccessory {
		return valueobject.DonationMessageAccessoryNotSuggested
	}
	return valueobject.DonationMessageNotSuggested
}

func notFound(err, sentinel error, code domainerror.WardrobeErrorCode) error {
	if errors.Is(err, sentinel) {
		return domainerror.NewWardrobeError(code, sentinel.Error(), sentinel)
	}
	return fmt.Errorf("failed to find item: %w", err)
}
