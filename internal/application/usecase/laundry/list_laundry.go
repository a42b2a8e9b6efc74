// Package laundry contains laundry record use cases.
package laundry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// ListLaundryInput represents the input for listing laundry records.
type ListLaundryInput struct {
	UserID uuid.UUID
}

// ListLaundryOutput represents the output of listing laundry records.
type ListLaundryOutput struct {
	Records []*entity.LaundryRecordWithItems
}

// ListLaundryUseCase lists laundry records with their clothing items.
type ListLaundryUseCase struct {
	laundryRepo  adapter.LaundryRepository
	clothingRepo adapter.ClothingRepository
}

// NewListLaundryUseCase creates a new ListLaundryUseCase instance.
func NewListLaundryUseCase(laundryRepo adapter.LaundryRepository, clothingRepo adapter.ClothingRepository) *ListLaundryUseCase {
	return &ListLaundryUseCase{
		laundryRepo:  laundryRepo,
		clothingRepo: clothingRepo,
	}
}

// Execute lists the laundry records. Items deleted since are left out.
func (uc *ListLaundryUseCase) Execute(ctx context.Context, input ListLaundryInput) (*ListLaundryOutput, error) {
	records, err := uc.laundryRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list laundry records: %w", err)
	}

	// Load every referenced item in one query
	var ids []uuid.UUID
	for _, r := range records {
		ids = append(ids, r.Items...)
	}

	byID := map[uuid.UUID]*entity.ClothingItem{}
	if len(ids) > 0 {
		items, err := uc.clothingRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load laundry items: %w", err)
		}
		for _, item := range items {
			byID[item.ID] = item
		}
	}

	result := make([]*entity.LaundryRecordWithItems, 0, len(records))
	for _, r := range records {
		items := make([]*entity.ClothingItem, 0, len(r.Items))
		for _, id := range r.Items {
			if item, ok := byID[id]; ok {
				items = append(items, item)
			}
		}
		result = append(result, &entity.LaundryRecordWithItems{Record: r, Items: items})
	}

	return &ListLaundryOutput{
		Records: result,
	}, nil
}
