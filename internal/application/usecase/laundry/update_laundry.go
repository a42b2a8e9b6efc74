// Package laundry contains laundry record use cases.
package laundry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// UpdateLaundryInput represents the input for laundry record update.
type UpdateLaundryInput struct {
	RecordID      uuid.UUID
	UserID        uuid.UUID
	Items         []uuid.UUID           // Optional, nil keeps the current list
	ScheduledDate *time.Time            // Optional
	Status        *entity.LaundryStatus // Optional
}

// UpdateLaundryOutput represents the output of laundry record update.
type UpdateLaundryOutput struct {
	Record *entity.LaundryRecord
}

// UpdateLaundryUseCase handles laundry record updates.
// Moving a record to done returns its items to the eligible pool.
type UpdateLaundryUseCase struct {
	laundryRepo  adapter.LaundryRepository
	clothingRepo adapter.ClothingRepository
}

// NewUpdateLaundryUseCase creates a new UpdateLaundryUseCase instance.
func NewUpdateLaundryUseCase(laundryRepo adapter.LaundryRepository, clothingRepo adapter.ClothingRepository) *UpdateLaundryUseCase {
	return &UpdateLaundryUseCase{
		laundryRepo:  laundryRepo,
		clothingRepo: clothingRepo,
	}
}

// Execute performs the laundry record update.
func (uc *UpdateLaundryUseCase) Execute(ctx context.Context, input UpdateLaundryInput) (*UpdateLaundryOutput, error) {
	record, err := findOwnedRecord(ctx, uc.laundryRepo, input.RecordID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !input.Status.IsValid() {
			return nil, invalidStatus()
		}
		record.Status = *input.Status
	}

	if input.Items != nil {
		items, err := validateItems(ctx, uc.clothingRepo, input.UserID, input.Items)
		if err != nil {
			return nil, err
		}
		record.Items = items
	}

	if input.ScheduledDate != nil {
		record.ScheduledDate = input.ScheduledDate
	}

	record.UpdatedAt = time.Now().UTC()

	if err := uc.laundryRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update laundry record: %w", err)
	}

	return &UpdateLaundryOutput{
		Record: record,
	}, nil
}
