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

// CreateLaundryInput represents the input for laundry record creation.
type CreateLaundryInput struct {
	UserID        uuid.UUID
	Items         []uuid.UUID
	ScheduledDate *time.Time
	Status        entity.LaundryStatus // Optional, defaults to pending
}

// CreateLaundryOutput represents the output of laundry record creation.
type CreateLaundryOutput struct {
	Record *entity.LaundryRecord
}

// CreateLaundryUseCase handles laundry record creation.
type CreateLaundryUseCase struct {
	laundryRepo  adapter.LaundryRepository
	clothingRepo adapter.ClothingRepository
}

// NewCreateLaundryUseCase creates a new CreateLaundryUseCase instance.
func NewCreateLaundryUseCase(laundryRepo adapter.LaundryRepository, clothingRepo adapter.ClothingRepository) *CreateLaundryUseCase {
	return &CreateLaundryUseCase{
		laundryRepo:  laundryRepo,
		clothingRepo: clothingRepo,
	}
}

// Execute performs the laundry record creation.
func (uc *CreateLaundryUseCase) Execute(ctx context.Context, input CreateLaundryInput) (*CreateLaundryOutput, error) {
	status := input.Status
	if status == "" {
		status = entity.LaundryStatusPending
	}
	if !status.IsValid() {
		return nil, invalidStatus()
	}

	items, err := validateItems(ctx, uc.clothingRepo, input.UserID, input.Items)
	if err != nil {
		return nil, err
	}

	record := entity.NewLaundryRecord(input.UserID, items, input.ScheduledDate, status)

	if err := uc.laundryRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create laundry record: %w", err)
	}

	return &CreateLaundryOutput{
		Record: record,
	}, nil
}
