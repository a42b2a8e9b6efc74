// Package laundry contains laundry record use cases.
package laundry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// DeleteLaundryInput represents the input for laundry record deletion.
type DeleteLaundryInput struct {
	RecordID uuid.UUID
	UserID   uuid.UUID
}

// DeleteLaundryOutput represents the output of laundry record deletion.
type DeleteLaundryOutput struct {
	Success bool
}

// DeleteLaundryUseCase handles laundry record deletion.
type DeleteLaundryUseCase struct {
	laundryRepo adapter.LaundryRepository
}

// NewDeleteLaundryUseCase creates a new DeleteLaundryUseCase instance.
func NewDeleteLaundryUseCase(laundryRepo adapter.LaundryRepository) *DeleteLaundryUseCase {
	return &DeleteLaundryUseCase{
		laundryRepo: laundryRepo,
	}
}

// Execute performs the laundry record deletion.
func (uc *DeleteLaundryUseCase) Execute(ctx context.Context, input DeleteLaundryInput) (*DeleteLaundryOutput, error) {
	record, err := findOwnedRecord(ctx, uc.laundryRepo, input.RecordID, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.laundryRepo.Delete(ctx, record.ID); err != nil {
		return nil, fmt.Errorf("failed to delete laundry record: %w", err)
	}

	return &DeleteLaundryOutput{
		Success: true,
	}, nil
}
