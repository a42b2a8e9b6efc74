// Package laundry contains laundry record use cases.
package laundry

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
	domainerror "github.com/wardrobe-manager/backend/internal/domain/error"
)

// findOwnedRecord loads a laundry record. Records of other users are reported as not found.
func findOwnedRecord(ctx context.Context, repo adapter.LaundryRepository, recordID, userID uuid.UUID) (*entity.LaundryRecord, error) {
	record, err := repo.FindByID(ctx, recordID)
	if err != nil && !errors.Is(err, domainerror.ErrLaundryRecordNotFound) {
		return nil, fmt.Errorf("failed to find laundry record: %w", err)
	}
	if err != nil || record.UserID != userID {
		return nil, domainerror.NewLaundryError(
			domainerror.ErrCodeLaundryRecordNotFound,
			"laundry record not found",
			domainerror.ErrLaundryRecordNotFound,
		)
	}
	return record, nil
}

// validateItems checks that the list is not empty and only references clothing the user owns.
// Duplicate IDs are dropped, order is kept.
func validateItems(ctx context.Context, repo adapter.ClothingRepository, userID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	unique := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	if len(unique) == 0 {
		return nil, domainerror.NewLaundryError(
			domainerror.ErrCodeEmptyLaundry,
			"laundry record must reference at least one item",
			domainerror.ErrEmptyLaundry,
		)
	}

	items, err := repo.FindByIDs(ctx, unique)
	if err != nil {
		return nil, fmt.Errorf("failed to load laundry items: %w", err)
	}

	owned := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		owned[item.ID] = item.UserID == userID
	}
	for _, id := range unique {
		if !owned[id] {
			return nil, domainerror.NewLaundryError(
				domainerror.ErrCodeLaundryItemNotFound,
				"laundry record references an unknown clothing item: "+id.String(),
				domainerror.ErrLaundryItemNotFound,
			)
		}
	}

	return unique, nil
}

func invalidStatus() error {
	return domainerror.NewLaundryError(
		domainerror.ErrCodeInvalidLaundryStatus,
		"status must be one of pending, washing, drying, done",
		domainerror.ErrInvalidLaundryStatus,
	)
}
