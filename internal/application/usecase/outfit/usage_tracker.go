// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// UsageTracker records wear events for selected items.
type UsageTracker struct {
	clothingRepo  adapter.ClothingRepository
	accessoryRepo adapter.AccessoryRepository
	metrics       adapter.UsageMetrics
}

// NewUsageTracker creates a new UsageTracker instance. metrics may be nil.
func NewUsageTracker(
	clothingRepo adapter.ClothingRepository,
	accessoryRepo adapter.AccessoryRepository,
	metrics adapter.UsageMetrics,
) *UsageTracker {
	return &UsageTracker{
		clothingRepo:  clothingRepo,
		accessoryRepo: accessoryRepo,
		metrics:       metrics,
	}
}

// MarkWorn increments the wear count and sets the last worn time of exactly the given items.
// Each collection is updated with a single atomic increment; empty lists are skipped.
// Run it inside a transaction so both collections move together.
func (t *UsageTracker) MarkWorn(ctx context.Context, clothingIDs, accessoryIDs []uuid.UUID, at time.Time) error {
	if len(clothingIDs) > 0 {
		if err := t.clothingRepo.IncrementWear(ctx, clothingIDs, at); err != nil {
			return fmt.Errorf("failed to record clothing wear: %w", err)
		}
	}

	if len(accessoryIDs) > 0 {
		if err := t.accessoryRepo.IncrementWear(ctx, accessoryIDs, at); err != nil {
			return fmt.Errorf("failed to record accessory wear: %w", err)
		}
	}

	return nil
}

// Observe reports committed wear events to metrics.
func (t *UsageTracker) Observe(clothingIDs, accessoryIDs []uuid.UUID) {
	if t.metrics == nil {
		return
	}
	if len(clothingIDs) > 0 {
		t.metrics.ObserveWearEvents(entity.ItemKindClothing, len(clothingIDs))
	}
	if len(accessoryIDs) > 0 {
		t.metrics.ObserveWearEvents(entity.ItemKindAccessory, len(accessoryIDs))
	}
}
