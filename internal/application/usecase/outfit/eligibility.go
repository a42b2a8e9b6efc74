// Package outfit contains outfit recommendation and outfit management use cases.
package outfit

import (
	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
	"github.com/wardrobe-manager/backend/internal/domain/valueobject"
)

// FilterEligibleClothing returns the items that are active, not held by an open laundry
// record and allowed in the given season. Input order is preserved.
func FilterEligibleClothing(
	items []*entity.ClothingItem,
	laundry []*entity.LaundryRecord,
	season valueobject.Season,
) []*entity.ClothingItem {
	inLaundry := make(map[uuid.UUID]struct{})
	for _, record := range laundry {
		if !record.IsOpen() {
			continue
		}
		for _, id := range record.Items {
			inLaundry[id] = struct{}{}
		}
	}

	eligible := make([]*entity.ClothingItem, 0, len(items))
	for _, item := range items {
		if !item.IsActive() {
			continue
		}
		if _, held := inLaundry[item.ID]; held {
			continue
		}
		if !season.Allows(item.Season) {
			continue
		}
		eligible = append(eligible, item)
	}
	return eligible
}

// FilterEligibleAccessories returns the active accessories.
// Accessories are not subject to laundry or season restrictions.
func FilterEligibleAccessories(accessories []*entity.Accessory) []*entity.Accessory {
	eligible := make([]*entity.Accessory, 0, len(accessories))
	for _, accessory := range accessories {
		if accessory.IsActive() {
			eligible = append(eligible, accessory)
		}
	}
	return eligible
}
