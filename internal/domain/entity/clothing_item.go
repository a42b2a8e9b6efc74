// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClothingCategory represents the category of a clothing item.
type ClothingCategory string

const (
	ClothingCategoryTop        ClothingCategory = "top"
	ClothingCategoryBottom     ClothingCategory = "bottom"
	ClothingCategoryDress      ClothingCategory = "dress"
	ClothingCategoryOuterwear  ClothingCategory = "outerwear"
	ClothingCategoryFootwear   ClothingCategory = "footwear"
	ClothingCategoryActivewear ClothingCategory = "activewear"
	ClothingCategoryFormal     ClothingCategory = "formal"
	ClothingCategoryOther      ClothingCategory = "other"
)

// IsValid reports whether the category belongs to the closed category set.
func (c ClothingCategory) IsValid() bool {
	switch c {
	case ClothingCategoryTop, ClothingCategoryBottom, ClothingCategoryDress, ClothingCategoryOuterwear,
		ClothingCategoryFootwear, ClothingCategoryActivewear, ClothingCategoryFormal, ClothingCategoryOther:
		return true
	}
	return false
}

// ItemStatus represents the lifecycle status of a wardrobe item.
type ItemStatus string

const (
	ItemStatusActive  ItemStatus = "active"
	ItemStatusDonated ItemStatus = "donated"
)

// ItemKind distinguishes the two wearable collections.
type ItemKind string

const (
	ItemKindClothing  ItemKind = "clothing"
	ItemKindAccessory ItemKind = "accessory"
)

// Image is a stored picture of an item.
type Image struct {
	URL      string
	PublicID string
}

// ClothingItem represents a piece of clothing in a user's wardrobe.
type ClothingItem struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Category  ClothingCategory
	Color     string
	Season    string // Optional tag, empty when unset
	Occasion  string
	Status    ItemStatus
	WearCount int
	LastWorn  *time.Time
	Images    []Image
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClothingItem creates a new active ClothingItem that has never been worn.
func NewClothingItem(userID uuid.UUID, name string, category ClothingCategory, color, season, occasion string) *ClothingItem {
	now := time.Now().UTC()

	return &ClothingItem{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Color:     color,
		Season:    season,
		Occasion:  occasion,
		Status:    ItemStatusActive,
		WearCount: 0,
		Images:    []Image{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsActive reports whether the item has not been donated.
func (c *ClothingItem) IsActive() bool {
	return c.Status != ItemStatusDonated
}
