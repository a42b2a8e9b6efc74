// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Outfit represents a composed set of clothing items and accessories.
type Outfit struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	ClothingItems    []uuid.UUID // Ordered
	Accessories      []uuid.UUID
	WeatherCondition string
	WearCount        int
	Images           []Image
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewOutfit creates a new Outfit entity.
func NewOutfit(userID uuid.UUID, name string, clothingItems, accessories []uuid.UUID, weatherCondition string, wearCount int) *Outfit {
	now := time.Now().UTC()
	if clothingItems == nil {
		clothingItems = []uuid.UUID{}
	}
	if accessories == nil {
		accessories = []uuid.UUID{}
	}

	return &Outfit{
		ID:               uuid.New(),
		UserID:           userID,
		Name:             name,
		ClothingItems:    clothingItems,
		Accessories:      accessories,
		WeatherCondition: weatherCondition,
		WearCount:        wearCount,
		Images:           []Image{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// OutfitWithItems represents an outfit with its referenced items resolved.
type OutfitWithItems struct {
	Outfit        *Outfit
	ClothingItems []*ClothingItem
	Accessories   []*Accessory
}
