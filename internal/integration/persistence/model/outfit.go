package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// OutfitModel represents the outfits table in the database.
type OutfitModel struct {
	ID               uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name             string      `gorm:"type:varchar(255);not null"`
	ClothingItems    []uuid.UUID `gorm:"type:text;serializer:json"`
	Accessories      []uuid.UUID `gorm:"type:text;serializer:json"`
	WeatherCondition string      `gorm:"type:varchar(50)"`
	WearCount        int         `gorm:"not null;default:0"`
	Images           []ImageJSON `gorm:"type:text;serializer:json"`
	CreatedAt        time.Time   `gorm:"not null"`
	UpdatedAt        time.Time   `gorm:"not null"`
}

// TableName returns the table name for the OutfitModel.
func (OutfitModel) TableName() string {
	return "outfits"
}

// ToEntity converts an OutfitModel to a domain Outfit entity.
func (m *OutfitModel) ToEntity() *entity.Outfit {
	clothingItems, accessories := m.ClothingItems, m.Accessories
	if clothingItems == nil {
		clothingItems = []uuid.UUID{}
	}
	if accessories == nil {
		accessories = []uuid.UUID{}
	}
	return &entity.Outfit{
		ID:               m.ID,
		UserID:           m.UserID,
		Name:             m.Name,
		ClothingItems:    clothingItems,
		Accessories:      accessories,
		WeatherCondition: m.WeatherCondition,
		WearCount:        m.WearCount,
		Images:           imagesToEntity(m.Images),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// OutfitFromEntity creates an OutfitModel from a domain Outfit entity.
func OutfitFromEntity(outfit *entity.Outfit) *OutfitModel {
	return &OutfitModel{
		ID:               outfit.ID,
		UserID:           outfit.UserID,
		Name:             outfit.Name,
		ClothingItems:    outfit.ClothingItems,
		Accessories:      outfit.Accessories,
		WeatherCondition: outfit.WeatherCondition,
		WearCount:        outfit.WearCount,
		Images:           imagesFromEntity(outfit.Images),
		CreatedAt:        outfit.CreatedAt,
		UpdatedAt:        outfit.UpdatedAt,
	}
}
