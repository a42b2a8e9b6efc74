package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// ClothingItemModel represents the clothing_items table in the database.
type ClothingItemModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index:idx_clothing_user_status"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Category  string      `gorm:"type:varchar(30);not null"`
	Color     string      `gorm:"type:varchar(50)"`
	Season    string      `gorm:"type:varchar(20);index"`
	Occasion  string      `gorm:"type:varchar(100)"`
	Status    string      `gorm:"type:varchar(20);not null;default:'active';index:idx_clothing_user_status"`
	WearCount int         `gorm:"not null;default:0"`
	LastWorn  *time.Time
	Images    []ImageJSON `gorm:"type:text;serializer:json"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time   `gorm:"not null"`
}

// TableName returns the table name for the ClothingItemModel.
func (ClothingItemModel) TableName() string {
	return "clothing_items"
}

// ToEntity converts a ClothingItemModel to a domain ClothingItem entity.
func (m *ClothingItemModel) ToEntity() *entity.ClothingItem {
	return &entity.ClothingItem{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Category:  entity.ClothingCategory(m.Category),
		Color:     m.Color,
		Season:    m.Season,
		Occasion:  m.Occasion,
		Status:    entity.ItemStatus(m.Status),
		WearCount: m.WearCount,
		LastWorn:  m.LastWorn,
		Images:    imagesToEntity(m.Images),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ClothingItemFromEntity creates a ClothingItemModel from a domain ClothingItem entity.
func ClothingItemFromEntity(item *entity.ClothingItem) *ClothingItemModel {
	return &ClothingItemModel{
		ID:        item.ID,
		UserID:    item.UserID,
		Name:      item.Name,
		Category:  string(item.Category),
		Color:     item.Color,
		Season:    item.Season,
		Occasion:  item.Occasion,
		Status:    string(item.Status),
		WearCount: item.WearCount,
		LastWorn:  item.LastWorn,
		Images:    imagesFromEntity(item.Images),
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
