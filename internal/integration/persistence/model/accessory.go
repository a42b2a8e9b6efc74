package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/wardrobe-manager/backend/internal/domain/entity"
)

// AccessoryModel represents the accessories table in the database.
type AccessoryModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_accessory_user_status"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Color          string     `gorm:"type:varchar(50);not null"`
	Type           string     `gorm:"type:varchar(50)"`
	CompatibleWith []string   `gorm:"type:text;serializer:json"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active';index:idx_accessory_user_status"`
	WearCount      int        `gorm:"not null;default:0"`
	LastWorn       *time.Time
	Image          *ImageJSON `gorm:"type:text;serializer:json"`
	CreatedAt      time.Time  `gorm:"not null"`
	UpdatedAt      time.Time  `gorm:"not null"`
}

// TableName returns the table name for the AccessoryModel.
func (AccessoryModel) TableName() string {
	return "accessories"
}

// ToEntity converts an AccessoryModel to a domain Accessory entity.
func (m *AccessoryModel) ToEntity() *entity.Accessory {
	var image *entity.Image
	if m.Image != nil {
		image = &entity.Image{URL: m.Image.URL, PublicID: m.Image.PublicID}
	}
	compatibleWith := m.CompatibleWith
	if compatibleWith == nil {
		compatibleWith = []string{}
	}

	return &entity.Accessory{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Color:          m.Color,
		Type:           m.Type,
		CompatibleWith: compatibleWith,
		Status:         entity.ItemStatus(m.Status),
		WearCount:      m.WearCount,
		LastWorn:       m.LastWorn,
		Image:          image,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// AccessoryFromEntity creates an AccessoryModel from a domain Accessory entity.
func AccessoryFromEntity(accessory *entity.Accessory) *AccessoryModel {
	var image *ImageJSON
	if accessory.Image != nil {
		image = &ImageJSON{URL: accessory.Image.URL, PublicID: accessory.Image.PublicID}
	}

	return &AccessoryModel{
		ID:             accessory.ID,
		UserID:         accessory.UserID,
		Name:           accessory.Name,
		Color:          accessory.Color,
		Type:           accessory.Type,
		CompatibleWith: accessory.CompatibleWith,
		Status:         string(accessory.Status),
		WearCount:      accessory.WearCount,
		LastWorn:       accessory.LastWorn,
		Image:          image,
		CreatedAt:      accessory.CreatedAt,
		UpdatedAt:      accessory.UpdatedAt,
	}
}
