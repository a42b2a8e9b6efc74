// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Accessory represents an accessory that can be paired with clothing categories.
type Accessory struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Color          string
	Type           string
	CompatibleWith []string
	Status         ItemStatus
	WearCount      int
	LastWorn       *time.Time
	Image          *Image
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewAccessory creates a new active Accessory that has never been worn.
func NewAccessory(userID uuid.UUID, name, color, accessoryType string, compatibleWith []string) *Accessory {
	now := time.Now().UTC()
	if compatibleWith == nil {
		compatibleWith = []string{}
	}

	return &Accessory{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Color:          color,
		Type:           accessoryType,
		CompatibleWith: compatibleWith,
		Status:         ItemStatusActive,
		WearCount:      0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsActive reports whether the accessory has not been donated.
func (a *Accessory) IsActive() bool {
	return a.Status != ItemStatusDonated
}

// PairsWith reports whether the accessory lists the given category as compatible.
func (a *Accessory) PairsWith(category ClothingCategory) bool {
	for _, c := range a.CompatibleWith {
		if c == string(category) {
			return true
		}
	}
	return false
}
