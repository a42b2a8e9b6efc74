// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user in the Wardrobe Manager system.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	PasswordHash     string
	Location         string
	StylePreferences []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash, location string, stylePreferences []string) *User {
	now := time.Now().UTC()
	if stylePreferences == nil {
		stylePreferences = []string{}
	}
	return &User{
		ID:               uuid.New(),
		Email:            email,
		Name:             name,
		PasswordHash:     passwordHash,
		Location:         location,
		StylePreferences: stylePreferences,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
